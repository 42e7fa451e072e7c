// Package pattern orchestrates the whole construction pipeline, C1
// through C6, over a prioritized pattern list — the Go analogue of
// original_source/src/dfa.cpp's TransitionTableGenerator.
package pattern

import (
	"go.uber.org/zap"

	"github.com/karllogdat/lexgen/internal/automata"
	"github.com/karllogdat/lexgen/internal/genlog"
	"github.com/karllogdat/lexgen/internal/table"
)

// Pattern is one prioritized entry: a regex source in the surface
// language internal/regexsyntax parses, the category name it produces,
// and a priority where lower wins ties (broken by list position).
type Pattern = automata.Pattern

// Generate runs a pattern list through Combine (C4, which itself drives
// C1-C3 per pattern), Subset (C5), and Build (C6), producing the
// transition table a scanner runs against. logger may be genlog.Noop().
func Generate(patterns []Pattern, logger *genlog.Logger) (*table.Table, error) {
	logger.Stage("combining patterns", zap.Int("pattern_count", len(patterns)))
	nfa, err := automata.Combine(patterns)
	if err != nil {
		return nil, err
	}
	logger.Stage("nfa built", zap.Int("state_count", len(nfa.States)))

	dfa, err := automata.Subset(nfa)
	if err != nil {
		return nil, err
	}
	logger.Stage("dfa built", zap.Int("state_count", len(dfa.States)), zap.Int("alphabet_size", len(dfa.Alphabet)))

	tbl, err := table.Build(dfa)
	if err != nil {
		return nil, err
	}
	logger.Stage("table built", zap.Int("state_count", tbl.StateCount), zap.Int("symbol_count", tbl.SymbolCount))

	return tbl, nil
}
