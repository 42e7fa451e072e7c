// Package patternfile parses a pattern-list file — one rule per line,
// "CATEGORY priority regex" — into the ordered automata.Pattern slice
// pattern.Generate consumes. Grounded on internal/interpreter/parser.go's
// participle grammar style, generalized from that toy language's
// keyword/expression grammar to this format's flatter one.
package patternfile

import (
	"fmt"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/karllogdat/lexgen/internal/automata"
)

// Word covers the category name, the priority, and the regex source
// alike: a plain identifier like "IDENT", a number like "10", and a
// pattern like "[a-z]+" all come through as non-whitespace runs, and
// grammar position (first Word, second Word, third Word) is what tells
// them apart, not the lexer class. A separate Int rule for the priority
// column would reintroduce the same ambiguity a separate Ident rule for
// the category once did: the simple lexer matches rules in declaration
// order at each position rather than longest-match-wins across rules, so
// a digit-leading regex source like "0x[0-9a-f]+" would have its leading
// "0" peeled off as an Int before Word ever got a chance at it, splitting
// one pattern into two garbled tokens.
var patternLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	{Name: "Word", Pattern: `[^\s]+`},
})

// Rule is one line: a token category name, a priority (lower wins), and
// the regex source in the surface language internal/regexsyntax parses.
// Priority is captured as a Word and converted in Parse rather than typed
// as an integer in the grammar itself, so the lexer never has to guess
// which column a leading digit belongs to.
type Rule struct {
	Category      string `parser:"@Word"`
	PriorityToken string `parser:"@Word"`
	Source        string `parser:"@Word"`
}

// File is a full pattern-list file: rules in declaration order. Blank
// lines and '#' comments carry no meaning.
type File struct {
	Rules []*Rule `parser:"@@*"`
}

var fileParser = participle.MustBuild[File](
	participle.Lexer(patternLexer),
	participle.Elide("Whitespace", "Comment"),
)

// Parse reads a pattern-list file's text into an ordered pattern slice,
// ready for pattern.Generate. Declaration order is preserved, since
// equal-priority rules still need a stable tiebreaker (spec.md §3).
func Parse(name, data string) ([]automata.Pattern, error) {
	f, err := fileParser.ParseString(name, data)
	if err != nil {
		return nil, err
	}
	patterns := make([]automata.Pattern, len(f.Rules))
	for i, r := range f.Rules {
		priority, err := strconv.Atoi(r.PriorityToken)
		if err != nil {
			return nil, fmt.Errorf("%s: rule %q: priority %q is not an integer", name, r.Category, r.PriorityToken)
		}
		patterns[i] = automata.Pattern{
			Source:   r.Source,
			Category: r.Category,
			Priority: priority,
		}
	}
	return patterns, nil
}
