package table

import (
	"bytes"

	"github.com/dave/jennifer/jen"
)

// GenerateSource is the alternate C7 backend: instead of the textual
// format emit.go writes, it renders the table as literal Go source — a
// standalone package with no dependency on this module at scan time,
// suitable for embedding a generated scanner in a downstream binary.
// Grounded on the jen.Id/.Op/.Index/.Values idiom used throughout
// KromDaniel-regengo/internal/compiler for generating compiled matchers.
func GenerateSource(pkgName string, t *Table) (string, error) {
	f := jen.NewFile(pkgName)
	f.HeaderComment("Code generated by lexgen. DO NOT EDIT.")

	f.Const().Id("StateCount").Op("=").Lit(t.StateCount)
	f.Const().Id("SymbolCount").Op("=").Lit(t.SymbolCount)
	f.Const().Id("StartState").Op("=").Lit(int(t.Start))

	alphabet := make([]jen.Code, len(t.Alphabet))
	for i, b := range t.Alphabet {
		alphabet[i] = jen.Lit(b)
	}
	f.Var().Id("Alphabet").Op("=").Index(jen.Lit(t.SymbolCount)).Byte().Values(alphabet...)

	symbolToID := make([]jen.Code, len(t.SymbolToID))
	for i, v := range t.SymbolToID {
		symbolToID[i] = jen.Lit(int(v))
	}
	f.Var().Id("SymbolToID").Op("=").Index(jen.Lit(len(t.SymbolToID))).Int32().Values(symbolToID...)

	rows := make([]jen.Code, len(t.Transitions))
	for i, row := range t.Transitions {
		cols := make([]jen.Code, len(row))
		for j, v := range row {
			cols[j] = jen.Lit(int(v))
		}
		rows[i] = jen.Index(jen.Lit(t.SymbolCount)).Int32().Values(cols...)
	}
	f.Var().Id("TransitionTable").Op("=").
		Index(jen.Lit(t.StateCount)).Index(jen.Lit(t.SymbolCount)).Int32().
		Values(rows...)

	accepts := make([]jen.Code, len(t.Accept))
	for i, ok := range t.Accept {
		accepts[i] = jen.Lit(ok)
	}
	f.Var().Id("AcceptStates").Op("=").Index(jen.Lit(t.StateCount)).Bool().Values(accepts...)

	names := make([]jen.Code, len(t.CategoryNames))
	for i, name := range t.CategoryNames {
		names[i] = jen.Lit(name)
	}
	f.Var().Id("CategoryNames").Op("=").Index().String().Values(names...)

	categories := make([]jen.Code, len(t.StateCategory))
	for i, c := range t.StateCategory {
		categories[i] = jen.Lit(int(c))
	}
	f.Var().Id("StateCategory").Op("=").Index(jen.Lit(t.StateCount)).Int32().Values(categories...)

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
