package scanner

import (
	"testing"

	"github.com/karllogdat/lexgen/internal/automata"
	"github.com/karllogdat/lexgen/internal/table"
)

func buildTable(t *testing.T, patterns []automata.Pattern) *table.Table {
	t.Helper()
	n, err := automata.Combine(patterns)
	if err != nil {
		t.Fatalf("combine: %v", err)
	}
	d, err := automata.Subset(n)
	if err != nil {
		t.Fatalf("subset: %v", err)
	}
	tbl, err := table.Build(d)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return tbl
}

type wantToken struct {
	category string
	lexeme   string
}

func checkTokens(t *testing.T, tbl *table.Table, stream *TokenStream, want []wantToken) {
	t.Helper()
	if stream.Len() != len(want) {
		t.Fatalf("got %d tokens, want %d", stream.Len(), len(want))
	}
	for i, w := range want {
		tok, _ := stream.Get(i)
		got := "UNKNOWN"
		if tok.Category != UnknownCategory {
			got = tbl.CategoryName(tok.Category)
		}
		if got != w.category || string(tok.Lexeme) != w.lexeme {
			t.Fatalf("token %d: got (%s,%q), want (%s,%q)", i, got, tok.Lexeme, w.category, w.lexeme)
		}
	}
}

func TestScanPriorityTieBreak(t *testing.T) {
	// "if" matches both the keyword and identifier patterns at equal
	// length; the lower-priority keyword rule must win.
	patterns := []automata.Pattern{
		{Source: `if`, Category: "KW_IF", Priority: 0},
		{Source: `[a-zA-Z_][a-zA-Z0-9_]*`, Category: "IDENT", Priority: 10},
		{Source: `[ \t]+`, Category: "WS", Priority: 20},
	}
	tbl := buildTable(t, patterns)
	stream := Scan(tbl, []byte("if iffy"))
	checkTokens(t, tbl, stream, []wantToken{
		{"KW_IF", "if"},
		{"WS", " "},
		{"IDENT", "iffy"},
	})
}

func TestScanLongestMatchOverridesPriority(t *testing.T) {
	// \d+\.\d+ must win over \d+ on "12.34" because longest match beats
	// priority, even though \d+ has the stronger (lower) priority.
	patterns := []automata.Pattern{
		{Source: `\d+`, Category: "INT", Priority: 0},
		{Source: `\d+\.\d+`, Category: "FLOAT", Priority: 1},
		{Source: `[ \t]+`, Category: "WS", Priority: 2},
	}
	tbl := buildTable(t, patterns)
	stream := Scan(tbl, []byte("12.34 56"))
	checkTokens(t, tbl, stream, []wantToken{
		{"FLOAT", "12.34"},
		{"WS", " "},
		{"INT", "56"},
	})
}

func TestScanLongestPunctuationMatch(t *testing.T) {
	patterns := []automata.Pattern{
		{Source: `==`, Category: "EQEQ", Priority: 0},
		{Source: `=`, Category: "EQ", Priority: 1},
	}
	tbl := buildTable(t, patterns)
	stream := Scan(tbl, []byte("==="))
	checkTokens(t, tbl, stream, []wantToken{
		{"EQEQ", "=="},
		{"EQ", "="},
	})
}

func TestScanKeywordSubsumedByLongerIdentifier(t *testing.T) {
	patterns := []automata.Pattern{
		{Source: `true|false`, Category: "BOOL", Priority: 0},
		{Source: `[a-zA-Z_][a-zA-Z0-9_]*`, Category: "IDENT", Priority: 10},
	}
	tbl := buildTable(t, patterns)
	stream := Scan(tbl, []byte("trueish"))
	checkTokens(t, tbl, stream, []wantToken{{"IDENT", "trueish"}})
}

func TestScanUnknownOnDeadTransition(t *testing.T) {
	patterns := []automata.Pattern{{Source: `[a-z]+`, Category: "IDENT", Priority: 0}}
	tbl := buildTable(t, patterns)
	stream := Scan(tbl, []byte("ab#cd"))
	checkTokens(t, tbl, stream, []wantToken{
		{"IDENT", "ab"},
		{"UNKNOWN", "#"},
		{"IDENT", "cd"},
	})
}

func TestScanConsumesEveryByte(t *testing.T) {
	patterns := []automata.Pattern{{Source: `[a-z]+`, Category: "IDENT", Priority: 0}}
	tbl := buildTable(t, patterns)
	src := []byte("ab!!cd??")
	stream := Scan(tbl, src)

	total := 0
	for i := 0; i < stream.Len(); i++ {
		tok, _ := stream.Get(i)
		total += len(tok.Lexeme)
	}
	if total != len(src) {
		t.Fatalf("token lexemes cover %d bytes, want %d", total, len(src))
	}
}

func TestScanEmptyInputYieldsEmptyStream(t *testing.T) {
	tbl := buildTable(t, []automata.Pattern{{Source: `a`, Category: "A", Priority: 0}})
	stream := Scan(tbl, nil)
	if stream.Len() != 0 {
		t.Fatalf("expected an empty stream, got %d tokens", stream.Len())
	}
}

func TestScanTracksLinesAndColumns(t *testing.T) {
	patterns := []automata.Pattern{
		{Source: `[a-z]+`, Category: "IDENT", Priority: 0},
		{Source: "\n", Category: "NL", Priority: 1},
	}
	tbl := buildTable(t, patterns)
	stream := Scan(tbl, []byte("ab\ncd"))

	tok0, _ := stream.Get(0)
	if tok0.Line != 1 || tok0.Column != 1 {
		t.Fatalf("token 0 position wrong: %+v", tok0)
	}
	tok1, _ := stream.Get(1)
	if tok1.Line != 1 || tok1.Column != 3 {
		t.Fatalf("newline token position wrong: %+v", tok1)
	}
	tok2, _ := stream.Get(2)
	if tok2.Line != 2 || tok2.Column != 1 {
		t.Fatalf("token after newline positioned wrong: %+v", tok2)
	}
}

func TestScanCommentAndWhitespaceWithLiteralNewline(t *testing.T) {
	patterns := []automata.Pattern{
		{Source: `"//"[^\n]*`, Category: "COMMENT", Priority: 0},
		{Source: `[ \t\n]+`, Category: "WS", Priority: 1},
		{Source: `[a-z]+`, Category: "IDENT", Priority: 2},
	}
	tbl := buildTable(t, patterns)
	stream := Scan(tbl, []byte("x // trailing note\ny"))
	checkTokens(t, tbl, stream, []wantToken{
		{"IDENT", "x"},
		{"WS", " "},
		{"COMMENT", "// trailing note"},
		{"WS", "\n"},
		{"IDENT", "y"},
	})
}
