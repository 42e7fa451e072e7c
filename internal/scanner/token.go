// Package scanner is C8 (the table-driven maximal-munch scanner) and C9
// (the Token and TokenStream types it produces).
package scanner

import "math"

// UnknownCategory is the category id assigned to a lexeme that matched no
// pattern: a single byte from which no prefix reaches an accepting state. It
// is deliberately far from any real category id (which start at 0)
// rather than reusing -1, since -1 already means "this DFA state is not
// accepting" one layer down in table.Table.StateCategory — the two
// sentinels answer different questions and must not collide.
const UnknownCategory int32 = math.MaxInt32

// Token is one categorized lexeme: the category id it matched (or
// UnknownCategory), the matched bytes, and the position of its first
// byte. Line and column are 1-based.
type Token struct {
	Category int32
	Lexeme   []byte
	Line     int
	Column   int
}
