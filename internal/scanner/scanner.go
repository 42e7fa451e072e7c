package scanner

import "github.com/karllogdat/lexgen/internal/table"

// Scan is C8: maximal-munch tokenization of src against t. It follows
// spec.md §4.8's algorithm exactly — an inner walk tracks
// (state, last_accept, last_pos) byte by byte from the current position;
// the outer loop resumes from just past the longest accepted prefix, or
// emits a single-byte UNKNOWN token and advances by one when no prefix
// was ever accepted.
func Scan(t *table.Table, src []byte) *TokenStream {
	stream := NewTokenStream()

	pos := 0
	line, col := 1, 1

	for pos < len(src) {
		state := t.Start
		lastAccept := int32(-1)
		lastPos := pos - 1
		scanLine, scanCol := line, col
		curLine, curCol := line, col
		acceptLine, acceptCol := line, col

		p := pos
		for p < len(src) {
			next, ok := t.Next(state, src[p])
			if !ok {
				break
			}
			state = next
			curLine, curCol = advance(curLine, curCol, src[p])
			if t.Accept[state] {
				lastAccept = state
				lastPos = p
				acceptLine, acceptCol = curLine, curCol
			}
			p++
		}

		if lastAccept >= 0 {
			lexeme := append([]byte(nil), src[pos:lastPos+1]...)
			stream.Append(Token{
				Category: t.StateCategory[lastAccept],
				Lexeme:   lexeme,
				Line:     scanLine,
				Column:   scanCol,
			})
			pos = lastPos + 1
			line, col = acceptLine, acceptCol
		} else {
			stream.Append(Token{
				Category: UnknownCategory,
				Lexeme:   []byte{src[pos]},
				Line:     line,
				Column:   col,
			})
			line, col = advance(line, col, src[pos])
			pos++
		}
	}

	return stream
}

// advance moves a (line, col) pair over one consumed byte: a line feed
// starts a new line and resets the column, anything else just moves the
// column forward.
func advance(line, col int, b byte) (int, int) {
	if b == '\n' {
		return line + 1, 1
	}
	return line, col + 1
}
