package regexsyntax

import "fmt"

// SyntaxError is the RegexSyntaxError construction-error kind from the
// error taxonomy: an unterminated class or quoted run, an unmatched
// parenthesis, or a trailing repetition operator with no atom to modify.
// It carries the byte offset within the offending pattern.
type SyntaxError struct {
	Pattern string
	Offset  int
	Msg     string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("regex syntax error in %q at offset %d: %s", e.Pattern, e.Offset, e.Msg)
}

func syntaxErrorf(pattern string, offset int, format string, args ...any) error {
	return &SyntaxError{Pattern: pattern, Offset: offset, Msg: fmt.Sprintf(format, args...)}
}
