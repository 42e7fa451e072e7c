package regexsyntax

// lexer turns a pattern byte string into a flat Token sequence terminated
// by TokEnd. Grounded on LAB_2/regexlib/lexer.go's byte-at-a-time scan
// loop, generalized to the escape/character-class rules of the full
// pattern language (see original_source/src/regex_parser.cpp).
type lexer struct {
	pattern string
	pos     int
}

// Tokenize is the C1 entry point.
func Tokenize(pattern string) ([]Token, error) {
	l := &lexer{pattern: pattern}
	var toks []Token
	for l.pos < len(l.pattern) {
		if err := l.scan(&toks); err != nil {
			return nil, err
		}
	}
	toks = append(toks, Token{Kind: TokEnd})
	return toks, nil
}

// scan consumes one syntactic unit at the current position, appending one
// or more tokens to toks (a quoted literal run appends one token per byte).
func (l *lexer) scan(toks *[]Token) error {
	c := l.pattern[l.pos]
	switch c {
	case '(':
		l.pos++
		*toks = append(*toks, Token{Kind: TokLParen})
	case ')':
		l.pos++
		*toks = append(*toks, Token{Kind: TokRParen})
	case '*':
		l.pos++
		*toks = append(*toks, Token{Kind: TokStar})
	case '+':
		l.pos++
		*toks = append(*toks, Token{Kind: TokPlus})
	case '?':
		l.pos++
		*toks = append(*toks, Token{Kind: TokQuestion})
	case '|':
		l.pos++
		*toks = append(*toks, Token{Kind: TokUnion})
	case '.':
		l.pos++
		*toks = append(*toks, Token{Kind: TokDot})
	case '[':
		tok, err := l.lexClass()
		if err != nil {
			return err
		}
		*toks = append(*toks, tok)
	case '"':
		return l.lexQuotedRun(toks)
	case '\\':
		tok, err := l.lexEscape()
		if err != nil {
			return err
		}
		*toks = append(*toks, tok)
	default:
		l.pos++
		*toks = append(*toks, Token{Kind: TokChar, Char: c})
	}
	return nil
}

// lexQuotedRun consumes a `"..."` literal run. Every byte until the
// closing quote becomes a char token; metacharacters have no special
// meaning inside the run, only `\X` escape expansion applies.
func (l *lexer) lexQuotedRun(toks *[]Token) error {
	start := l.pos
	l.pos++ // consume opening quote
	for {
		if l.pos >= len(l.pattern) {
			return syntaxErrorf(l.pattern, start, "unterminated quoted literal")
		}
		c := l.pattern[l.pos]
		if c == '"' {
			l.pos++
			return nil
		}
		if c == '\\' {
			l.pos++
			if l.pos >= len(l.pattern) {
				return syntaxErrorf(l.pattern, start, "unterminated quoted literal")
			}
			*toks = append(*toks, Token{Kind: TokChar, Char: expandEscape(l.pattern[l.pos])})
			l.pos++
			continue
		}
		*toks = append(*toks, Token{Kind: TokChar, Char: c})
		l.pos++
	}
}

func (l *lexer) lexEscape() (Token, error) {
	start := l.pos
	l.pos++
	if l.pos >= len(l.pattern) {
		return Token{}, syntaxErrorf(l.pattern, start, "trailing backslash")
	}
	c := l.pattern[l.pos]
	l.pos++
	switch c {
	case 'd':
		return Token{Kind: TokClass, Class: Digits()}, nil
	case 'w':
		return Token{Kind: TokClass, Class: WordChars()}, nil
	case 's':
		return Token{Kind: TokClass, Class: Whitespace()}, nil
	case 'D':
		return Token{Kind: TokClass, Class: Digits().Negate()}, nil
	case 'W':
		return Token{Kind: TokClass, Class: WordChars().Negate()}, nil
	case 'S':
		return Token{Kind: TokClass, Class: Whitespace().Negate()}, nil
	default:
		return Token{Kind: TokChar, Char: expandEscape(c)}, nil
	}
}

// expandEscape maps a single escaped byte to its literal value per the
// rules in spec.md §4.1.
func expandEscape(c byte) byte {
	switch c {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case 'f':
		return '\f'
	case 'v':
		return '\v'
	case '0':
		return 0
	default:
		return c
	}
}

// lexClass consumes a `[...]` character class, expanding ranges and
// predefined classes, honoring a leading `^` negation.
func (l *lexer) lexClass() (Token, error) {
	start := l.pos
	l.pos++ // consume '['
	negate := false
	if l.pos < len(l.pattern) && l.pattern[l.pos] == '^' {
		negate = true
		l.pos++
	}

	var set ByteSet
	seenAny := false
	for {
		if l.pos >= len(l.pattern) {
			return Token{}, syntaxErrorf(l.pattern, start, "unterminated character class")
		}
		c := l.pattern[l.pos]
		if c == ']' {
			l.pos++
			break
		}

		var lo byte
		if c == '\\' {
			l.pos++
			if l.pos >= len(l.pattern) {
				return Token{}, syntaxErrorf(l.pattern, start, "unterminated character class")
			}
			e := l.pattern[l.pos]
			switch e {
			case 'd':
				set.Union(Digits())
				l.pos++
				seenAny = true
				continue
			case 'w':
				set.Union(WordChars())
				l.pos++
				seenAny = true
				continue
			case 's':
				set.Union(Whitespace())
				l.pos++
				seenAny = true
				continue
			case 'D':
				set.Union(Digits().Negate())
				l.pos++
				seenAny = true
				continue
			case 'W':
				set.Union(WordChars().Negate())
				l.pos++
				seenAny = true
				continue
			case 'S':
				set.Union(Whitespace().Negate())
				l.pos++
				seenAny = true
				continue
			default:
				lo = expandEscape(e)
				l.pos++
			}
		} else {
			lo = c
			l.pos++
		}

		// range?
		if l.pos+1 < len(l.pattern) && l.pattern[l.pos] == '-' && l.pattern[l.pos+1] != ']' {
			l.pos++ // consume '-'
			var hi byte
			if l.pattern[l.pos] == '\\' {
				l.pos++
				if l.pos >= len(l.pattern) {
					return Token{}, syntaxErrorf(l.pattern, start, "unterminated character class")
				}
				hi = expandEscape(l.pattern[l.pos])
				l.pos++
			} else {
				hi = l.pattern[l.pos]
				l.pos++
			}
			set.AddRange(lo, hi)
		} else {
			set.Add(lo)
		}
		seenAny = true
	}

	if !seenAny {
		return Token{}, syntaxErrorf(l.pattern, start, "empty character class")
	}
	if negate {
		set = set.Negate()
	}
	if set.Empty() {
		return Token{}, syntaxErrorf(l.pattern, start, "character class matches no byte")
	}
	return Token{Kind: TokClass, Class: set}, nil
}
