package regexsyntax

// parser is a predictive, allocation-linear recursive-descent parser
// implementing spec.md §4.2's grammar:
//
//	Union    → Concat ('|' Concat)*
//	Concat   → Closure+
//	Closure  → Atom ('*'|'+'|'?')?
//	Atom     → char | class | dot | '(' Union ')'
//
// grounded on original_source/src/regex_parser.cpp's parseUnion/
// parseConcat/parseClosure/parseAtom, adapted from the teacher's Pratt
// parser (LAB_2/regexlib/parser.go) into the simpler grammar spec.md
// specifies directly.
type parser struct {
	toks    []Token
	pos     int
	pattern string
}

// Parse is the C2 entry point: pattern string to AST.
func Parse(pattern string) (*Node, error) {
	toks, err := Tokenize(pattern)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks, pattern: pattern}
	node, err := p.parseUnion()
	if err != nil {
		return nil, err
	}
	if p.peek().Kind != TokEnd {
		return nil, syntaxErrorf(pattern, p.pos, "unexpected %s, expected end of pattern", p.peek().Kind)
	}
	return node, nil
}

func (p *parser) peek() Token   { return p.toks[p.pos] }
func (p *parser) consume() Token { t := p.toks[p.pos]; p.pos++; return t }

func isAtomStart(k TokenKind) bool {
	return k == TokChar || k == TokClass || k == TokDot || k == TokLParen
}

func isRepeatOp(k TokenKind) bool {
	return k == TokStar || k == TokPlus || k == TokQuestion
}

func (p *parser) parseUnion() (*Node, error) {
	left, err := p.parseConcat()
	if err != nil {
		return nil, err
	}
	for p.peek().Kind == TokUnion {
		p.consume()
		right, err := p.parseConcat()
		if err != nil {
			return nil, err
		}
		left = unionNode(left, right)
	}
	return left, nil
}

func (p *parser) parseConcat() (*Node, error) {
	if !isAtomStart(p.peek().Kind) {
		// An empty alternative, e.g. the second branch of "a|", is legal
		// and represented as ε (spec.md §3).
		return emptyNode(), nil
	}
	left, err := p.parseClosure()
	if err != nil {
		return nil, err
	}
	for isAtomStart(p.peek().Kind) {
		right, err := p.parseClosure()
		if err != nil {
			return nil, err
		}
		left = concatNode(left, right)
	}
	return left, nil
}

func (p *parser) parseClosure() (*Node, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	switch p.peek().Kind {
	case TokStar:
		p.consume()
		atom = starNode(atom)
	case TokPlus:
		p.consume()
		atom = plusNode(atom)
	case TokQuestion:
		p.consume()
		atom = questionNode(atom)
	default:
		return atom, nil
	}
	// A second repetition operator stacked directly on the first has no
	// atom of its own to modify — "a**" is a construction error while
	// "a*b*" (two atoms, each closed once) is legal.
	if isRepeatOp(p.peek().Kind) {
		return nil, syntaxErrorf(p.pattern, p.pos, "repetition operator with no atom to repeat")
	}
	return atom, nil
}

func (p *parser) parseAtom() (*Node, error) {
	tok := p.peek()
	switch tok.Kind {
	case TokChar:
		p.consume()
		return charNode(tok.Char), nil
	case TokClass:
		p.consume()
		return classNode(tok.Class), nil
	case TokDot:
		p.consume()
		return classNode(AnyExceptNewline()), nil
	case TokLParen:
		p.consume()
		inner, err := p.parseUnion()
		if err != nil {
			return nil, err
		}
		if p.peek().Kind != TokRParen {
			return nil, syntaxErrorf(p.pattern, p.pos, "missing ')'")
		}
		p.consume()
		return inner, nil
	default:
		return nil, syntaxErrorf(p.pattern, p.pos, "unexpected %s, expected an atom", tok.Kind)
	}
}
