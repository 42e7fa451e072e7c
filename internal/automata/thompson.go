package automata

import "github.com/karllogdat/lexgen/internal/regexsyntax"

// Build is C3: Thompson construction, one fragment per AST node kind,
// grounded on original_source/src/nfa.cpp's ThompsonConstruction methods
// and spec.md §4.3's construction rules.
func Build(n *NFA, node *regexsyntax.Node) Fragment {
	switch node.Kind {
	case regexsyntax.NChar:
		return buildSet(n, regexsyntax.NewByteSet(node.Char))
	case regexsyntax.NClass:
		return buildSet(n, node.Class)
	case regexsyntax.NConcat:
		left := Build(n, node.Left)
		right := Build(n, node.Right)
		n.addEpsilon(left.Accept, right.Start)
		return Fragment{Start: left.Start, Accept: right.Accept}
	case regexsyntax.NUnion:
		left := Build(n, node.Left)
		right := Build(n, node.Right)
		start := n.newState()
		accept := n.newState()
		n.addEpsilon(start, left.Start)
		n.addEpsilon(start, right.Start)
		n.addEpsilon(left.Accept, accept)
		n.addEpsilon(right.Accept, accept)
		return Fragment{Start: start, Accept: accept}
	case regexsyntax.NStar:
		inner := Build(n, node.Left)
		start := n.newState()
		accept := n.newState()
		n.addEpsilon(start, inner.Start)
		n.addEpsilon(start, accept)
		n.addEpsilon(inner.Accept, inner.Start)
		n.addEpsilon(inner.Accept, accept)
		return Fragment{Start: start, Accept: accept}
	case regexsyntax.NPlus:
		inner := Build(n, node.Left)
		start := n.newState()
		accept := n.newState()
		n.addEpsilon(start, inner.Start)
		n.addEpsilon(inner.Accept, inner.Start)
		n.addEpsilon(inner.Accept, accept)
		return Fragment{Start: start, Accept: accept}
	case regexsyntax.NQuestion:
		if node.Left == nil {
			// ε: a start wired to its accept by one epsilon, consuming
			// no input.
			start := n.newState()
			accept := n.newState()
			n.addEpsilon(start, accept)
			return Fragment{Start: start, Accept: accept}
		}
		inner := Build(n, node.Left)
		start := n.newState()
		accept := n.newState()
		n.addEpsilon(start, inner.Start)
		n.addEpsilon(start, accept)
		n.addEpsilon(inner.Accept, accept)
		return Fragment{Start: start, Accept: accept}
	default:
		panic("automata: unknown AST node kind")
	}
}

func buildSet(n *NFA, set regexsyntax.ByteSet) Fragment {
	start := n.newState()
	accept := n.newState()
	n.addSet(start, accept, set)
	return Fragment{Start: start, Accept: accept}
}
