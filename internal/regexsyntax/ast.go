package regexsyntax

// NodeKind tags an AST node. The variant set is exactly the one spec.md §3
// names: Char, Class, Concat, Union, Star, Plus, Question. There is
// deliberately no Repeat or BackRef variant — those featured in the
// teacher's regexlib AST but are explicitly out of scope (see
// SPEC_FULL.md §12).
type NodeKind int

const (
	NChar NodeKind = iota
	NClass
	NConcat
	NUnion
	NStar
	NPlus
	NQuestion
)

// Node is a regex AST node. Children are owned by the parent; there is no
// sharing. Class carries a non-empty ByteSet by construction — the parser
// never emits an empty one (see lexClass's emptiness checks).
type Node struct {
	Kind  NodeKind
	Char  byte
	Class ByteSet
	Left  *Node
	Right *Node
}

func charNode(c byte) *Node       { return &Node{Kind: NChar, Char: c} }
func classNode(s ByteSet) *Node   { return &Node{Kind: NClass, Class: s} }
func concatNode(l, r *Node) *Node { return &Node{Kind: NConcat, Left: l, Right: r} }
func unionNode(l, r *Node) *Node  { return &Node{Kind: NUnion, Left: l, Right: r} }
func starNode(x *Node) *Node      { return &Node{Kind: NStar, Left: x} }
func plusNode(x *Node) *Node      { return &Node{Kind: NPlus, Left: x} }
func questionNode(x *Node) *Node  { return &Node{Kind: NQuestion, Left: x} }

// emptyNode is ε, the neutral subtree for empty alternatives and empty
// groups: a Question node with no child. The Thompson builder gives it a
// start state wired directly to its accept by ε, consuming no input.
func emptyNode() *Node { return &Node{Kind: NQuestion, Left: nil} }
