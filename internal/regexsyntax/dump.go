package regexsyntax

import (
	"fmt"
	"strings"
)

// Dump renders the AST as an indented tree, the Go analogue of
// original_source/src/regex_parser.cpp's printAST. cmd/lexgen's -dump-ast
// flag prints it for construction diagnostics, and dump_test.go asserts
// against it directly; the parser itself never calls it.
func Dump(n *Node) string {
	var b strings.Builder
	dump(&b, n, 0)
	return b.String()
}

func dump(b *strings.Builder, n *Node, depth int) {
	if n == nil {
		return
	}
	indent := strings.Repeat("  ", depth)
	switch n.Kind {
	case NChar:
		fmt.Fprintf(b, "%sCHAR: %s\n", indent, charLabel(n.Char))
	case NClass:
		fmt.Fprintf(b, "%sCLASS: %s\n", indent, classLabel(n.Class))
	case NConcat:
		fmt.Fprintf(b, "%sCONCAT\n", indent)
		dump(b, n.Left, depth+1)
		dump(b, n.Right, depth+1)
	case NUnion:
		fmt.Fprintf(b, "%sUNION\n", indent)
		dump(b, n.Left, depth+1)
		dump(b, n.Right, depth+1)
	case NStar:
		fmt.Fprintf(b, "%sSTAR\n", indent)
		dump(b, n.Left, depth+1)
	case NPlus:
		fmt.Fprintf(b, "%sPLUS\n", indent)
		dump(b, n.Left, depth+1)
	case NQuestion:
		if n.Left == nil {
			fmt.Fprintf(b, "%sEPSILON\n", indent)
			return
		}
		fmt.Fprintf(b, "%sQUESTION\n", indent)
		dump(b, n.Left, depth+1)
	}
}

func charLabel(c byte) string {
	switch c {
	case '\n':
		return "\\n"
	case '\t':
		return "\\t"
	case '\r':
		return "\\r"
	case '\f':
		return "\\f"
	case '\v':
		return "\\v"
	case 0:
		return "\\0"
	case ' ':
		return "' '"
	default:
		if c >= 0x20 && c < 0x7f {
			return string(c)
		}
		return fmt.Sprintf("\\x%02x", c)
	}
}

func classLabel(s ByteSet) string {
	bytes := s.Bytes()
	const max = 10
	var parts []string
	for i, b := range bytes {
		if i >= max {
			parts = append(parts, fmt.Sprintf("...(%d total)", len(bytes)))
			break
		}
		parts = append(parts, charLabel(b))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
