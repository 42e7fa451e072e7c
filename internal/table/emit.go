package table

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Emit writes t as the textual C7 artifact: one section per field, plain
// enough to diff in a code review, grounded on
// original_source/src/dfa.cpp's generateToFile header/source split but
// collapsed into a single round-trippable Go text format instead of a
// paired .h/.c file.
func Emit(w io.Writer, t *Table) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "STATE_COUNT %d\n", t.StateCount)
	fmt.Fprintf(bw, "SYMBOL_COUNT %d\n", t.SymbolCount)

	fmt.Fprint(bw, "ALPHABET")
	for _, b := range t.Alphabet {
		fmt.Fprintf(bw, " %s", escapeByteToken(b))
	}
	fmt.Fprint(bw, "\n")

	fmt.Fprintf(bw, "START %d\n", t.Start)

	fmt.Fprint(bw, "ACCEPT")
	for i, ok := range t.Accept {
		if ok {
			fmt.Fprintf(bw, " %d", i)
		}
	}
	fmt.Fprint(bw, "\n")

	fmt.Fprint(bw, "CATEGORIES")
	for _, name := range t.CategoryNames {
		fmt.Fprintf(bw, " %s", name)
	}
	fmt.Fprint(bw, "\n")

	fmt.Fprint(bw, "STATE_CATEGORY")
	for _, c := range t.StateCategory {
		fmt.Fprintf(bw, " %d", c)
	}
	fmt.Fprint(bw, "\n")

	fmt.Fprint(bw, "TRANSITIONS\n")
	for _, row := range t.Transitions {
		strs := make([]string, len(row))
		for i, v := range row {
			strs[i] = strconv.Itoa(int(v))
		}
		fmt.Fprintln(bw, strings.Join(strs, " "))
	}

	return bw.Flush()
}

// Parse reads back a Table written by Emit. It is a full inverse: for any
// t, Parse(Emit(t)) reproduces every field of t.
func Parse(r io.Reader) (*Table, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	t := &Table{}

	readLine := func(tag string) ([]string, error) {
		if !sc.Scan() {
			return nil, fmt.Errorf("table: unexpected end of input, expected %s", tag)
		}
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || fields[0] != tag {
			return nil, fmt.Errorf("table: expected %s, got %q", tag, sc.Text())
		}
		return fields[1:], nil
	}

	fields, err := readLine("STATE_COUNT")
	if err != nil {
		return nil, err
	}
	t.StateCount, err = strconv.Atoi(fields[0])
	if err != nil {
		return nil, err
	}

	fields, err = readLine("SYMBOL_COUNT")
	if err != nil {
		return nil, err
	}
	t.SymbolCount, err = strconv.Atoi(fields[0])
	if err != nil {
		return nil, err
	}

	fields, err = readLine("ALPHABET")
	if err != nil {
		return nil, err
	}
	t.Alphabet = make([]byte, len(fields))
	for i := range t.SymbolToID {
		t.SymbolToID[i] = -1
	}
	for i, tok := range fields {
		b, err := unescapeByteToken(tok)
		if err != nil {
			return nil, err
		}
		t.Alphabet[i] = b
		t.SymbolToID[b] = int32(i)
	}

	fields, err = readLine("START")
	if err != nil {
		return nil, err
	}
	start, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, err
	}
	t.Start = int32(start)

	fields, err = readLine("ACCEPT")
	if err != nil {
		return nil, err
	}
	t.Accept = make([]bool, t.StateCount)
	for _, tok := range fields {
		id, err := strconv.Atoi(tok)
		if err != nil {
			return nil, err
		}
		t.Accept[id] = true
	}

	fields, err = readLine("CATEGORIES")
	if err != nil {
		return nil, err
	}
	t.CategoryNames = append([]string(nil), fields...)

	fields, err = readLine("STATE_CATEGORY")
	if err != nil {
		return nil, err
	}
	t.StateCategory = make([]int32, len(fields))
	for i, tok := range fields {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, err
		}
		t.StateCategory[i] = int32(v)
	}

	if !sc.Scan() || sc.Text() != "TRANSITIONS" {
		return nil, fmt.Errorf("table: expected TRANSITIONS section")
	}
	t.Transitions = make([][]int32, t.StateCount)
	for i := 0; i < t.StateCount; i++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("table: missing transition row %d", i)
		}
		cols := strings.Fields(sc.Text())
		if len(cols) != t.SymbolCount {
			return nil, fmt.Errorf("table: row %d has %d columns, want %d", i, len(cols), t.SymbolCount)
		}
		row := make([]int32, t.SymbolCount)
		for j, tok := range cols {
			v, err := strconv.Atoi(tok)
			if err != nil {
				return nil, err
			}
			row[j] = int32(v)
		}
		t.Transitions[i] = row
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

func escapeByteToken(b byte) string {
	switch b {
	case '\n':
		return `\n`
	case '\r':
		return `\r`
	case '\t':
		return `\t`
	case '\\':
		return `\\`
	case ' ':
		return `\x20`
	default:
		if b >= 0x21 && b < 0x7f {
			return string(b)
		}
		return fmt.Sprintf(`\x%02x`, b)
	}
}

func unescapeByteToken(tok string) (byte, error) {
	switch tok {
	case `\n`:
		return '\n', nil
	case `\r`:
		return '\r', nil
	case `\t`:
		return '\t', nil
	case `\\`:
		return '\\', nil
	}
	if strings.HasPrefix(tok, `\x`) && len(tok) == 4 {
		v, err := strconv.ParseUint(tok[2:], 16, 8)
		if err != nil {
			return 0, err
		}
		return byte(v), nil
	}
	if len(tok) == 1 {
		return tok[0], nil
	}
	return 0, fmt.Errorf("table: invalid byte token %q", tok)
}
