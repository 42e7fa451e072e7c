// Command lexgen builds a transition table from a pattern-list file and
// tokenizes a source file against it, printing the resulting token
// stream one lexeme per line.
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/karllogdat/lexgen/internal/genlog"
	"github.com/karllogdat/lexgen/internal/pattern"
	"github.com/karllogdat/lexgen/internal/patternfile"
	"github.com/karllogdat/lexgen/internal/regexsyntax"
	"github.com/karllogdat/lexgen/internal/scanner"
	"github.com/karllogdat/lexgen/internal/table"
)

const (
	exitOK = iota
	exitUsage
	exitIOFailure
	exitConstructionFailure
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("lexgen", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	patternsPath := fs.String("patterns", "", "path to a pattern-list file (required)")
	verbose := fs.Bool("v", false, "log construction diagnostics to stderr")
	dumpAST := fs.Bool("dump-ast", false, "print each pattern's parsed AST to stderr before construction")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if *patternsPath == "" || fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: lexgen -patterns <pattern-file> <source-file>")
		return exitUsage
	}
	sourcePath := fs.Arg(0)

	logger := genlog.Noop()
	if *verbose {
		var err error
		logger, err = genlog.New()
		if err != nil {
			fmt.Fprintf(os.Stderr, "lexgen: %v\n", err)
			return exitIOFailure
		}
	}
	defer logger.Sync()

	patternData, err := os.ReadFile(*patternsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lexgen: %v\n", err)
		return exitIOFailure
	}

	patterns, err := patternfile.Parse(*patternsPath, string(patternData))
	if err != nil {
		fmt.Fprintf(os.Stderr, "lexgen: %v\n", err)
		return exitConstructionFailure
	}

	if *dumpAST {
		for _, p := range patterns {
			node, err := regexsyntax.Parse(p.Source)
			if err != nil {
				fmt.Fprintf(os.Stderr, "lexgen: %v\n", err)
				return exitConstructionFailure
			}
			fmt.Fprintf(os.Stderr, "%s (priority %d):\n%s", p.Category, p.Priority, regexsyntax.Dump(node))
		}
	}

	tbl, err := pattern.Generate(patterns, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lexgen: %v\n", err)
		return exitConstructionFailure
	}

	src, err := os.ReadFile(sourcePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lexgen: %v\n", err)
		return exitIOFailure
	}

	stream := scanner.Scan(tbl, src)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for i := 0; i < stream.Len(); i++ {
		tok, _ := stream.Get(i)
		fmt.Fprintf(w, "%s\t%q\t%d\t%d\n", categoryName(tbl, tok.Category), tok.Lexeme, tok.Line, tok.Column)
	}
	w.Flush()

	return exitOK
}

func categoryName(tbl *table.Table, id int32) string {
	if id == scanner.UnknownCategory {
		return "UNKNOWN"
	}
	return tbl.CategoryName(id)
}
