package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"minic/internal/lexer"
	"minic/internal/repl"
	"minic/internal/token"
)

func main() {
	jsonMode := flag.Bool("json", false, "emit tokens as JSON")
	flag.Parse()
	os.Exit(run(os.Stdout, os.Stderr, flag.Args(), *jsonMode))
}

func run(out, errOut io.Writer, args []string, asJSON bool) int {
	switch {
	case len(args) == 0 && asJSON:
		fmt.Fprintln(errOut, "-json requires a file")
		return 1
	case len(args) == 0:
		repl.Start(out)
		return 0
	case len(args) > 1:
		fmt.Fprintf(errOut, "usage: %s [-json] <file>  (no arguments starts the REPL)\n", filepath.Base(os.Args[0]))
		return 1
	}

	path := args[0]
	if err := lexFile(out, path, asJSON); err != nil {
		var lexErr *lexer.Error
		if errors.As(err, &lexErr) {
			fmt.Fprintln(errOut, lexErr.Diagnostic().Format(path))
		} else {
			fmt.Fprintln(errOut, "error:", err)
		}
		return 1
	}
	return 0
}

func lexFile(out io.Writer, path string, asJSON bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	toks, err := lexer.New().Tokenize(f)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(toks)
	}
	dumpTokens(out, toks)
	return nil
}

func dumpTokens(out io.Writer, toks []token.Token) {
	for _, tok := range toks {
		fmt.Fprintf(out, "%4d:%-3d  %-10s  %q\n", tok.Line, tok.Col, tok.Type, tok.Literal)
	}
}
