package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"minic/internal/lexer"
	"minic/internal/token"
)

const (
	prompt      = "minic> "
	historyFile = ".minic_history"
)

// Start runs the interactive lexer: every submitted line is tokenized on
// its own, which matches the scanner's line-boundary flush semantics.
func Start(out io.Writer) {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := historyPath()
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}
	defer func() {
		if histPath == "" {
			return
		}
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	fmt.Fprintln(out, "minic lexer REPL (Ctrl+D to exit)")

	for {
		line, err := ln.Prompt(prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				continue
			}
			fmt.Fprintln(out)
			return
		}

		trim := strings.TrimSpace(line)
		if trim == "" {
			continue
		}
		if trim == "exit" || trim == "quit" {
			return
		}
		ln.AppendHistory(line)

		toks, err := lexer.TokenizeString(line)
		if err != nil {
			fmt.Fprintln(out, "lex error:", err)
			continue
		}
		printTokens(out, toks)
	}
}

func printTokens(out io.Writer, toks []token.Token) {
	for _, tok := range toks {
		fmt.Fprintf(out, "%4d:%-3d  %-10s  %q\n", tok.Line, tok.Col, tok.Type, tok.Literal)
	}
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFile)
}
