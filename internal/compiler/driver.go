package compiler

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/arnavsurve/intrus/internal/compiler/ast"
	"github.com/arnavsurve/intrus/internal/compiler/lexer"
	"github.com/arnavsurve/intrus/internal/compiler/parser"
	"github.com/arnavsurve/intrus/internal/compiler/token"
	"github.com/arnavsurve/intrus/internal/config"
)

// SourceExt is the extension of Intrus source files.
const SourceExt = ".intr"

// Result is a finished parse: the program and its diagnostics.
type Result struct {
	Program *ast.Program
	Errors  []string
}

// OK reports whether the parse produced no diagnostics.
func (r *Result) OK() bool {
	return len(r.Errors) == 0
}

// Lex tokenizes src up to and including EOF. A malformed numeral stops
// lexing and is returned as an error wrapping lexer.ErrMalformedNumeral.
func Lex(src string) ([]token.Token, error) {
	toks, err := lexer.NewLexer(src).Tokens()
	if err != nil {
		return toks, fmt.Errorf("lex halted: %w", err)
	}
	return toks, nil
}

// Parse parses src. Grammar errors are returned in Result.Errors; the error
// return is reserved for a malformed numeral, in which case Result still
// holds the statements parsed before it.
func Parse(src string, opts ...parser.Option) (*Result, error) {
	p := parser.NewParser(lexer.NewLexer(src), opts...)
	prog := p.ParseProgram()

	res := &Result{Program: prog, Errors: p.Errors()}
	if err := p.Fatal(); err != nil {
		return res, fmt.Errorf("parse halted: %w", err)
	}
	return res, nil
}

// ParseFile reads and parses an Intrus source file.
func ParseFile(path string, opts ...parser.Option) (*Result, error) {
	content, err := ReadSource(path)
	if err != nil {
		return nil, err
	}

	res, err := Parse(content, opts...)
	if err != nil {
		return res, fmt.Errorf("%s: %w", path, err)
	}
	return res, nil
}

// Options translates parser settings into parser options.
func Options(cfg config.ParserConfig, logger *slog.Logger) []parser.Option {
	opts := []parser.Option{parser.WithLogger(logger)}
	if cfg.StrictStatements {
		opts = append(opts, parser.WithStrictStatements())
	}
	if cfg.UnifiedEOF {
		opts = append(opts, parser.WithUnifiedEOF())
	}
	return opts
}

func validateExtension(path string) error {
	if filepath.Ext(path) != SourceExt {
		return fmt.Errorf("source must have %s extension: %s", SourceExt, path)
	}
	return nil
}

// ReadSource reads an Intrus source file after checking its extension.
func ReadSource(path string) (string, error) {
	if err := validateExtension(path); err != nil {
		return "", err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read source: %w", err)
	}
	return string(b), nil
}
