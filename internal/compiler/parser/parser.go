package parser

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/arnavsurve/intrus/internal/compiler/ast"
	"github.com/arnavsurve/intrus/internal/compiler/lexer"
	"github.com/arnavsurve/intrus/internal/compiler/token"
)

type Parser struct {
	l       *lexer.Lexer
	curTok  token.Token
	peekTok token.Token
	errors  []string

	// fatal is the lexer's malformed numeral error. It is captured the moment
	// the bad numeral becomes visible as peekTok; parsing stops there.
	fatal error

	strict     bool
	unifiedEOF bool
	logger     *slog.Logger

	// synced is false between a reported error and the next ';', so strict
	// mode reports a run of stray tokens only once.
	synced bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithStrictStatements reports tokens that cannot start a statement instead
// of dropping them silently.
func WithStrictStatements() Option {
	return func(p *Parser) { p.strict = true }
}

// WithUnifiedEOF makes a return statement cut off by end of input report
// "missing semicolon" the way a let statement does.
func WithUnifiedEOF() Option {
	return func(p *Parser) { p.unifiedEOF = true }
}

// WithLogger traces statement dispatch at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

func NewParser(l *lexer.Lexer, opts ...Option) *Parser {
	p := &Parser{
		l:      l,
		errors: []string{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		synced: true,
	}
	for _, opt := range opts {
		opt(p)
	}

	// Read two tokens, so curTok and peekTok are both set
	p.nextToken()
	p.nextToken()
	return p
}

// --- Token Handling ---
func (p *Parser) nextToken() {
	p.curTok = p.peekTok
	p.peekTok = p.l.NextToken()
	if p.fatal == nil && p.l.Err() != nil {
		p.fatal = p.l.Err()
	}
}

// --- Error Handling ---

// addError records a diagnostic at tok. Nothing is recorded once the parse
// has been halted by a fatal numeral.
func (p *Parser) addError(tok token.Token, format string, args ...any) {
	if p.fatal != nil {
		return
	}
	msg := fmt.Sprintf(format, args...)
	p.errors = append(p.errors, fmt.Sprintf("%d:%d: %s", tok.Pos.Line, tok.Pos.Column, msg))
	p.synced = false
}

// Errors returns the recoverable diagnostics in the order they were found.
func (p *Parser) Errors() []string {
	return p.errors
}

// Fatal returns the malformed numeral error that halted the parse, if any.
// Statements before the numeral are kept; nothing after it is parsed.
func (p *Parser) Fatal() error {
	return p.fatal
}

// --- Program Parsing ---

// ParseProgram parses statements until end of input. It never returns nil;
// failed statements are left out and described in Errors.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{Statements: []ast.Statement{}}

	for p.curTok.Kind != token.EOF && p.fatal == nil {
		// A statement cut off by a fatal numeral comes back nil; one that
		// reached its ';' before the numeral is kept.
		stmt := p.parseStatement()
		if stmt != nil {
			p.logger.Debug("parsed statement",
				"kind", stmt.TokenLiteral(),
				"stmt", stmt.String())
			program.Statements = append(program.Statements, stmt)
		}
		if p.fatal != nil {
			break
		}
		p.nextToken()
	}

	if p.fatal != nil {
		p.logger.Debug("parse halted", "err", p.fatal, "statements", len(program.Statements))
	}
	return program
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.curTok.Kind {
	case token.LET:
		return p.parseLetStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	case token.SEMI:
		p.synced = true
		return nil
	default:
		if p.strict && p.synced {
			p.addError(p.curTok, "unexpected %s %q at start of statement%s",
				p.curTok.GetType(), p.curTok.Literal(), suggestKeyword(p.curTok))
		}
		return nil
	}
}

// parseLetStatement parses `let <ident> = ... ;`. The right-hand side is
// only scanned for the terminating semicolon; Value is left nil.
func (p *Parser) parseLetStatement() ast.Statement {
	letTok := p.curTok

	if !p.expectPeekIdent() {
		p.addError(p.peekTok, "missing identifier")
		return nil
	}

	// The identifier stays current on failure and '=' is not consumed.
	if p.peekTok.Kind != token.ASSIGN {
		p.addError(p.peekTok, "missing assignment")
		return nil
	}

	stmt := &ast.LetStatement{
		Token: letTok,
		Name:  &ast.Identifier{Token: p.curTok, Value: p.curTok.Literal()},
	}

	for p.curTok.Kind != token.SEMI {
		if p.fatal != nil {
			return nil
		}
		if p.peekTok.Kind == token.EOF {
			p.addError(p.peekTok, "missing semicolon")
			return nil
		}
		p.nextToken()
	}
	p.synced = true

	return stmt
}

// parseReturnStatement parses `return ... ;`. End of input also ends the
// statement without a diagnostic unless WithUnifiedEOF is set.
func (p *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{Token: p.curTok}

	for p.curTok.Kind != token.SEMI {
		if p.fatal != nil {
			return nil
		}
		if p.peekTok.Kind == token.EOF {
			if p.unifiedEOF {
				p.addError(p.peekTok, "missing semicolon")
				return nil
			}
			break
		}
		p.nextToken()
	}
	p.synced = true

	return stmt
}

// expectPeekIdent advances and returns true only when the next token is an
// identifier. State is untouched otherwise.
func (p *Parser) expectPeekIdent() bool {
	if p.peekTok.Kind == token.IDENT {
		p.nextToken()
		return true
	}
	return false
}
