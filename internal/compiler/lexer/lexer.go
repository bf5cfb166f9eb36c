package lexer

import (
	"errors"
	"strconv"
	"strings"
	"unicode"

	"github.com/arnavsurve/intrus/internal/compiler/token"
)

// eof marks the position past the last rune.
const eof rune = -1

type Lexer struct {
	input        []rune
	position     int  // current rune index
	readPosition int  // next rune index, always position+1
	ch           rune // current rune, eof past the end

	line   int // line of ch (1-indexed)
	column int // column of ch (1-indexed)

	err error // fatal error; once set only EOF is produced
}

func NewLexer(input string) *Lexer {
	l := &Lexer{input: []rune(input)}
	l.Reset()
	return l
}

// Reset rewinds the lexer to the start of its input and clears any fatal
// error, so the same source can be scanned again.
func (l *Lexer) Reset() {
	l.position = 0
	l.readPosition = 0
	l.line = 1
	l.column = 0 // readChar moves this to 1
	l.ch = 0
	l.err = nil
	l.readChar()
}

// Err returns the fatal error that stopped the lexer, if any.
func (l *Lexer) Err() error {
	return l.err
}

// readChar advances to the next rune and keeps line/column in step with it.
func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}

	if l.readPosition >= len(l.input) {
		l.ch = eof
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
}

// Returns the next rune without consuming it
func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return eof
	}
	return l.input[l.readPosition]
}

// singles maps one-rune operators, delimiters and brackets to their kinds.
var singles = map[rune]token.Kind{
	'+': token.ADD,
	'-': token.SUBTRACT,
	'*': token.MULTIPLY,
	'/': token.DIVIDE,
	'%': token.MODULO,
	'^': token.RAISE,
	'<': token.LTHAN,
	'>': token.GTHAN,
	'(': token.LPAREN,
	')': token.RPAREN,
	'{': token.LBRACE,
	'}': token.RBRACE,
	'[': token.LBRACK,
	']': token.RBRACK,
	',': token.COMMA,
	';': token.SEMI,
}

// NextToken scans and returns the next token. After the end of input, or
// after a fatal numeral, every call returns EOF.
func (l *Lexer) NextToken() token.Token {
	if l.err != nil {
		return token.New(token.EOF).At(l.line, l.column)
	}

	l.skipWhitespace()

	startLine := l.line
	startCol := l.column

	var tok token.Token

	switch l.ch {
	case '=':
		tok = l.twoChar('=', token.EQUAL, token.ASSIGN)
	case '!':
		tok = l.twoChar('=', token.UNEQUAL, token.NOT)
	case eof:
		// Do NOT call l.readChar() here
		return token.New(token.EOF).At(startLine, startCol)
	default:
		if kind, ok := singles[l.ch]; ok {
			tok = token.New(kind)
			break
		}
		if isNumberStart(l.ch) {
			return l.readNumber(startLine, startCol)
		}
		if isWordStart(l.ch) {
			return token.LookupWord(l.readWord()).At(startLine, startCol)
		}
		tok = token.Token{Kind: token.ILLEGAL, Text: string(l.ch)}
	}

	l.readChar()
	return tok.At(startLine, startCol)
}

// twoChar consumes the peeked rune and returns matched when it equals next,
// otherwise returns single and leaves the peeked rune alone.
func (l *Lexer) twoChar(next rune, matched, single token.Kind) token.Token {
	if l.peekChar() == next {
		l.readChar()
		return token.New(matched)
	}
	return token.New(single)
}

// Tokens drains the lexer, returning every token up to and including EOF.
// The error is the fatal numeral error that cut the input short, if any.
func (l *Lexer) Tokens() ([]token.Token, error) {
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks, l.err
		}
	}
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\n' || l.ch == '\t' || l.ch == '\r' {
		l.readChar()
	}
}

// readWord consumes a maximal run of word runes and leaves the lexer on the
// first rune after it.
func (l *Lexer) readWord() string {
	start := l.position
	for isWordChar(l.ch) {
		l.readChar()
	}
	return string(l.input[start:l.position])
}

// readNumber classifies a word that starts with a digit or a dot: a float if
// it contains a dot, an unsigned integer if it is all digits, an identifier
// if it is otherwise alphanumeric, ILLEGAL for anything else. A float or
// integer that fails to convert is fatal.
func (l *Lexer) readNumber(startLine, startCol int) token.Token {
	text := l.readWord()

	switch {
	case strings.ContainsRune(text, '.'):
		v, err := parseFloat(text)
		if err != nil {
			return l.fail(text, startLine, startCol, err)
		}
		return token.Float(v).At(startLine, startCol)
	case allRunes(text, unicode.IsNumber):
		v, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return l.fail(text, startLine, startCol, err)
		}
		return token.Int(v).At(startLine, startCol)
	case allRunes(text, isAlphanumeric):
		return token.Ident(text).At(startLine, startCol)
	default:
		return token.Token{Kind: token.ILLEGAL, Text: text}.At(startLine, startCol)
	}
}

// fail records a fatal numeral error and returns the ILLEGAL token for it.
func (l *Lexer) fail(text string, line, col int, cause error) token.Token {
	pos := token.Pos{Line: line, Column: col}
	l.err = &NumeralError{Text: text, Pos: pos, Err: cause}
	return token.Token{Kind: token.ILLEGAL, Text: text, Pos: pos}
}

var errFloatSyntax = errors.New("invalid float syntax")

// parseFloat accepts decimal floats only: digits, one or more dots and an
// optional exponent marker. strconv would also take hex mantissas and
// underscores, which are not Intrus syntax.
func parseFloat(text string) (float64, error) {
	for _, r := range text {
		if !('0' <= r && r <= '9') && r != '.' && r != 'e' && r != 'E' {
			return 0, errFloatSyntax
		}
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	return v, nil
}

func allRunes(s string, pred func(rune) bool) bool {
	for _, r := range s {
		if !pred(r) {
			return false
		}
	}
	return true
}

func isNumberStart(ch rune) bool {
	return ('0' <= ch && ch <= '9') || ch == '.'
}

func isWordStart(ch rune) bool {
	return isAlphanumeric(ch) || ch == '_'
}

func isWordChar(ch rune) bool {
	return isAlphanumeric(ch) || ch == '_' || ch == '.'
}

func isAlphanumeric(ch rune) bool {
	return unicode.IsLetter(ch) || unicode.IsNumber(ch)
}
