package token

import (
	"slices"
	"strconv"
)

type Kind int

const (
	// Special
	ILLEGAL Kind = iota
	EOF

	// Identifiers & primitives
	IDENT // Identifier (e.g. variable name)
	TYPE  // f32, u8, bool, ...

	// Literals
	BOOL // true, false
	INT  // 43
	FLT  // 4.3

	// Operators
	ASSIGN   // =
	ADD      // +
	SUBTRACT // -
	MULTIPLY // *
	DIVIDE   // /
	MODULO   // %
	RAISE    // ^
	NOT      // !
	LTHAN    // <
	GTHAN    // >
	EQUAL    // ==
	UNEQUAL  // !=

	// Delimiters
	COMMA // ,
	SEMI  // ;

	// Brackets
	LPAREN // (
	RPAREN // )
	LBRACE // {
	RBRACE // }
	LBRACK // [
	RBRACK // ]

	// Keywords
	FUNCTION // fn
	LET      // let
	WHILE    // while
	IF       // if
	RETURN   // return
)

var kindNames = [...]string{
	ILLEGAL:  "ILLEGAL",
	EOF:      "EOF",
	IDENT:    "IDENT",
	TYPE:     "TYPE",
	BOOL:     "BOOL",
	INT:      "INT",
	FLT:      "FLT",
	ASSIGN:   "ASSIGN",
	ADD:      "ADD",
	SUBTRACT: "SUBTRACT",
	MULTIPLY: "MULTIPLY",
	DIVIDE:   "DIVIDE",
	MODULO:   "MODULO",
	RAISE:    "RAISE",
	NOT:      "NOT",
	LTHAN:    "LTHAN",
	GTHAN:    "GTHAN",
	EQUAL:    "EQUAL",
	UNEQUAL:  "UNEQUAL",
	COMMA:    "COMMA",
	SEMI:     "SEMI",
	LPAREN:   "LPAREN",
	RPAREN:   "RPAREN",
	LBRACE:   "LBRACE",
	RBRACE:   "RBRACE",
	LBRACK:   "LBRACK",
	RBRACK:   "RBRACK",
	FUNCTION: "FUNCTION",
	LET:      "LET",
	WHILE:    "WHILE",
	IF:       "IF",
	RETURN:   "RETURN",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// fixedLiterals holds the source spelling of every payload-free kind.
var fixedLiterals = map[Kind]string{
	ILLEGAL:  "ILLEGAL",
	EOF:      "EOF",
	ASSIGN:   "=",
	ADD:      "+",
	SUBTRACT: "-",
	MULTIPLY: "*",
	DIVIDE:   "/",
	MODULO:   "%",
	RAISE:    "^",
	NOT:      "!",
	LTHAN:    "<",
	GTHAN:    ">",
	EQUAL:    "==",
	UNEQUAL:  "!=",
	COMMA:    ",",
	SEMI:     ";",
	LPAREN:   "(",
	RPAREN:   ")",
	LBRACE:   "{",
	RBRACE:   "}",
	LBRACK:   "[",
	RBRACK:   "]",
	FUNCTION: "fn",
	LET:      "let",
	WHILE:    "while",
	IF:       "if",
	RETURN:   "return",
}

// Pos is a 1-based source location counted in runes.
type Pos struct {
	Line   int
	Column int
}

func (p Pos) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

// Token is an immutable lexical unit. Only the payload field matching Kind
// is meaningful: Text for IDENT, Prim for TYPE, Bool, Int and Float for the
// literal kinds. ILLEGAL tokens keep the offending source in Text, but it is
// not part of their identity.
type Token struct {
	Kind  Kind
	Text  string
	Prim  Primitive
	Bool  bool
	Int   uint64
	Float float64
	Pos   Pos
}

func New(kind Kind) Token     { return Token{Kind: kind} }
func Ident(name string) Token { return Token{Kind: IDENT, Text: name} }
func Type(p Primitive) Token  { return Token{Kind: TYPE, Prim: p} }
func Bool(v bool) Token       { return Token{Kind: BOOL, Bool: v} }
func Int(v uint64) Token      { return Token{Kind: INT, Int: v} }
func Float(v float64) Token   { return Token{Kind: FLT, Float: v} }

// At returns a copy of t positioned at line:column.
func (t Token) At(line, column int) Token {
	t.Pos = Pos{Line: line, Column: column}
	return t
}

// Literal returns the token as it would be written in source.
func (t Token) Literal() string {
	switch t.Kind {
	case IDENT:
		return t.Text
	case TYPE:
		return t.Prim.Spelling()
	case BOOL:
		return strconv.FormatBool(t.Bool)
	case INT:
		return strconv.FormatUint(t.Int, 10)
	case FLT:
		return strconv.FormatFloat(t.Float, 'f', -1, 64)
	}
	if lit, ok := fixedLiterals[t.Kind]; ok {
		return lit
	}
	return ""
}

// GetType returns the category label used in diagnostics and token echo.
// Type keywords report their primitive instead of a generic TYPE label.
func (t Token) GetType() string {
	switch t.Kind {
	case TYPE:
		return t.Prim.String()
	case BOOL:
		return "BOOLEAN"
	case INT:
		return "INTEGER"
	case FLT:
		return "FLOAT"
	}
	return t.Kind.String()
}

// Equal reports whether two tokens have the same kind and payload.
// Source position is ignored.
func (t Token) Equal(o Token) bool {
	if t.Kind != o.Kind {
		return false
	}
	switch t.Kind {
	case IDENT:
		return t.Text == o.Text
	case TYPE:
		return t.Prim == o.Prim
	case BOOL:
		return t.Bool == o.Bool
	case INT:
		return t.Int == o.Int
	case FLT:
		return t.Float == o.Float
	}
	return true
}

func (t Token) Is(kind Kind) bool { return t.Kind == kind }

func (t Token) String() string {
	switch t.Kind {
	case IDENT, TYPE, BOOL, INT, FLT:
		return t.Kind.String() + "(" + t.Literal() + ")"
	}
	return t.Kind.String()
}

// keywords maps reserved words to their tokens.
var keywords = map[string]Token{
	"fn":     New(FUNCTION),
	"let":    New(LET),
	"while":  New(WHILE),
	"true":   Bool(true),
	"false":  Bool(false),
	"if":     New(IF),
	"return": New(RETURN),
	"f32":    Type(PrimF32),
	"single": Type(PrimF32),
	"f64":    Type(PrimF64),
	"double": Type(PrimF64),
	"i8":     Type(PrimI8),
	"i16":    Type(PrimI16),
	"i32":    Type(PrimI32),
	"i64":    Type(PrimI64),
	"i128":   Type(PrimI128),
	"u8":     Type(PrimU8),
	"byte":   Type(PrimU8),
	"u16":    Type(PrimU16),
	"u32":    Type(PrimU32),
	"u64":    Type(PrimU64),
	"u128":   Type(PrimU128),
	"bool":   Type(PrimBool),
	"u1":     Type(PrimBool),
	"bit":    Type(PrimBool),
	"char":   Type(PrimChar),
}

// LookupWord resolves a word against the keyword table, falling back to an
// identifier. Lookup is case-sensitive.
func LookupWord(word string) Token {
	if tok, ok := keywords[word]; ok {
		return tok
	}
	return Ident(word)
}

// Keywords returns every reserved spelling, aliases included.
func Keywords() []string {
	words := make([]string, 0, len(keywords))
	for w := range keywords {
		words = append(words, w)
	}
	slices.Sort(words)
	return words
}
