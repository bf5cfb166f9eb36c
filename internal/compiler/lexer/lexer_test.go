package lexer

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnavsurve/intrus/internal/compiler/token"
)

// expectTokens drains input and compares kinds and payloads, ignoring positions.
func expectTokens(t *testing.T, input string, expected []token.Token) {
	t.Helper()
	l := NewLexer(input)
	for i, want := range expected {
		got := l.NextToken()
		if !got.Equal(want) {
			t.Fatalf("tests[%d] - wrong token. expected=%s, got=%s", i, want, got)
		}
	}
}

func TestNextTokenLet(t *testing.T) {
	expectTokens(t, "let xes = 1;", []token.Token{
		token.New(token.LET),
		token.Ident("xes"),
		token.New(token.ASSIGN),
		token.Int(1),
		token.New(token.SEMI),
		token.New(token.EOF),
	})
}

func TestNextTokenKeepsReturningEOF(t *testing.T) {
	l := NewLexer("let xes = 1;")
	for l.NextToken().Kind != token.EOF {
	}
	for i := 0; i < 5; i++ {
		assert.Equal(t, token.EOF, l.NextToken().Kind)
	}
}

func TestNextTokenFloat(t *testing.T) {
	expectTokens(t, "let yes = 1.0;", []token.Token{
		token.New(token.LET),
		token.Ident("yes"),
		token.New(token.ASSIGN),
		token.Float(1.0),
		token.New(token.SEMI),
		token.New(token.EOF),
	})
}

func TestTwoCharOperators(t *testing.T) {
	tests := []struct {
		input    string
		expected []token.Kind
	}{
		{"!=", []token.Kind{token.UNEQUAL, token.EOF}},
		{"!", []token.Kind{token.NOT, token.EOF}},
		{"==", []token.Kind{token.EQUAL, token.EOF}},
		{"=", []token.Kind{token.ASSIGN, token.EOF}},
		{"! =", []token.Kind{token.NOT, token.ASSIGN, token.EOF}},
		{"===", []token.Kind{token.EQUAL, token.ASSIGN, token.EOF}},
		{"!==", []token.Kind{token.UNEQUAL, token.ASSIGN, token.EOF}},
		{"=!", []token.Kind{token.ASSIGN, token.NOT, token.EOF}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			toks, err := NewLexer(tt.input).Tokens()
			require.NoError(t, err)
			kinds := make([]token.Kind, len(toks))
			for i, tok := range toks {
				kinds[i] = tok.Kind
			}
			assert.Equal(t, tt.expected, kinds)
		})
	}
}

func TestWhitespaceOnlyIsEOF(t *testing.T) {
	for _, input := range []string{"", " ", "\t", "\n\r\n", "   \t  \r\n  "} {
		tok := NewLexer(input).NextToken()
		assert.Equal(t, token.EOF, tok.Kind, "input %q", input)
	}
}

func TestPunctuation(t *testing.T) {
	input := "+-*/%^<>(){}[],;"
	expectTokens(t, input, []token.Token{
		token.New(token.ADD),
		token.New(token.SUBTRACT),
		token.New(token.MULTIPLY),
		token.New(token.DIVIDE),
		token.New(token.MODULO),
		token.New(token.RAISE),
		token.New(token.LTHAN),
		token.New(token.GTHAN),
		token.New(token.LPAREN),
		token.New(token.RPAREN),
		token.New(token.LBRACE),
		token.New(token.RBRACE),
		token.New(token.LBRACK),
		token.New(token.RBRACK),
		token.New(token.COMMA),
		token.New(token.SEMI),
		token.New(token.EOF),
	})
}

func TestKeywordsAndTypes(t *testing.T) {
	input := `fn let while if return true false
f32 single f64 double i8 i16 i32 i64 i128
u8 byte u16 u32 u64 u128 bool u1 bit char Let returns`

	expectTokens(t, input, []token.Token{
		token.New(token.FUNCTION),
		token.New(token.LET),
		token.New(token.WHILE),
		token.New(token.IF),
		token.New(token.RETURN),
		token.Bool(true),
		token.Bool(false),
		token.Type(token.PrimF32),
		token.Type(token.PrimF32),
		token.Type(token.PrimF64),
		token.Type(token.PrimF64),
		token.Type(token.PrimI8),
		token.Type(token.PrimI16),
		token.Type(token.PrimI32),
		token.Type(token.PrimI64),
		token.Type(token.PrimI128),
		token.Type(token.PrimU8),
		token.Type(token.PrimU8),
		token.Type(token.PrimU16),
		token.Type(token.PrimU32),
		token.Type(token.PrimU64),
		token.Type(token.PrimU128),
		token.Type(token.PrimBool),
		token.Type(token.PrimBool),
		token.Type(token.PrimBool),
		token.Type(token.PrimChar),
		token.Ident("Let"),
		token.Ident("returns"),
		token.New(token.EOF),
	})
}

func TestNumeralClassification(t *testing.T) {
	tests := []struct {
		input    string
		expected token.Token
	}{
		{"42", token.Int(42)},
		{"0", token.Int(0)},
		{"18446744073709551615", token.Int(18446744073709551615)},
		{"3.25", token.Float(3.25)},
		{".5", token.Float(0.5)},
		{"7.", token.Float(7)},
		{"1.5e3", token.Float(1500)},
		{"1abc", token.Ident("1abc")},
		{"9lives", token.Ident("9lives")},
		{"1_a", token.New(token.ILLEGAL)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := NewLexer(tt.input)
			tok := l.NextToken()
			if !tok.Equal(tt.expected) {
				t.Fatalf("expected=%s, got=%s", tt.expected, tok)
			}
			assert.Equal(t, token.EOF, l.NextToken().Kind)
			assert.NoError(t, l.Err())
		})
	}
}

func TestWordsArePermissive(t *testing.T) {
	expectTokens(t, "foo_bar x.y _tmp naïve", []token.Token{
		token.Ident("foo_bar"),
		token.Ident("x.y"),
		token.Ident("_tmp"),
		token.Ident("naïve"),
		token.New(token.EOF),
	})
}

func TestIllegalCharacter(t *testing.T) {
	l := NewLexer("let @ = 1;")
	toks, err := l.Tokens()
	require.NoError(t, err)
	require.Len(t, toks, 6)
	assert.Equal(t, token.ILLEGAL, toks[1].Kind)
	assert.Equal(t, "@", toks[1].Text)
	assert.Equal(t, "ILLEGAL", toks[1].Literal())
	assert.Equal(t, token.ASSIGN, toks[2].Kind)
}

func TestMalformedNumeralIsFatal(t *testing.T) {
	tests := []struct {
		input string
		text  string
	}{
		{"let a = 1.2.3; let b = 2;", "1.2.3"},
		{"let a = 1.a;", "1.a"},
		{"let a = 0x1.8p1;", "0x1.8p1"},
		{"let a = 99999999999999999999;", "99999999999999999999"},
		{"let a = .;", "."},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			l := NewLexer(tt.input)
			toks, err := l.Tokens()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedNumeral))

			var numErr *NumeralError
			require.True(t, errors.As(err, &numErr))
			assert.Equal(t, tt.text, numErr.Text)
			assert.Equal(t, token.Pos{Line: 1, Column: 9}, numErr.Pos)

			// let a = <ILLEGAL> EOF: nothing after the numeral is scanned.
			require.Len(t, toks, 5)
			assert.Equal(t, token.ILLEGAL, toks[3].Kind)
			assert.Equal(t, token.EOF, toks[4].Kind)
			assert.Equal(t, token.EOF, l.NextToken().Kind)
		})
	}
}

func TestIntegerOverflowKeepsCause(t *testing.T) {
	_, err := NewLexer("18446744073709551616").Tokens()
	require.Error(t, err)
	assert.True(t, errors.Is(err, strconv.ErrRange))
}

func TestPositions(t *testing.T) {
	input := "let x = 4;\n  return x;"
	toks, err := NewLexer(input).Tokens()
	require.NoError(t, err)

	expected := []token.Pos{
		{Line: 1, Column: 1},  // let
		{Line: 1, Column: 5},  // x
		{Line: 1, Column: 7},  // =
		{Line: 1, Column: 9},  // 4
		{Line: 1, Column: 10}, // ;
		{Line: 2, Column: 3},  // return
		{Line: 2, Column: 10}, // x
		{Line: 2, Column: 11}, // ;
		{Line: 2, Column: 12}, // EOF
	}
	require.Len(t, toks, len(expected))
	for i, pos := range expected {
		assert.Equal(t, pos, toks[i].Pos, "token %d (%s)", i, toks[i])
	}
}

func TestRetokenizingIsIdempotent(t *testing.T) {
	input := "let x = 4;\nlet y = 1.5;\nreturn x != y;"

	first, err := NewLexer(input).Tokens()
	require.NoError(t, err)
	second, err := NewLexer(input).Tokens()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	l := NewLexer(input)
	_, _ = l.Tokens()
	l.Reset()
	third, err := l.Tokens()
	require.NoError(t, err)
	assert.Equal(t, first, third)
}
