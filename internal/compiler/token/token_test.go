package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLiteral(t *testing.T) {
	tests := []struct {
		tok      Token
		expected string
	}{
		{New(ILLEGAL), "ILLEGAL"},
		{New(EOF), "EOF"},
		{Ident("foobar"), "foobar"},
		{Type(PrimU8), "u8"},
		{Type(PrimBool), "bool"},
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Int(42), "42"},
		{Float(1.0), "1"},
		{Float(2.5), "2.5"},
		{New(ASSIGN), "="},
		{New(EQUAL), "=="},
		{New(UNEQUAL), "!="},
		{New(RAISE), "^"},
		{New(SEMI), ";"},
		{New(LBRACK), "["},
		{New(FUNCTION), "fn"},
		{New(RETURN), "return"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.tok.Literal(), "literal of %s", tt.tok)
	}
}

func TestGetType(t *testing.T) {
	tests := []struct {
		tok      Token
		expected string
	}{
		{New(ILLEGAL), "ILLEGAL"},
		{New(EOF), "EOF"},
		{Ident("x"), "IDENT"},
		{Type(PrimF64), "F64"},
		{Type(PrimI128), "I128"},
		{Bool(false), "BOOLEAN"},
		{Int(1), "INTEGER"},
		{Float(1), "FLOAT"},
		{New(SUBTRACT), "SUBTRACT"},
		{New(UNEQUAL), "UNEQUAL"},
		{New(FUNCTION), "FUNCTION"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.tok.GetType(), "type of %s", tt.tok)
	}
}

func TestEqualIgnoresPosition(t *testing.T) {
	assert.True(t, Int(4).At(1, 9).Equal(Int(4)))
	assert.False(t, Int(4).Equal(Int(5)))
	assert.False(t, Int(4).Equal(Float(4)))
	assert.True(t, Ident("x").Equal(Ident("x").At(3, 3)))
	assert.False(t, Ident("x").Equal(Ident("y")))
	assert.True(t, New(SEMI).Equal(New(SEMI).At(2, 1)))
	assert.True(t, Token{Kind: ILLEGAL, Text: "@"}.Equal(New(ILLEGAL)))
}

func TestLookupWord(t *testing.T) {
	assert.Equal(t, Type(PrimF32), LookupWord("single"))
	assert.Equal(t, Type(PrimU8), LookupWord("byte"))
	assert.Equal(t, Type(PrimBool), LookupWord("bit"))
	assert.Equal(t, Type(PrimBool), LookupWord("u1"))
	assert.Equal(t, New(LET), LookupWord("let"))
	assert.Equal(t, Bool(true), LookupWord("true"))
	assert.Equal(t, Ident("LET"), LookupWord("LET"))
	assert.Contains(t, Keywords(), "double")
}
