// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package step

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLexerPrimitives(t *testing.T) {
	cases := []struct {
		in   string
		kind TokenKind
	}{
		{"123", TInteger},
		{"-42", TInteger},
		{"0.", TFloat},
		{"1.5E+3", TFloat},
		{"-0.5", TFloat},
		{"'a string'", TString},
		{".T.", TEnum},
		{"#12", TEntityRef},
		{"$", TNull},
		{"*", TDerived},
		{"(1,2,3)", TList},
		{"IFCDIRECTION((0.,0.,1.))", TTypedValue},
	}
	for _, c := range cases {
		lex := NewLexer([]byte(c.in), 0)
		tok, err := lex.Next()
		require.NoError(t, err, c.in)
		require.Equal(t, c.kind, tok.Kind, c.in)
	}
}

func TestFloatZeroDot(t *testing.T) {
	lex := NewLexer([]byte("0."), 0)
	tok, err := lex.Next()
	require.NoError(t, err)
	require.Equal(t, TFloat, tok.Kind)
	require.Equal(t, 0.0, tok.Float)
}

func TestStringEscapedQuote(t *testing.T) {
	lex := NewLexer([]byte("'it''s'"), 0)
	tok, err := lex.Next()
	require.NoError(t, err)
	require.Equal(t, TString, tok.Kind)
	attr := tokenToAttribute(tok, []byte("'it''s'"))
	require.Equal(t, "it's", attr.Str)
}

func TestArgListNested(t *testing.T) {
	lex := NewLexer([]byte("(#1,(1.,2.,3.),$,.T.)"), 0)
	tok, err := lex.Next()
	require.NoError(t, err)
	require.Equal(t, TList, tok.Kind)
	require.Len(t, tok.List, 4)
	require.Equal(t, TEntityRef, tok.List[0].Kind)
	require.Equal(t, TList, tok.List[1].Kind)
	require.Equal(t, TNull, tok.List[2].Kind)
	require.Equal(t, TEnum, tok.List[3].Kind)
}

func TestTypedValue(t *testing.T) {
	src := "IFCPARAMETERVALUE(30.)"
	lex := NewLexer([]byte(src), 0)
	tok, err := lex.Next()
	require.NoError(t, err)
	require.Equal(t, TTypedValue, tok.Kind)
	attr := tokenToAttribute(tok, []byte(src))
	name, ok := attr.TypedValueName()
	require.True(t, ok)
	require.Equal(t, "IFCPARAMETERVALUE", name)
	require.Len(t, attr.List, 2)
	require.Equal(t, TFloat, attr.List[1].Kind)
}
