// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package step

import "strings"

// AttributeValue is a decoder-owned version of Token: it owns its
// strings so a DecodedEntity can outlive the Buffer epoch it was
// decoded from. Lists recurse. A TTypedValue is represented as a
// TList whose first element is a TString holding the type name — this
// is the only way parameter-typed reals (e.g. IfcParameterValue(30))
// survive the decode.
type AttributeValue struct {
	Kind  TokenKind
	Int   int64
	Float float64
	Ref   uint32
	Str   string
	List  []AttributeValue
}

// tokenToAttribute converts a Token borrowed from src into an owned
// AttributeValue.
func tokenToAttribute(tok Token, src []byte) AttributeValue {
	switch tok.Kind {
	case TInteger:
		return AttributeValue{Kind: TInteger, Int: tok.Int}
	case TFloat:
		return AttributeValue{Kind: TFloat, Float: tok.Float}
	case TString:
		return AttributeValue{Kind: TString, Str: unescapeString(src[tok.Raw.Start:tok.Raw.End])}
	case TEnum:
		return AttributeValue{Kind: TEnum, Str: string(src[tok.Raw.Start:tok.Raw.End])}
	case TEntityRef:
		return AttributeValue{Kind: TEntityRef, Ref: tok.Ref}
	case TNull:
		return AttributeValue{Kind: TNull}
	case TDerived:
		return AttributeValue{Kind: TDerived}
	case TList:
		list := make([]AttributeValue, len(tok.List))
		for i, t := range tok.List {
			list[i] = tokenToAttribute(t, src)
		}
		return AttributeValue{Kind: TList, List: list}
	case TTypedValue:
		list := make([]AttributeValue, len(tok.List)+1)
		list[0] = AttributeValue{Kind: TString, Str: string(src[tok.Name.Start:tok.Name.End])}
		for i, t := range tok.List {
			list[i+1] = tokenToAttribute(t, src)
		}
		return AttributeValue{Kind: TList, List: list}
	default:
		return AttributeValue{}
	}
}

// unescapeString converts a raw string literal's content (doubled
// single quotes intact) into its logical value.
func unescapeString(raw []byte) string {
	if !strings.Contains(string(raw), "''") {
		return string(raw)
	}
	return strings.ReplaceAll(string(raw), "''", "'")
}

// IsRef reports whether v holds an entity reference.
func (v AttributeValue) IsRef() bool { return v.Kind == TEntityRef }

// IsNull reports whether v is Null or Derived (the two "no value"
// markers of the grammar).
func (v AttributeValue) IsNull() bool { return v.Kind == TNull || v.Kind == TDerived }

// TypedValueName returns the type name of a parameter-typed real
// (e.g. "IFCPARAMETERVALUE") and whether v is in fact one (a TList
// whose first element is a TString).
func (v AttributeValue) TypedValueName() (string, bool) {
	if v.Kind != TList || len(v.List) == 0 || v.List[0].Kind != TString {
		return "", false
	}
	return v.List[0].Str, true
}
