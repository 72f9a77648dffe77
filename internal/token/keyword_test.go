package token

import (
	"testing"
)

func TestLookupKeyword_Positive(t *testing.T) {
	cases := map[string]Kind{
		"var":        KwVar,
		"function":   KwFunction,
		"return":     KwReturn,
		"extends":    KwExtends,
		"instanceof": KwInstanceof,
		"typeof":     KwTypeof,
		"of":         KwOf,
		"static":     KwStatic,
		"true":       KwTrue,
		"null":       KwNull,
	}

	for lexeme, want := range cases {
		got, ok := LookupKeyword(lexeme)
		if !ok {
			t.Fatalf("LookupKeyword(%q) = !ok, want %v", lexeme, want)
		}
		if got != want {
			t.Fatalf("LookupKeyword(%q) = %v, want %v", lexeme, got, want)
		}
	}
}

func TestLookupKeyword_Negative(t *testing.T) {
	notKw := []string{
		"Var", "FUNCTION", "let", "const", "print", "self", "undefined", "_", "elif",
	}
	for _, s := range notKw {
		if k, ok := LookupKeyword(s); ok {
			t.Fatalf("LookupKeyword(%q) = %v, want not found", s, k)
		}
	}
}

func TestKeywordTableCoversEveryKeywordKind(t *testing.T) {
	seen := make(map[Kind]bool, len(keywords))
	for _, k := range keywords {
		seen[k] = true
	}
	for k := KwVar; k <= KwStatic; k++ {
		if !seen[k] {
			t.Errorf("keyword kind %v has no spelling in the table", k)
		}
	}
}

func TestLexemeCoversFixedKinds(t *testing.T) {
	for k := Plus; k <= FatArrow; k++ {
		if k.Lexeme() == "" {
			t.Errorf("%v has no lexeme", k)
		}
	}
	for k := KwVar; k <= KwStatic; k++ {
		got, ok := LookupKeyword(k.Lexeme())
		if !ok || got != k {
			t.Errorf("%v.Lexeme() = %q does not round-trip", k, k.Lexeme())
		}
	}
	if Ident.Lexeme() != "" || Number.Lexeme() != "" {
		t.Errorf("variable-text kinds must have no lexeme")
	}
}

func TestLookupPunct(t *testing.T) {
	for k, text := range punctLexemes {
		got, ok := LookupPunct(text)
		if !ok || got != k {
			t.Fatalf("LookupPunct(%q) = %v, %v; want %v", text, got, ok, k)
		}
		if len(text) > MaxPunctLen {
			t.Fatalf("%q is longer than MaxPunctLen", text)
		}
	}
	for _, s := range []string{"&", "|", "=<", "**", "===="} {
		if k, ok := LookupPunct(s); ok {
			t.Fatalf("LookupPunct(%q) = %v, want not found", s, k)
		}
	}
}
