package matching

import (
	"reflect"
	"testing"
)

func TestTokenize_Basic(t *testing.T) {
	got := Tokenize("Senior Python Developer (Remote)")
	want := []string{"senior", "python", "developer", "remote"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestTokenize_StopwordsAndShortTokens(t *testing.T) {
	got := Tokenize("We are looking for a go developer to join our team in NYC")
	for _, tok := range got {
		switch tok {
		case "we", "are", "for", "to", "our", "in", "a", "go":
			t.Fatalf("token %q should have been dropped, got %v", tok, got)
		}
	}
	want := []string{"looking", "developer", "join", "team", "nyc"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestTokenize_StripsPunctuationAndCollapsesWhitespace(t *testing.T) {
	got := Tokenize("C++/Rust,   systems-programming!!")
	want := []string{"rust", "systems", "programming"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestTokenize_Empty(t *testing.T) {
	if got := Tokenize(""); len(got) != 0 {
		t.Fatalf("empty input produced tokens: %v", got)
	}
	if got := Tokenize("  \t\n "); len(got) != 0 {
		t.Fatalf("whitespace input produced tokens: %v", got)
	}
}
