package tweetvec

import (
	"strings"
	"testing"
)

func trimS(word string) string {
	return strings.TrimSuffix(word, "s")
}

func TestWordListLexicon(t *testing.T) {
	lex := NewWordListLexicon([]string{"cat#n", "run#v", "run#n", "Dog", "cats"}, UsingStemmer(trimS))

	if lex.Len() != 4 {
		t.Errorf("Len() = %d, expected 4", lex.Len())
	}

	t.Run("Contains", func(t *testing.T) {
		for _, w := range []string{"cat", "CAT", "runs", "dogs", "dog"} {
			if !lex.Contains(w) {
				t.Errorf("Expected %q to be known", w)
			}
		}
		if lex.Contains("bird") {
			t.Error("Unexpected bird")
		}
	})

	t.Run("FindStems", func(t *testing.T) {
		tests := []struct {
			word     string
			pos      POSCategory
			expected []string
		}{
			{"runs", Verb, []string{"run"}},
			{"run", Verb, []string{"run"}},
			{"run", Adjective, nil},
			{"dogs", Verb, []string{"dog"}},
			{"cats", NoPOS, []string{"cats", "cat"}},
			{"bird", Noun, nil},
		}
		for _, tt := range tests {
			if got := lex.FindStems(tt.word, tt.pos); !equalStrings(got, tt.expected) {
				t.Errorf("FindStems(%q, %v) = %q, expected %q", tt.word, tt.pos, got, tt.expected)
			}
		}
	})

	t.Run("FindPOS", func(t *testing.T) {
		tests := []struct {
			word     string
			expected POSCategory
		}{
			{"run", Verb},
			{"runs", Verb},
			{"cat", Noun},
			{"dog", NoPOS},
			{"bird", NoPOS},
		}
		for _, tt := range tests {
			if got := lex.FindPOS(tt.word); got != tt.expected {
				t.Errorf("FindPOS(%q) = %v, expected %v", tt.word, got, tt.expected)
			}
		}
	})
}

func TestReadWordListLexicon(t *testing.T) {
	input := "; comment line\nhappy#a\n\n  walk#v  \n"
	lex, err := ReadWordListLexicon(strings.NewReader(input), UsingStemmer(trimS))
	if err != nil {
		t.Fatalf("ReadWordListLexicon: %v", err)
	}
	if lex.Len() != 2 || !lex.Contains("walk") || lex.Contains("; comment line") {
		t.Errorf("Unexpected lexicon contents")
	}
}

func TestWordListLexiconSnowballStems(t *testing.T) {
	lex := NewWordListLexicon([]string{"run"})
	if !lex.Contains("running") {
		t.Error("Expected running to fold onto run")
	}
	if got := lex.FindStems("running", NoPOS); !equalStrings(got, []string{"run"}) {
		t.Errorf("FindStems(running) = %q", got)
	}
}

func TestPOSCategories(t *testing.T) {
	tests := []struct {
		marker string
		ark    string
		ptb    string
		cat    POSCategory
	}{
		{"n", "N", "NNS", Noun},
		{"verb", "V", "VBD", Verb},
		{"a", "A", "JJR", Adjective},
		{"r", "R", "RB", Adverb},
		{"", ",", ".", NoPOS},
	}
	for _, tt := range tests {
		t.Run(tt.cat.String(), func(t *testing.T) {
			if got := ParsePOSMarker(tt.marker); got != tt.cat {
				t.Errorf("ParsePOSMarker(%q) = %v", tt.marker, got)
			}
			if got := ARKCategory(tt.ark); got != tt.cat {
				t.Errorf("ARKCategory(%q) = %v", tt.ark, got)
			}
			if got := PTBCategory(tt.ptb); got != tt.cat {
				t.Errorf("PTBCategory(%q) = %v", tt.ptb, got)
			}
			if got := ParsePOSMarker(tt.cat.Marker()); got != tt.cat {
				t.Errorf("Marker round trip gave %v", got)
			}
		})
	}
}
