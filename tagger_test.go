package tweetvec

import "testing"

func TestShapeTagger(t *testing.T) {
	tagger := NewShapeTagger(newFakeLexicon("run#v", "happy#a", "quickly#r", "table#n"))
	tests := []struct {
		token    string
		expected string
	}{
		{":)", TagEmoticon},
		{"#fun", TagHashtag},
		{"@bob", TagMention},
		{"http://t.co/x", TagURL},
		{"bob@example.com", TagURL},
		{"42", TagNumeral},
		{"$3.25", TagNumeral},
		{"!", TagPunctuation},
		{"the", "D"},
		{"and", "&"},
		{"RT", TagDiscourse},
		{"lol", TagInterjection},
		{"run", TagVerb},
		{"Happy", TagAdjective},
		{"quickly", TagAdverb},
		{"table", TagCommonNoun},
		{"Paris", TagProperNoun},
		{"dog", TagCommonNoun},
		{"123abc", TagOther},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got := tagger.Tag([]string{tt.token})
			if len(got) != 1 || got[0].Text != tt.token || got[0].Tag != tt.expected {
				t.Errorf("Tag(%q) = %v, expected %q", tt.token, got, tt.expected)
			}
		})
	}
}

type plainLexicon struct{}

func (plainLexicon) Contains(string) bool { return false }
func (plainLexicon) FindStems(string, POSCategory) []string { return nil }

func TestShapeTaggerWithoutPOSFinder(t *testing.T) {
	tagger := NewShapeTagger(plainLexicon{})
	got := tagger.Tag([]string{"run", "Run"})
	if got[0].Tag != TagCommonNoun || got[1].Tag != TagProperNoun {
		t.Errorf("Unexpected tags %v", got)
	}
}
