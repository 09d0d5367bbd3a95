package tweetvec

import (
	"strings"
	"testing"
	"unicode"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{"Mixed tweet", "I love #golang :-) http://t.co/abc @bob",
			[]string{"I", "love", "#golang", ":-)", "http://t.co/abc", "@bob"}},
		{"Elongated word stays whole", "so suuuper good", []string{"so", "suuuper", "good"}},
		{"Dotted spelling", "L.O.V.E it", []string{"L.O.V.E", "it"}},
		{"Slash abbreviation", "going w/ you", []string{"going", "w/", "you"}},
		{"Repeated mouth", "yes :-))))", []string{"yes", ":-))))"}},
		{"Ellipsis", "wait...", []string{"wait", "..."}},
		{"Times and money", "at 8:30pm for $3.25", []string{"at", "8:30pm", "for", "$3.25"}},
		{"Trailing punctuation", "great!", []string{"great", "!"}},
		{"Apostrophe", "don't stop", []string{"don't", "stop"}},
		{"Curly apostrophe", "don’t stop", []string{"don't", "stop"}},
		{"HTML entity", "Tom &amp; Jerry", []string{"Tom", "&", "Jerry"}},
		{"Emoji", "fun \U0001F600", []string{"fun", ":D"}},
		{"Whitespace only", "   ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.text)
			if !equalStrings(got, tt.expected) {
				t.Errorf("Tokenize(%q)\nExpected: %q\nGot: %q", tt.text, tt.expected, got)
			}
		})
	}
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func TestTokenizeKeepsEveryCharacter(t *testing.T) {
	texts := []string{
		"RT @user: this is sooo good!!! #winning http://bit.ly/x",
		"call me at 555-123-4567 or bob@example.com",
		"<3 <3 (: ;) ^_^ . . .",
		"6-7pm on 8/11/12, 97.1FM & 1st place",
		"weird ~~ stuff || here \\m/",
	}
	tok := NewTweetTokenizer(WithHTMLDecoding(false))
	for _, text := range texts {
		t.Run(text, func(t *testing.T) {
			tokens := tok.Tokenize(text)
			if got, want := stripSpace(strings.Join(tokens, "")), stripSpace(text); got != want {
				t.Errorf("Characters changed\nExpected: %q\nGot: %q (%q)", want, got, tokens)
			}
		})
	}
}

func TestTokenizeWithoutHTMLDecoding(t *testing.T) {
	tok := NewTweetTokenizer(WithHTMLDecoding(false))
	got := tok.Tokenize("a &amp; b")
	expected := []string{"a", "&", "amp", ";", "b"}
	if !equalStrings(got, expected) {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestTokenizeAll(t *testing.T) {
	got := NewTweetTokenizer().TokenizeAll([]string{"hi there", "", "ok"})
	if len(got) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(got))
	}
	if !equalStrings(got[0], []string{"hi", "there"}) || len(got[1]) != 0 || !equalStrings(got[2], []string{"ok"}) {
		t.Errorf("Unexpected result %q", got)
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		name    string
		pred    func(string) bool
		matches []string
		rejects []string
	}{
		{"IsEmoticon", IsEmoticon, []string{":-)", "(:", ":D", ";)", "<3", ":-))))", "^^"}, []string{"hello", ":", "a)", "(-:"}},
		{"IsURL", IsURL, []string{"http://example.com/a?b=1", "https://t.co/abc", "FTP://files.org"}, []string{"example.com", "http:/x"}},
		{"IsEmail", IsEmail, []string{"bob@example.com", "a.b+c@mail.co.uk"}, []string{"bob@", "@bob"}},
		{"IsPhone", IsPhone, []string{"555-123-4567", "(555) 123-4567", "5551234"}, []string{"12-34"}},
		{"IsMention", IsMention, []string{"@bob", "@bob_99"}, []string{"@b", "bob", "@1bob"}},
		{"IsHashtag", IsHashtag, []string{"#golang", "#go_lang", "#rock-n-roll"}, []string{"#1", "#", "golang"}},
		{"IsNumeric", IsNumeric, []string{"42", "-3.5", "1,000", "+7"}, []string{"abc", "4a", "$3"}},
		{"IsSpecialNumeric", IsSpecialNumeric, []string{"$3.25", "1st", "97.1FM", "8:30pm", "50%"}, []string{"abc", "st"}},
		{"IsSeparatedNumeric", IsSeparatedNumeric, []string{"8/11/12", "6-7pm", "1,2,3"}, []string{"8", "a/b"}},
		{"IsSlashSlang", IsSlashSlang, []string{"w/", "w/o", `\m/`}, []string{"with", "ww/"}},
		{"IsAlternatingLetterDot", IsAlternatingLetterDot, []string{"L.O.V.E", "U.S.", "a.b"}, []string{"hello", "a.", ".a"}},
		{"IsPunctuation", IsPunctuation, []string{"!!!", "?!", ",", "..."}, []string{"a!", "", "1"}},
		{"IsUnderscores", IsUnderscores, []string{"_", "___"}, []string{"_a", ""}},
		{"StartsWithLetter", StartsWithLetter, []string{"abc", "Z9"}, []string{"9z", "#a", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, s := range tt.matches {
				if !tt.pred(s) {
					t.Errorf("%s(%q) = false, expected true", tt.name, s)
				}
			}
			for _, s := range tt.rejects {
				if tt.pred(s) {
					t.Errorf("%s(%q) = true, expected false", tt.name, s)
				}
			}
		})
	}
}
