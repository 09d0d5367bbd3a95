package tweetvec

import (
	"strings"
	"unicode"
)

// A Tagger assigns ARK Twitter part-of-speech tags to tokens. Real taggers
// are statistical models living outside this package.
type Tagger interface {
	Tag(tokens []string) []TaggedToken
}

// ShapeTagger is a rule based stand-in for a trained tagger. It recognizes
// token shapes (emoticons, hashtags, URLs, numbers, punctuation), a short
// list of function words, and asks the lexicon for everything else. It is
// good enough to exercise the feature pipeline, not to replace a model.
type ShapeTagger struct {
	finder POSFinder
}

// NewShapeTagger uses lex for word classes when it can guess categories.
func NewShapeTagger(lex Lexicon) *ShapeTagger {
	t := &ShapeTagger{}
	if f, ok := lex.(POSFinder); ok {
		t.finder = f
	}
	return t
}

var closedClassTags = map[string]string{
	"i": "O", "me": "O", "you": "O", "he": "O", "him": "O", "she": "O",
	"it": "O", "we": "O", "us": "O", "they": "O", "them": "O", "u": "O",
	"a": "D", "an": "D", "the": "D", "this": "D", "that": "D", "these": "D",
	"those": "D", "my": "D", "your": "D", "his": "D", "her": "D", "our": "D",
	"in": "P", "on": "P", "at": "P", "of": "P", "for": "P", "with": "P",
	"to": "P", "from": "P", "by": "P", "about": "P",
	"and": "&", "or": "&", "but": "&", "nor": "&",
	"rt": "~", "via": "~",
	"lol": "!", "omg": "!", "wow": "!", "haha": "!", "oh": "!", "yay": "!",
	"ugh": "!", "hey": "!", "yes": "!", "no": "!", "please": "!",
	"not": "R", "very": "R", "so": "R", "too": "R",
}

func (t *ShapeTagger) tagOf(tok string) string {
	switch {
	case IsEmoticon(tok):
		return TagEmoticon
	case IsHashtag(tok):
		return TagHashtag
	case IsMention(tok):
		return TagMention
	case IsURL(tok), IsEmail(tok):
		return TagURL
	case IsNumeric(tok), IsSpecialNumeric(tok), IsSeparatedNumeric(tok), IsPhone(tok):
		return TagNumeral
	case IsPunctuation(tok):
		return TagPunctuation
	}
	lower := strings.ToLower(tok)
	if tag, ok := closedClassTags[lower]; ok {
		return tag
	}
	if t.finder != nil {
		switch t.finder.FindPOS(lower) {
		case Noun:
			return TagCommonNoun
		case Verb:
			return TagVerb
		case Adjective:
			return TagAdjective
		case Adverb:
			return TagAdverb
		}
	}
	if r := []rune(tok); len(r) > 0 && unicode.IsUpper(r[0]) {
		return TagProperNoun
	}
	if !StartsWithLetter(tok) {
		return TagOther
	}
	return TagCommonNoun
}

// Tag tags every token.
func (t *ShapeTagger) Tag(tokens []string) []TaggedToken {
	out := make([]TaggedToken, len(tokens))
	for i, tok := range tokens {
		out[i] = TaggedToken{Text: tok, Tag: t.tagOf(tok)}
	}
	return out
}
