package tweetvec

import (
	"strings"

	"github.com/dlclark/regexp2"
)

type Tokenizer interface {
	Tokenize(string) []string
}

// TweetTokenizer splits a message into emoticons, URLs, mentions, hashtags,
// numbers, words and single punctuation characters.
type TweetTokenizer struct {
	tokenRE    *regexp2.Regexp
	sanitizer  *strings.Replacer
	entities   *strings.Replacer
	decodeHTML bool
}

type TokenizerOptFunc func(*TweetTokenizer)

// Use the provided sanitizer in place of the emoji table.
func UsingSanitizer(x *strings.Replacer) TokenizerOptFunc {
	return func(tokenizer *TweetTokenizer) {
		tokenizer.sanitizer = x
	}
}

// Use the provided replacer to decode HTML entities.
func UsingEntityDecoder(x *strings.Replacer) TokenizerOptFunc {
	return func(tokenizer *TweetTokenizer) {
		tokenizer.entities = x
	}
}

// WithHTMLDecoding can enable (the default) or disable entity decoding.
func WithHTMLDecoding(include bool) TokenizerOptFunc {
	return func(tokenizer *TweetTokenizer) {
		tokenizer.decodeHTML = include
	}
}

// Constructor for default TweetTokenizer
func NewTweetTokenizer(opts ...TokenizerOptFunc) *TweetTokenizer {
	tok := &TweetTokenizer{
		tokenRE:    tokenRE,
		sanitizer:  emojiSanitizer,
		entities:   htmlSanitizer,
		decodeHTML: true,
	}
	for _, applyOpt := range opts {
		applyOpt(tok)
	}
	return tok
}

// Tokenize splits text into tokens. Every non-whitespace character ends up
// in some token.
func (t *TweetTokenizer) Tokenize(text string) []string {
	text = t.sanitizer.Replace(strings.TrimSpace(text))
	if t.decodeHTML {
		text = decodeEntities(text, t.entities)
	}

	var tokens []string
	m, err := t.tokenRE.FindStringMatch(text)
	for err == nil && m != nil {
		tokens = append(tokens, m.String())
		m, err = t.tokenRE.FindNextMatch(m)
	}
	return tokens
}

// TokenizeAll tokenizes each text in turn.
func (t *TweetTokenizer) TokenizeAll(texts []string) [][]string {
	out := make([][]string, len(texts))
	for i, text := range texts {
		out[i] = t.Tokenize(text)
	}
	return out
}

var defaultTokenizer = NewTweetTokenizer()

// Tokenize splits text using the default TweetTokenizer.
func Tokenize(text string) []string {
	return defaultTokenizer.Tokenize(text)
}
