package tweetvec

import (
	"strings"

	"github.com/bbalet/stopwords"
)

// StopWords decides which words the vocabulary ignores. It always knows the
// English defaults plus any configured extras, and can additionally consult
// the stop word lists of github.com/bbalet/stopwords for a language.
type StopWords struct {
	words    WordSet
	langCode string
}

// NewStopWords returns the English defaults plus extra.
func NewStopWords(extra ...string) *StopWords {
	sw := &StopWords{words: NewWordSet(englishStopWords...)}
	for _, w := range extra {
		sw.words.Add(w)
	}
	return sw
}

// UsingLanguage makes IsStopWord also consult the stop word list for the
// ISO 639-1 langCode ("en", "fr", ...). An empty code turns the probe off.
func (sw *StopWords) UsingLanguage(langCode string) *StopWords {
	sw.langCode = langCode
	return sw
}

// Add registers more stop words.
func (sw *StopWords) Add(words ...string) {
	for _, w := range words {
		sw.words.Add(w)
	}
}

// Words exposes the underlying set, mostly for loaders.
func (sw *StopWords) Words() WordSet {
	return sw.words
}

// IsStopWord reports whether word should be ignored.
func (sw *StopWords) IsStopWord(word string) bool {
	if sw.words.Contains(word) {
		return true
	}
	if sw.langCode == "" {
		return false
	}
	// The library only exposes a cleaning function, so a word counts as a
	// stop word when cleaning removes it.
	cleaned := stopwords.CleanString(strings.ToLower(word), sw.langCode, false)
	return strings.TrimSpace(cleaned) == ""
}

var englishStopWords = []string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you",
	"your", "yours", "yourself", "yourselves", "he", "him", "his", "himself",
	"she", "her", "hers", "herself", "it", "its", "itself", "they", "them",
	"their", "theirs", "themselves", "what", "which", "who", "whom", "this",
	"that", "these", "those", "am", "is", "are", "was", "were", "be", "been",
	"being", "have", "has", "had", "having", "do", "does", "did", "doing",
	"a", "an", "the", "and", "but", "if", "or", "because", "as", "until",
	"while", "of", "at", "by", "for", "with", "about", "against", "between",
	"into", "through", "during", "before", "after", "above", "below", "to",
	"from", "up", "down", "in", "out", "on", "off", "over", "under", "again",
	"further", "then", "once", "here", "there", "when", "where", "why", "how",
	"all", "any", "both", "each", "few", "more", "most", "other", "some",
	"such", "no", "nor", "not", "only", "own", "same", "so", "than", "too",
	"very", "s", "t", "can", "will", "just", "don", "should", "now",
}
