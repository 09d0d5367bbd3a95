package tweetvec

import (
	"log/slog"
	"strings"
)

// A SentimentLexicon is one word list scoring words in [0, 1], where 0 is
// most negative and 1 most positive. Plain lexicons match exact words;
// wildcard lexicons also match "prefix*" keys.
type SentimentLexicon struct {
	Name     string
	exact    map[string]float64
	wildcard *WildcardDictionary[float64]
}

// NewSentimentLexicon wraps a plain word to score map.
func NewSentimentLexicon(name string, scores map[string]float64) *SentimentLexicon {
	return &SentimentLexicon{Name: name, exact: scores}
}

// NewWildcardSentimentLexicon wraps a dictionary with wildcard keys.
func NewWildcardSentimentLexicon(name string, scores *WildcardDictionary[float64]) *SentimentLexicon {
	return &SentimentLexicon{Name: name, wildcard: scores}
}

// Lookup returns the score of word.
func (l *SentimentLexicon) Lookup(word string) (float64, bool) {
	if l.wildcard != nil {
		return l.wildcard.MatchKey(word)
	}
	v, ok := l.exact[word]
	return v, ok
}

// IsWildcard reports whether the lexicon understands wildcard keys.
func (l *SentimentLexicon) IsWildcard() bool {
	return l.wildcard != nil
}

// Len returns the number of entries.
func (l *SentimentLexicon) Len() int {
	if l.wildcard != nil {
		return l.wildcard.Len()
	}
	return len(l.exact)
}

// SentimentScorer looks the words of a tagged sentence up in every
// configured lexicon and aggregates the hits per lexicon.
//
// Lexicons are numbered with the plain ones first, in configuration order,
// followed by the wildcard ones. The numbers decide feature positions, so
// they never change after construction.
type SentimentScorer struct {
	lexicons []*SentimentLexicon
	stemmer  Lexicon
	usePTB   bool
	logger   *slog.Logger
}

type ScorerOptFunc func(*SentimentScorer)

// UsingPTBTags makes the scorer read tags as Penn Treebank tags.
func UsingPTBTags(include bool) ScorerOptFunc {
	return func(s *SentimentScorer) {
		s.usePTB = include
	}
}

// WithScorerLogger sets the logger used to report lookups at debug level.
func WithScorerLogger(l *slog.Logger) ScorerOptFunc {
	return func(s *SentimentScorer) {
		s.logger = l
	}
}

// NewSentimentScorer creates a scorer over lexicons. Unknown words are
// retried with the stems lex proposes; lex may be nil.
func NewSentimentScorer(lexicons []*SentimentLexicon, lex Lexicon, opts ...ScorerOptFunc) *SentimentScorer {
	ordered := make([]*SentimentLexicon, 0, len(lexicons))
	for _, l := range lexicons {
		if !l.IsWildcard() {
			ordered = append(ordered, l)
		}
	}
	for _, l := range lexicons {
		if l.IsWildcard() {
			ordered = append(ordered, l)
		}
	}
	s := &SentimentScorer{
		lexicons: ordered,
		stemmer:  lex,
		logger:   slog.Default(),
	}
	for _, applyOpt := range opts {
		applyOpt(s)
	}
	return s
}

// LexiconCount returns the number of lexicons.
func (s *SentimentScorer) LexiconCount() int {
	return len(s.lexicons)
}

// Lexicons returns the lexicons in index order.
func (s *SentimentScorer) Lexicons() []*SentimentLexicon {
	return append([]*SentimentLexicon(nil), s.lexicons...)
}

// WordSentiments returns the score of word in every lexicon that knows it,
// keyed by lexicon index, or nil when none does.
func (s *SentimentScorer) WordSentiments(word string) map[int]float64 {
	var scores map[int]float64
	for i, l := range s.lexicons {
		if v, ok := l.Lookup(word); ok {
			if scores == nil {
				scores = make(map[int]float64)
			}
			scores[i] = v
		}
	}
	return scores
}

func (s *SentimentScorer) category(tag string) POSCategory {
	if s.usePTB {
		return PTBCategory(tag)
	}
	return ARKCategory(tag)
}

// tokenSentiments scores one tagged token, falling back to its stems.
func (s *SentimentScorer) tokenSentiments(tok TaggedToken) map[int]float64 {
	word := tok.Text
	hashtag := tok.Tag == TagHashtag || tok.Tag == "HT"
	emoticon := tok.Tag == TagEmoticon || tok.Tag == "UH"

	switch {
	case hashtag && len(word) > 1:
		if strings.IndexByte(word, '@') == 1 {
			word = word[2:]
		} else {
			word = word[1:]
		}
	case !emoticon && IsPunctuation(word):
		return nil
	case IsUnderscores(word):
		return nil
	}
	if !emoticon {
		word = strings.ToLower(word)
	}

	scores := s.WordSentiments(word)
	if scores != nil || s.stemmer == nil {
		return scores
	}
	for _, stem := range s.stemmer.FindStems(word, s.category(tok.Tag)) {
		if stem == word {
			continue
		}
		if scores = s.WordSentiments(stem); scores != nil {
			s.logger.Debug("sentiment via stem", slog.String("word", word), slog.String("stem", stem))
			break
		}
	}
	return scores
}

// SentenceSentiment aggregates the scores of every token per lexicon. It
// returns nil when no token scored.
func (s *SentimentScorer) SentenceSentiment(sentence []TaggedToken) map[int]SentimentResult {
	var results map[int]SentimentResult
	for _, tok := range sentence {
		for idx, score := range s.tokenSentiments(tok) {
			if results == nil {
				results = make(map[int]SentimentResult)
			}
			r := results[idx]
			r.Add(score)
			results[idx] = r
		}
	}
	return results
}

// Sentiments scores every sentence in turn.
func (s *SentimentScorer) Sentiments(sentences [][]TaggedToken) []map[int]SentimentResult {
	out := make([]map[int]SentimentResult, len(sentences))
	for i, sent := range sentences {
		out[i] = s.SentenceSentiment(sent)
	}
	return out
}
