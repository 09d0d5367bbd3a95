package tweetvec

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/RoaringBitmap/roaring"
	"gonum.org/v1/gonum/floats"
)

// TfType selects how raw term counts are turned into term frequencies.
type TfType int

const (
	RawTF  TfType = iota // count
	LogTF                // 1 + ln(count)
	BoolTF               // 1 if present
)

// ParseTfType accepts "raw", "log" or "bool" in any case.
func ParseTfType(s string) (TfType, error) {
	switch strings.ToLower(s) {
	case "", "raw":
		return RawTF, nil
	case "log":
		return LogTF, nil
	case "bool":
		return BoolTF, nil
	}
	return RawTF, fmt.Errorf("unknown tf type %q", s)
}

// Normalization selects how a TF-IDF vector is scaled.
type Normalization int

const (
	NoNormalization Normalization = iota
	CosineNormalization
)

// ParseNormalization accepts "none" or "cos" in any case.
func ParseNormalization(s string) (Normalization, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return NoNormalization, nil
	case "cos", "cosine":
		return CosineNormalization, nil
	}
	return NoNormalization, fmt.Errorf("unknown tf-idf normalization %q", s)
}

// Tags whose tokens never become terms: punctuation, numerals, foreign or
// garbage tokens, mentions, discourse markers and URLs.
var ignoredTermTags = map[string]bool{
	TagPunctuation: true,
	TagNumeral:     true,
	TagOther:       true,
	TagMention:     true,
	TagDiscourse:   true,
	TagURL:         true,
}

// TermFrequencyIndex holds the vocabulary and inverse document frequencies
// of a training corpus. It is immutable once built.
type TermFrequencyIndex struct {
	tfType        TfType
	normalization Normalization
	usePOS        bool
	lexicon       Lexicon
	stopWords     *StopWords
	logger        *slog.Logger

	docCount  int
	terms     []string
	termIDs   map[string]int
	idf       map[string]float64
	postings  map[string]*roaring.Bitmap
	termFreqs []map[string]float64
}

type IndexOptFunc func(*TermFrequencyIndex)

// WithTfType sets the term frequency variant.
func WithTfType(t TfType) IndexOptFunc {
	return func(idx *TermFrequencyIndex) {
		idx.tfType = t
	}
}

// WithNormalization sets the vector normalization.
func WithNormalization(n Normalization) IndexOptFunc {
	return func(idx *TermFrequencyIndex) {
		idx.normalization = n
	}
}

// WithPOSTerms can enable or disable (the default) "word#pos" terms.
func WithPOSTerms(include bool) IndexOptFunc {
	return func(idx *TermFrequencyIndex) {
		idx.usePOS = include
	}
}

// UsingStopWords sets the stop words that never become terms.
func UsingStopWords(sw *StopWords) IndexOptFunc {
	return func(idx *TermFrequencyIndex) {
		idx.stopWords = sw
	}
}

// UsingTermLexicon sets the lexicon used to reduce words to their stems.
func UsingTermLexicon(lex Lexicon) IndexOptFunc {
	return func(idx *TermFrequencyIndex) {
		idx.lexicon = lex
	}
}

// WithIndexLogger sets the logger for build progress.
func WithIndexLogger(l *slog.Logger) IndexOptFunc {
	return func(idx *TermFrequencyIndex) {
		idx.logger = l
	}
}

// BuildTermFrequencyIndex computes the vocabulary of docs. Term ids follow
// the order in which terms first appear in the corpus.
func BuildTermFrequencyIndex(docs [][]TaggedToken, opts ...IndexOptFunc) *TermFrequencyIndex {
	idx := &TermFrequencyIndex{
		stopWords: NewStopWords(),
		logger:    slog.Default(),
		termIDs:   make(map[string]int),
		idf:       make(map[string]float64),
		postings:  make(map[string]*roaring.Bitmap),
	}
	for _, applyOpt := range opts {
		applyOpt(idx)
	}

	idx.docCount = len(docs)
	idx.termFreqs = make([]map[string]float64, len(docs))
	for docID, doc := range docs {
		order, tf := idx.termFrequencies(doc)
		idx.termFreqs[docID] = tf
		for _, term := range order {
			bm, ok := idx.postings[term]
			if !ok {
				bm = roaring.New()
				idx.postings[term] = bm
				idx.termIDs[term] = len(idx.terms)
				idx.terms = append(idx.terms, term)
			}
			bm.Add(uint32(docID))
		}
	}

	n := float64(idx.docCount)
	for term, bm := range idx.postings {
		idx.idf[term] = math.Log(n/float64(bm.GetCardinality())) + 1
	}

	idx.logger.Info("built tf-idf vocabulary",
		slog.Int("documents", idx.docCount),
		slog.Int("terms", len(idx.terms)))
	return idx
}

// Terms turns a tagged document into its ordered term sequence.
func (idx *TermFrequencyIndex) Terms(doc []TaggedToken) []string {
	var terms []string
	for _, tok := range doc {
		word := strings.ToLower(tok.Text)
		if ignoredTermTags[tok.Tag] || (idx.stopWords != nil && idx.stopWords.IsStopWord(word)) {
			continue
		}
		if tok.Tag == TagHashtag {
			word = strings.TrimPrefix(word, "#")
		}
		if !StartsWithLetter(word) {
			continue
		}
		pos := ARKCategory(tok.Tag)
		if idx.lexicon != nil {
			if stems := idx.lexicon.FindStems(word, pos); len(stems) > 0 {
				word = stems[0]
			}
		}
		if idx.usePOS && pos != NoPOS {
			word += "#" + pos.Marker()
		}
		terms = append(terms, word)
	}
	return terms
}

// termFrequencies returns the distinct terms of doc in first-seen order
// together with their normalized frequencies.
func (idx *TermFrequencyIndex) termFrequencies(doc []TaggedToken) ([]string, map[string]float64) {
	var order []string
	tf := make(map[string]float64)
	for _, term := range idx.Terms(doc) {
		if _, seen := tf[term]; !seen {
			order = append(order, term)
		}
		tf[term]++
	}
	switch idx.tfType {
	case LogTF:
		for term, count := range tf {
			tf[term] = 1 + math.Log(count)
		}
	case BoolTF:
		for term := range tf {
			tf[term] = 1
		}
	}
	return order, tf
}

// TfIdf weighs doc against the vocabulary. Terms outside the vocabulary are
// dropped; the vocabulary itself never changes.
func (idx *TermFrequencyIndex) TfIdf(doc []TaggedToken) map[string]float64 {
	order, tf := idx.termFrequencies(doc)
	weights := make(map[string]float64, len(order))
	known := make([]string, 0, len(order))
	values := make([]float64, 0, len(order))
	for _, term := range order {
		idf, ok := idx.idf[term]
		if !ok {
			continue
		}
		known = append(known, term)
		values = append(values, tf[term]*idf)
	}
	if idx.normalization == CosineNormalization && len(values) > 0 {
		if norm := floats.Norm(values, 2); norm != 0 {
			floats.Scale(1/norm, values)
		}
	}
	for i, term := range known {
		weights[term] = values[i]
	}
	return weights
}

// Size returns the vocabulary size.
func (idx *TermFrequencyIndex) Size() int {
	return len(idx.terms)
}

// DocumentCount returns the number of training documents.
func (idx *TermFrequencyIndex) DocumentCount() int {
	return idx.docCount
}

// TermID returns the id of term.
func (idx *TermFrequencyIndex) TermID(term string) (int, bool) {
	id, ok := idx.termIDs[term]
	return id, ok
}

// IDF returns the inverse document frequency of term.
func (idx *TermFrequencyIndex) IDF(term string) (float64, bool) {
	v, ok := idx.idf[term]
	return v, ok
}

// DocumentFrequency returns how many training documents contain term.
func (idx *TermFrequencyIndex) DocumentFrequency(term string) int {
	if bm, ok := idx.postings[term]; ok {
		return int(bm.GetCardinality())
	}
	return 0
}

// DocumentsWith returns the training document positions containing term.
func (idx *TermFrequencyIndex) DocumentsWith(term string) []uint32 {
	if bm, ok := idx.postings[term]; ok {
		return bm.ToArray()
	}
	return nil
}

// Vocabulary returns the terms in id order.
func (idx *TermFrequencyIndex) Vocabulary() []string {
	return append([]string(nil), idx.terms...)
}

// TermFrequencies returns the normalized term frequencies of training
// document i.
func (idx *TermFrequencyIndex) TermFrequencies(i int) map[string]float64 {
	if i < 0 || i >= len(idx.termFreqs) {
		return nil
	}
	return idx.termFreqs[i]
}
