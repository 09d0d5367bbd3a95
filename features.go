package tweetvec

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// A FeatureGenerator turns a tagged message into features inside its own id
// range.
type FeatureGenerator interface {
	// Size returns the number of feature ids the generator owns.
	Size() int
	// Generate returns the non-zero features of tokens.
	Generate(tokens []TaggedToken) FeatureVector
}

// sentimentSlots is the number of features per sentiment lexicon.
const sentimentSlots = 7

// posBuckets is the number of POS distribution features.
const posBuckets = 8

func put(v FeatureVector, id int, value float64) {
	if value == 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return
	}
	v[id] = value
}

// SentimentGenerator emits, per lexicon, the positive, neutral and negative
// counts, the score sum, the number of scored words and the strongest
// positive and negative scores.
type SentimentGenerator struct {
	scorer *SentimentScorer
	offset int
}

// NewSentimentGenerator places the features of scorer starting at offset.
func NewSentimentGenerator(scorer *SentimentScorer, offset int) *SentimentGenerator {
	return &SentimentGenerator{scorer: scorer, offset: offset}
}

func (g *SentimentGenerator) Size() int {
	return sentimentSlots * g.scorer.LexiconCount()
}

func (g *SentimentGenerator) Generate(tokens []TaggedToken) FeatureVector {
	v := FeatureVector{}
	for idx, r := range g.scorer.SentenceSentiment(tokens) {
		base := g.offset + idx*sentimentSlots
		put(v, base, float64(r.PosCount))
		put(v, base+1, float64(r.NeutralCount))
		put(v, base+2, float64(r.NegCount))
		put(v, base+3, r.Sum)
		put(v, base+4, float64(r.Count))
		if maxPos, ok := r.MaxPos(); ok {
			put(v, base+5, maxPos)
		}
		if maxNeg, ok := r.MaxNeg(); ok {
			put(v, base+6, maxNeg)
		}
	}
	return v
}

// POSGenerator counts nouns, verbs, adjectives, adverbs, interjections,
// punctuation, hashtags and emoticons.
type POSGenerator struct {
	normalize bool
	offset    int
}

// NewPOSGenerator places the eight counts starting at offset. With
// normalize, each count is divided by the number of tokens in the message.
func NewPOSGenerator(normalize bool, offset int) *POSGenerator {
	return &POSGenerator{normalize: normalize, offset: offset}
}

func (g *POSGenerator) Size() int {
	return posBuckets
}

func posBucket(tag string) int {
	switch tag {
	case TagCommonNoun, TagPronoun, TagProperNoun, TagProperPoss:
		return 0
	case TagVerb, TagParticle:
		return 1
	case TagAdjective:
		return 2
	case TagAdverb:
		return 3
	case TagInterjection:
		return 4
	case TagPunctuation:
		return 5
	case TagHashtag:
		return 6
	case TagEmoticon:
		return 7
	}
	return -1
}

// Counts returns the eight bucket counts of tokens, normalized if the
// generator was built with normalize. The divisor includes tokens that fall
// into no bucket.
func (g *POSGenerator) Counts(tokens []TaggedToken) []float64 {
	counts := make([]float64, posBuckets)
	for _, tok := range tokens {
		if b := posBucket(tok.Tag); b >= 0 {
			counts[b]++
		}
	}
	if g.normalize && len(tokens) > 0 {
		floats.Scale(1/float64(len(tokens)), counts)
	}
	return counts
}

func (g *POSGenerator) Generate(tokens []TaggedToken) FeatureVector {
	v := FeatureVector{}
	for i, c := range g.Counts(tokens) {
		put(v, g.offset+i, c)
	}
	return v
}

// TfIdfGenerator emits one feature per vocabulary term.
type TfIdfGenerator struct {
	index  *TermFrequencyIndex
	offset int
}

// NewTfIdfGenerator places the vocabulary of index starting at offset.
func NewTfIdfGenerator(index *TermFrequencyIndex, offset int) *TfIdfGenerator {
	return &TfIdfGenerator{index: index, offset: offset}
}

func (g *TfIdfGenerator) Size() int {
	return g.index.Size()
}

func (g *TfIdfGenerator) Generate(tokens []TaggedToken) FeatureVector {
	v := FeatureVector{}
	for term, w := range g.index.TfIdf(tokens) {
		if id, ok := g.index.TermID(term); ok {
			put(v, g.offset+id, w)
		}
	}
	return v
}

// FeatureVectorAssembler joins the sentiment, POS and TF-IDF features into
// one vector. Ids start at 1: sentiment features come first, then the eight
// POS features, then the vocabulary. This layout is what trained models see,
// so it is fixed.
type FeatureVectorAssembler struct {
	generators []FeatureGenerator
}

// NewFeatureVectorAssembler lays the three generators out back to back.
func NewFeatureVectorAssembler(scorer *SentimentScorer, index *TermFrequencyIndex, normalizePOS bool) *FeatureVectorAssembler {
	sentiment := NewSentimentGenerator(scorer, 1)
	pos := NewPOSGenerator(normalizePOS, 1+sentiment.Size())
	tfidf := NewTfIdfGenerator(index, 1+sentiment.Size()+pos.Size())
	return &FeatureVectorAssembler{generators: []FeatureGenerator{sentiment, pos, tfidf}}
}

// Generators returns the generators in layout order.
func (a *FeatureVectorAssembler) Generators() []FeatureGenerator {
	return append([]FeatureGenerator(nil), a.generators...)
}

// Size returns the dimension of every assembled vector.
func (a *FeatureVectorAssembler) Size() int {
	n := 0
	for _, g := range a.generators {
		n += g.Size()
	}
	return n
}

// Generate returns the union of all generator outputs.
func (a *FeatureVectorAssembler) Generate(tokens []TaggedToken) FeatureVector {
	v := FeatureVector{}
	for _, g := range a.generators {
		for id, w := range g.Generate(tokens) {
			v[id] = w
		}
	}
	return v
}

// GenerateAll assembles a vector for every message in turn.
func (a *FeatureVectorAssembler) GenerateAll(docs [][]TaggedToken) []FeatureVector {
	out := make([]FeatureVector, len(docs))
	for i, doc := range docs {
		out[i] = a.Generate(doc)
	}
	return out
}
