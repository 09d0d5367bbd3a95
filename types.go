package tweetvec

import (
	"sort"
	"strconv"
	"strings"
)

// A TaggedToken is a token paired with the part-of-speech tag a Tagger gave
// it. Tags come from the ARK Twitter tag set.
type TaggedToken struct {
	Text string // The token's content.
	Tag  string // The token's part-of-speech tag.
}

// ARK Twitter part-of-speech tags that the feature generators care about.
const (
	TagCommonNoun   = "N"
	TagPronoun      = "O"
	TagProperNoun   = "^"
	TagNominalPoss  = "S"
	TagProperPoss   = "Z"
	TagVerb         = "V"
	TagAdjective    = "A"
	TagAdverb       = "R"
	TagInterjection = "!"
	TagParticle     = "T"
	TagHashtag      = "#"
	TagMention      = "@"
	TagDiscourse    = "~"
	TagURL          = "U"
	TagEmoticon     = "E"
	TagNumeral      = "$"
	TagPunctuation  = ","
	TagOther        = "G"
)

// A Sentence is a segmented portion of a message.
type Sentence struct {
	Text  string // The sentence's text.
	Start int    // Start position in the original text
	End   int    // End position in the original text
}

// String returns the text content of the sentence
func (s Sentence) String() string {
	return s.Text
}

// A Tweet is one labeled message from a dataset.
type Tweet struct {
	ID    int64
	Text  string
	Score float64 // Sentiment class value as found in the dataset
}

// SentimentClass is the label a classifier assigns to a message.
type SentimentClass int

const (
	Negative SentimentClass = iota
	Neutral
	Positive
)

func (c SentimentClass) String() string {
	switch c {
	case Negative:
		return "negative"
	case Positive:
		return "positive"
	default:
		return "neutral"
	}
}

// A FeatureVector is a sparse vector keyed by global feature id. Zero
// weights are never stored.
type FeatureVector map[int]float64

// IDs returns the vector's feature ids in ascending order.
func (v FeatureVector) IDs() []int {
	ids := make([]int, 0, len(v))
	for id := range v {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// LibSVM renders the vector as space separated "id:value" pairs in
// ascending id order.
func (v FeatureVector) LibSVM() string {
	var sb strings.Builder
	for i, id := range v.IDs() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(id))
		sb.WriteByte(':')
		sb.WriteString(strconv.FormatFloat(v[id], 'g', -1, 64))
	}
	return sb.String()
}
