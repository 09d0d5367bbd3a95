package tweetvec

import (
	"fmt"
	"strings"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// A Segmenter splits a message into sentences.
type Segmenter interface {
	Segment(text string) []Sentence
}

// PunktSegmenter segments English text with the Punkt sentence tokenizer.
type PunktSegmenter struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

// NewPunktSegmenter loads the bundled English Punkt model.
func NewPunktSegmenter() (*PunktSegmenter, error) {
	tok, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("error loading sentence tokenizer: %w", err)
	}
	return &PunktSegmenter{tokenizer: tok}, nil
}

// Segment returns the non-blank sentences of text with their offsets.
func (p *PunktSegmenter) Segment(text string) []Sentence {
	var out []Sentence
	for _, s := range p.tokenizer.Tokenize(text) {
		if strings.TrimSpace(s.Text) == "" {
			continue
		}
		out = append(out, Sentence{Text: strings.TrimSpace(s.Text), Start: s.Start, End: s.End})
	}
	return out
}

// wholeText treats the entire message as one sentence.
type wholeText struct{}

func (wholeText) Segment(text string) []Sentence {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return []Sentence{{Text: text, Start: 0, End: len(text)}}
}
