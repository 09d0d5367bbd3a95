package tweetvec

import (
	"io"
	"log/slog"
	"math"
	"strings"
)

// fakeLexicon is a map backed Lexicon with hand written stems, so tests do
// not depend on a stemmer's output.
type fakeLexicon struct {
	words map[string]POSCategory
	stems map[string][]string
}

func newFakeLexicon(words ...string) *fakeLexicon {
	f := &fakeLexicon{words: map[string]POSCategory{}, stems: map[string][]string{}}
	for _, w := range words {
		word, marker, _ := strings.Cut(w, "#")
		f.words[word] = ParsePOSMarker(marker)
	}
	return f
}

func (f *fakeLexicon) withStems(word string, stems ...string) *fakeLexicon {
	f.stems[word] = stems
	return f
}

func (f *fakeLexicon) Contains(word string) bool {
	_, ok := f.words[strings.ToLower(word)]
	return ok
}

func (f *fakeLexicon) FindStems(word string, pos POSCategory) []string {
	return f.stems[strings.ToLower(word)]
}

func (f *fakeLexicon) FindPOS(word string) POSCategory {
	return f.words[strings.ToLower(word)]
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
