package tweetvec

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	snowballeng "github.com/kljensen/snowball/english"
)

// A Lexicon answers word membership and stemming questions. It stands in for
// a WordNet style dictionary.
type Lexicon interface {
	Contains(word string) bool
	FindStems(word string, pos POSCategory) []string
}

// A POSFinder can guess the most likely category of a word.
type POSFinder interface {
	FindPOS(word string) POSCategory
}

// WordListLexicon is a Lexicon backed by a plain word list. Words sharing a
// Snowball stem are treated as inflections of each other, so FindStems
// returns the listed words a surface form folds onto.
type WordListLexicon struct {
	words   map[string][]POSCategory
	byStem  map[string][]string
	stemmer func(string) string
}

type LexiconOptFunc func(*WordListLexicon)

// UsingStemmer replaces the Snowball English stemmer.
func UsingStemmer(stem func(string) string) LexiconOptFunc {
	return func(lex *WordListLexicon) {
		lex.stemmer = stem
	}
}

func snowballStem(word string) string {
	return snowballeng.Stem(word, false)
}

// NewWordListLexicon builds a lexicon from words. An entry may carry a
// category marker after a '#', e.g. "run#v".
func NewWordListLexicon(words []string, opts ...LexiconOptFunc) *WordListLexicon {
	lex := &WordListLexicon{
		words:   make(map[string][]POSCategory),
		byStem:  make(map[string][]string),
		stemmer: snowballStem,
	}
	for _, applyOpt := range opts {
		applyOpt(lex)
	}
	for _, w := range words {
		lex.add(w)
	}
	for stem := range lex.byStem {
		sort.Strings(lex.byStem[stem])
	}
	return lex
}

// ReadWordListLexicon reads one entry per line. Blank lines and lines
// starting with ';' are ignored.
func ReadWordListLexicon(r io.Reader, opts ...LexiconOptFunc) (*WordListLexicon, error) {
	words, err := readWordList(r)
	if err != nil {
		return nil, err
	}
	return NewWordListLexicon(words, opts...), nil
}

func readWordList(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading word list: %w", err)
	}
	return words, nil
}

func (lex *WordListLexicon) add(entry string) {
	word, marker, _ := strings.Cut(strings.ToLower(strings.TrimSpace(entry)), "#")
	if word == "" {
		return
	}
	pos := ParsePOSMarker(marker)
	known, seen := lex.words[word]
	if !seen {
		stem := lex.stemmer(word)
		lex.byStem[stem] = append(lex.byStem[stem], word)
	}
	for _, p := range known {
		if p == pos {
			return
		}
	}
	lex.words[word] = append(known, pos)
}

// Len returns the number of distinct words.
func (lex *WordListLexicon) Len() int {
	return len(lex.words)
}

// Contains reports whether word, or a listed inflection of it, is known.
func (lex *WordListLexicon) Contains(word string) bool {
	word = strings.ToLower(word)
	if _, ok := lex.words[word]; ok {
		return true
	}
	return len(lex.byStem[lex.stemmer(word)]) > 0
}

func (lex *WordListLexicon) hasPOS(word string, pos POSCategory) bool {
	cats, ok := lex.words[word]
	if !ok {
		return false
	}
	if pos == NoPOS {
		return true
	}
	for _, c := range cats {
		if c == pos || c == NoPOS {
			return true
		}
	}
	return false
}

// FindStems returns the listed base forms of word for pos. The word itself
// comes first when it is listed.
func (lex *WordListLexicon) FindStems(word string, pos POSCategory) []string {
	word = strings.ToLower(word)
	var stems []string
	if lex.hasPOS(word, pos) {
		stems = append(stems, word)
	}
	for _, w := range lex.byStem[lex.stemmer(word)] {
		if w != word && lex.hasPOS(w, pos) {
			stems = append(stems, w)
		}
	}
	return stems
}

// FindPOS returns the first category listed for word or one of its
// inflections.
func (lex *WordListLexicon) FindPOS(word string) POSCategory {
	word = strings.ToLower(word)
	candidates := append([]string{word}, lex.byStem[lex.stemmer(word)]...)
	for _, w := range candidates {
		for _, c := range lex.words[w] {
			if c != NoPOS {
				return c
			}
		}
	}
	return NoPOS
}
