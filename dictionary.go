package tweetvec

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// A WordSet is a set of lowercase words such as first names.
type WordSet map[string]struct{}

// NewWordSet builds a set from words, lowercasing each one.
func NewWordSet(words ...string) WordSet {
	set := make(WordSet, len(words))
	for _, w := range words {
		set.Add(w)
	}
	return set
}

func (s WordSet) Add(word string) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word != "" {
		s[word] = struct{}{}
	}
}

// Contains reports whether the lowercase form of word is in the set.
func (s WordSet) Contains(word string) bool {
	_, found := s[strings.ToLower(word)]
	return found
}

// ReadFrom reads one word per line into s.
func (s WordSet) ReadFrom(r io.Reader) (int64, error) {
	var n int64
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		n += int64(len(scanner.Bytes())) + 1
		s.Add(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return n, fmt.Errorf("error reading word set: %w", err)
	}
	return n, nil
}

// A SlangTable maps a lowercase slang term to its replacement tokens.
type SlangTable map[string][]string

// Correction returns the replacement tokens for token, matched
// case-insensitively.
func (t SlangTable) Correction(token string) ([]string, bool) {
	repl, found := t[strings.ToLower(token)]
	return repl, found
}

// Merge adds the entries of other that t does not have yet.
func (t SlangTable) Merge(other SlangTable) {
	for k, v := range other {
		if _, found := t[k]; !found {
			t[k] = v
		}
	}
}

// ReadSlangTable reads "term<delimiter>replacement" lines. The replacement
// is split on spaces into tokens.
func ReadSlangTable(r io.Reader, delimiter string) (SlangTable, error) {
	table := SlangTable{}
	err := readEntries(r, delimiter, 2, func(key, value string) error {
		key = strings.ToLower(key)
		if _, found := table[key]; !found {
			table[key] = strings.Fields(value)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return table, nil
}

// compileDelimiter treats delimiter as a regular expression, the way the
// resource files have always been described.
func compileDelimiter(delimiter string) (*regexp.Regexp, error) {
	if delimiter == "" {
		delimiter = `\t`
	}
	re, err := regexp.Compile(delimiter)
	if err != nil {
		return nil, fmt.Errorf("invalid delimiter %q: %w", delimiter, err)
	}
	return re, nil
}

// readEntries calls fn with the trimmed first and second field of every
// non-blank line, splitting into at most n fields (n < 0 for no limit).
// Lines without a delimiter are skipped.
func readEntries(r io.Reader, delimiter string, n int, fn func(key, value string) error) error {
	delim, err := compileDelimiter(delimiter)
	if err != nil {
		return err
	}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := delim.Split(line, n)
		if len(parts) < 2 {
			continue
		}
		if err := fn(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading entries: %w", err)
	}
	return nil
}
