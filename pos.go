package tweetvec

import "strings"

// POSCategory is the coarse word class used for stemming and by the
// POS-aware vocabulary.
type POSCategory int

const (
	NoPOS POSCategory = iota
	Noun
	Verb
	Adjective
	Adverb
)

// Marker returns the single letter suffix for c ("n", "v", "a", "r"), or
// "" for NoPOS.
func (c POSCategory) Marker() string {
	switch c {
	case Noun:
		return "n"
	case Verb:
		return "v"
	case Adjective:
		return "a"
	case Adverb:
		return "r"
	}
	return ""
}

func (c POSCategory) String() string {
	switch c {
	case Noun:
		return "noun"
	case Verb:
		return "verb"
	case Adjective:
		return "adjective"
	case Adverb:
		return "adverb"
	}
	return "none"
}

// ParsePOSMarker converts a marker such as "n" or "verb" back into a
// category by its first letter.
func ParsePOSMarker(s string) POSCategory {
	if s == "" {
		return NoPOS
	}
	switch s[0] {
	case 'n':
		return Noun
	case 'v':
		return Verb
	case 'a':
		return Adjective
	case 'r':
		return Adverb
	}
	return NoPOS
}

// ARKCategory maps an ARK Twitter tag onto a category.
func ARKCategory(tag string) POSCategory {
	switch tag {
	case TagCommonNoun, TagPronoun, TagProperNoun, TagNominalPoss, TagProperPoss:
		return Noun
	case TagVerb:
		return Verb
	case TagAdjective:
		return Adjective
	case TagAdverb:
		return Adverb
	}
	return NoPOS
}

// PTBCategory maps a Penn Treebank tag onto a category.
func PTBCategory(tag string) POSCategory {
	switch {
	case strings.HasPrefix(tag, "NN"):
		return Noun
	case strings.HasPrefix(tag, "VB"):
		return Verb
	case strings.HasPrefix(tag, "JJ"):
		return Adjective
	case strings.HasPrefix(tag, "RB"):
		return Adverb
	}
	return NoPOS
}
