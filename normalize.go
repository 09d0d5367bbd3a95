package tweetvec

import (
	"strings"
)

// Normalizer repairs tokens: it expands slang, reduces elongated words
// ("suuuper"), joins dotted spellings ("L.O.V.E") and restores dropped
// gerund endings ("goin").
type Normalizer struct {
	lexicon    Lexicon
	slang      SlangTable
	firstNames WordSet
}

type NormalizerOptFunc func(*Normalizer)

// UsingSlang sets the slang table.
func UsingSlang(x SlangTable) NormalizerOptFunc {
	return func(n *Normalizer) {
		n.slang = x
	}
}

// UsingFirstNames sets the names that must not get a trailing "g".
func UsingFirstNames(x WordSet) NormalizerOptFunc {
	return func(n *Normalizer) {
		n.firstNames = x
	}
}

// NewNormalizer returns a Normalizer checking words against lex.
func NewNormalizer(lex Lexicon, opts ...NormalizerOptFunc) *Normalizer {
	if lex == nil {
		lex = NewWordListLexicon(nil)
	}
	n := &Normalizer{
		lexicon:    lex,
		slang:      SlangTable{},
		firstNames: WordSet{},
	}
	for _, applyOpt := range opts {
		applyOpt(n)
	}
	return n
}

// Normalize rewrites tokens. The result may be longer than the input when
// slang expands to several words; order is kept.
func (n *Normalizer) Normalize(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		out = n.normalizeToken(tok, out)
	}
	return out
}

// NormalizeAll normalizes each token sequence in turn.
func (n *Normalizer) NormalizeAll(docs [][]string) [][]string {
	out := make([][]string, len(docs))
	for i, doc := range docs {
		out[i] = n.Normalize(doc)
	}
	return out
}

// normalizeToken applies the first rule that fits tok.
func (n *Normalizer) normalizeToken(tok string, out []string) []string {
	emoticon := IsEmoticon(tok)
	if !emoticon && (IsPunctuation(tok) || IsUnderscores(tok)) {
		return append(out, tok)
	}
	if emoticon {
		if reduced, ok := collapseEmoticon(tok); ok {
			return append(out, reduced)
		}
	}

	protected := emoticon || IsMention(tok) || IsHashtag(tok) || IsURL(tok) ||
		IsNumeric(tok) || IsSpecialNumeric(tok) || IsSeparatedNumeric(tok) ||
		IsEmail(tok) || IsPhone(tok)

	if !protected {
		if repl, ok := n.slang.Correction(tok); ok {
			return append(out, repl...)
		}
	}
	if strings.HasPrefix(tok, "w/") && IsSlashSlang(tok) {
		out = append(out, "with")
		if rest := tok[2:]; rest != "" {
			out = append(out, rest)
		}
		return out
	}
	if protected {
		return append(out, tok)
	}

	if IsAlternatingLetterDot(tok) {
		if joined := strings.ReplaceAll(tok, ".", ""); n.lexicon.Contains(joined) {
			return append(out, joined)
		}
	}

	if strings.HasSuffix(tok, "in") && !n.firstNames.Contains(tok) &&
		!n.lexicon.Contains(strings.ToLower(tok)) {
		return append(out, tok+"g")
	}

	if reduced := n.deElongate(tok); reduced != tok {
		if repl, ok := n.slang.Correction(reduced); ok {
			return append(out, repl...)
		}
		return append(out, reduced)
	}

	return append(out, tok)
}

// collapseEmoticon shortens every run of a repeated character to one
// character, or two for '^'. It reports false when there is no run.
func collapseEmoticon(tok string) (string, bool) {
	runes := []rune(tok)
	runs := findRuns(runes, 2)
	if len(runs) == 0 {
		return tok, false
	}
	var sb strings.Builder
	last := 0
	for _, r := range runs {
		sb.WriteString(string(runes[last:r.start]))
		c := runes[r.start]
		sb.WriteRune(c)
		if c == '^' {
			sb.WriteRune(c)
		}
		last = r.start + r.length
	}
	sb.WriteString(string(runes[last:]))
	return sb.String(), true
}
