package tweetvec

// A charRun is a maximal run of one repeated rune, in rune offsets.
type charRun struct {
	start  int
	length int
}

// findRuns returns the maximal runs of at least min identical runes.
func findRuns(runes []rune, min int) []charRun {
	var runs []charRun
	for i := 0; i < len(runes); {
		j := i + 1
		for j < len(runes) && runes[j] == runes[i] {
			j++
		}
		if j-i >= min {
			runs = append(runs, charRun{start: i, length: j - i})
		}
		i = j
	}
	return runs
}

func deleteRune(runes []rune, at int) []rune {
	out := make([]rune, 0, len(runes)-1)
	out = append(out, runes[:at]...)
	return append(out, runes[at+1:]...)
}

// collapseRuns replaces every run of at least min identical runes with a
// single rune.
func collapseRuns(runes []rune, min int) string {
	out := make([]rune, 0, len(runes))
	last := 0
	for _, r := range findRuns(runes, min) {
		out = append(out, runes[last:r.start+1]...)
		last = r.start + r.length
	}
	out = append(out, runes[last:]...)
	return string(out)
}

// deElongate undoes character stretching such as "suuuper" or "gaaahhh".
//
// Each run of three or more identical characters is shortened one character
// at a time. After every deletion the candidate is looked up, and so is every
// shortening of the runs found before it. The first candidate the lexicon
// knows wins. Without a hit every run of two or more collapses to a single
// character. The search is exhaustive over the run lengths.
func (n *Normalizer) deElongate(tok string) string {
	value := []rune(tok)
	runs := findRuns(value, 3)
	if len(runs) == 0 || n.lexicon.Contains(tok) {
		return tok
	}

	var seen []charRun
	for _, cur := range runs {
		seen = append(seen, cur)
		candidate := value
		for i := 0; i < cur.length-1; i++ {
			candidate = deleteRune(candidate, cur.start)
			if s := string(candidate); n.lexicon.Contains(s) {
				return s
			}
			for _, prior := range seen {
				if prior.start == cur.start {
					continue
				}
				sub := candidate
				for k := 0; k < prior.length-1; k++ {
					sub = deleteRune(sub, prior.start)
					if s := string(sub); n.lexicon.Contains(s) {
						return s
					}
				}
			}
		}
	}

	return collapseRuns(value, 2)
}
