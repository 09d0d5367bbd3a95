package tweetvec

import (
	"sort"
	"strings"
)

// WildcardDictionary maps words to values. A key ending in '*' also matches
// every word that starts with the part before the '*', so "happ*" covers
// "happy" and "happiness".
//
// The prefix index is kept sorted on every Put, so lookups never modify the
// dictionary and may run concurrently once building is done.
type WildcardDictionary[V any] struct {
	entries  map[string]V
	prefixes []string
}

// NewWildcardDictionary builds a dictionary holding entries.
func NewWildcardDictionary[V any](entries map[string]V) *WildcardDictionary[V] {
	d := &WildcardDictionary[V]{entries: make(map[string]V, len(entries))}
	for k, v := range entries {
		d.entries[k] = v
		if prefix, ok := strings.CutSuffix(k, "*"); ok {
			d.prefixes = append(d.prefixes, prefix)
		}
	}
	sort.Strings(d.prefixes)
	d.prefixes = dedupeSorted(d.prefixes)
	return d
}

func dedupeSorted(s []string) []string {
	if len(s) < 2 {
		return s
	}
	out := s[:1]
	for _, v := range s[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

// Put stores value under key. The literal key, '*' included, is always
// stored as an exact entry too.
func (d *WildcardDictionary[V]) Put(key string, value V) {
	if d.entries == nil {
		d.entries = make(map[string]V)
	}
	if prefix, ok := strings.CutSuffix(key, "*"); ok {
		i := sort.SearchStrings(d.prefixes, prefix)
		if i == len(d.prefixes) || d.prefixes[i] != prefix {
			d.prefixes = append(d.prefixes, "")
			copy(d.prefixes[i+1:], d.prefixes[i:])
			d.prefixes[i] = prefix
		}
	}
	d.entries[key] = value
}

// Get returns the value stored under exactly key.
func (d *WildcardDictionary[V]) Get(key string) (V, bool) {
	v, ok := d.entries[key]
	return v, ok
}

// MatchKey looks key up exactly first and then against the wildcard
// prefixes. When several prefixes fit, the longest one wins.
func (d *WildcardDictionary[V]) MatchKey(key string) (V, bool) {
	if v, ok := d.entries[key]; ok {
		return v, true
	}
	// Every prefix of key sorts at or before key, longer ones later.
	i := sort.Search(len(d.prefixes), func(j int) bool { return d.prefixes[j] > key })
	for j := i - 1; j >= 0; j-- {
		cur := d.prefixes[j]
		if strings.HasPrefix(key, cur) {
			v, ok := d.entries[cur+"*"]
			return v, ok
		}
		if cur == "" || key == "" || cur[0] != key[0] {
			break
		}
	}
	if len(d.prefixes) > 0 && d.prefixes[0] == "" {
		v, ok := d.entries["*"]
		return v, ok
	}
	var zero V
	return zero, false
}

// Len returns the number of stored keys.
func (d *WildcardDictionary[V]) Len() int {
	return len(d.entries)
}

// Prefixes returns a copy of the sorted wildcard prefixes.
func (d *WildcardDictionary[V]) Prefixes() []string {
	return append([]string(nil), d.prefixes...)
}
