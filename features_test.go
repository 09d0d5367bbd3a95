package tweetvec

import (
	"math"
	"testing"
)

func testAssembler(t *testing.T) *FeatureVectorAssembler {
	t.Helper()
	plain := NewSentimentLexicon("plain", map[string]float64{"good": 0.9, ":)": 0.8})
	wild := NewWildcardSentimentLexicon("wild", NewWildcardDictionary(map[string]float64{"ca*": 0.3}))
	scorer := NewSentimentScorer([]*SentimentLexicon{plain, wild}, nil, WithScorerLogger(quietLogger()))
	index := BuildTermFrequencyIndex(trainingDocs(), WithNormalization(CosineNormalization), WithIndexLogger(quietLogger()))
	return NewFeatureVectorAssembler(scorer, index, true)
}

func TestFeatureVectorAssemblerLayout(t *testing.T) {
	a := testAssembler(t)
	gens := a.Generators()
	if len(gens) != 3 {
		t.Fatalf("Expected 3 generators, got %d", len(gens))
	}
	sizes := []int{gens[0].Size(), gens[1].Size(), gens[2].Size()}
	if sizes[0] != 14 || sizes[1] != 8 || sizes[2] != 5 {
		t.Errorf("Unexpected generator sizes %v", sizes)
	}
	if a.Size() != 27 {
		t.Errorf("Size() = %d, expected 27", a.Size())
	}
}

func TestFeatureVectorAssemblerGenerate(t *testing.T) {
	a := testAssembler(t)
	v := a.Generate([]TaggedToken{{"good", "A"}, {"cats", "N"}, {":)", "E"}})

	third := 1.0 / 3
	expected := FeatureVector{
		// plain lexicon: pos count, sum, count, max pos
		1: 2, 4: 1.7, 5: 2, 6: 0.9,
		// wildcard lexicon: neg count, sum, count, max neg
		10: 1, 11: 0.3, 12: 1, 14: 0.3,
		// nouns, adjectives, emoticons
		15: third, 17: third, 22: third,
		// "cats" is term 0
		23: 1,
	}
	if len(v) != len(expected) {
		t.Fatalf("Expected ids %v, got %v", expected.IDs(), v.IDs())
	}
	for id, w := range expected {
		if !approx(v[id], w) {
			t.Errorf("Feature %d: expected %v, got %v", id, w, v[id])
		}
	}
}

func TestFeatureVectorIDsStayInRange(t *testing.T) {
	a := testAssembler(t)
	docs := [][]TaggedToken{
		{{"good", "A"}, {"fish", "N"}, {"swim", "V"}, {"!", ","}},
		{{"#cats", "#"}, {"quickly", "R"}, {"wow", "!"}},
		{{"dogs", "N"}, {"love", "V"}, {"cats", "N"}, {":)", "E"}},
	}
	offset := 1
	for gi, g := range a.Generators() {
		lo, hi := offset, offset+g.Size()
		for _, doc := range docs {
			for id := range g.Generate(doc) {
				if id < lo || id >= hi {
					t.Errorf("Generator %d emitted id %d outside [%d, %d)", gi, id, lo, hi)
				}
			}
		}
		offset = hi
	}
	for _, v := range a.GenerateAll(docs) {
		for id, w := range v {
			if id < 1 || id > a.Size() {
				t.Errorf("Id %d outside [1, %d]", id, a.Size())
			}
			if w == 0 || math.IsNaN(w) {
				t.Errorf("Id %d has weight %v", id, w)
			}
		}
	}
}

func TestFeatureVectorEmptyMessage(t *testing.T) {
	a := testAssembler(t)
	if v := a.Generate(nil); len(v) != 0 {
		t.Errorf("Expected an empty vector, got %v", v)
	}
}

func TestPOSGeneratorCounts(t *testing.T) {
	tokens := []TaggedToken{{"i", "O"}, {"run", "V"}, {"to", "P"}, {"#gym", "#"}}
	tests := []struct {
		normalize bool
		expected  []float64
	}{
		{false, []float64{1, 1, 0, 0, 0, 0, 1, 0}},
		{true, []float64{0.25, 0.25, 0, 0, 0, 0, 0.25, 0}},
	}
	for _, tt := range tests {
		got := NewPOSGenerator(tt.normalize, 1).Counts(tokens)
		for i := range tt.expected {
			if !approx(got[i], tt.expected[i]) {
				t.Errorf("normalize=%v: bucket %d = %v, expected %v", tt.normalize, i, got[i], tt.expected[i])
			}
		}
	}
	if got := NewPOSGenerator(true, 1).Counts(nil); len(got) != posBuckets {
		t.Errorf("Expected %d buckets, got %v", posBuckets, got)
	}
}

func TestPutSkipsEmptyValues(t *testing.T) {
	v := FeatureVector{}
	put(v, 1, 0)
	put(v, 2, math.NaN())
	put(v, 3, math.Inf(1))
	put(v, 4, -0.5)
	if len(v) != 1 || v[4] != -0.5 {
		t.Errorf("Unexpected vector %v", v)
	}
}

func TestFeatureVectorLibSVM(t *testing.T) {
	v := FeatureVector{3: 0.5, 1: 2, 10: -1}
	if got := v.IDs(); !equalInts(got, []int{1, 3, 10}) {
		t.Errorf("IDs() = %v", got)
	}
	if got, expected := v.LibSVM(), "1:2 3:0.5 10:-1"; got != expected {
		t.Errorf("LibSVM() = %q, expected %q", got, expected)
	}
	if got := (FeatureVector{}).LibSVM(); got != "" {
		t.Errorf("Empty vector rendered as %q", got)
	}
}

func equalInts(a, b []int) bool {
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

func TestSentimentClassString(t *testing.T) {
	for c, expected := range map[SentimentClass]string{Negative: "negative", Neutral: "neutral", Positive: "positive"} {
		if c.String() != expected {
			t.Errorf("%d.String() = %q", c, c.String())
		}
	}
}
