package tweetvec

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func testResources() *Resources {
	lex := newFakeLexicon("home", "love#v", "cats#n")
	plain := NewSentimentLexicon("plain", map[string]float64{"love": 0.9, "hate": 0.1, ":-)": 0.8})
	return &Resources{
		Lexicon:    lex,
		Slang:      SlangTable{"u": {"you"}},
		FirstNames: NewWordSet("Robin"),
		StopWords:  NewStopWords(),
		Scorer:     NewSentimentScorer([]*SentimentLexicon{plain}, lex, WithScorerLogger(quietLogger())),
		Config:     DefaultConfig(),
	}
}

var testCorpus = []string{"I love cats", "cats love fish", "I hate snow"}

func trainedExtractor(t *testing.T, opts ...PipelineOpt) *Extractor {
	t.Helper()
	opts = append([]PipelineOpt{WithPipelineLogger(quietLogger())}, opts...)
	ext, err := NewPipeline(testResources(), opts...).Train(context.Background(), testCorpus, 2)
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	return ext
}

func TestPipelineTokens(t *testing.T) {
	p := NewPipeline(testResources())
	got := p.Tokens("I'm goin home w/ u :-))))")
	expected := []string{"I'm", "going", "home", "with", "you", ":-)"}
	if !equalStrings(got, expected) {
		t.Errorf("Expected %q, got %q", expected, got)
	}

	raw := NewPipeline(testResources(), WithTokenRepair(false)).Tokens("goin w/ u")
	if !equalStrings(raw, []string{"goin", "w/", "u"}) {
		t.Errorf("Expected raw tokens, got %q", raw)
	}
}

func TestPipelinePrepare(t *testing.T) {
	got := NewPipeline(testResources()).Prepare("I love #cats :-)")
	expected := []TaggedToken{{"I", TagPronoun}, {"love", TagVerb}, {"#cats", TagHashtag}, {":-)", TagEmoticon}}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

type nounTagger struct{}

func (nounTagger) Tag(tokens []string) []TaggedToken {
	out := make([]TaggedToken, len(tokens))
	for i, tok := range tokens {
		out[i] = TaggedToken{Text: tok, Tag: TagCommonNoun}
	}
	return out
}

func TestPipelineUsingTagger(t *testing.T) {
	got := NewPipeline(testResources(), UsingTagger(nounTagger{})).Prepare("love :-)")
	if got[0].Tag != TagCommonNoun || got[1].Tag != TagCommonNoun {
		t.Errorf("Expected the custom tagger to be used, got %v", got)
	}
}

func TestPipelineTrain(t *testing.T) {
	ext := trainedExtractor(t)

	expectedVocab := []string{"love#v", "cats#n", "fish#n", "hate#n", "snow#n"}
	if got := ext.Index().Vocabulary(); !reflect.DeepEqual(got, expectedVocab) {
		t.Errorf("Vocabulary() = %v, expected %v", got, expectedVocab)
	}
	if ext.Size() != 7+8+len(expectedVocab) || ext.Assembler().Size() != ext.Size() {
		t.Errorf("Size() = %d", ext.Size())
	}

	v := ext.Extract("I love cats :-)")
	if v[1] != 2 {
		t.Errorf("Expected two positive words, got %v", v)
	}
	for id := range v {
		if id < 1 || id > ext.Size() {
			t.Errorf("Id %d outside the layout", id)
		}
	}
	if got := ext.Extract("zebra"); len(got) == 0 {
		t.Error("POS features must still fire for unknown words")
	}
}

func TestPipelineTrainInvalidConfig(t *testing.T) {
	res := testResources()
	res.Config.TfIdf.Type = "sqrt"
	if _, err := NewPipeline(res).TrainTagged(nil); err == nil {
		t.Error("Expected an invalid tf type to fail")
	}
	res.Config.TfIdf.Type = "log"
	res.Config.TfIdf.Normalization = "l1"
	if _, err := NewPipeline(res).TrainTagged(nil); err == nil {
		t.Error("Expected an invalid normalization to fail")
	}
}

func TestExtractAll(t *testing.T) {
	ext := trainedExtractor(t)
	texts := make([]string, 50)
	for i := range texts {
		texts[i] = fmt.Sprintf("I love cats %d times :-) but hate snow", i)
	}

	got, err := ext.ExtractAll(context.Background(), texts, 4)
	if err != nil {
		t.Fatalf("ExtractAll: %v", err)
	}
	for i, text := range texts {
		if !reflect.DeepEqual(got[i], ext.Extract(text)) {
			t.Errorf("Result %d does not match a sequential run", i)
		}
	}

	if got, err := ext.ExtractAll(context.Background(), nil, 0); err != nil || len(got) != 0 {
		t.Errorf("Empty input gave %v, %v", got, err)
	}
}

func TestExtractAllCancelled(t *testing.T) {
	ext := trainedExtractor(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := ext.ExtractAll(ctx, testCorpus, 2); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if _, err := NewPipeline(testResources()).Train(ctx, testCorpus, 2); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected Train to stop, got %v", err)
	}
}

func TestExtractSentences(t *testing.T) {
	if got := trainedExtractor(t).ExtractSentences("I love cats. I hate snow."); len(got) != 1 {
		t.Errorf("Expected one vector without a segmenter, got %d", len(got))
	}

	seg, err := NewPunktSegmenter()
	if err != nil {
		t.Fatalf("NewPunktSegmenter: %v", err)
	}
	got := trainedExtractor(t, UsingSegmenter(seg)).ExtractSentences("I love cats. I hate snow.")
	if len(got) != 2 {
		t.Fatalf("Expected two vectors, got %d", len(got))
	}
	if got[0][1] != 1 || got[1][3] != 1 {
		t.Errorf("Expected one positive then one negative word, got %v", got)
	}
}

func TestPrepareAll(t *testing.T) {
	got, err := NewPipeline(testResources()).PrepareAll(context.Background(), []string{"u", "goin"}, 0)
	if err != nil {
		t.Fatalf("PrepareAll: %v", err)
	}
	if len(got) != 2 || got[0][0].Text != "you" || got[1][0].Text != "going" {
		t.Errorf("Unexpected result %v", got)
	}
}
