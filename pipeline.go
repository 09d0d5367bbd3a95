package tweetvec

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
)

// A PipelineOpt represents a setting that changes how messages are
// prepared.
//
// For example, it might plug in a trained tagger:
//
//	p := tweetvec.NewPipeline(res, tweetvec.UsingTagger(myTagger))
type PipelineOpt func(p *Pipeline)

// UsingTokenizer specifies the Tokenizer to use.
func UsingTokenizer(t Tokenizer) PipelineOpt {
	return func(p *Pipeline) {
		p.tokenizer = t
	}
}

// UsingTagger specifies the Tagger to use. The default is a ShapeTagger.
func UsingTagger(t Tagger) PipelineOpt {
	return func(p *Pipeline) {
		p.tagger = t
	}
}

// UsingSegmenter specifies how ExtractSentences splits messages.
func UsingSegmenter(s Segmenter) PipelineOpt {
	return func(p *Pipeline) {
		p.segmenter = s
	}
}

// WithTokenRepair can enable (the default) or disable normalization.
func WithTokenRepair(include bool) PipelineOpt {
	return func(p *Pipeline) {
		p.repair = include
	}
}

// WithPipelineLogger sets the logger for training progress.
func WithPipelineLogger(l *slog.Logger) PipelineOpt {
	return func(p *Pipeline) {
		p.logger = l
	}
}

// Pipeline turns raw messages into tagged tokens: tokenize, normalize, tag.
type Pipeline struct {
	resources  *Resources
	tokenizer  Tokenizer
	normalizer *Normalizer
	tagger     Tagger
	segmenter  Segmenter
	repair     bool
	logger     *slog.Logger
}

// NewPipeline creates a Pipeline over res.
func NewPipeline(res *Resources, opts ...PipelineOpt) *Pipeline {
	p := &Pipeline{
		resources: res,
		tokenizer: NewTweetTokenizer(),
		normalizer: NewNormalizer(res.Lexicon,
			UsingSlang(res.Slang),
			UsingFirstNames(res.FirstNames)),
		tagger:    NewShapeTagger(res.Lexicon),
		segmenter: wholeText{},
		repair:    true,
		logger:    slog.Default(),
	}
	for _, applyOpt := range opts {
		applyOpt(p)
	}
	return p
}

// Tokens tokenizes and, unless disabled, normalizes text.
func (p *Pipeline) Tokens(text string) []string {
	tokens := p.tokenizer.Tokenize(text)
	if p.repair {
		tokens = p.normalizer.Normalize(tokens)
	}
	return tokens
}

// Prepare returns the tagged tokens of text.
func (p *Pipeline) Prepare(text string) []TaggedToken {
	return p.tagger.Tag(p.Tokens(text))
}

// PrepareAll prepares texts on up to workers goroutines.
func (p *Pipeline) PrepareAll(ctx context.Context, texts []string, workers int) ([][]TaggedToken, error) {
	return parallelMap(ctx, len(texts), workers, func(i int) []TaggedToken {
		return p.Prepare(texts[i])
	})
}

// Train builds the vocabulary from corpus and returns an Extractor whose
// feature layout is fixed from then on.
func (p *Pipeline) Train(ctx context.Context, corpus []string, workers int) (*Extractor, error) {
	prepared, err := p.PrepareAll(ctx, corpus, workers)
	if err != nil {
		return nil, err
	}
	return p.TrainTagged(prepared)
}

// TrainTagged is Train for a corpus that is already tagged.
func (p *Pipeline) TrainTagged(corpus [][]TaggedToken) (*Extractor, error) {
	cfg := p.resources.Config.TfIdf
	tfType, err := ParseTfType(cfg.Type)
	if err != nil {
		return nil, err
	}
	norm, err := ParseNormalization(cfg.Normalization)
	if err != nil {
		return nil, err
	}
	index := BuildTermFrequencyIndex(corpus,
		WithTfType(tfType),
		WithNormalization(norm),
		WithPOSTerms(cfg.UsePOSTags),
		UsingStopWords(p.resources.StopWords),
		UsingTermLexicon(p.resources.Lexicon),
		WithIndexLogger(p.logger))
	assembler := NewFeatureVectorAssembler(p.resources.Scorer, index, p.resources.Config.POS.Normalize)
	p.logger.Info("feature layout ready",
		slog.Int("lexicons", p.resources.Scorer.LexiconCount()),
		slog.Int("vocabulary", index.Size()),
		slog.Int("dimension", assembler.Size()))
	return &Extractor{pipeline: p, index: index, assembler: assembler}, nil
}

// Extractor produces feature vectors with a fixed layout.
type Extractor struct {
	pipeline  *Pipeline
	index     *TermFrequencyIndex
	assembler *FeatureVectorAssembler
}

// Size returns the dimension of the vectors.
func (e *Extractor) Size() int {
	return e.assembler.Size()
}

// Index returns the vocabulary the Extractor was trained with.
func (e *Extractor) Index() *TermFrequencyIndex {
	return e.index
}

// Assembler returns the underlying assembler.
func (e *Extractor) Assembler() *FeatureVectorAssembler {
	return e.assembler
}

// Extract returns the feature vector of text.
func (e *Extractor) Extract(text string) FeatureVector {
	return e.assembler.Generate(e.pipeline.Prepare(text))
}

// ExtractSentences returns one vector per sentence of text.
func (e *Extractor) ExtractSentences(text string) []FeatureVector {
	var out []FeatureVector
	for _, s := range e.pipeline.segmenter.Segment(text) {
		out = append(out, e.Extract(s.Text))
	}
	return out
}

// ExtractAll extracts texts on up to workers goroutines; workers < 1 means
// one per CPU. Results line up with texts. When ctx ends early the texts
// not yet started are left nil and ctx.Err() is returned.
func (e *Extractor) ExtractAll(ctx context.Context, texts []string, workers int) ([]FeatureVector, error) {
	return parallelMap(ctx, len(texts), workers, func(i int) FeatureVector {
		return e.Extract(texts[i])
	})
}

func parallelMap[T any](ctx context.Context, n, workers int, fn func(i int) T) ([]T, error) {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	out := make([]T, n)
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				out[i] = fn(i)
			}
		}()
	}

	var err error
feed:
	for i := 0; i < n; i++ {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()
	return out, err
}
