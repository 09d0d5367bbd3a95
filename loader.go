package tweetvec

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
)

// Resources bundles the read-only dictionaries a Pipeline needs. Build it
// once and share it; nothing in it changes after loading.
type Resources struct {
	Lexicon    Lexicon
	Slang      SlangTable
	FirstNames WordSet
	StopWords  *StopWords
	Scorer     *SentimentScorer
	Config     Config
}

type loadOpts struct {
	logger  *slog.Logger
	lexicon Lexicon
}

// A LoadOpt changes how resources are loaded.
type LoadOpt func(*loadOpts)

// WithLogger sets the logger used while loading.
func WithLogger(l *slog.Logger) LoadOpt {
	return func(o *loadOpts) {
		o.logger = l
	}
}

// UsingLexicon supplies a Lexicon instead of building one from the
// configured word lists.
func UsingLexicon(lex Lexicon) LoadOpt {
	return func(o *loadOpts) {
		o.lexicon = lex
	}
}

// ResourcesFromDisk loads the resources of cfg relative to dir.
func ResourcesFromDisk(cfg Config, dir string, opts ...LoadOpt) (*Resources, error) {
	return ResourcesFromFS(cfg, os.DirFS(dir), opts...)
}

// ResourcesFromFS loads every enabled resource of cfg from filesys. A
// configured file that is missing or unreadable is an error.
func ResourcesFromFS(cfg Config, filesys fs.FS, opts ...LoadOpt) (*Resources, error) {
	o := loadOpts{logger: slog.Default()}
	for _, applyOpt := range opts {
		applyOpt(&o)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	res := &Resources{
		Slang:      SlangTable{},
		FirstNames: WordSet{},
		StopWords:  NewStopWords().UsingLanguage(cfg.Dict.StopWordsLang),
		Config:     cfg,
	}

	for _, p := range cfg.Dict.FirstNames {
		if err := readInto(filesys, p, res.FirstNames); err != nil {
			return nil, err
		}
	}
	for _, p := range cfg.Dict.StopWords {
		if err := readInto(filesys, p, res.StopWords.Words()); err != nil {
			return nil, err
		}
	}
	o.logger.Info("loaded word sets",
		slog.Int("firstNames", len(res.FirstNames)),
		slog.Int("stopWords", len(res.StopWords.Words())))

	res.Lexicon = o.lexicon
	if res.Lexicon == nil {
		lex, err := loadLexicon(filesys, cfg.Dict.Lexicon)
		if err != nil {
			return nil, err
		}
		o.logger.Info("loaded lexicon", slog.Int("words", lex.Len()))
		res.Lexicon = lex
	}

	for _, sc := range cfg.Slang {
		if !sc.Enabled {
			continue
		}
		err := withFile(filesys, sc.Path, func(r io.Reader) error {
			table, err := ReadSlangTable(r, sc.Delimiter)
			if err != nil {
				return err
			}
			res.Slang.Merge(table)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	o.logger.Info("loaded slang", slog.Int("entries", len(res.Slang)))

	var lexicons []*SentimentLexicon
	for _, sc := range cfg.Sentiment {
		if !sc.Enabled {
			continue
		}
		name := sc.Name
		if name == "" {
			name = path.Base(sc.Path)
		}
		err := withFile(filesys, sc.Path, func(r io.Reader) error {
			l, err := ReadSentimentLexicon(name, r, sc.Wildcard, sc.options(), o.logger.With(slog.String("list", name)))
			if err != nil {
				return err
			}
			lexicons = append(lexicons, l)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	res.Scorer = NewSentimentScorer(lexicons, res.Lexicon, WithScorerLogger(o.logger))

	return res, nil
}

func withFile(filesys fs.FS, name string, fn func(io.Reader) error) error {
	f, err := filesys.Open(name)
	if err != nil {
		return fmt.Errorf("error opening %s: %w", name, err)
	}
	defer f.Close()
	if err := fn(f); err != nil {
		return fmt.Errorf("error loading %s: %w", name, err)
	}
	return nil
}

func readInto(filesys fs.FS, name string, set WordSet) error {
	return withFile(filesys, name, func(r io.Reader) error {
		_, err := set.ReadFrom(r)
		return err
	})
}

func loadLexicon(filesys fs.FS, names []string) (*WordListLexicon, error) {
	var entries []string
	for _, name := range names {
		err := withFile(filesys, name, func(r io.Reader) error {
			words, err := readWordList(r)
			entries = append(entries, words...)
			return err
		})
		if err != nil {
			return nil, err
		}
	}
	return NewWordListLexicon(entries), nil
}
