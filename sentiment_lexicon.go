package tweetvec

import (
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"
)

// ScoreListOptions describes the layout of a "word<delimiter>score" file.
type ScoreListOptions struct {
	Delimiter       string  // Regular expression separating word and score
	ContainsPOSTags bool    // Words carry a "#pos" suffix that is dropped
	FeatureScaling  bool    // Rescale scores from [MinValue, MaxValue] to [0, 1]
	MinValue        float64 // Lowest score the file is expected to contain
	MaxValue        float64 // Highest score the file is expected to contain
}

// ReadScoreList reads a sentiment word list. Lines whose score does not parse
// are skipped with a warning. When scaling, a declared range that differs
// from the one actually found is reported but not fatal.
func ReadScoreList(r io.Reader, opts ScoreListOptions, logger *slog.Logger) (map[string]float64, error) {
	if logger == nil {
		logger = slog.Default()
	}
	scores := make(map[string]float64)
	actualMin, actualMax := math.Inf(1), math.Inf(-1)

	err := readEntries(r, opts.Delimiter, -1, func(key, raw string) error {
		if opts.ContainsPOSTags {
			if i := strings.LastIndexByte(key, '#'); i > 0 {
				key = key[:i]
			}
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			logger.Warn("skipping malformed score", slog.String("word", key), slog.String("value", raw))
			return nil
		}
		if opts.FeatureScaling {
			actualMin = math.Min(actualMin, value)
			actualMax = math.Max(actualMax, value)
			value = (value - opts.MinValue) / (opts.MaxValue - opts.MinValue)
		}
		scores[key] = value
		return nil
	})
	if err != nil {
		return nil, err
	}

	if opts.FeatureScaling && len(scores) > 0 {
		if actualMin != opts.MinValue {
			logger.Warn("declared minimum does not match word list, scaled scores may be off",
				slog.Float64("declared", opts.MinValue), slog.Float64("actual", actualMin))
		}
		if actualMax != opts.MaxValue {
			logger.Warn("declared maximum does not match word list, scaled scores may be off",
				slog.Float64("declared", opts.MaxValue), slog.Float64("actual", actualMax))
		}
	}
	logger.Info("loaded sentiment word list", slog.Int("entries", len(scores)))
	return scores, nil
}

// ReadSentimentLexicon reads a word list into a plain or wildcard lexicon.
func ReadSentimentLexicon(name string, r io.Reader, wildcard bool, opts ScoreListOptions, logger *slog.Logger) (*SentimentLexicon, error) {
	scores, err := ReadScoreList(r, opts, logger)
	if err != nil {
		return nil, err
	}
	if wildcard {
		return NewWildcardSentimentLexicon(name, NewWildcardDictionary(scores)), nil
	}
	return NewSentimentLexicon(name, scores), nil
}
