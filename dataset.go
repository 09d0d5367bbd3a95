package tweetvec

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

// unlabeled is the score of a tweet whose label matches no class.
const unlabeled = -1

// ReadTweets reads labeled tweets from a delimited file. Lines with too few
// columns are skipped; unknown labels get the score -1.
func ReadTweets(r io.Reader, d DatasetConfig, logger *slog.Logger) ([]Tweet, error) {
	if logger == nil {
		logger = slog.Default()
	}
	delim, err := compileDelimiter(d.Delimiter)
	if err != nil {
		return nil, err
	}
	need := max(d.IDIndex, d.LabelIndex, d.TextIndex) + 1

	var tweets []Tweet
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for line := 1; scanner.Scan(); line++ {
		values := delim.Split(scanner.Text(), -1)
		if len(values) < need {
			logger.Warn("skipping short dataset line", slog.Int("line", line), slog.Int("columns", len(values)))
			continue
		}
		id, err := strconv.ParseInt(strings.TrimSpace(values[d.IDIndex]), 10, 64)
		if err != nil {
			id = 0
		}
		label := strings.TrimSpace(values[d.LabelIndex])
		score, ok := d.scoreOf(label)
		if !ok {
			logger.Info("label does not match any class", slog.String("label", label))
		}
		tweets = append(tweets, Tweet{ID: id, Text: values[d.TextIndex], Score: score})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading dataset: %w", err)
	}
	logger.Info("loaded tweets", slog.Int("count", len(tweets)))
	return tweets, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func (d DatasetConfig) scoreOf(label string) (float64, bool) {
	switch {
	case contains(d.NegativeLabels, label):
		return d.NegativeValue, true
	case contains(d.NeutralLabels, label):
		return d.NeutralValue, true
	case contains(d.PositiveLabels, label):
		return d.PositiveValue, true
	}
	return unlabeled, false
}

// Class maps a dataset score back onto a SentimentClass.
func (d DatasetConfig) Class(score float64) (SentimentClass, bool) {
	switch score {
	case d.NegativeValue:
		return Negative, true
	case d.NeutralValue:
		return Neutral, true
	case d.PositiveValue:
		return Positive, true
	}
	return Neutral, false
}
