package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/tsawler/tweetvec"
)

var (
	datasetPath string
	workers     int
	inputPath   string
)

func init() {
	featurizeCmd.Flags().StringVarP(&datasetPath, "dataset", "d", "", "labeled training tweets (default from config)")
	featurizeCmd.Flags().StringVarP(&inputPath, "input", "i", "", "featurize this dataset instead of the training set")
	featurizeCmd.Flags().IntVarP(&workers, "workers", "w", 0, "number of worker goroutines (default one per CPU)")
	rootCmd.AddCommand(featurizeCmd)
}

var featurizeCmd = &cobra.Command{
	Use:   "featurize",
	Short: "Write one LibSVM line per tweet",
	Long: `Build the vocabulary from the training dataset and write one
"label id:value ..." line per tweet to stdout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		return featurize(ctx)
	},
}

func train(ctx context.Context, res *tweetvec.Resources, tweets []tweetvec.Tweet) (*tweetvec.Extractor, error) {
	corpus := make([]string, len(tweets))
	for i, t := range tweets {
		corpus[i] = t.Text
	}
	p := tweetvec.NewPipeline(res, tweetvec.WithPipelineLogger(logger()))
	ext, err := p.Train(ctx, corpus, workers)
	return ext, errors.Wrap(err, "building vocabulary")
}

func featurize(ctx context.Context) error {
	res, err := loadResources()
	if err != nil {
		return err
	}
	tweets, err := readTweets(res, datasetPath)
	if err != nil {
		return err
	}
	ext, err := train(ctx, res, tweets)
	if err != nil {
		return err
	}

	if inputPath != "" {
		if tweets, err = readTweets(res, inputPath); err != nil {
			return err
		}
	}
	texts := make([]string, len(tweets))
	for i, t := range tweets {
		texts[i] = t.Text
	}
	vectors, err := ext.ExtractAll(ctx, texts, workers)
	if err != nil {
		return errors.Wrap(err, "extracting features")
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for i, v := range vectors {
		line := strconv.FormatFloat(tweets[i].Score, 'g', -1, 64)
		if len(v) > 0 {
			line += " " + v.LibSVM()
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}
