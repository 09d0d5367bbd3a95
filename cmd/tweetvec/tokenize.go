package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/tsawler/tweetvec"
)

var (
	rawTokens  bool
	showTags   bool
	bySentence bool
)

func init() {
	tokenizeCmd.Flags().BoolVar(&rawTokens, "raw", false, "skip normalization")
	tokenizeCmd.Flags().BoolVar(&showTags, "tags", false, "print token/tag pairs")
	tokenizeCmd.Flags().BoolVar(&bySentence, "sentences", false, "split each message into sentences first")
	rootCmd.AddCommand(tokenizeCmd)
}

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [text...]",
	Short: "Print the tokens of each message",
	Long: `Print the tokens of each message, one message per line. Messages are
read from the arguments or, when there are none, from stdin.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tokenize(args)
	},
}

func tokenize(args []string) error {
	res, err := loadResources()
	if err != nil {
		return err
	}
	opts := []tweetvec.PipelineOpt{tweetvec.WithTokenRepair(!rawTokens)}
	p := tweetvec.NewPipeline(res, opts...)

	texts := args
	if len(texts) == 0 {
		if texts, err = readLines(os.Stdin); err != nil {
			return err
		}
	}
	if bySentence {
		seg, err := tweetvec.NewPunktSegmenter()
		if err != nil {
			return errors.WithStack(err)
		}
		var split []string
		for _, text := range texts {
			for _, s := range seg.Segment(text) {
				split = append(split, s.Text)
			}
		}
		texts = split
	}

	for _, text := range texts {
		if !showTags {
			fmt.Println(strings.Join(p.Tokens(text), " "))
			continue
		}
		tagged := p.Prepare(text)
		pairs := make([]string, len(tagged))
		for i, tok := range tagged {
			pairs[i] = tok.Text + "/" + tok.Tag
		}
		fmt.Println(strings.Join(pairs, " "))
	}
	return nil
}
