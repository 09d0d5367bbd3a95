package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func init() {
	vocabCmd.Flags().StringVarP(&datasetPath, "dataset", "d", "", "labeled training tweets (default from config)")
	rootCmd.AddCommand(vocabCmd)
}

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Print the feature layout and the term vocabulary",
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := loadResources()
		if err != nil {
			return err
		}
		tweets, err := readTweets(res, datasetPath)
		if err != nil {
			return err
		}
		ext, err := train(cmd.Context(), res, tweets)
		if err != nil {
			return err
		}

		w := bufio.NewWriter(os.Stdout)
		defer w.Flush()
		gens := ext.Assembler().Generators()
		offset := 1
		for i, l := range res.Scorer.Lexicons() {
			n := gens[0].Size() / len(res.Scorer.Lexicons())
			fmt.Fprintf(w, "# lexicon %d %s ids %d-%d\n", i, l.Name, offset, offset+n-1)
			offset += n
		}
		fmt.Fprintf(w, "# pos ids %d-%d\n", offset, offset+gens[1].Size()-1)
		offset += gens[1].Size()

		index := ext.Index()
		for _, term := range index.Vocabulary() {
			id, _ := index.TermID(term)
			idf, _ := index.IDF(term)
			if _, err := fmt.Fprintf(w, "%d\t%s\t%d\t%g\n", offset+id, term, index.DocumentFrequency(term), idf); err != nil {
				return errors.WithStack(err)
			}
		}
		return nil
	},
}
