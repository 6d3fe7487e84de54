package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func trainCmd(a *app) *cobra.Command {
	var (
		corpusPath    string
		allowListPath string
	)

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Build the rhyme index from a JSON-lines corpus and persist it",
		Example: `  rhymer train --corpus words.jsonl
  rhymer train --corpus words.jsonl --allow-list common.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if corpusPath == "" {
				return errors.New("--corpus is required")
			}

			eng, err := a.newEngine()
			if err != nil {
				return err
			}
			defer eng.Close()

			start := time.Now()
			stats, err := eng.Train(cmd.Context(), corpusPath, allowListPath, func(indexed, skipped int) {
				a.logger.Debug("Training progress", "indexed", indexed, "skipped", skipped)
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Indexed %d words, skipped %d in %s\nIndex written to %s\n",
				stats.Indexed, stats.Skipped, time.Since(start).Round(time.Millisecond), eng.IndexPath())
			return nil
		},
	}
	cmd.Flags().StringVar(&corpusPath, "corpus", "", "Path to the JSON-lines corpus")
	cmd.Flags().StringVar(&allowListPath, "allow-list", "", "Optional file of words to keep, one per line")
	return cmd
}
