// Command rhymer trains rhyme indexes, answers rhyme queries and serves the
// HTTP API.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gcbaptista/go-rhyme-engine/config"
	"github.com/gcbaptista/go-rhyme-engine/internal/engine"
	"github.com/gcbaptista/go-rhyme-engine/internal/logging"
	"github.com/gcbaptista/go-rhyme-engine/internal/postag"
	"github.com/gcbaptista/go-rhyme-engine/internal/rhymer"
)

const version = "1.0.0"

type app struct {
	configPath string
	cfg        *config.AppConfig
	logger     *slog.Logger
}

func main() {
	if err := rootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd(out io.Writer) *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "rhymer",
		Short:        "Rhyme finder backed by an approximate-matching trie",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}
	root.SetOut(out)

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to the YAML config file (default: $CONFIG_PATH or ./config.yaml)")
	root.PersistentFlags().String("data-dir", "", "Directory holding the persisted index (overrides config)")
	root.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides config)")

	root.AddCommand(
		serveCmd(a),
		trainCmd(a),
		rhymesCmd(a),
		schemeCmd(a),
		suggestCmd(a),
	)
	return root
}

func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.LoadApp(a.configPath)
	if err != nil {
		return err
	}
	if dir, _ := cmd.Flags().GetString("data-dir"); dir != "" {
		cfg.Data.Dir = dir
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Log.Level = level
	}

	a.cfg = cfg
	a.logger = logging.NewLogger(cfg.Log)
	return nil
}

// newEngine builds an engine with the part-of-speech tagger from the config.
func (a *app) newEngine() (*engine.Engine, error) {
	tagger, err := newTagger(a.cfg.Data.Lexicon)
	if err != nil {
		return nil, err
	}
	return engine.NewEngine(*a.cfg,
		engine.WithLogger(a.logger),
		engine.WithIndexOptions(rhymer.WithTagger(tagger)),
	), nil
}

// newTagger consults the lexicon at path first, when given, then falls back
// to suffix rules.
func newTagger(path string) (postag.Tagger, error) {
	if path == "" {
		return postag.SuffixTagger{}, nil
	}
	lexicon, err := postag.OpenLexicon(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load part-of-speech lexicon: %w", err)
	}
	return postag.Chain{lexicon, postag.SuffixTagger{}}, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
