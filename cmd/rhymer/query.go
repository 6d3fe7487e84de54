package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/gcbaptista/go-rhyme-engine/model"
)

func rhymesCmd(a *app) *cobra.Command {
	var minMatches, maxSkips []int

	cmd := &cobra.Command{
		Use:     "rhymes WORD",
		Short:   "Find rhymes of a stress-marked word",
		Example: `  rhymer rhymes ко+шка --min-matches 2,3 --max-skips 0,1`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := a.newEngine()
			if err != nil {
				return err
			}
			defer eng.Close()

			var strictness *model.Strictness
			if cmd.Flags().Changed("min-matches") || cmd.Flags().Changed("max-skips") {
				strictness = &model.Strictness{
					MinMatches: pairOf(minMatches),
					MaxSkips:   pairOf(maxSkips),
				}
			}

			result, err := eng.FindRhymes(args[0], strictness)
			if err != nil {
				return err
			}
			return printJSON(cmd, result)
		},
	}
	cmd.Flags().IntSliceVar(&minMatches, "min-matches", []int{0, 0}, "Minimum matched phonemes as LEFT,RIGHT")
	cmd.Flags().IntSliceVar(&maxSkips, "max-skips", []int{0, 0}, "Maximum skipped phonemes as LEFT,RIGHT")
	return cmd
}

func schemeCmd(a *app) *cobra.Command {
	var maxAttempts int

	cmd := &cobra.Command{
		Use:     "scheme LABELS",
		Short:   "Fill a rhyme scheme such as ABAB or A,B,A,B",
		Example: `  rhymer scheme ABAB --max-attempts 50`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := a.newEngine()
			if err != nil {
				return err
			}
			defer eng.Close()

			assignment, err := eng.AssignScheme(cmd.Context(), parseScheme(args[0]), maxAttempts)
			if err != nil {
				return err
			}
			return printJSON(cmd, assignment)
		},
	}
	cmd.Flags().IntVar(&maxAttempts, "max-attempts", 0, "Attempt bound (0 uses the configured default)")
	return cmd
}

func suggestCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest WORD...",
		Short: "Suggest words that rhyme with the given line endings",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := a.newEngine()
			if err != nil {
				return err
			}
			defer eng.Close()

			result, err := eng.SuggestRhymes(args)
			if err != nil {
				return err
			}
			return printJSON(cmd, result)
		},
	}
}

// parseScheme reads "A,B,A,B" as four labels and "ABAB" as one label per rune.
func parseScheme(s string) []string {
	if strings.Contains(s, ",") {
		var labels []string
		for _, label := range strings.Split(s, ",") {
			if label = strings.TrimSpace(label); label != "" {
				labels = append(labels, label)
			}
		}
		return labels
	}
	return strings.Split(s, "")
}

// pairOf maps a one or two element flag value to a Pair. A single value
// applies to both sides.
func pairOf(values []int) model.Pair {
	switch len(values) {
	case 0:
		return model.Pair{}
	case 1:
		return model.Pair{Left: values[0], Right: values[0]}
	default:
		return model.Pair{Left: values[0], Right: values[1]}
	}
}
