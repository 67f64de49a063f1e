package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/pantig-backend/internal/app/seeder/wordlist"
	"github.com/heartmarshall/pantig-backend/internal/domain"
	"github.com/heartmarshall/pantig-backend/internal/service/syllabifier/kwf"
)

var errCheckFailed = errors.New("check failed")

func newCheckCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check [file]",
		Short: "Verify syllabification of a word list",
		Long: "Verify that every word in a word list (plain, .gz or .xz) splits into " +
			"syllables that join back to the word. Without a file, report words the " +
			"dictionary build left out.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			dict := root.dictionary()

			if len(args) == 0 {
				report := dict.Warm()
				for _, f := range report.Failures {
					fmt.Fprintf(out, "%s\t%s\n", f.Word, f.Reason)
				}
				fmt.Fprintf(out, "%d entries, %d failures\n", dict.Len(), len(report.Failures))
				if len(report.Failures) > 0 {
					return errCheckFailed
				}
				return nil
			}

			parsed, err := wordlist.Parse(args[0])
			if err != nil {
				return err
			}

			failures := 0
			for _, w := range parsed.Words {
				if reason := verify(w.Text, dict.Resolve(w.Text)); reason != "" {
					failures++
					fmt.Fprintf(out, "%s\t%s\n", w.Text, reason)
				}
			}

			fmt.Fprintf(out, "%d words, %d failures (lines %d, comments %d, duplicates %d, inadmissible %d)\n",
				len(parsed.Words), failures,
				parsed.Stats.TotalLines, parsed.Stats.Comments, parsed.Stats.Duplicates, parsed.Stats.Inadmissible)
			if failures > 0 {
				return errCheckFailed
			}
			return nil
		},
	}
}

// verify returns why res is not a usable split of word, or "".
func verify(word string, res kwf.Result) string {
	if len(res.Syllables) == 0 {
		return "no syllables"
	}
	if len(res.Syllables) > domain.MaxSyllableCount {
		return fmt.Sprintf("%d syllables", len(res.Syllables))
	}
	if joined := strings.Join(res.Syllables, ""); joined != word {
		return fmt.Sprintf("syllables join to %q", joined)
	}
	for _, s := range res.Syllables {
		if s == "" {
			return "empty syllable"
		}
	}
	return ""
}
