package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/pantig-backend/internal/service/syllabifier/kwf"
)

type splitOptions struct {
	rulesOnly bool
	asJSON    bool
	sep       string
}

type splitLine struct {
	Word      string   `json:"word"`
	Syllables []string `json:"syllables"`
	Source    string   `json:"source"`
}

func newSplitCmd(root *rootOptions) *cobra.Command {
	opts := &splitOptions{}

	cmd := &cobra.Command{
		Use:   "split [word...]",
		Short: "Split words into syllables",
		Long:  "Split each argument into syllables. With no arguments, words are read from stdin one per line.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var resolve func(string) kwf.Result
			if opts.rulesOnly {
				resolve = func(w string) kwf.Result {
					return kwf.Result{Syllables: kwf.Split(w), Source: kwf.SourceRules}
				}
			} else {
				resolve = root.dictionary().Resolve
			}

			emit := func(word string) error {
				res := resolve(word)
				if opts.asJSON {
					return json.NewEncoder(cmd.OutOrStdout()).Encode(splitLine{
						Word:      word,
						Syllables: res.Syllables,
						Source:    string(res.Source),
					})
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(res.Syllables, opts.sep))
				return err
			}

			if len(args) > 0 {
				for _, w := range args {
					if err := emit(w); err != nil {
						return err
					}
				}
				return nil
			}

			sc := bufio.NewScanner(cmd.InOrStdin())
			for sc.Scan() {
				w := strings.TrimSpace(sc.Text())
				if w == "" {
					continue
				}
				if err := emit(w); err != nil {
					return err
				}
			}
			return sc.Err()
		},
	}

	cmd.Flags().BoolVar(&opts.rulesOnly, "rules", false, "skip the dictionary and use the rule engine only")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print one JSON object per word")
	cmd.Flags().StringVar(&opts.sep, "sep", "-", "separator between syllables")
	return cmd
}
