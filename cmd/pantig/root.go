package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/pantig-backend/internal/app"
	"github.com/heartmarshall/pantig-backend/internal/config"
	"github.com/heartmarshall/pantig-backend/internal/service/syllabifier/kwf"
)

type rootOptions struct {
	wordList string
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "pantig",
		Short:        "Filipino syllabifier",
		Version:      app.BuildVersion(),
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.wordList, "word-list", "", "word list replacing the bundled one")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	cmd.AddCommand(
		newSplitCmd(opts),
		newCheckCmd(opts),
		newDictCmd(opts),
	)
	return cmd
}

func (o *rootOptions) logger() *slog.Logger {
	return app.NewLogger(config.LogConfig{Level: o.logLevel, Format: "text"})
}

func (o *rootOptions) dictionary() *kwf.Dictionary {
	return app.NewDictionary(config.SyllabifierConfig{WordListPath: o.wordList}, o.logger())
}
