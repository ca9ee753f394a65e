package nbexplainify

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "nb-explainify",
	Short: "Augment a Jupyter notebook with AI-generated explanations",
	Long: `nb-explainify rewrites a notebook with generated documentation: an
introduction, a markdown explanation before each code cell, inline code
comments, optimized code, and a closing summary. Every pass can be
toggled off individually.`,
}

var verboseLogging bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseLogging, verboseFlagName, "v", false, verboseFlagUsage)
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verboseLogging {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
