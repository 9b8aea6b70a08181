// Package cmd wires the sift command line: filter, pick, history,
// config, and version.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rnwolfe/sift/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "sift [query]",
	Short: "Pinyin-aware fuzzy filter for mixed-script text",
	Long: `sift filters and picks lines of mixed Chinese and Latin text.
A Latin query matches literal substrings and the pinyin readings of
Chinese characters, and every hit is mapped back to the characters of
the original line for highlighting.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runFilter(cmd, args)
	},
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.Err(err.Error())
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
