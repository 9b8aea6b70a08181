package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rnwolfe/sift/internal/config"
	"github.com/rnwolfe/sift/internal/history"
	"github.com/rnwolfe/sift/internal/store"
	"github.com/rnwolfe/sift/internal/tui"
	"github.com/rnwolfe/sift/internal/ui"
)

var (
	pickFile   string
	pickQuery  string
	pickResume bool
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Interactively pick one line",
	Long: `Read lines from stdin (or --file) and open an interactive picker.
The selected line is printed to stdout and remembered; frequently picked
lines rank higher next time.`,
	RunE: runPick,
}

func init() {
	pickCmd.Flags().StringVarP(&pickFile, "file", "f", "", "Read lines from a file instead of stdin")
	pickCmd.Flags().StringVarP(&pickQuery, "query", "q", "", "Pre-fill the search query")
	pickCmd.Flags().BoolVar(&pickResume, "resume", false, "Pre-fill the previous session's query")
}

func runPick(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	lines, err := readLines(pickFile)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return fmt.Errorf("no input lines")
	}

	opts := []tui.PickerOption{
		tui.WithPrompt(cfg.Picker.Prompt),
		tui.WithHeight(cfg.Picker.Height),
		tui.WithQuery(pickQuery),
	}

	// History is best-effort: the picker works without a database.
	var picks *history.Store
	if db, err := store.Open(); err == nil {
		defer db.Close()
		picks = history.NewStore(db.Conn())
		if counts, err := picks.Counts(); err == nil {
			opts = append(opts, tui.WithCounts(counts))
		}
		if pickResume && pickQuery == "" {
			if q, err := picks.LastQuery(); err == nil && q != "" {
				opts = append(opts, tui.WithQuery(q))
			}
		}
	}

	res, err := tui.Run(lines, providerFor(cfg), opts...)
	if err != nil {
		return err
	}
	if !res.OK {
		return nil
	}

	ui.Puts(res.Choice)
	if picks != nil {
		if err := picks.Record(res.Choice, res.Query); err != nil {
			ui.Warn(err.Error())
		}
		if res.Query != "" {
			_ = picks.SetLastQuery(res.Query)
		}
	}
	return nil
}
