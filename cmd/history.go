package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rnwolfe/sift/internal/history"
	"github.com/rnwolfe/sift/internal/store"
	"github.com/rnwolfe/sift/internal/ui"
)

var (
	historyN     int
	historyClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent picks",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyN, "number", "n", 20, "How many picks to show")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "Delete all recorded picks")
}

func runHistory(_ *cobra.Command, _ []string) error {
	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer db.Close()
	picks := history.NewStore(db.Conn())

	if historyClear {
		if err := picks.Clear(); err != nil {
			return err
		}
		ui.Ok("history cleared")
		return nil
	}

	recent, err := picks.Recent(historyN)
	if err != nil {
		return err
	}
	if len(recent) == 0 {
		ui.Inf("No picks recorded yet.")
		return nil
	}

	for _, p := range recent {
		stamp := ui.Muted.Render(p.PickedAt.Format("2006-01-02 15:04"))
		ui.Putsf("%s  %s", stamp, p.Text)
	}
	return nil
}
