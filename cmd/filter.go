package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rnwolfe/sift/internal/config"
	"github.com/rnwolfe/sift/internal/match"
	"github.com/rnwolfe/sift/internal/pinyin"
	"github.com/rnwolfe/sift/internal/ui"
)

var (
	filterFile    string
	filterFirst   bool
	filterNoColor bool
)

var filterCmd = &cobra.Command{
	Use:   "filter <query>",
	Short: "Print the lines matching a query",
	Long: `Read lines from stdin (or --file) and print those the query
matches, with matched characters highlighted when stdout is a terminal.`,
	Args: cobra.ExactArgs(1),
	RunE: runFilter,
}

func init() {
	filterCmd.Flags().StringVarP(&filterFile, "file", "f", "", "Read lines from a file instead of stdin")
	filterCmd.Flags().BoolVar(&filterFirst, "first", false, "Print only the best-matching line")
	filterCmd.Flags().BoolVar(&filterNoColor, "no-color", false, "Disable highlighting")
}

// matched pairs one input line with its hit ranges.
type matched struct {
	text string
	hits match.Matrix
}

func runFilter(_ *cobra.Command, args []string) error {
	query := args[0]

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if filterNoColor || !cfg.ColorEnabled() {
		ui.DisableColor()
	}

	lines, err := readLines(filterFile)
	if err != nil {
		return err
	}

	provider := providerFor(cfg)
	width := outputWidth()

	var results []matched
	for _, line := range lines {
		if hits := match.Search(line, query, provider); hits != nil {
			results = append(results, matched{text: line, hits: hits})
		}
	}

	if filterFirst && len(results) > 1 {
		best := results[0]
		for _, r := range results[1:] {
			if better(r, best) {
				best = r
			}
		}
		results = results[:1]
		results[0] = best
	}

	for _, r := range results {
		text := truncate(r.text, width)
		ui.Puts(ui.Highlight(text, r.hits))
	}
	return nil
}

// better orders matches the way the picker ranks them: fewer fragments,
// then an earlier first hit, then shorter text.
func better(a, b matched) bool {
	if len(a.hits) != len(b.hits) {
		return len(a.hits) < len(b.hits)
	}
	if a.hits[0].Start != b.hits[0].Start {
		return a.hits[0].Start < b.hits[0].Start
	}
	return len(a.text) < len(b.text)
}

// providerFor selects the boundary-map builder the config asks for.
func providerFor(cfg *config.Config) match.Provider {
	if cfg.Search.HeteronymEnabled() {
		return pinyin.Map
	}
	return pinyin.Single
}

// readLines collects non-empty lines from path, or stdin when path is
// empty.
func readLines(path string) ([]string, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		r = f
	}

	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if line := sc.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return lines, nil
}

// outputWidth returns the terminal width of stdout, or 0 when output is
// not a terminal (no truncation then).
func outputWidth() int {
	if !ui.IsStdoutTTY() {
		return 0
	}
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 0
	}
	return w
}

// truncate clips s to at most width runes, marking the cut with an
// ellipsis. width 0 means unlimited.
func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}
