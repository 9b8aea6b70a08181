// Package tui implements the interactive picker: a Bubbletea list that
// re-matches every candidate line against the query on each keystroke,
// with matched characters highlighted in place.
package tui

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/rnwolfe/sift/internal/match"
	"github.com/rnwolfe/sift/internal/ui"
)

// Line is one pickable candidate. Its transliteration mapping is built
// once at startup and shared read-only by every subsequent keystroke.
type Line struct {
	Text    string
	mapping *match.Mapping
	hits    match.Matrix
}

// PickerOption configures a Picker.
type PickerOption func(*Picker)

// WithPrompt sets the search prompt character(s).
func WithPrompt(prompt string) PickerOption {
	return func(p *Picker) { p.prompt = prompt }
}

// WithHeight sets the maximum visible items (0 = auto).
func WithHeight(h int) PickerOption {
	return func(p *Picker) { p.height = h }
}

// WithQuery pre-fills the search query.
func WithQuery(q string) PickerOption {
	return func(p *Picker) { p.query = q }
}

// WithCounts supplies historical pick frequencies; lines picked more
// often rank higher among equally good matches.
func WithCounts(counts map[string]int) PickerOption {
	return func(p *Picker) { p.counts = counts }
}

// Picker is a fuzzy list selector built on Bubbletea. Use Run for the
// common case, or create one and drive it manually.
type Picker struct {
	prompt string
	height int
	counts map[string]int

	lines    []*Line
	filtered []*Line
	query    string
	cursor   int
	offset   int // viewport scroll offset
	chosen   string
	chosenOK bool
	canceled bool

	termWidth  int
	termHeight int
}

// NewPicker creates a Picker over texts. provider builds the boundary
// mapping for each line up front.
func NewPicker(texts []string, provider match.Provider, opts ...PickerOption) *Picker {
	p := &Picker{
		prompt:     "> ",
		height:     10,
		termWidth:  80,
		termHeight: 24,
	}
	for _, opt := range opts {
		opt(p)
	}
	for _, t := range texts {
		p.lines = append(p.lines, &Line{Text: t, mapping: provider(t)})
	}
	p.applyFilter()
	return p
}

// Result is the outcome of one picker session.
type Result struct {
	Choice string
	Query  string // the query at selection time
	OK     bool   // false when the user canceled
}

// Run shows a picker and returns the selected line. When stdin is a pipe
// (the usual case, lines arrive on it), input is read from the
// controlling terminal instead.
func Run(texts []string, provider match.Provider, opts ...PickerOption) (Result, error) {
	p := NewPicker(texts, provider, opts...)

	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if !IsTTY() {
		tty, err := os.Open("/dev/tty")
		if err != nil {
			return Result{}, fmt.Errorf("picker needs a terminal: %w", err)
		}
		defer tty.Close()
		progOpts = append(progOpts, tea.WithInput(tty))
	}

	m, err := tea.NewProgram(p, progOpts...).Run()
	if err != nil {
		return Result{}, fmt.Errorf("picker: %w", err)
	}
	result := m.(*Picker)
	if result.canceled || !result.chosenOK {
		return Result{}, nil
	}
	return Result{Choice: result.chosen, Query: result.query, OK: true}, nil
}

// IsTTY returns true when stdin is connected to a terminal.
func IsTTY() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// --- Bubbletea model implementation ---

func (p *Picker) Init() tea.Cmd {
	return nil
}

func (p *Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.termWidth = msg.Width
		p.termHeight = msg.Height
		return p, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			p.canceled = true
			return p, tea.Quit

		case "enter":
			if len(p.filtered) > 0 {
				p.chosen = p.filtered[p.cursor].Text
				p.chosenOK = true
			}
			return p, tea.Quit

		case "up", "ctrl+p":
			if p.cursor > 0 {
				p.cursor--
				if p.cursor < p.offset {
					p.offset = p.cursor
				}
			}
			return p, nil

		case "down", "ctrl+n":
			if p.cursor < len(p.filtered)-1 {
				p.cursor++
				vis := p.visibleHeight()
				if p.cursor >= p.offset+vis {
					p.offset = p.cursor - vis + 1
				}
			}
			return p, nil

		case "backspace":
			if len(p.query) > 0 {
				p.query = p.query[:len(p.query)-1]
				p.applyFilter()
			}
			return p, nil

		default:
			if len(msg.String()) == 1 {
				p.query += msg.String()
				p.applyFilter()
			}
			return p, nil
		}
	}
	return p, nil
}

func (p *Picker) View() string {
	var b strings.Builder

	// Query input
	cursor := lipgloss.NewStyle().Foreground(ui.Glint).Bold(true).Render(p.prompt)
	b.WriteString("  " + cursor + p.query + blinkCursor() + "\n\n")

	// Filtered list
	vis := p.visibleHeight()
	end := p.offset + vis
	if end > len(p.filtered) {
		end = len(p.filtered)
	}

	if len(p.filtered) == 0 {
		b.WriteString("  " + ui.Muted.Render("No matches") + "\n")
	} else {
		for i := p.offset; i < end; i++ {
			b.WriteString(p.renderLine(p.filtered[i], i == p.cursor) + "\n")
		}
	}

	// Status bar
	b.WriteString("\n")
	status := ui.Muted.Render(fmt.Sprintf("  %d/%d", len(p.filtered), len(p.lines)))
	help := ui.Muted.Render(" · ↑↓ navigate · enter select · esc cancel")
	b.WriteString(status + help + "\n")

	return b.String()
}

// --- internal helpers ---

func (p *Picker) visibleHeight() int {
	h := p.height
	if h <= 0 || h > p.termHeight-5 {
		h = p.termHeight - 5
	}
	if h < 3 {
		h = 3
	}
	return h
}

// applyFilter re-matches every line against the current query. An empty
// query keeps the input order; otherwise lines that match are ranked by
// rankLess.
func (p *Picker) applyFilter() {
	p.filtered = nil
	if strings.TrimSpace(p.query) == "" {
		for _, l := range p.lines {
			l.hits = nil
			p.filtered = append(p.filtered, l)
		}
	} else {
		for _, l := range p.lines {
			cached := l.mapping
			hits := match.Search(l.Text, p.query, func(string) *match.Mapping { return cached })
			if hits != nil {
				l.hits = hits
				p.filtered = append(p.filtered, l)
			}
		}
		p.sortFiltered()
	}
	p.cursor = 0
	p.offset = 0
}

// rankLess orders matched lines: fewer fragments first, then earlier
// first hit, then more frequently picked, then shorter text.
func (p *Picker) rankLess(a, b *Line) bool {
	if len(a.hits) != len(b.hits) {
		return len(a.hits) < len(b.hits)
	}
	if len(a.hits) > 0 && a.hits[0].Start != b.hits[0].Start {
		return a.hits[0].Start < b.hits[0].Start
	}
	if ca, cb := p.counts[a.Text], p.counts[b.Text]; ca != cb {
		return ca > cb
	}
	return len(a.Text) < len(b.Text)
}

// sortFiltered is a stable insertion sort; candidate lists are small.
func (p *Picker) sortFiltered() {
	for i := 1; i < len(p.filtered); i++ {
		key := p.filtered[i]
		j := i - 1
		for j >= 0 && p.rankLess(key, p.filtered[j]) {
			p.filtered[j+1] = p.filtered[j]
			j--
		}
		p.filtered[j+1] = key
	}
}

func (p *Picker) renderLine(l *Line, selected bool) string {
	// Styling wraps the individual pieces, never the composed line: the
	// highlighted text already carries escape sequences.
	pointer := "  "
	if selected {
		pointer = ui.Accent.Render(ui.IconArrow + " ")
	}
	return "  " + pointer + ui.HighlightWith(l.Text, l.hits, func(s string) string { return ui.Match.Render(s) })
}

func blinkCursor() string {
	return lipgloss.NewStyle().Foreground(ui.Glint).Render("▎")
}
