// Package render draws scored guesses as coloured tiles for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordle/apps/go-engine/internal/game"
	"github.com/robalobadob/wordle/apps/go-engine/internal/wordle"
)

var (
	green  = lipgloss.Color("#6AAA64")
	yellow = lipgloss.Color("#C9B458")
	grey   = lipgloss.Color("#787C7E")
	ink    = lipgloss.Color("#FFFFFF")
)

// Styles holds one tile style per classification plus the empty slot.
type Styles struct {
	Correct   lipgloss.Style
	Misplaced lipgloss.Style
	Wrong     lipgloss.Style
	Empty     lipgloss.Style
	Caption   lipgloss.Style
}

// NewStyles builds styles bound to a renderer for w. Colour is dropped
// automatically when w is not a terminal.
func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	tile := r.NewStyle().Bold(true).Padding(0, 1).Foreground(ink)
	return Styles{
		Correct:   tile.Background(green),
		Misplaced: tile.Background(yellow),
		Wrong:     tile.Background(grey),
		Empty:     r.NewStyle().Padding(0, 1).Faint(true),
		Caption:   r.NewStyle().Faint(true),
	}
}

func (s Styles) tile(c wordle.Correctness) lipgloss.Style {
	switch c {
	case wordle.Correct:
		return s.Correct
	case wordle.Misplaced:
		return s.Misplaced
	}
	return s.Wrong
}

// Row renders one guess. Without colour the glyph form is appended so the
// result stays readable.
func (s Styles) Row(g wordle.Guess) string {
	cells := make([]string, len(g.Word))
	for i := 0; i < len(g.Word); i++ {
		c := wordle.Wrong
		if i < len(g.Mask) {
			c = g.Mask[i]
		}
		cells[i] = s.tile(c).Render(strings.ToUpper(g.Word[i : i+1]))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...) + "  " + s.Caption.Render(g.Mask.String())
}

// Board renders every guess followed by empty rows up to maxGuesses.
func (s Styles) Board(guesses []wordle.Guess, maxGuesses, length int) string {
	rows := make([]string, 0, maxGuesses)
	for _, g := range guesses {
		rows = append(rows, s.Row(g))
	}
	empty := strings.Repeat(s.Empty.Render("_"), length)
	for len(rows) < maxGuesses {
		rows = append(rows, empty)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Summary renders a one-line score record.
func (s Styles) Summary(r game.ScoreRecord) string {
	return s.Caption.Render(fmt.Sprintf("played %d  won %d  lost %d  streak %d  best %d  win rate %.0f%%",
		r.Played(), r.Wins, r.Losses, r.Streak, r.BestStreak, 100*r.WinRate()))
}
