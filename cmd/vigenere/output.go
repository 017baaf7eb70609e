package main

import (
	"fmt"
	"io"

	"github.com/Glqzer/vigenere/pkg/analysis"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	header lipgloss.Style
	key    lipgloss.Style
	dim    lipgloss.Style
}

// newStyles renders colour only when w is a terminal.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		header: r.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		key:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		dim:    r.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

func printScores(w io.Writer, scores []analysis.KeySizeScore) {
	st := newStyles(w)
	fmt.Fprintln(w, st.header.Render("LENGTH  MEAN IC"))
	for _, s := range scores {
		fmt.Fprintf(w, "%6d  %.6f\n", s.Length, s.IC)
	}
}

func printCandidates(w io.Writer, candidates []analysis.Candidate) {
	st := newStyles(w)
	for i, c := range candidates {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s %s %s\n",
			st.header.Render(fmt.Sprintf("#%d key length %d", i+1, c.KeyLength)),
			st.dim.Render(fmt.Sprintf("(IC %.4f)", c.IC)),
			st.key.Render(c.Key.String()),
		)
		fmt.Fprintln(w, c.Plaintext)
	}
}
