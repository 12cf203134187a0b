package ctl

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// styles is the small palette the reports use. When color is off every style
// renders text unchanged, so piped output stays diffable.
type styles struct {
	ok   lipgloss.Style
	bad  lipgloss.Style
	warn lipgloss.Style
	note lipgloss.Style
	bold lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{ok: plain, bad: plain, warn: plain, note: plain, bold: plain}
	}
	return styles{
		ok:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		bad:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		warn: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		note: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		bold: lipgloss.NewStyle().Bold(true),
	}
}

// line prints a two-state status row.
func (a *App) line(ok bool, msg string) {
	icon := a.styles.ok.Render("✓")
	if !ok {
		icon = a.styles.bad.Render("✗")
	}
	fmt.Fprintf(a.Out, "  %s %s\n", icon, msg)
}

// header prints a bold section title.
func (a *App) header(format string, args ...any) {
	fmt.Fprintln(a.Out, a.styles.bold.Render(fmt.Sprintf(format, args...)))
}
