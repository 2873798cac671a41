package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/brainkeep/brainkeep/internal/client/session"
)

// palette is the set of styles for one theme. The persisted theme
// preference selects which palette renders all user-facing output.
type palette struct {
	success lipgloss.Style
	failure lipgloss.Style
	info    lipgloss.Style
	title   lipgloss.Style
	faint   lipgloss.Style
	tag     lipgloss.Style
	card    lipgloss.Style
}

func newPalette(theme session.Theme) palette {
	if theme == session.ThemeDark {
		return palette{
			success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			failure: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
			info:    lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
			title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
			faint:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			tag:     lipgloss.NewStyle().Foreground(lipgloss.Color("183")),
			card:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		}
	}
	return palette{
		success: lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
		failure: lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
		info:    lipgloss.NewStyle().Foreground(lipgloss.Color("26")),
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("16")),
		faint:   lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		tag:     lipgloss.NewStyle().Foreground(lipgloss.Color("91")),
		card:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("250")).Padding(0, 1),
	}
}

// Notifier renders the user-visible success/failure notifications. It is
// the terminal stand-in for the web client's toasts: every store-facing
// outcome ends up here, never as an uncaught fault.
type Notifier struct {
	w io.Writer
	p palette
}

func NewNotifier(w io.Writer, theme session.Theme) *Notifier {
	return &Notifier{w: w, p: newPalette(theme)}
}

// SetTheme switches the active palette.
func (n *Notifier) SetTheme(theme session.Theme) {
	n.p = newPalette(theme)
}

func (n *Notifier) Successf(format string, args ...any) {
	fmt.Fprintln(n.w, n.p.success.Render("✓ "+fmt.Sprintf(format, args...)))
}

func (n *Notifier) Failuref(format string, args ...any) {
	fmt.Fprintln(n.w, n.p.failure.Render("✗ "+fmt.Sprintf(format, args...)))
}

func (n *Notifier) Infof(format string, args ...any) {
	fmt.Fprintln(n.w, n.p.info.Render(fmt.Sprintf(format, args...)))
}

// Printf writes unstyled output; list rendering applies its own styles.
func (n *Notifier) Printf(format string, args ...any) {
	fmt.Fprintf(n.w, format, args...)
}
