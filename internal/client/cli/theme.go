package cli

import (
	"context"

	"github.com/brainkeep/brainkeep/internal/client/session"
)

// Theme shows, sets, or toggles the display theme. The choice is
// persisted and survives restarts.
func (a *App) Theme(ctx context.Context, args []string) error {
	current := a.session.Theme()

	var next session.Theme
	switch {
	case len(args) == 0:
		if current == session.ThemeDark {
			next = session.ThemeLight
		} else {
			next = session.ThemeDark
		}
	case args[0] == string(session.ThemeLight):
		next = session.ThemeLight
	case args[0] == string(session.ThemeDark):
		next = session.ThemeDark
	default:
		a.notify.Failuref("usage: theme [light|dark]")
		return nil
	}

	if err := a.session.SetTheme(next); err != nil {
		a.notifyFailure("saving theme", err)
		return err
	}
	a.notify.SetTheme(next)
	a.notify.Successf("Theme: %s", next)
	return nil
}
