package cli

import (
	"context"
	"errors"

	"github.com/brainkeep/brainkeep/internal/client/services"
)

// Share requests a public link for the whole collection. The service
// copies the link to the clipboard; the link is also printed so it can be
// passed along even when no clipboard is available.
func (a *App) Share(ctx context.Context) error {
	link, err := a.content.Share(ctx)
	if err != nil {
		if errors.Is(err, services.ErrNoShareLink) {
			a.notify.Failuref("No share link found.")
			return err
		}
		a.notifyFailure("share", err)
		return err
	}

	a.notify.Successf("Link copied to clipboard!")
	a.notify.Printf("%s\n", link)
	return nil
}

// Open fetches and renders a shared collection by its share id. Works
// without signing in.
func (a *App) Open(ctx context.Context, args []string) error {
	var (
		shareID string
		err     error
	)
	if len(args) > 0 {
		shareID = args[0]
	} else {
		shareID, err = GetSimpleText(a.reader, "Share id", a.notify.w)
		if err != nil {
			return err
		}
	}

	shared, err := a.content.SharedView(ctx, shareID)
	if err != nil {
		a.notifyFailure("opening shared collection", err)
		return err
	}

	a.notify.Infof("Shared by %s", shared.Username)
	a.renderList(shared.Content)
	return nil
}
