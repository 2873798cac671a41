package cli

import (
	"context"
	"errors"

	"github.com/brainkeep/brainkeep/internal/client/client"
)

// Register prompts for new-account details. When the username is already
// taken the user is pointed at 'login' instead of seeing a generic
// failure.
func (a *App) Register(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Choose a username", a.notify.w)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Email (optional)", a.notify.w)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.notify.w)
	if err != nil {
		return err
	}

	if err := a.auth.Register(ctx, username, password, email); err != nil {
		if errors.Is(err, client.ErrUserExists) {
			a.notify.Failuref("that username is taken, sign in instead with 'login'")
			return err
		}
		a.notifyFailure("registration", err)
		return err
	}

	a.notify.Successf("Account created, you are signed in as %s", username)
	a.startWatcher(ctx)
	return nil
}

func (a *App) Login(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Username", a.notify.w)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.notify.w)
	if err != nil {
		return err
	}

	if err := a.auth.Login(ctx, username, password); err != nil {
		a.notifyFailure("sign in", err)
		return err
	}

	a.notify.Successf("Signed in as %s", username)
	a.startWatcher(ctx)
	return nil
}

// GoogleLogin takes the identity credential the provider handed the user
// and exchanges it for a session. The credential is pasted, not typed, so
// a plain prompt is fine.
func (a *App) GoogleLogin(ctx context.Context) error {
	credential, err := GetSimpleText(a.reader, "Paste your Google identity credential", a.notify.w)
	if err != nil {
		return err
	}

	if err := a.auth.GoogleLogin(ctx, credential); err != nil {
		a.notifyFailure("sign in", err)
		return err
	}

	a.notify.Successf("Signed in with Google")
	a.startWatcher(ctx)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.stopWatcher()
	if err := a.auth.Logout(ctx); err != nil {
		a.notifyFailure("sign out", err)
		return err
	}
	a.notify.Successf("Signed out")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	info, err := a.auth.Current()
	if err != nil {
		a.notifyFailure("whoami", err)
		return err
	}

	if info.Username == "" {
		a.notify.Infof("Signed in (opaque credential, no profile data)")
	} else {
		a.notify.Infof("Signed in as %s", info.Username)
	}
	if !info.ExpiresAt.IsZero() {
		a.notify.Infof("Session expires %s", info.ExpiresAt.Format("2006-01-02 15:04"))
	}
	return nil
}
