// Package services contains the application services of the brainkeep
// client: authentication and content mutation. Both sit between the CLI
// and the API client, own input validation, and convert every store-facing
// failure into an error the CLI can show as a notification.
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/brainkeep/brainkeep/internal/client/client"
	"github.com/brainkeep/brainkeep/internal/client/session"
)

// SessionInfo is what the client can tell about the current session by
// decoding the stored token. The token is parsed without verification:
// the server is the authority, this is display data only.
type SessionInfo struct {
	Username  string
	ExpiresAt time.Time
}

// AuthService manages the session credential lifecycle.
//
// Contract:
//   - Register: create an account; a duplicate user surfaces as
//     client.ErrUserExists so callers can offer sign-in instead.
//   - Login / GoogleLogin: authenticate and store the credential.
//   - Logout: drop the stored credential.
//   - Current: decoded claims of the stored token for display.
type AuthService interface {
	Register(ctx context.Context, username, password, email string) error
	Login(ctx context.Context, username, password string) error
	GoogleLogin(ctx context.Context, credential string) error
	Logout(ctx context.Context) error
	IsAuthenticated() bool
	Current() (*SessionInfo, error)
}

type authService struct {
	client  client.Client
	session *session.Store
}

// NewAuthService constructs an AuthService bound to the API client and the
// local session store.
func NewAuthService(c client.Client, st *session.Store) AuthService {
	return &authService{client: c, session: st}
}

func (a *authService) Register(ctx context.Context, username, password, email string) error {
	if strings.TrimSpace(username) == "" || password == "" {
		return fmt.Errorf("%w: username and password are required", client.ErrValidation)
	}

	token, err := a.client.SignUp(ctx, username, password, email)
	if err != nil {
		return err
	}
	if err := a.session.SetToken(token); err != nil {
		return fmt.Errorf("storing credential: %w", err)
	}
	return nil
}

func (a *authService) Login(ctx context.Context, username, password string) error {
	if strings.TrimSpace(username) == "" || password == "" {
		return fmt.Errorf("%w: username and password are required", client.ErrValidation)
	}

	token, err := a.client.SignIn(ctx, username, password)
	if err != nil {
		return err
	}
	if err := a.session.SetToken(token); err != nil {
		return fmt.Errorf("storing credential: %w", err)
	}
	return nil
}

// GoogleLogin exchanges an identity-provider credential for a session
// token. The credential is whatever the provider handed the user; the
// client does not interpret it.
func (a *authService) GoogleLogin(ctx context.Context, credential string) error {
	if strings.TrimSpace(credential) == "" {
		return fmt.Errorf("%w: identity credential is required", client.ErrValidation)
	}

	token, err := a.client.GoogleSignIn(ctx, credential)
	if err != nil {
		return err
	}
	if err := a.session.SetToken(token); err != nil {
		return fmt.Errorf("storing credential: %w", err)
	}
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.session.ClearToken()
}

func (a *authService) IsAuthenticated() bool {
	return a.session.Token() != ""
}

// Current decodes the stored token without verifying its signature and
// extracts a username-ish claim and the expiry when present. An opaque
// (non-JWT) token yields a SessionInfo with empty fields rather than an
// error as long as a credential is stored.
func (a *authService) Current() (*SessionInfo, error) {
	token := a.session.Token()
	if token == "" {
		return nil, client.ErrUnauthenticated
	}

	info := &SessionInfo{}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return info, nil
	}
	for _, key := range []string{"username", "name", "sub"} {
		if v, ok := claims[key].(string); ok && v != "" {
			info.Username = v
			break
		}
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}
	return info, nil
}
