// Package client talks to the remote brainkeep API over HTTP/JSON.
//
// The package owns the wire contract: request/response shapes are decoded
// into explicit types at this boundary and every failure is mapped onto the
// package's error taxonomy, so nothing above this layer ever inspects an
// HTTP status code or a loose JSON shape.
package client

import (
	"context"
	"io"

	"github.com/brainkeep/brainkeep/internal/client/models"
)

// Client defines the remote operations the brainkeep CLI needs.
//
// Authenticated calls take the session credential explicitly; callers decide
// where it is stored. All methods honor context cancellation.
type Client interface {
	SignUp(ctx context.Context, username, password, email string) (string, error)
	SignIn(ctx context.Context, username, password string) (string, error)
	GoogleSignIn(ctx context.Context, credential string) (string, error)

	ListContent(ctx context.Context, token string) ([]models.ContentItem, error)
	CreateContent(ctx context.Context, token string, draft models.ContentDraft) error
	DeleteContent(ctx context.Context, token, contentID string) error
	UploadFile(ctx context.Context, token, title string, tags []string, filename string, file io.Reader) error

	CreateShareLink(ctx context.Context, token string) (string, error)
	GetSharedCollection(ctx context.Context, shareID string) (*models.SharedCollection, error)
}
