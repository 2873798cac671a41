package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/brainkeep/brainkeep/internal/client/client"
	"github.com/brainkeep/brainkeep/internal/client/models"
	"github.com/brainkeep/brainkeep/internal/client/session"
	"github.com/brainkeep/brainkeep/internal/logging"
)

// ErrNoShareLink means the store acknowledged the share request but
// produced no usable link.
var ErrNoShareLink = errors.New("no share link found")

// Refresher triggers a cache refresh after a successful mutation.
// *cache.Cache satisfies it.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Clipboard abstracts the system clipboard so Share stays testable.
type Clipboard interface {
	WriteAll(text string) error
}

// ContentService coordinates mutations against the content store. Every
// successful mutation triggers a full cache refresh; a failed mutation
// leaves the cache untouched so the previous collection keeps being
// displayed until a later refresh succeeds. No call is ever retried
// automatically.
type ContentService interface {
	Create(ctx context.Context, draft models.ContentDraft) error
	Upload(ctx context.Context, path, title string, tags []string) error
	Remove(ctx context.Context, id string) error
	Share(ctx context.Context) (string, error)
	SharedView(ctx context.Context, shareID string) (*models.SharedCollection, error)
}

type contentService struct {
	client    client.Client
	session   *session.Store
	refresher Refresher
	clipboard Clipboard
	log       logging.Logger
}

// NewContentService wires the mutation coordinator. clipboard may be nil,
// in which case Share skips the copy and only returns the link.
func NewContentService(c client.Client, st *session.Store, r Refresher, cb Clipboard, log logging.Logger) ContentService {
	return &contentService{client: c, session: st, refresher: r, clipboard: cb, log: log}
}

// Create validates the draft, sends it, and refreshes the cache on
// success. Validation failures are reported before any request is made.
func (s *contentService) Create(ctx context.Context, draft models.ContentDraft) error {
	if strings.TrimSpace(draft.Title) == "" || strings.TrimSpace(draft.Link) == "" {
		return fmt.Errorf("%w: title and link are required", client.ErrValidation)
	}
	token, err := s.token()
	if err != nil {
		return err
	}

	draft.Tags = models.NormalizeTags(draft.Tags)
	if err := s.client.CreateContent(ctx, token, draft); err != nil {
		return err
	}

	s.refreshAfterMutation(ctx, "create")
	return nil
}

// Upload sends the file-backed variant: the file at path plus title and
// tags. Availability of this capability is gated by configuration at the
// command layer, not here.
func (s *contentService) Upload(ctx context.Context, path, title string, tags []string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title is required", client.ErrValidation)
	}
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("%w: file path is required", client.ErrValidation)
	}
	token, err := s.token()
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	tags = models.NormalizeTags(tags)
	if err := s.client.UploadFile(ctx, token, title, tags, filepath.Base(path), f); err != nil {
		return err
	}

	s.refreshAfterMutation(ctx, "upload")
	return nil
}

func (s *contentService) Remove(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: content id is required", client.ErrValidation)
	}
	token, err := s.token()
	if err != nil {
		return err
	}

	if err := s.client.DeleteContent(ctx, token, id); err != nil {
		return err
	}

	s.refreshAfterMutation(ctx, "delete")
	return nil
}

// Share requests a public link for the current collection and copies it to
// the clipboard. An acknowledged request without a link is ErrNoShareLink
// and nothing touches the clipboard. A clipboard failure is logged, not
// fatal: the link is still returned for manual copying.
func (s *contentService) Share(ctx context.Context) (string, error) {
	token, err := s.token()
	if err != nil {
		return "", err
	}

	link, err := s.client.CreateShareLink(ctx, token)
	if err != nil {
		return "", err
	}
	if link == "" {
		return "", ErrNoShareLink
	}

	if s.clipboard != nil {
		if err := s.clipboard.WriteAll(link); err != nil {
			s.log.Warn(ctx, "clipboard write failed", "error", err)
		}
	}
	return link, nil
}

// SharedView fetches the read-only snapshot behind a share id. No
// credential is involved.
func (s *contentService) SharedView(ctx context.Context, shareID string) (*models.SharedCollection, error) {
	if strings.TrimSpace(shareID) == "" {
		return nil, fmt.Errorf("%w: share id is required", client.ErrValidation)
	}
	return s.client.GetSharedCollection(ctx, shareID)
}

func (s *contentService) token() (string, error) {
	token := s.session.Token()
	if token == "" {
		return "", fmt.Errorf("%w: no session credential stored", client.ErrUnauthenticated)
	}
	return token, nil
}

// refreshAfterMutation re-fetches the collection so the next snapshot
// reflects the mutation. The mutation itself already succeeded, so a
// failed refresh is only logged; the periodic watcher will catch up.
func (s *contentService) refreshAfterMutation(ctx context.Context, op string) {
	if err := s.refresher.Refresh(ctx); err != nil {
		s.log.Warn(ctx, "refresh after mutation failed", "op", op, "error", err)
	}
}
