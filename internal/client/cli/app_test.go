package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brainkeep/brainkeep/internal/client/cache"
	"github.com/brainkeep/brainkeep/internal/client/client"
	"github.com/brainkeep/brainkeep/internal/client/config"
	"github.com/brainkeep/brainkeep/internal/client/models"
	"github.com/brainkeep/brainkeep/internal/client/services"
	"github.com/brainkeep/brainkeep/internal/client/session"
	"github.com/brainkeep/brainkeep/internal/logging"
)

type fakeAuth struct {
	registerErr error
	loginErr    error
	googleErr   error
	logoutErr   error
	currentErr  error

	authed bool
	info   *services.SessionInfo

	gotUsername string
	gotPassword string
	gotEmail    string
	gotCred     string
	loggedOut   bool
}

func (f *fakeAuth) Register(ctx context.Context, username, password, email string) error {
	f.gotUsername, f.gotPassword, f.gotEmail = username, password, email
	return f.registerErr
}

func (f *fakeAuth) Login(ctx context.Context, username, password string) error {
	f.gotUsername, f.gotPassword = username, password
	return f.loginErr
}

func (f *fakeAuth) GoogleLogin(ctx context.Context, credential string) error {
	f.gotCred = credential
	return f.googleErr
}

func (f *fakeAuth) Logout(ctx context.Context) error {
	f.loggedOut = true
	return f.logoutErr
}

func (f *fakeAuth) IsAuthenticated() bool { return f.authed }

func (f *fakeAuth) Current() (*services.SessionInfo, error) {
	if f.currentErr != nil {
		return nil, f.currentErr
	}
	if f.info == nil {
		return &services.SessionInfo{}, nil
	}
	return f.info, nil
}

type fakeContentSvc struct {
	createErr error
	uploadErr error
	removeErr error
	shareErr  error
	sharedErr error

	createdDraft models.ContentDraft
	uploadPath   string
	uploadTitle  string
	uploadTags   []string
	removedID    string
	shareLink    string
	shared       *models.SharedCollection
	gotShareID   string
}

func (f *fakeContentSvc) Create(ctx context.Context, draft models.ContentDraft) error {
	f.createdDraft = draft
	return f.createErr
}

func (f *fakeContentSvc) Upload(ctx context.Context, path, title string, tags []string) error {
	f.uploadPath, f.uploadTitle, f.uploadTags = path, title, tags
	return f.uploadErr
}

func (f *fakeContentSvc) Remove(ctx context.Context, id string) error {
	f.removedID = id
	return f.removeErr
}

func (f *fakeContentSvc) Share(ctx context.Context) (string, error) {
	return f.shareLink, f.shareErr
}

func (f *fakeContentSvc) SharedView(ctx context.Context, shareID string) (*models.SharedCollection, error) {
	f.gotShareID = shareID
	return f.shared, f.sharedErr
}

type fakeListClient struct {
	client.Client
	items []models.ContentItem
	err   error
}

func (f *fakeListClient) ListContent(ctx context.Context, token string) ([]models.ContentItem, error) {
	return f.items, f.err
}

type testApp struct {
	app     *App
	out     *bytes.Buffer
	auth    *fakeAuth
	content *fakeContentSvc
	listed  *fakeListClient
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	st, err := session.NewAt(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)
	require.NoError(t, st.SetToken("test-token"))

	out := &bytes.Buffer{}
	auth := &fakeAuth{authed: true}
	content := &fakeContentSvc{}
	listed := &fakeListClient{}
	log := logging.NewTextLogger(io.Discard, slog.LevelError)

	cfg := &config.Config{}
	cfg.LoadDefaults()

	a := &App{
		config:  cfg,
		session: st,
		auth:    auth,
		content: content,
		cache:   cache.New(listed, st, log),
		log:     log,
		filter:  models.NewFilterState(),
		notify:  NewNotifier(out, session.ThemeLight),
	}
	return &testApp{app: a, out: out, auth: auth, content: content, listed: listed}
}

func (ta *testApp) feed(script string) {
	ta.app.reader = bufio.NewReader(strings.NewReader(script))
}

func TestRegisterTakenUsernameOffersLogin(t *testing.T) {
	ta := newTestApp(t)
	ta.auth.registerErr = client.ErrUserExists
	ta.feed("alice\nalice@example.com\n")

	restore := stubPassword("secret")
	defer restore()

	err := ta.app.Register(context.Background())
	assert.ErrorIs(t, err, client.ErrUserExists)
	assert.Contains(t, ta.out.String(), "sign in instead")
}

func TestRegisterSuccess(t *testing.T) {
	ta := newTestApp(t)
	ta.feed("alice\n\n")

	restore := stubPassword("secret")
	defer restore()

	require.NoError(t, ta.app.Register(context.Background()))
	defer ta.app.stopWatcher()

	assert.Equal(t, "alice", ta.auth.gotUsername)
	assert.Equal(t, "secret", ta.auth.gotPassword)
	assert.Contains(t, ta.out.String(), "signed in as alice")
}

func TestLoginStoresCredentialAndNotifies(t *testing.T) {
	ta := newTestApp(t)
	ta.feed("bob\n")

	restore := stubPassword("pw")
	defer restore()

	require.NoError(t, ta.app.Login(context.Background()))
	defer ta.app.stopWatcher()

	assert.Equal(t, "bob", ta.auth.gotUsername)
	assert.Contains(t, ta.out.String(), "Signed in as bob")
}

func TestLoginFailureNotifies(t *testing.T) {
	ta := newTestApp(t)
	ta.auth.loginErr = client.ErrUnavailable
	ta.feed("bob\n")

	restore := stubPassword("pw")
	defer restore()

	err := ta.app.Login(context.Background())
	assert.ErrorIs(t, err, client.ErrUnavailable)
	assert.Contains(t, ta.out.String(), "server unavailable")
}

func TestGoogleLoginPassesCredential(t *testing.T) {
	ta := newTestApp(t)
	ta.feed("idp-credential\n")

	require.NoError(t, ta.app.GoogleLogin(context.Background()))
	defer ta.app.stopWatcher()

	assert.Equal(t, "idp-credential", ta.auth.gotCred)
	assert.Contains(t, ta.out.String(), "Signed in with Google")
}

func TestLogout(t *testing.T) {
	ta := newTestApp(t)
	require.NoError(t, ta.app.Logout(context.Background()))
	assert.True(t, ta.auth.loggedOut)
	assert.Contains(t, ta.out.String(), "Signed out")
}

func TestWhoAmI(t *testing.T) {
	ta := newTestApp(t)
	ta.auth.info = &services.SessionInfo{
		Username:  "carol",
		ExpiresAt: time.Date(2026, 1, 2, 15, 4, 0, 0, time.UTC),
	}
	require.NoError(t, ta.app.WhoAmI(context.Background()))
	assert.Contains(t, ta.out.String(), "carol")
	assert.Contains(t, ta.out.String(), "2026-01-02 15:04")
}

func TestWhoAmIOpaqueToken(t *testing.T) {
	ta := newTestApp(t)
	require.NoError(t, ta.app.WhoAmI(context.Background()))
	assert.Contains(t, ta.out.String(), "opaque credential")
}

func populateCache(t *testing.T, ta *testApp, items []models.ContentItem) {
	t.Helper()
	ta.listed.items = items
	require.NoError(t, ta.app.cache.Refresh(context.Background()))
}

func TestListRendersCachedItems(t *testing.T) {
	ta := newTestApp(t)
	populateCache(t, ta, []models.ContentItem{
		{ID: "1", Type: models.ContentTypeVideo, Title: "Talk", Link: "https://youtu.be/dQw4w9WgXcQ", Tags: []string{"go"}},
		{ID: "2", Type: models.ContentTypeDocument, Title: "Notes", Link: "https://example.com/doc"},
	})

	require.NoError(t, ta.app.List(context.Background()))
	out := ta.out.String()
	assert.Contains(t, out, "Talk")
	assert.Contains(t, out, "Notes")
	assert.Contains(t, out, "dQw4w9WgXcQ")
	assert.Contains(t, out, "#go")
	assert.Contains(t, out, "2 item(s)")
}

func TestListEmptyCollection(t *testing.T) {
	ta := newTestApp(t)
	populateCache(t, ta, nil)

	require.NoError(t, ta.app.List(context.Background()))
	assert.Contains(t, ta.out.String(), "Nothing here yet")
}

func TestListAppliesFilter(t *testing.T) {
	ta := newTestApp(t)
	populateCache(t, ta, []models.ContentItem{
		{ID: "1", Type: models.ContentTypeVideo, Title: "Talk", Link: "l1", Tags: []string{"go"}},
		{ID: "2", Type: models.ContentTypeDocument, Title: "Notes", Link: "l2", Tags: []string{"go"}},
	})
	ta.app.filter = ta.app.filter.WithType(models.ContentTypeDocument)

	require.NoError(t, ta.app.List(context.Background()))
	out := ta.out.String()
	assert.Contains(t, out, "Notes")
	assert.NotContains(t, out, "Talk")
	assert.Contains(t, out, "1 item(s)")
}

func TestListShowsStaleDataAfterFailedRefresh(t *testing.T) {
	ta := newTestApp(t)
	populateCache(t, ta, []models.ContentItem{
		{ID: "1", Type: models.ContentTypeVideo, Title: "Talk", Link: "l1"},
	})
	ta.listed.err = errors.New("boom")
	_ = ta.app.cache.Refresh(context.Background())

	_ = ta.app.List(context.Background())
	out := ta.out.String()
	assert.Contains(t, out, "showing previous data")
	assert.Contains(t, out, "Talk")
}

func TestTagsSortedUnique(t *testing.T) {
	ta := newTestApp(t)
	populateCache(t, ta, []models.ContentItem{
		{ID: "1", Type: models.ContentTypeVideo, Title: "a", Link: "l", Tags: []string{"zeta", "go"}},
		{ID: "2", Type: models.ContentTypeDocument, Title: "b", Link: "l", Tags: []string{"go"}},
	})

	require.NoError(t, ta.app.Tags(context.Background()))
	out := ta.out.String()
	assert.Contains(t, out, "#go")
	assert.Contains(t, out, "#zeta")
	assert.Less(t, strings.Index(out, "#go"), strings.Index(out, "#zeta"))
}

func TestCounts(t *testing.T) {
	ta := newTestApp(t)
	populateCache(t, ta, []models.ContentItem{
		{ID: "1", Type: models.ContentTypeVideo, Title: "a", Link: "l"},
		{ID: "2", Type: models.ContentTypeVideo, Title: "b", Link: "l"},
	})

	require.NoError(t, ta.app.Counts(context.Background()))
	assert.Contains(t, ta.out.String(), "video")
}

func TestFilterCommands(t *testing.T) {
	ta := newTestApp(t)

	require.NoError(t, ta.app.Filter(context.Background(), []string{"type", "video"}))
	assert.Equal(t, models.ContentTypeVideo, ta.app.filter.Type)

	require.NoError(t, ta.app.Filter(context.Background(), []string{"tag", "add", "work"}))
	assert.Equal(t, []string{"work"}, ta.app.filter.Tags)

	require.NoError(t, ta.app.Filter(context.Background(), []string{"tag", "rm", "work"}))
	assert.Empty(t, ta.app.filter.Tags)

	require.NoError(t, ta.app.Filter(context.Background(), []string{"clear"}))
	assert.True(t, ta.app.filter.IsDefault())
}

func TestFilterUnknownType(t *testing.T) {
	ta := newTestApp(t)
	require.NoError(t, ta.app.Filter(context.Background(), []string{"type", "bogus"}))
	assert.Contains(t, ta.out.String(), "unknown content type")
	assert.True(t, ta.app.filter.IsDefault())
}

func TestAddCreatesDraft(t *testing.T) {
	ta := newTestApp(t)
	ta.feed("video\nA Talk\nhttps://youtu.be/x\ngo\ntalks\n\n")

	require.NoError(t, ta.app.Add(context.Background()))
	assert.Equal(t, models.ContentTypeVideo, ta.content.createdDraft.Type)
	assert.Equal(t, "A Talk", ta.content.createdDraft.Title)
	assert.Equal(t, "https://youtu.be/x", ta.content.createdDraft.Link)
	assert.Equal(t, []string{"go", "talks"}, ta.content.createdDraft.Tags)
	assert.Contains(t, ta.out.String(), "Added")
}

func TestAddRejectsUnknownType(t *testing.T) {
	ta := newTestApp(t)
	ta.feed("bogus\n")

	require.NoError(t, ta.app.Add(context.Background()))
	assert.Empty(t, ta.content.createdDraft.Title)
	assert.Contains(t, ta.out.String(), "unknown content type")
}

func TestAddFileUploads(t *testing.T) {
	ta := newTestApp(t)
	ta.feed("/tmp/report.pdf\nQ3 Report\nfinance\n\n")

	require.NoError(t, ta.app.AddFile(context.Background()))
	assert.Equal(t, "/tmp/report.pdf", ta.content.uploadPath)
	assert.Equal(t, "Q3 Report", ta.content.uploadTitle)
	assert.Equal(t, []string{"finance"}, ta.content.uploadTags)
}

func TestDeleteWithArg(t *testing.T) {
	ta := newTestApp(t)
	require.NoError(t, ta.app.Delete(context.Background(), []string{"abc123"}))
	assert.Equal(t, "abc123", ta.content.removedID)
	assert.Contains(t, ta.out.String(), "Deleted")
}

func TestDeletePromptsWithoutArg(t *testing.T) {
	ta := newTestApp(t)
	ta.feed("def456\n")
	require.NoError(t, ta.app.Delete(context.Background(), nil))
	assert.Equal(t, "def456", ta.content.removedID)
}

func TestShareSuccess(t *testing.T) {
	ta := newTestApp(t)
	ta.content.shareLink = "http://localhost:3000/share/abc"

	require.NoError(t, ta.app.Share(context.Background()))
	out := ta.out.String()
	assert.Contains(t, out, "Link copied to clipboard!")
	assert.Contains(t, out, "http://localhost:3000/share/abc")
}

func TestShareNoLink(t *testing.T) {
	ta := newTestApp(t)
	ta.content.shareErr = services.ErrNoShareLink

	err := ta.app.Share(context.Background())
	assert.ErrorIs(t, err, services.ErrNoShareLink)
	assert.Contains(t, ta.out.String(), "No share link found.")
}

func TestOpenRendersSharedCollection(t *testing.T) {
	ta := newTestApp(t)
	ta.content.shared = &models.SharedCollection{
		Username: "dora",
		Content: []models.ContentItem{
			{ID: "1", Type: models.ContentTypeSocial, Title: "Thread", Link: "https://x.com/u/status/42"},
		},
	}

	require.NoError(t, ta.app.Open(context.Background(), []string{"share-id"}))
	assert.Equal(t, "share-id", ta.content.gotShareID)
	out := ta.out.String()
	assert.Contains(t, out, "Shared by dora")
	assert.Contains(t, out, "Thread")
}

func TestThemeToggleAndPersist(t *testing.T) {
	ta := newTestApp(t)
	require.Equal(t, session.ThemeLight, ta.app.session.Theme())

	require.NoError(t, ta.app.Theme(context.Background(), nil))
	assert.Equal(t, session.ThemeDark, ta.app.session.Theme())
	assert.Contains(t, ta.out.String(), "dark")

	require.NoError(t, ta.app.Theme(context.Background(), []string{"light"}))
	assert.Equal(t, session.ThemeLight, ta.app.session.Theme())
}

func TestThemeRejectsUnknown(t *testing.T) {
	ta := newTestApp(t)
	require.NoError(t, ta.app.Theme(context.Background(), []string{"sepia"}))
	assert.Equal(t, session.ThemeLight, ta.app.session.Theme())
	assert.Contains(t, ta.out.String(), "usage: theme")
}

func TestStatus(t *testing.T) {
	ta := newTestApp(t)
	ta.auth.info = &services.SessionInfo{Username: "erin"}
	assert.Equal(t, "(erin)", ta.app.status())

	ta.auth.info = nil
	assert.Equal(t, "(signed in)", ta.app.status())

	ta.auth.authed = false
	assert.Equal(t, "", ta.app.status())
}

// stubPassword replaces the terminal password reader for the duration of a
// test and returns the restore func.
func stubPassword(pw string) func() {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte(pw), nil }
	return func() { readPassword = orig }
}
