package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/brainkeep/brainkeep/internal/client/models"
)

const defaultTimeout = 15 * time.Second

// HTTPClient is the production Client implementation.
//
// The session credential is attached to authenticated calls as the raw
// Authorization header value, without a "Bearer " prefix; that is the
// server's actual contract.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient returns a client bound to baseURL (scheme://host[:port],
// no trailing slash required). timeout <= 0 falls back to a default.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type tokenResponse struct {
	Token string `json:"token"`
}

type contentResponse struct {
	Content []models.ContentItem `json:"content"`
}

type shareResponse struct {
	ShareLink string `json:"shareLink"`
}

type errorResponse struct {
	Message string `json:"message"`
}

func (c *HTTPClient) SignUp(ctx context.Context, username, password, email string) (string, error) {
	body := map[string]string{"username": username, "password": password, "email": email}
	var out tokenResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/signup", "", body, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

func (c *HTTPClient) SignIn(ctx context.Context, username, password string) (string, error) {
	body := map[string]string{"username": username, "password": password}
	var out tokenResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/signin", "", body, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

func (c *HTTPClient) GoogleSignIn(ctx context.Context, credential string) (string, error) {
	body := map[string]string{"token": credential}
	var out tokenResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/google-signin", "", body, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

func (c *HTTPClient) ListContent(ctx context.Context, token string) ([]models.ContentItem, error) {
	var out contentResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/content", token, nil, &out); err != nil {
		return nil, err
	}
	if out.Content == nil {
		return []models.ContentItem{}, nil
	}
	return out.Content, nil
}

func (c *HTTPClient) CreateContent(ctx context.Context, token string, draft models.ContentDraft) error {
	return c.doJSON(ctx, http.MethodPost, "/api/v1/content", token, draft, nil)
}

func (c *HTTPClient) DeleteContent(ctx context.Context, token, contentID string) error {
	body := map[string]string{"contentId": contentID}
	return c.doJSON(ctx, http.MethodDelete, "/api/v1/content", token, body, nil)
}

// UploadFile sends the file-backed content variant: a multipart form with
// the binary payload plus title and a JSON-encoded tag list.
func (c *HTTPClient) UploadFile(ctx context.Context, token, title string, tags []string, filename string, file io.Reader) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("building form: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("reading file: %w", err)
	}
	if err := w.WriteField("title", title); err != nil {
		return fmt.Errorf("building form: %w", err)
	}
	encodedTags, err := json.Marshal(tags)
	if err != nil {
		return fmt.Errorf("encoding tags: %w", err)
	}
	if err := w.WriteField("tags", string(encodedTags)); err != nil {
		return fmt.Errorf("building form: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("building form: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/v1/upload", token, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	return c.checkStatus(resp)
}

func (c *HTTPClient) CreateShareLink(ctx context.Context, token string) (string, error) {
	var out shareResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/brain/share", token, struct{}{}, &out); err != nil {
		return "", err
	}
	return out.ShareLink, nil
}

func (c *HTTPClient) GetSharedCollection(ctx context.Context, shareID string) (*models.SharedCollection, error) {
	var out models.SharedCollection
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/brain/"+shareID, "", nil, &out); err != nil {
		return nil, err
	}
	if out.Content == nil {
		out.Content = []models.ContentItem{}
	}
	return &out, nil
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path, token string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())
	return req, nil
}

// doJSON performs one request/response exchange. A nil body sends no
// payload; a nil out discards the response body after the status check.
func (c *HTTPClient) doJSON(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := c.newRequest(ctx, method, path, token, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// checkStatus maps a non-2xx response onto the package error taxonomy.
// The body is read best effort for a server-provided message.
func (c *HTTPClient) checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var payload errorResponse
	if b, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10)); err == nil {
		_ = json.Unmarshal(b, &payload)
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthenticated, nonEmpty(payload.Message, resp.Status))
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrUserExists, nonEmpty(payload.Message, resp.Status))
	}
	return &RemoteError{StatusCode: resp.StatusCode, Message: payload.Message}
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
