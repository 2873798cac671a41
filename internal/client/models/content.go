// Package models defines the content types the brainkeep client works with.
package models

import (
	"strings"
	"time"
)

// ContentType classifies a saved reference.
type ContentType string

const (
	ContentTypeVideo    ContentType = "YOUTUBE"
	ContentTypeSocial   ContentType = "TWITTER"
	ContentTypeDocument ContentType = "DOCUMENT"

	// ContentTypeFile is only produced by the upload flow and only when the
	// upload capability is enabled in the client configuration.
	ContentTypeFile ContentType = "FILE"

	// ContentTypeAll is a filter-only pseudo type matching every item.
	ContentTypeAll ContentType = "ALL"
)

// KnownTypes lists every persisted content type in display order.
// ContentTypeAll is not included: it never appears on an item.
var KnownTypes = []ContentType{ContentTypeVideo, ContentTypeSocial, ContentTypeDocument, ContentTypeFile}

// ParseContentType maps user input (case-insensitive, with a few aliases)
// to a ContentType. The boolean reports whether the input was recognized.
func ParseContentType(s string) (ContentType, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "YOUTUBE", "VIDEO":
		return ContentTypeVideo, true
	case "TWITTER", "TWEET", "SOCIAL", "POST":
		return ContentTypeSocial, true
	case "DOCUMENT", "DOC":
		return ContentTypeDocument, true
	case "FILE":
		return ContentTypeFile, true
	case "ALL", "ANY", "":
		return ContentTypeAll, true
	}
	return "", false
}

// ContentItem is one saved reference as the store returns it.
//
// CreatedAt is kept as the raw wire string; the store is not consistent about
// producing it, so parsing is deferred to CreatedTime.
type ContentItem struct {
	ID        string      `json:"_id"`
	Type      ContentType `json:"type"`
	Title     string      `json:"title"`
	Link      string      `json:"link"`
	Tags      []string    `json:"tags"`
	CreatedAt string      `json:"createdAt,omitempty"`
}

// CreatedTime parses CreatedAt for display. An absent or unparseable value
// falls back to the current time; the substitution is never persisted.
func (c ContentItem) CreatedTime() time.Time {
	if c.CreatedAt != "" {
		if t, err := time.Parse(time.RFC3339, c.CreatedAt); err == nil {
			return t
		}
		if t, err := time.Parse("2006-01-02T15:04:05.999Z0700", c.CreatedAt); err == nil {
			return t
		}
	}
	return time.Now()
}

// HasTag reports whether tag is present (exact, case-sensitive).
func (c ContentItem) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// NormalizeTags trims every tag, drops empty/whitespace-only entries and
// suppresses duplicates while preserving first-seen order.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// SharedCollection is the read-only snapshot an anonymous visitor sees
// behind a share link.
type SharedCollection struct {
	Username string        `json:"username"`
	Content  []ContentItem `json:"content"`
}
