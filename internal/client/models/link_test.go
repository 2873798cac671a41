package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://m.youtube.com/watch?v=dQw4w9WgXcQ&t=10s", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/live/abc123", "abc123"},
		{"youtube.com/watch?v=xyz", "xyz"},
		{"https://vimeo.com/12345", ""},
		{"", ""},
	}

	for _, tc := range tests {
		require.Equal(t, tc.want, ExtractVideoID(tc.url), tc.url)
	}
}

func TestExtractPostID(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://twitter.com/user/status/1234567890", "1234567890"},
		{"https://x.com/user/status/987654321", "987654321"},
		{"https://example.com/a/status/42", "42"},
		{"https://twitter.com/user", ""},
		{"", ""},
	}

	for _, tc := range tests {
		require.Equal(t, tc.want, ExtractPostID(tc.url), tc.url)
	}
}
