package models

import "regexp"

// Best-effort extraction of embeddable identifiers from known URL shapes.
// A miss is not an error: the raw link is always available as a fallback.

var youtubePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/watch\?[^#\s]*v=([^&\s]+)`),
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtu\.be/([^?&\s]+)`),
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/embed/([^?&\s]+)`),
	regexp.MustCompile(`(?:https?://)?(?:m\.)?youtube\.com/watch\?[^#\s]*v=([^&\s]+)`),
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/live/([^?&\s]+)`),
}

var tweetPatterns = []*regexp.Regexp{
	regexp.MustCompile(`twitter\.com/\w+/status/(\d+)`),
	regexp.MustCompile(`x\.com/\w+/status/(\d+)`),
	regexp.MustCompile(`status/(\d+)`),
}

// ExtractVideoID returns the YouTube video id embedded in url, or "" if the
// url does not match any known YouTube shape.
func ExtractVideoID(url string) string {
	for _, p := range youtubePatterns {
		if m := p.FindStringSubmatch(url); len(m) > 1 && m[1] != "" {
			return m[1]
		}
	}
	return ""
}

// ExtractPostID returns the tweet id embedded in url, or "" if the url does
// not look like a twitter.com/x.com status link.
func ExtractPostID(url string) string {
	for _, p := range tweetPatterns {
		if m := p.FindStringSubmatch(url); len(m) > 1 {
			return m[1]
		}
	}
	return ""
}
