// Package social provides the sharing collaborator that turns a roast into a
// post on X. The simulated implementation builds an intent URL rather than
// calling the platform API.
package social

import (
	"fmt"
	"net/url"
	"strings"
)

// Poster publishes roast content and returns the URL of the resulting post.
type Poster interface {
	Post(username, message string) (string, error)
}

// IntentPoster builds a pre-filled X intent URL for the given content.
type IntentPoster struct{}

// NewIntentPoster returns a ready-to-use IntentPoster.
func NewIntentPoster() *IntentPoster {
	return &IntentPoster{}
}

// Post composes the share text and returns the intent URL.
func (p *IntentPoster) Post(username, message string) (string, error) {
	text := fmt.Sprintf("I just got roasted on PayRoast: %q", message)
	if username != "" {
		text = fmt.Sprintf("%s (via @%s)", text, strings.TrimPrefix(username, "@"))
	}
	return "https://x.com/intent/post?text=" + url.QueryEscape(text), nil
}
