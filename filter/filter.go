// Package filter cleans user supplied text before it is stored and renders
// store descriptions for display.
package filter

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/russross/blackfriday/v2"
)

var (
	strictPolicy = bluemonday.StrictPolicy()
	ugcPolicy    = bluemonday.UGCPolicy()
)

// Text strips every tag from s and returns plain, unescaped text.
func Text(s string) string {
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(s)))
}

// Markdown renders s to HTML keeping only markup safe for user content.
func Markdown(s string) string {
	return string(ugcPolicy.SanitizeBytes(blackfriday.Run([]byte(s))))
}
