// Package util holds the sanitizing boundaries: rich text is cleaned
// exactly once before persistence, and display names are reduced to
// filesystem-safe path segments exactly once at upload time.
package util

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	// richTextPolicy keeps harmless formatting produced by the editor
	// and strips active content (scripts, event handlers, iframes).
	richTextPolicy = bluemonday.UGCPolicy()

	// stripPolicy removes every tag, for plain-cell spreadsheet output
	stripPolicy = bluemonday.StrictPolicy()

	reservedChars = regexp.MustCompile(`[<>:"/\\|?*]`)
	whitespace    = regexp.MustCompile(`\s+`)
)

// SanitizeRichText strips active HTML from user-entered rich text.
// Every write path for text values must pass through here.
func SanitizeRichText(s string) string {
	return richTextPolicy.Sanitize(s)
}

// StripHTML removes all tags and unescapes entities, leaving plain text
func StripHTML(s string) string {
	return html.UnescapeString(stripPolicy.Sanitize(s))
}

// SanitizeName reduces a display name to a filesystem-safe path segment:
// reserved characters and whitespace become underscores, the result is
// lowercased and trimmed. An empty result falls back to "untitled" so a
// blank title can never collapse the directory tree.
func SanitizeName(name string) string {
	s := strings.TrimSpace(name)
	s = reservedChars.ReplaceAllString(s, "_")
	s = whitespace.ReplaceAllString(s, "_")
	s = strings.ToLower(s)
	s = strings.Trim(s, "._")
	if s == "" {
		return "untitled"
	}
	return s
}
