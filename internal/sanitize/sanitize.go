// Package sanitize cleans user-supplied text before validation and storage.
// Plain-text fields lose all markup and control characters; the observation
// field keeps constrained HTML with script-capable constructs stripped.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	controlChars  = regexp.MustCompile("[\x00\x08\x09\x0a\x0d\x1a]")
	quotes        = regexp.MustCompile(`['"]`)
	scriptTags    = regexp.MustCompile(`(?is)<script\b.*?</script>`)
	eventHandlers = regexp.MustCompile(`(?i)\s*on\w+\s*=\s*("[^"]*"|'[^']*'|[^\s>]+)`)
	multiSpace    = regexp.MustCompile(`\s+`)

	scriptSchemes = regexp.MustCompile(`(?i)(javascript|vbscript):`)
	embedTags     = regexp.MustCompile(`(?is)<(iframe|object|embed)\b.*?</(iframe|object|embed)>`)
	formTags      = regexp.MustCompile(`(?i)<(form|input|button|textarea|select|option)\b[^>]*>`)
)

// Text sanitizes a plain-text field: control characters and quotes are
// removed, script constructs stripped, whitespace collapsed and trimmed.
func Text(s string) string {
	s = controlChars.ReplaceAllString(s, " ")
	s = quotes.ReplaceAllString(s, "")
	s = scriptTags.ReplaceAllString(s, "")
	s = eventHandlers.ReplaceAllString(s, "")
	s = multiSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// HTML sanitizes a field that may carry constrained markup. More permissive
// than Text: formatting tags survive, script vectors do not.
func HTML(s string) string {
	s = scriptTags.ReplaceAllString(s, "")
	s = scriptSchemes.ReplaceAllString(s, "")
	s = eventHandlers.ReplaceAllString(s, "")
	s = embedTags.ReplaceAllString(s, "")
	s = formTags.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// Truncate caps a string at max runes.
func Truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// TextPtr sanitizes an optional plain-text field. Empty results become nil
// so the column stores NULL instead of "".
func TextPtr(s *string, max int) *string {
	if s == nil {
		return nil
	}
	out := Truncate(Text(*s), max)
	if out == "" {
		return nil
	}
	return &out
}

// HTMLPtr sanitizes an optional markup-carrying field.
func HTMLPtr(s *string, max int) *string {
	if s == nil {
		return nil
	}
	out := Truncate(HTML(*s), max)
	if out == "" {
		return nil
	}
	return &out
}
