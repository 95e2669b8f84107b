package speech

import (
	"regexp"
	"strings"
)

// Script text carries inline control markers like {pause}, {pause:500} and
// {speed:0.9}. They are directives for audio post-processing and must never
// reach an engine or a cache key.

var (
	reMarker     = regexp.MustCompile(`\{[a-z]+(:[^{}]*)?\}`)
	reWhitespace = regexp.MustCompile(`\s+`)
)

// Normalize strips control markers and collapses whitespace. The result is
// what gets hashed for the cache and handed to engines. An empty result
// means there is nothing to synthesize.
func Normalize(text string) string {
	text = reMarker.ReplaceAllString(text, " ")
	return strings.TrimSpace(reWhitespace.ReplaceAllString(text, " "))
}
