package slug

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Make converts a display string into a URL- and filesystem-safe path
// segment: lower-case, every run of characters outside [a-z0-9] collapsed
// to a single hyphen, leading/trailing hyphens stripped. Idempotent, never
// contains a path separator. Distinct names can collide; the last page
// written for a slug wins.
func Make(text string) string {
	s := nonAlnum.ReplaceAllString(strings.ToLower(text), "-")
	return strings.Trim(s, "-")
}
