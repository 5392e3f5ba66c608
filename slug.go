package kwloc

import (
	"regexp"
	"strings"
)

var nonAlnumRe = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lower-cases s, replaces each run of characters outside [a-z0-9]
// with a single hyphen, and trims hyphens from both ends.
// Example: "St. Mary's" → "st-mary-s"
func Slugify(s string) string {
	slug := nonAlnumRe.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(slug, "-")
}
