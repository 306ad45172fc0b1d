// Package dates holds the canonical date format shared by the enricher,
// the frontmatter codec, and validation in tests.
package dates

import (
	"regexp"
	"time"
)

// Layout is the canonical YYYY-MM-DD form used for the Created field.
const Layout = "2006-01-02"

var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsValid checks if a string is a valid YYYY-MM-DD date.
func IsValid(s string) bool {
	if !dateRegex.MatchString(s) {
		return false
	}
	_, err := time.Parse(Layout, s)
	return err == nil
}

// Format renders a timestamp in the canonical date form.
func Format(t time.Time) string {
	return t.Format(Layout)
}
