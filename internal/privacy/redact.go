// Package privacy masks personal details before answers leave the process
// in rendered reports.
package privacy

import (
	"regexp"
	"strings"
)

// privateTagRegex matches <private>...</private> blocks (non-greedy, dotall).
var privateTagRegex = regexp.MustCompile(`(?s)<private>.*?</private>`)

var emailRegex = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)

// phoneRegex matches digit runs with common separators. Matches with fewer
// than nine digits are left alone, e.g. "+44 20 7946 0958" is masked, "3.5" is not.
var phoneRegex = regexp.MustCompile(`\+?\(?\d[\d\s().\-]{7,}\d`)

const (
	privateMarker = "[private]"
	emailMarker   = "[email]"
	phoneMarker   = "[phone]"
)

// StripPrivateTags replaces every <private>...</private> block with a marker.
func StripPrivateTags(content string) string {
	return privateTagRegex.ReplaceAllString(content, privateMarker)
}

// Redact masks private blocks, email addresses and phone numbers.
func Redact(content string) string {
	out := StripPrivateTags(content)
	out = emailRegex.ReplaceAllString(out, emailMarker)
	return phoneRegex.ReplaceAllStringFunc(out, func(m string) string {
		if countDigits(m) < 9 {
			return m
		}
		return phoneMarker
	})
}

// HasOnlyPrivateContent reports whether nothing but private blocks and
// whitespace remains in content.
func HasOnlyPrivateContent(content string) bool {
	return strings.TrimSpace(privateTagRegex.ReplaceAllString(content, "")) == ""
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
