package apps

import (
	"regexp"
	"strings"
)

var verRe = regexp.MustCompile(`(?i)\bv?(\d+\.\d+\.\d+(?:[\w\.-]+)?)\b`)

// ParseVersion extracts the first semantic version from tool output.
func ParseVersion(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	// Prefer the first line
	line := strings.Split(s, "\n")[0]
	if m := verRe.FindStringSubmatch(line); len(m) > 1 {
		return m[1]
	}
	if m := verRe.FindStringSubmatch(s); len(m) > 1 {
		return m[1]
	}
	return ""
}
