package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var reDate = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)

// Date validates an ISO calendar date (YYYY-MM-DD) used by range filters.
func Date(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	return s, reDate.MatchString(s)
}

// Days parses a trailing-window size, falling back to def and clamping
// to a year to avoid abuse.
func Days(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return def
	}
	if n > 365 {
		return 365
	}
	return n
}

// Limit parses a result cap with a default and a hard max.
func Limit(s string, def, max int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return def
	}
	if n > max {
		return max
	}
	return n
}
