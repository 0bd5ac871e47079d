package settings

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	tagPattern          = regexp.MustCompile(`<[^>]*>`)
	whitespacePattern   = regexp.MustCompile(`\s+`)
	customFieldSplitter = regexp.MustCompile(`[\r\n,]+`)
)

// SanitizeText strips tags and control characters, collapses whitespace
// (line breaks included) and trims the result.
func SanitizeText(s string) string {
	s = tagPattern.ReplaceAllString(s, "")
	s = stripControl(s, false)
	s = whitespacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// SanitizeTextarea is SanitizeText that keeps line breaks.
func SanitizeTextarea(s string) string {
	s = tagPattern.ReplaceAllString(s, "")
	s = stripControl(s, true)
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func stripControl(s string, keepNewlines bool) string {
	return strings.Map(func(r rune) rune {
		if keepNewlines && (r == '\n' || r == '\r') {
			return r
		}
		if r == '\t' || r == '\n' || r == '\r' {
			return ' '
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// SplitCustomFields splits a comma or newline separated list, dropping
// empty entries.
func SplitCustomFields(raw string) []string {
	out := []string{}
	for _, part := range customFieldSplitter.Split(raw, -1) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ParseIDList parses a comma separated list of attribute ids. Entries that
// are not positive integers are dropped.
func ParseIDList(raw string) []int64 {
	return sanitizeIDs(strings.Split(raw, ","))
}

func sanitizeIDs(raw []string) []int64 {
	out := []int64{}
	for _, part := range raw {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil || id <= 0 {
			continue
		}
		out = append(out, id)
	}
	return out
}

func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}

func parseFlag(s string) bool {
	s = strings.TrimSpace(s)
	if s == "1" {
		return true
	}
	b, err := strconv.ParseBool(s)
	return err == nil && b
}

func formatFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
