// Package utils provides small string helpers shared by the CLI, config,
// and validation code.
package utils

import (
	"strconv"
	"strings"
)

// SplitAndTrim splits s by sep and trims whitespace from each part.
// Empty parts are omitted from the result.
func SplitAndTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// NormalizeTag trims whitespace and a single leading sigil from a tag
// filter, so "+work", "@work" and " work " all become "work".
func NormalizeTag(input string) string {
	s := strings.TrimSpace(input)
	if s != "" && (s[0] == '+' || s[0] == '@') {
		s = s[1:]
	}
	return s
}

// NormalizeTags normalizes a list of tag filters.
// Empty entries are omitted. Returns nil if the result is empty.
func NormalizeTags(tags []string) []string {
	var result []string
	for _, tag := range tags {
		if normalized := NormalizeTag(tag); normalized != "" {
			result = append(result, normalized)
		}
	}
	return result
}

// JSONPointerToPath converts a JSON Pointer (RFC 6901) into the dotted path
// used in validation messages: "#/items/3/priority" becomes
// "items[3].priority".
func JSONPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	var b strings.Builder
	for _, part := range strings.Split(ptr, "/") {
		// ~1 is "/" and ~0 is "~"; order matters.
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			b.WriteString("[" + strconv.Itoa(idx) + "]")
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}
