// Package jsonrepair recovers structured data from the untrusted, frequently
// malformed JSON that text generation capabilities return.
package jsonrepair

import (
	"regexp"
	"strings"
)

// Clean strips markdown code-fence wrapping and surrounding prose so that
// what remains starts at the first '{' and ends at the last '}'
func Clean(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		// Drop the opening fence line (``` or ```json)
		if idx := strings.Index(s, "\n"); idx >= 0 {
			s = s[idx+1:]
		}
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	// Trim any prose before the first brace/bracket and after the last
	start := strings.IndexAny(s, "{[")
	if start > 0 {
		s = s[start:]
	}
	if end := strings.LastIndexAny(s, "}]"); end >= 0 && end < len(s)-1 {
		s = s[:end+1]
	}

	return s
}

// Repair attempts to close truncated JSON: an unterminated string gets a
// closing quote, then missing closing braces and brackets are appended
// according to the nesting depth difference.
func Repair(s string) string {
	var (
		inString bool
		escaped  bool
		braces   int
		brackets int
	)

	for _, r := range s {
		if escaped {
			escaped = false
			continue
		}
		switch r {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				braces++
			}
		case '}':
			if !inString {
				braces--
			}
		case '[':
			if !inString {
				brackets++
			}
		case ']':
			if !inString {
				brackets--
			}
		}
	}

	if inString {
		s += `"`
	}
	for i := 0; i < brackets; i++ {
		s += "]"
	}
	for i := 0; i < braces; i++ {
		s += "}"
	}

	return s
}

var summaryPattern = regexp.MustCompile(`"summary"\s*:\s*"((?:[^"\\]|\\.)*)"`)

// SalvageSummary extracts just the summary field from otherwise unusable
// JSON. Returns the empty string when no summary field is present.
func SalvageSummary(s string) string {
	m := summaryPattern.FindStringSubmatch(s)
	if m == nil {
		return ""
	}

	summary := m[1]
	summary = strings.ReplaceAll(summary, `\"`, `"`)
	summary = strings.ReplaceAll(summary, `\n`, " ")
	summary = strings.ReplaceAll(summary, `\\`, `\`)
	return strings.TrimSpace(summary)
}
