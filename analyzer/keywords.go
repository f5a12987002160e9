package analyzer

import "strings"

// MaxKeywords caps how many target keywords one analysis accepts.
const MaxKeywords = 5

// ParseKeywords splits the raw comma-separated keyword input, trims each
// part, drops empties, and caps the result at MaxKeywords preserving input
// order. This parsing lives at the boundary; rules receive the clean list.
func ParseKeywords(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var keywords []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		keywords = append(keywords, part)
		if len(keywords) == MaxKeywords {
			break
		}
	}
	return keywords
}
