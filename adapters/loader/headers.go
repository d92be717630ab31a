package loader

import (
	"fmt"
	"strings"
)

// NormalizeHeaders trims header names, names blank ones column_N
// (1-based position) and suffixes repeats with _1, _2, ...
func NormalizeHeaders(headers []string) []string {
	seen := make(map[string]bool, len(headers))
	result := make([]string, len(headers))

	for i, header := range headers {
		header = strings.TrimSpace(strings.TrimPrefix(header, "\ufeff"))
		if header == "" {
			header = fmt.Sprintf("column_%d", i+1)
		}

		original := header
		for counter := 1; seen[header]; counter++ {
			header = fmt.Sprintf("%s_%d", original, counter)
		}
		seen[header] = true
		result[i] = header
	}
	return result
}
