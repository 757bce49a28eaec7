package utils

import "strings"

// SplitCSV turns a comma separated column value into a trimmed slice,
// dropping empty entries.
func SplitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// JoinCSV is the inverse of SplitCSV.
func JoinCSV(items []string) string {
	trimmed := make([]string, 0, len(items))
	for _, it := range items {
		it = strings.TrimSpace(it)
		if it != "" {
			trimmed = append(trimmed, it)
		}
	}
	return strings.Join(trimmed, ", ")
}
