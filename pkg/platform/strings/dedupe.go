// Package strings holds small string helpers shared by config parsing.
package strings

import "strings"

// SplitList splits raw on sep, trims each element and drops empties and
// repeats. Order of first occurrence is kept. It returns nil when nothing
// remains.
func SplitList(raw, sep string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, part := range strings.Split(raw, sep) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if _, ok := seen[part]; ok {
			continue
		}
		seen[part] = struct{}{}
		out = append(out, part)
	}
	return out
}
