package models

import "strings"

// Categories is the fixed set of article categories a user may prefer,
// in display form.
var Categories = []string{
	"Photography",
	"Reading",
	"Music",
	"Technology",
	"health & Fitness",
	"Food & Cooking",
}

// IsCategory reports whether name matches one of Categories, ignoring case
// and surrounding spaces.
func IsCategory(name string) bool {
	name = strings.TrimSpace(name)
	for _, c := range Categories {
		if strings.EqualFold(c, name) {
			return true
		}
	}
	return false
}

// NormalizePreferences lower-cases and trims names, drops empties and
// duplicates, and keeps first-seen order. The result is never nil.
func NormalizePreferences(prefs []string) []string {
	out := make([]string, 0, len(prefs))
	seen := make(map[string]struct{}, len(prefs))
	for _, p := range prefs {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
