package domain

import (
	"slices"
)

// OrderLanguages returns present ordered for output: favored languages that
// are present come first, in favored order, followed by the remaining
// languages sorted alphabetically. Duplicates in either input are dropped.
func OrderLanguages(favored, present []string) []string {
	have := make(map[string]bool, len(present))
	for _, lang := range present {
		have[lang] = true
	}

	ordered := make([]string, 0, len(have))
	taken := make(map[string]bool, len(have))

	for _, lang := range favored {
		if have[lang] && !taken[lang] {
			ordered = append(ordered, lang)
			taken[lang] = true
		}
	}

	rest := make([]string, 0, len(have)-len(ordered))
	for lang := range have {
		if !taken[lang] {
			rest = append(rest, lang)
		}
	}
	slices.Sort(rest)

	return append(ordered, rest...)
}
