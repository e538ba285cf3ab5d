package catalog

import (
	"slices"
	"strings"
)

// DisplayName turns a catalog identifier into display text: dashes become
// spaces and slashes get a space on each side.
func DisplayName(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	return strings.ReplaceAll(s, "/", " / ")
}

// Select returns the icons of one group that match query, sorted by raw
// name. A blank query keeps every icon. Otherwise an icon is kept when the
// lowercased set name, section, or display name contains the lowercased
// query. The input is never modified.
func Select(icons []Icon, setName, query string) []Icon {
	out := make([]Icon, 0, len(icons))

	if strings.TrimSpace(query) == "" {
		out = append(out, icons...)
	} else {
		q := strings.ToLower(query)
		setMatch := strings.Contains(strings.ToLower(setName), q)
		for _, icon := range icons {
			if setMatch || matches(icon, q) {
				out = append(out, icon)
			}
		}
	}

	slices.SortStableFunc(out, func(a, b Icon) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

func matches(icon Icon, q string) bool {
	return strings.Contains(strings.ToLower(icon.Section), q) ||
		strings.Contains(strings.ToLower(DisplayName(icon.Name)), q)
}
