package catalog

import (
	"cmp"
	"log/slog"
	"slices"
)

// GroupKey identifies one (set, section) group.
type GroupKey struct {
	Set     string `json:"set"`
	Section string `json:"section"`
}

// String returns "set / section".
func (k GroupKey) String() string {
	return k.Set + " / " + k.Section
}

// Title returns the group header text. Root sections render as the set
// alone.
func (k GroupKey) Title() string {
	if k.Section == "" {
		return DisplayName(k.Set)
	}
	return DisplayName(k.String())
}

func compareKeys(a, b GroupKey) int {
	return cmp.Or(
		cmp.Compare(a.Set, b.Set),
		cmp.Compare(a.Section, b.Section),
	)
}

// Group is a non-empty list of icons sharing a key.
type Group struct {
	Key   GroupKey `json:"key"`
	Icons []Icon   `json:"icons"`
}

// Groups is the immutable normalized mapping produced by Index.
type Groups struct {
	keys   []GroupKey
	byKey  map[GroupKey][]Icon
	nIcons int
}

// Index expands icon sets into (set, section) groups.
//
// For every declared section of every set the group holds the icons whose
// section matches it exactly. Sections without icons produce no group, and
// icons naming an undeclared section are left out. A section declared
// twice yields one group. Sets sharing a name merge their groups in file
// order.
func Index(sets []IconSet) *Groups {
	g := &Groups{byKey: make(map[GroupKey][]Icon)}

	for _, set := range sets {
		declared := make(map[string]bool, len(set.Sections))
		for _, section := range set.Sections {
			if declared[section] {
				continue
			}
			declared[section] = true

			key := GroupKey{Set: set.Set, Section: section}
			for _, icon := range set.Icons {
				if icon.Section != section {
					continue
				}
				icon = icon.clone()
				icon.Set = set.Set
				g.byKey[key] = append(g.byKey[key], icon)
				g.nIcons++
			}
		}

		for _, icon := range set.Icons {
			if !declared[icon.Section] {
				slog.Debug("icon_section_undeclared",
					slog.String("set", set.Set),
					slog.String("section", icon.Section),
					slog.String("icon", icon.Name))
			}
		}
	}

	g.keys = make([]GroupKey, 0, len(g.byKey))
	for key := range g.byKey {
		g.keys = append(g.keys, key)
	}
	slices.SortFunc(g.keys, compareKeys)
	return g
}

// Keys returns the group keys sorted by set, then section.
func (g *Groups) Keys() []GroupKey {
	if g == nil {
		return nil
	}
	return slices.Clone(g.keys)
}

// Get returns the icons of one group in catalog order.
func (g *Groups) Get(key GroupKey) ([]Icon, bool) {
	if g == nil {
		return nil, false
	}
	icons, ok := g.byKey[key]
	if !ok {
		return nil, false
	}
	return cloneIcons(icons), true
}

// Len returns the number of groups.
func (g *Groups) Len() int {
	if g == nil {
		return 0
	}
	return len(g.keys)
}

// IconCount returns the number of icons across all groups.
func (g *Groups) IconCount() int {
	if g == nil {
		return 0
	}
	return g.nIcons
}

// All returns every group in key order.
func (g *Groups) All() []Group {
	if g == nil {
		return nil
	}
	out := make([]Group, 0, len(g.keys))
	for _, key := range g.keys {
		out = append(out, Group{Key: key, Icons: cloneIcons(g.byKey[key])})
	}
	return out
}

// each visits groups in key order without copying.
func (g *Groups) each(fn func(key GroupKey, icons []Icon)) {
	if g == nil {
		return
	}
	for _, key := range g.keys {
		fn(key, g.byKey[key])
	}
}

func cloneIcons(icons []Icon) []Icon {
	out := make([]Icon, len(icons))
	for i, icon := range icons {
		out[i] = icon.clone()
	}
	return out
}
