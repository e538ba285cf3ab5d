package catalog

import (
	"log/slog"
	"strings"
	"time"

	icerrors "github.com/Aman-CERP/iconcat/internal/errors"
)

// Catalog is a loaded and indexed icon catalog. It is immutable.
type Catalog struct {
	Source   string
	Sets     []IconSet
	Groups   *Groups
	LoadedAt time.Time
}

// Stats summarizes a catalog.
type Stats struct {
	Sets   int `json:"sets"`
	Groups int `json:"groups"`
	Icons  int `json:"icons"`
}

// Open loads and indexes the catalog at path.
func Open(path string) (*Catalog, error) {
	start := time.Now()
	sets, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	c := New(sets)
	c.Source = path

	stats := c.Stats()
	slog.Info("catalog_loaded",
		slog.String("path", path),
		slog.Int("sets", stats.Sets),
		slog.Int("groups", stats.Groups),
		slog.Int("icons", stats.Icons),
		slog.Duration("elapsed", time.Since(start)))
	return c, nil
}

// New indexes already loaded sets.
func New(sets []IconSet) *Catalog {
	for _, set := range sets {
		if len(set.Icons) == 0 {
			slog.Warn("icon_set_empty", slog.String("set", set.Set))
		}
	}
	return &Catalog{
		Sets:     sets,
		Groups:   Index(sets),
		LoadedAt: time.Now(),
	}
}

// Stats returns set, group and icon counts. Sets sharing a name count
// once. Icons counts only icons that made it into a group.
func (c *Catalog) Stats() Stats {
	if c == nil {
		return Stats{}
	}
	names := make(map[string]struct{}, len(c.Sets))
	for _, set := range c.Sets {
		names[set.Set] = struct{}{}
	}
	return Stats{
		Sets:   len(names),
		Groups: c.Groups.Len(),
		Icons:  c.Groups.IconCount(),
	}
}

// View builds the display for query at the given row width.
func (c *Catalog) View(query string, chunkSize int) (View, error) {
	return Build(Snapshot{Groups: c.Groups, Query: query, ChunkSize: chunkSize})
}

// Find returns one icon by its full coordinates.
func (c *Catalog) Find(set, section, name string) (Icon, error) {
	icons, ok := c.Groups.Get(GroupKey{Set: set, Section: section})
	if ok {
		for _, icon := range icons {
			if icon.Name == name {
				return icon, nil
			}
		}
	}
	return Icon{}, notFound(set, section, name)
}

// Lookup returns every icon called name in set, across sections, in
// section order. Set names compare case-insensitively.
func (c *Catalog) Lookup(set, name string) []Icon {
	var out []Icon
	c.Groups.each(func(key GroupKey, icons []Icon) {
		if !strings.EqualFold(key.Set, set) {
			return
		}
		for _, icon := range icons {
			if icon.Name == name {
				out = append(out, icon.clone())
			}
		}
	})
	return out
}

func notFound(set, section, name string) error {
	return icerrors.New(icerrors.ErrCodeIconNotFound, "icon not found", nil).
		WithDetail("set", set).
		WithDetail("section", section).
		WithDetail("name", name)
}
