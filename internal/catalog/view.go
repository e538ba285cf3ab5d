package catalog

import (
	"strconv"

	icerrors "github.com/Aman-CERP/iconcat/internal/errors"
)

// Snapshot is one consistent set of pipeline inputs. Readers take a
// Snapshot by value so a rebuild never mixes a new query with an old
// chunk size.
type Snapshot struct {
	Groups    *Groups
	Query     string
	ChunkSize int
}

// GroupView is one displayed group: header plus icon rows.
type GroupView struct {
	Key   GroupKey `json:"key"`
	Title string   `json:"title"`
	Rows  [][]Icon `json:"rows"`
	Total int      `json:"total"`
}

// Icons flattens the rows back into one list.
func (g GroupView) Icons() []Icon {
	out := make([]Icon, 0, g.Total)
	for _, row := range g.Rows {
		out = append(out, row...)
	}
	return out
}

// View is the render-ready result of one pipeline run.
type View struct {
	Query     string      `json:"query"`
	ChunkSize int         `json:"chunk_size"`
	Groups    []GroupView `json:"groups"`
}

// Empty reports the "no results" state.
func (v View) Empty() bool {
	return len(v.Groups) == 0
}

// Total returns the number of icons across all groups.
func (v View) Total() int {
	n := 0
	for _, g := range v.Groups {
		n += g.Total
	}
	return n
}

// Build runs Select and Chunk over every group of the snapshot, in key
// order. Groups with no matching icons are left out.
func Build(s Snapshot) (View, error) {
	if s.ChunkSize <= 0 {
		return View{}, icerrors.New(icerrors.ErrCodeInvalidChunkSize, "chunk size must be positive", nil).
			WithDetail("chunk_size", strconv.Itoa(s.ChunkSize))
	}

	v := View{
		Query:     s.Query,
		ChunkSize: s.ChunkSize,
		Groups:    make([]GroupView, 0, s.Groups.Len()),
	}
	s.Groups.each(func(key GroupKey, icons []Icon) {
		selected := Select(icons, key.Set, s.Query)
		if len(selected) == 0 {
			return
		}
		v.Groups = append(v.Groups, GroupView{
			Key:   key,
			Title: key.Title(),
			Rows:  Chunk(selected, s.ChunkSize),
			Total: len(selected),
		})
	})
	return v, nil
}
