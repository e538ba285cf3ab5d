// Package catalog loads an icon catalog and turns it into render-ready views.
//
// The pipeline runs in one direction:
//
//	sets, err := catalog.LoadFile("icons.json")     // Loader
//	groups := catalog.Index(sets)                    // Indexer
//	icons := catalog.Select(g.Icons, set, query)     // Filter/Sort
//	rows := catalog.Chunk(icons, 6)                  // Chunker
//
// Build composes the last two stages over every group for one Snapshot of
// (groups, query, chunk size). Everything after the load is a pure function
// of its inputs; nothing in this package mutates a loaded catalog.
package catalog
