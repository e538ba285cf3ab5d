// Package watcher delays and coalesces rapidly changing inputs.
//
// Debouncer is a timer-reset, latest-value-wins debouncer used for the
// live search query. AssetWatcher watches an asset root with fsnotify
// (falling back to polling where fsnotify is unavailable, e.g. network
// mounts) and reports coalesced changes so cached asset lookups can be
// dropped.
//
// Usage:
//
//	d := watcher.NewDebouncer[string](300 * time.Millisecond)
//	defer d.Stop()
//
//	d.Add("a")
//	d.Add("ad")
//	d.Add("add")
//	q := <-d.Output() // "add", 300ms after the last Add
package watcher
