package catalog

// Chunk splits items into consecutive rows of size elements. The last row
// holds the remainder. An empty input yields an empty, non-nil result;
// a non-positive size yields nil.
//
// Rows share the backing array of items with their capacity clipped, so
// appending to one row never overwrites the next.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 {
		return nil
	}
	n := len(items) / size
	if len(items)%size != 0 {
		n++
	}
	rows := make([][]T, 0, n)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		rows = append(rows, items[start:end:end])
	}
	return rows
}
