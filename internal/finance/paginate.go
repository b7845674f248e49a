package finance

// Page slices items for one-based page numbers. Pages past the end return an
// empty slice, never an error.
func Page[T any](items []T, page, size int) []T {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// TotalPages returns the page count for a list of the given length
func TotalPages(total, size int) int {
	if size < 1 {
		size = 10
	}
	if total == 0 {
		return 0
	}
	return (total + size - 1) / size
}
