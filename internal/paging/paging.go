// Package paging provides deterministic windowing over search result lists.
package paging

import "tastebook/internal/recipe"

// DefaultPageSize matches the catalog's results-per-page convention.
const DefaultPageSize = 10

// PageCount returns the number of pages needed for n items, never less than 1.
func PageCount(n, size int) int {
	if size < 1 {
		size = DefaultPageSize
	}
	count := (n + size - 1) / size
	if count < 1 {
		return 1
	}
	return count
}

// Page returns the 1-based page window results[(page-1)*size : page*size].
// Out-of-range pages yield an empty slice, never an error.
func Page(results []recipe.SearchResult, page, size int) []recipe.SearchResult {
	if size < 1 {
		size = DefaultPageSize
	}
	if page < 1 {
		return nil
	}
	start := (page - 1) * size
	if start >= len(results) {
		return nil
	}
	end := start + size
	if end > len(results) {
		end = len(results)
	}
	return results[start:end]
}

// Next returns the page after current, clamped to the last page.
func Next(current, pageCount int) int {
	if current >= pageCount {
		return pageCount
	}
	return current + 1
}

// Prev returns the page before current, clamped to page 1.
func Prev(current int) int {
	if current <= 1 {
		return 1
	}
	return current - 1
}
