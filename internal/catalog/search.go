package catalog

import "strings"

// Filter selects books matching a free-text query.
type Filter struct {
	Query string // matches title or author, case-insensitive
}

// Apply returns the subset of books matching the filter. An empty query
// matches everything.
func (f Filter) Apply(books []Book) []Book {
	if f.Query == "" {
		return books
	}
	q := strings.ToLower(f.Query)
	var out []Book
	for _, b := range books {
		if strings.Contains(strings.ToLower(b.Title), q) ||
			strings.Contains(strings.ToLower(b.Author), q) {
			out = append(out, b)
		}
	}
	return out
}

// ByTitle returns every book with the given title. Titles are not unique, so
// this can match more than one record.
func ByTitle(books []Book, title string) []Book {
	var out []Book
	for _, b := range books {
		if b.Title == title {
			out = append(out, b)
		}
	}
	return out
}
