// Package filter implements the project search: plain case-insensitive
// substring containment, evaluated per row.
package filter

import "strings"

// Row is what the search sees of a rendered project row.
type Row struct {
	Text      string
	TechStack string
}

// Matches reports whether row should stay visible for query. An empty query
// matches everything.
func Matches(row Row, query string) bool {
	q := strings.ToLower(query)
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(row.Text), q) ||
		strings.Contains(strings.ToLower(row.TechStack), q)
}

// Apply returns the visibility of each row for query, in row order.
func Apply(rows []Row, query string) []bool {
	visible := make([]bool, len(rows))
	for i, row := range rows {
		visible[i] = Matches(row, query)
	}
	return visible
}
