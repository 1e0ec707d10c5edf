// Package search derives filtered and sorted views of a catalog.
//
// Every function is total: it never fails for any input, never mutates the
// slice it receives, and preserves input order wherever it does not sort.
package search

import (
	"strings"

	"golang.org/x/text/cases"

	"folioapi/internal/model"
)

// FilterByCategory returns the records whose category equals category.
// An empty category is the identity filter. Matching is exact and
// case-sensitive.
func FilterByCategory(records []model.ContentRecord, category model.Category) []model.ContentRecord {
	if category == "" {
		return clone(records)
	}
	out := make([]model.ContentRecord, 0, len(records))
	for _, r := range records {
		if r.Category == category {
			out = append(out, r)
		}
	}
	return out
}

// FilterByTitleSubstring returns the records whose case-folded title
// contains the case-folded query. An empty query is the identity filter.
func FilterByTitleSubstring(records []model.ContentRecord, query string) []model.ContentRecord {
	if query == "" {
		return clone(records)
	}
	fold := cases.Fold()
	needle := fold.String(query)
	out := make([]model.ContentRecord, 0, len(records))
	for _, r := range records {
		if strings.Contains(fold.String(r.Title), needle) {
			out = append(out, r)
		}
	}
	return out
}

func clone(records []model.ContentRecord) []model.ContentRecord {
	out := make([]model.ContentRecord, len(records))
	copy(out, records)
	return out
}
