package search

import (
	"time"

	"folioapi/internal/model"
)

// Query is the set of view parameters a visitor controls.
type Query struct {
	Category model.Category `json:"category"`
	Search   string         `json:"q"`
	Sort     SortOrder      `json:"sort"`
}

// Apply narrows records by category, then by title substring, and sorts the
// survivors last. now supplies the year that "present" resolves to.
func Apply(records []model.ContentRecord, q Query, now time.Time) []model.ContentRecord {
	out := FilterByCategory(records, q.Category)
	out = FilterByTitleSubstring(out, q.Search)
	return SortByDate(out, q.Sort, now.Year())
}

// Categories returns the distinct categories present in records, in order
// of first appearance.
func Categories(records []model.ContentRecord) []model.Category {
	seen := make(map[model.Category]struct{}, len(records))
	out := make([]model.Category, 0)
	for _, r := range records {
		if _, ok := seen[r.Category]; ok {
			continue
		}
		seen[r.Category] = struct{}{}
		out = append(out, r.Category)
	}
	return out
}
