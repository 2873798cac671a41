// Package derive computes projections over a fetched collection: distinct
// tags, per-type counts and filtered views.
//
// Every function here is pure: identical inputs yield structurally equal
// outputs and the input slice is never mutated. The cache stays the single
// owner of the collection; callers only ever hold derived copies.
package derive

import (
	"sort"

	"github.com/brainkeep/brainkeep/internal/client/models"
)

// UniqueTags returns every distinct tag across the collection,
// lexicographically sorted for stable display. Always non-nil.
func UniqueTags(items []models.ContentItem) []string {
	seen := make(map[string]struct{})
	for _, item := range items {
		for _, tag := range item.Tags {
			seen[tag] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for tag := range seen {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

// CountByType maps every known content type to the number of items of that
// type. Types absent from the collection are present with a zero count, so
// the sum of all values always equals len(items) for well-typed input.
func CountByType(items []models.ContentItem) map[models.ContentType]int {
	counts := make(map[models.ContentType]int, len(models.KnownTypes))
	for _, t := range models.KnownTypes {
		counts[t] = 0
	}
	for _, item := range items {
		counts[item.Type]++
	}
	return counts
}

// ApplyFilter returns the ordered subsequence of items matching the filter:
// the item type must equal the selected type (unless every type is
// selected) AND every selected tag must be present on the item. Tag
// matching is exact and case-sensitive; an empty tag selection matches
// everything. A selection that no item satisfies yields an empty result,
// never an error.
func ApplyFilter(items []models.ContentItem, filter models.FilterState) []models.ContentItem {
	out := make([]models.ContentItem, 0, len(items))
	for _, item := range items {
		if !matchesType(item, filter.Type) {
			continue
		}
		if !hasAllTags(item, filter.Tags) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matchesType(item models.ContentItem, selected models.ContentType) bool {
	if selected == models.ContentTypeAll || selected == "" {
		return true
	}
	return item.Type == selected
}

func hasAllTags(item models.ContentItem, tags []string) bool {
	for _, tag := range tags {
		if !item.HasTag(tag) {
			return false
		}
	}
	return true
}
