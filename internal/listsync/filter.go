package listsync

import (
	"strings"

	"claudetask-cli/internal/model"
)

// Bucket is a categorical partition of a resource list.
type Bucket string

const (
	BucketAll      Bucket = "all"
	BucketDefault  Bucket = "default"
	BucketCustom   Bucket = "custom"
	BucketFavorite Bucket = "favorite"
	BucketEnabled  Bucket = "enabled"
)

// Buckets lists the selectable buckets in display order.
func Buckets() []Bucket {
	return []Bucket{BucketAll, BucketDefault, BucketCustom, BucketFavorite, BucketEnabled}
}

// ParseBucket maps a user-supplied name to a bucket, defaulting to all.
func ParseBucket(s string) (Bucket, bool) {
	switch Bucket(strings.ToLower(strings.TrimSpace(s))) {
	case "", BucketAll:
		return BucketAll, true
	case BucketDefault:
		return BucketDefault, true
	case BucketCustom:
		return BucketCustom, true
	case BucketFavorite:
		return BucketFavorite, true
	case BucketEnabled:
		return BucketEnabled, true
	}
	return BucketAll, false
}

// Matches reports whether any of the fields contains query,
// case-insensitively. An empty query matches everything.
func Matches(fields []string, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

// Filter returns the items whose search fields match query. Order is
// preserved; the input slice is never mutated.
func Filter[T Item](items []T, query string) []T {
	if strings.TrimSpace(query) == "" {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if Matches(it.SearchText(), query) {
			out = append(out, it)
		}
	}
	return out
}

// InBucket returns the items belonging to the given bucket. BucketAll passes
// everything through unchanged (callers union buckets with Union first).
func InBucket[T Item](items []T, bucket Bucket) []T {
	if bucket == "" || bucket == BucketAll {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		switch bucket {
		case BucketDefault:
			if it.ItemKey().Provenance == model.ProvenanceDefault {
				out = append(out, it)
			}
		case BucketCustom:
			if it.ItemKey().Provenance == model.ProvenanceCustom {
				out = append(out, it)
			}
		case BucketFavorite:
			if it.Flags().Favorite {
				out = append(out, it)
			}
		case BucketEnabled:
			if it.Flags().Enabled {
				out = append(out, it)
			}
		}
	}
	return out
}

// Union concatenates lists and removes duplicates by composite key
// (id + provenance). First occurrence wins; order is preserved. The same id
// under different provenance tags stays distinct.
func Union[T Item](lists ...[]T) []T {
	var total int
	for _, l := range lists {
		total += len(l)
	}
	seen := make(map[model.Key]bool, total)
	out := make([]T, 0, total)
	for _, l := range lists {
		for _, it := range l {
			k := it.ItemKey()
			if seen[k] {
				continue
			}
			seen[k] = true
			out = append(out, it)
		}
	}
	return out
}
