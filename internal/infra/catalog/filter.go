package catalog

import (
	"slices"

	"github.com/sahilm/fuzzy"
)

// Filter returns the models that fuzzy-match query, in ascending order.
// An empty query returns models unchanged.
func Filter(models []string, query string) []string {
	if query == "" {
		return models
	}
	matches := fuzzy.Find(query, models)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Str)
	}
	slices.Sort(out)
	return out
}
