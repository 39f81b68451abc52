package catalog

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// UniqueSorted drops exact duplicates and orders the rest by English
// collation. Strings that collate equal fall back to byte order, so the
// result depends only on the input set.
func UniqueSorted(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, s := range items {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	col := collate.New(language.English)
	slices.SortFunc(out, func(a, b string) int {
		if c := col.CompareString(a, b); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	return out
}

// DistinctProcessed returns every non-empty processed label in the catalog,
// deduplicated and sorted.
func (c *Catalog) DistinctProcessed() []string {
	var all []string
	for _, it := range c.Items {
		for _, p := range it.Processed {
			if p != "" {
				all = append(all, p)
			}
		}
	}
	return UniqueSorted(all)
}

// ItemNames returns the deduplicated, sorted item names.
func (c *Catalog) ItemNames() []string {
	return UniqueSorted(c.Names())
}

// ItemsContaining returns, in catalog order, the names of items whose
// processed list contains ingredient (case-insensitive exact match).
func (c *Catalog) ItemsContaining(ingredient string) []string {
	var names []string
	for _, it := range c.Items {
		if it.HasProcessed(ingredient) {
			names = append(names, it.Name)
		}
	}
	return names
}

// FilterProcessed keeps the labels containing query as a case-insensitive
// substring. An empty query keeps everything.
func FilterProcessed(labels []string, query string) []string {
	if query == "" {
		return labels
	}
	q := strings.ToLower(query)
	var out []string
	for _, s := range labels {
		if strings.Contains(strings.ToLower(s), q) {
			out = append(out, s)
		}
	}
	return out
}

// Flatten concatenates the processed lists of items in order.
func Flatten(items []*MenuItem) []string {
	var all []string
	for _, it := range items {
		all = append(all, it.Processed...)
	}
	return all
}
