// Package hangul holds the Korean learning items the generator speaks and
// the registry built from them.
package hangul

// Registry is the ordered, deduplicated list of text items to synthesize.
// It is built once from the category lists and never mutated afterwards.
//
// Duplicates are removed by exact string equality in first-seen order. No
// Unicode normalization is applied: two strings that differ only in
// composition form are distinct items.
type Registry struct {
	items      []string
	categories []Category
}

// NewRegistry concatenates the given categories and removes exact
// duplicates, preserving first-seen order.
func NewRegistry(categories []Category) *Registry {
	seen := make(map[string]struct{})
	var items []string

	for _, cat := range categories {
		for _, item := range cat.Items {
			if _, ok := seen[item]; ok {
				continue
			}
			seen[item] = struct{}{}
			items = append(items, item)
		}
	}

	return &Registry{items: items, categories: categories}
}

// Default returns the registry built from the full category set.
func Default() *Registry {
	return NewRegistry(Categories())
}

// Items returns a copy of the registry in iteration order.
func (r *Registry) Items() []string {
	out := make([]string, len(r.items))
	copy(out, r.items)
	return out
}

// Len returns the number of distinct items in the registry.
func (r *Registry) Len() int {
	return len(r.items)
}

// Categories returns the source lists the registry was built from,
// duplicates included. Used for the summary's content breakdown.
func (r *Registry) Categories() []Category {
	return r.categories
}
