package internal

import (
	"iter"
	"sort"
)

// SelectionEntry is one watched instrument inside a category list. Symbol is
// the identity; Label is what tables display.
type SelectionEntry struct {
	Symbol string `json:"symbol"`
	Label  string `json:"label"`
}

// SelectionTree is a user-curated watchlist: region -> category -> ordered
// entries. It never holds empty containers: removing the last entry of a
// category deletes the category, and removing the last category of a region
// deletes the region.
type SelectionTree map[string]map[string][]SelectionEntry

func NewSelectionTree() SelectionTree {
	return SelectionTree{}
}

// SelectedItem is one flattened leaf of the tree.
type SelectedItem struct {
	Region   string `json:"region"`
	Category string `json:"category"`
	Symbol   string `json:"symbol"`
	Label    string `json:"label"`
}

// Add appends entries for the given symbols to tree[region][category],
// creating the containers on demand. Symbols already present in the list are
// skipped. labelFn may be nil, in which case the symbol doubles as the label.
func (t SelectionTree) Add(region, category string, symbols []string, labelFn func(string) string) {
	if len(symbols) == 0 {
		return
	}
	if _, ok := t[region]; !ok {
		t[region] = map[string][]SelectionEntry{}
	}
	entries := t[region][category]

	for _, symbol := range symbols {
		exists := false
		for _, e := range entries {
			if e.Symbol == symbol {
				exists = true
				break
			}
		}
		if exists {
			continue
		}
		label := symbol
		if labelFn != nil {
			label = labelFn(symbol)
		}
		entries = append(entries, SelectionEntry{Symbol: symbol, Label: label})
	}

	t[region][category] = entries
}

// Remove drops entries whose symbol appears in symbols, then prunes empty
// containers. Absent region or category keys are a no-op.
func (t SelectionTree) Remove(region, category string, symbols []string) {
	categories, ok := t[region]
	if !ok {
		return
	}
	entries, ok := categories[category]
	if !ok {
		return
	}

	drop := map[string]bool{}
	for _, s := range symbols {
		drop[s] = true
	}

	kept := entries[:0]
	for _, e := range entries {
		if !drop[e.Symbol] {
			kept = append(kept, e)
		}
	}

	if len(kept) == 0 {
		delete(categories, category)
	} else {
		categories[category] = kept
	}
	if len(categories) == 0 {
		delete(t, region)
	}
}

// Flatten yields one SelectedItem per leaf entry. The sequence is lazy and
// restartable; regions and categories are walked in sorted order, entries in
// insertion order.
func (t SelectionTree) Flatten() iter.Seq[SelectedItem] {
	return func(yield func(SelectedItem) bool) {
		regions := make([]string, 0, len(t))
		for region := range t {
			regions = append(regions, region)
		}
		sort.Strings(regions)

		for _, region := range regions {
			categories := make([]string, 0, len(t[region]))
			for category := range t[region] {
				categories = append(categories, category)
			}
			sort.Strings(categories)

			for _, category := range categories {
				for _, e := range t[region][category] {
					item := SelectedItem{
						Region:   region,
						Category: category,
						Symbol:   e.Symbol,
						Label:    e.Label,
					}
					if !yield(item) {
						return
					}
				}
			}
		}
	}
}

// Items collects the full flattening into a slice.
func (t SelectionTree) Items() []SelectedItem {
	out := []SelectedItem{}
	for item := range t.Flatten() {
		out = append(out, item)
	}
	return out
}

// Size returns the number of leaf entries.
func (t SelectionTree) Size() int {
	n := 0
	for range t.Flatten() {
		n++
	}
	return n
}
