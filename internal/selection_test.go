package internal

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestSelectionTree_AddAndFlatten(t *testing.T) {
	t.Run("single entry round trip", func(t *testing.T) {
		tree := NewSelectionTree()
		tree.Add("Europe", "DAX", []string{"SAP.DE"}, nil)

		require.Equal(
			t,
			"",
			cmp.Diff(
				[]SelectedItem{
					{Region: "Europe", Category: "DAX", Symbol: "SAP.DE", Label: "SAP.DE"},
				},
				tree.Items(),
			),
		)
	})

	t.Run("duplicate symbol is a no-op", func(t *testing.T) {
		tree := NewSelectionTree()
		tree.Add("Europe", "DAX", []string{"SAP.DE", "SIE.DE"}, nil)
		before := tree.Size()

		tree.Add("Europe", "DAX", []string{"SAP.DE"}, nil)
		require.Equal(t, before, tree.Size())
	})

	t.Run("label function applies to new entries", func(t *testing.T) {
		tree := NewSelectionTree()
		tree.Add("United States", "S&P 500", []string{"AAPL"}, func(string) string {
			return "Apple Inc."
		})

		items := tree.Items()
		require.Len(t, items, 1)
		require.Equal(t, "Apple Inc.", items[0].Label)
	})

	t.Run("insertion order preserved within a category", func(t *testing.T) {
		tree := NewSelectionTree()
		tree.Add("Europe", "CAC 40", []string{"MC.PA"}, nil)
		tree.Add("Europe", "CAC 40", []string{"AIR.PA"}, nil)

		items := tree.Items()
		require.Equal(t, "MC.PA", items[0].Symbol)
		require.Equal(t, "AIR.PA", items[1].Symbol)
	})

	t.Run("flatten is restartable", func(t *testing.T) {
		tree := NewSelectionTree()
		tree.Add("Europe", "DAX", []string{"SAP.DE", "SIE.DE"}, nil)

		seq := tree.Flatten()
		first := []SelectedItem{}
		for item := range seq {
			first = append(first, item)
		}
		second := []SelectedItem{}
		for item := range seq {
			second = append(second, item)
		}
		require.Equal(t, "", cmp.Diff(first, second))
	})

	t.Run("flatten stops early when the consumer does", func(t *testing.T) {
		tree := NewSelectionTree()
		tree.Add("Europe", "DAX", []string{"SAP.DE", "SIE.DE", "ALV.DE"}, nil)

		n := 0
		for range tree.Flatten() {
			n++
			if n == 2 {
				break
			}
		}
		require.Equal(t, 2, n)
	})
}

func TestSelectionTree_Remove(t *testing.T) {
	t.Run("removed symbol never shows up in flatten", func(t *testing.T) {
		tree := NewSelectionTree()
		tree.Add("Europe", "DAX", []string{"SAP.DE", "SIE.DE"}, nil)
		tree.Remove("Europe", "DAX", []string{"SAP.DE"})

		for item := range tree.Flatten() {
			require.NotEqual(t, "SAP.DE", item.Symbol)
		}
		require.Equal(t, 1, tree.Size())
	})

	t.Run("empty category and region are pruned", func(t *testing.T) {
		tree := NewSelectionTree()
		tree.Add("Europe", "DAX", []string{"SAP.DE"}, nil)
		tree.Add("Europe", "CAC 40", []string{"MC.PA"}, nil)

		tree.Remove("Europe", "DAX", []string{"SAP.DE"})
		_, dax := tree["Europe"]["DAX"]
		require.False(t, dax)

		tree.Remove("Europe", "CAC 40", []string{"MC.PA"})
		_, europe := tree["Europe"]
		require.False(t, europe)
	})

	t.Run("no dangling containers after arbitrary add/remove sequence", func(t *testing.T) {
		tree := NewSelectionTree()
		tree.Add("Europe", "DAX", []string{"SAP.DE", "SIE.DE"}, nil)
		tree.Add("United States", "S&P 500", []string{"AAPL"}, nil)
		tree.Remove("Europe", "DAX", []string{"SIE.DE"})
		tree.Remove("United States", "S&P 500", []string{"AAPL"})
		tree.Add("Europe", "DAX", []string{"ALV.DE"}, nil)
		tree.Remove("Europe", "DAX", []string{"SAP.DE", "ALV.DE"})

		for region, categories := range tree {
			require.NotEmpty(t, categories, "region %s has no categories", region)
			for category, entries := range categories {
				require.NotEmpty(t, entries, "category %s is empty", category)
			}
		}
	})

	t.Run("absent keys are a no-op", func(t *testing.T) {
		tree := NewSelectionTree()
		tree.Remove("Nowhere", "Nothing", []string{"X"})
		require.Equal(t, 0, tree.Size())
	})
}
