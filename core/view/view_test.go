package view_test

import (
	"testing"

	"github.com/goto/assetkeeper/core/asset"
	"github.com/goto/assetkeeper/core/search"
	"github.com/goto/assetkeeper/core/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func today() asset.Date { return asset.MustDate("2024-02-01") }

func setup(t *testing.T, records ...asset.Record) (*asset.Registry, *view.Index) {
	t.Helper()
	reg := asset.NewRegistry()
	reg.Replace(records)
	f, err := search.NewFilter(search.Config{})
	require.NoError(t, err)
	return reg, view.New(reg, f, view.WithClock(today))
}

func available(id, name string) asset.Record {
	return asset.Record{ID: id, Name: name, State: asset.StateAvailable, StorageLocation: "Shelf"}
}

func ids(rows []view.Row) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Record.ID)
	}
	return out
}

func TestIndexToggleCart(t *testing.T) {
	t.Run("toggling twice restores the record and empties the cart", func(t *testing.T) {
		reg, x := setup(t, available("1", "Camera"), available("2", "Tripod"))
		before := reg.At(0)

		state, err := x.ToggleCart(reg.Handle(0))
		require.NoError(t, err)
		assert.Equal(t, asset.StateCart, state)
		assert.Equal(t, []string{"1"}, x.CartIDs())

		state, err = x.ToggleCart(reg.Handle(0))
		require.NoError(t, err)
		assert.Equal(t, asset.StateAvailable, state)
		assert.Empty(t, x.CartIDs())
		assert.Equal(t, before, reg.At(0))
	})

	t.Run("cart entries are located by id after reordering", func(t *testing.T) {
		reg, x := setup(t, available("1", "Camera"), available("2", "Tripod"), available("3", "Lens"))
		for i := 0; i < 3; i++ {
			_, err := x.ToggleCart(reg.Handle(i))
			require.NoError(t, err)
		}
		require.NoError(t, x.SortBy(view.Cart, asset.FieldName, false))
		assert.Equal(t, []string{"1", "3", "2"}, ids(x.Rows(view.Cart)))

		_, err := x.ToggleCart(reg.Handle(1))
		require.NoError(t, err)

		assert.Equal(t, []string{"1", "3"}, ids(x.Rows(view.Cart)))
		assert.Equal(t, asset.StateAvailable, reg.At(1).State)
		assert.Equal(t, asset.StateCart, reg.At(2).State)
	})

	t.Run("items that are not available cannot be toggled", func(t *testing.T) {
		borrowed := available("1", "Camera")
		borrowed.State = asset.StateBorrowed
		reg, x := setup(t, borrowed)

		_, err := x.ToggleCart(reg.Handle(0))
		assert.ErrorAs(t, err, &asset.InvalidTransitionError{})
		assert.Equal(t, asset.StateBorrowed, reg.At(0).State)
		assert.Empty(t, x.CartIDs())
	})

	t.Run("stale handles are rejected", func(t *testing.T) {
		reg, x := setup(t, available("1", "Camera"), available("2", "Tripod"))
		h := reg.Handle(1)

		require.NoError(t, x.RemoveIndex(0))

		_, err := x.ToggleCart(h)
		assert.ErrorAs(t, err, &asset.IndexInvalidatedError{})
	})
}

func TestIndexSetFilter(t *testing.T) {
	reg, x := setup(t, available("1", "Camera"), available("2", "Tripod"), available("3", "Camera bag"))
	_, err := x.ToggleCart(reg.Handle(1))
	require.NoError(t, err)

	x.SetFilter("camera")

	assert.Equal(t, []string{"1", "3"}, ids(x.Rows(view.Inventory)))
	assert.Equal(t, []string{"2"}, ids(x.Rows(view.Cart)))

	x.SetFilter("")
	assert.Equal(t, []string{"1", "2", "3"}, ids(x.Rows(view.Inventory)))
}

func TestIndexRemoveIndex(t *testing.T) {
	t.Run("removes the record from both views", func(t *testing.T) {
		reg, x := setup(t, available("1", "Camera"), available("2", "Tripod"), available("3", "Lens"))
		_, err := x.ToggleCart(reg.Handle(1))
		require.NoError(t, err)
		_, err = x.ToggleCart(reg.Handle(2))
		require.NoError(t, err)

		require.NoError(t, x.RemoveIndex(1))

		assert.Equal(t, 2, reg.Len())
		assert.Equal(t, []string{"1", "3"}, ids(x.Rows(view.Inventory)))
		assert.Equal(t, []string{"3"}, x.CartIDs())
		assert.False(t, x.Contains(view.Inventory, "2"))
		assert.False(t, x.Contains(view.Cart, "2"))
	})

	t.Run("shifts filtered positions above the removed one", func(t *testing.T) {
		reg, x := setup(t, available("1", "Camera"), available("2", "Tripod"), available("3", "Camera bag"))
		x.SetFilter("camera")

		require.NoError(t, x.RemoveIndex(0))

		rows := x.Rows(view.Inventory)
		require.Len(t, rows, 1)
		assert.Equal(t, "3", rows[0].Record.ID)
		assert.Equal(t, 1, rows[0].Handle.Index)
		for _, r := range rows {
			assert.Less(t, r.Handle.Index, reg.Len())
		}
	})

	t.Run("out of range positions are rejected", func(t *testing.T) {
		_, x := setup(t, available("1", "Camera"))

		assert.ErrorAs(t, x.RemoveIndex(1), &asset.IndexInvalidatedError{})
	})
}

func TestIndexSortBy(t *testing.T) {
	records := []asset.Record{available("10", "b"), available("9", "C"), available("100", "a")}

	t.Run("sorts identifiers numerically", func(t *testing.T) {
		_, x := setup(t, records...)

		require.NoError(t, x.SortBy(view.Inventory, asset.FieldID, false))
		assert.Equal(t, []string{"9", "10", "100"}, ids(x.Rows(view.Inventory)))

		require.NoError(t, x.SortBy(view.Inventory, asset.FieldID, true))
		assert.Equal(t, []string{"100", "10", "9"}, ids(x.Rows(view.Inventory)))
	})

	t.Run("sorts text case-insensitively without touching the registry", func(t *testing.T) {
		reg, x := setup(t, records...)

		require.NoError(t, x.SortBy(view.Inventory, asset.FieldName, false))
		assert.Equal(t, []string{"100", "10", "9"}, ids(x.Rows(view.Inventory)))
		assert.Equal(t, "10", reg.At(0).ID)
	})

	t.Run("sort survives in place refreshes", func(t *testing.T) {
		reg, x := setup(t, records...)
		require.NoError(t, x.SortBy(view.Inventory, asset.FieldName, true))

		_, err := x.ToggleCart(reg.Handle(0))
		require.NoError(t, err)
		x.Refresh()

		assert.Equal(t, []string{"9", "10", "100"}, ids(x.Rows(view.Inventory)))
		_, ok := x.SortOf(view.Inventory)
		assert.True(t, ok)
	})

	t.Run("sort is dropped by a rebuild and by a new query", func(t *testing.T) {
		_, x := setup(t, records...)
		require.NoError(t, x.SortBy(view.Inventory, asset.FieldName, false))

		x.Rebuild()
		assert.Equal(t, []string{"10", "9", "100"}, ids(x.Rows(view.Inventory)))

		require.NoError(t, x.SortBy(view.Inventory, asset.FieldName, false))
		x.SetFilter("")
		_, ok := x.SortOf(view.Inventory)
		assert.False(t, ok)
	})

	t.Run("state column sorts by presented state", func(t *testing.T) {
		due := asset.MustDate("2024-01-01")
		overdue := asset.Record{ID: "1", Name: "a", State: asset.StateBorrowed, Due: &due}
		requested := asset.Record{ID: "2", Name: "b", State: asset.StateRequested}
		_, x := setup(t, requested, overdue, available("3", "c"))

		require.NoError(t, x.SortBy(view.Inventory, asset.FieldState, false))

		rows := x.Rows(view.Inventory)
		assert.Equal(t, []string{"3", "1", "2"}, ids(rows))
		assert.Equal(t, asset.StateOverdue, rows[1].Presented)
	})

	t.Run("unknown columns are rejected", func(t *testing.T) {
		_, x := setup(t, records...)
		assert.ErrorAs(t, x.SortBy(view.Inventory, asset.Field("colour"), false), &asset.ValidationError{})
	})
}

func TestIndexRebuild(t *testing.T) {
	reg, x := setup(t, available("1", "Camera"), available("2", "Tripod"), available("3", "Lens"))
	for i := 0; i < 3; i++ {
		_, err := x.ToggleCart(reg.Handle(i))
		require.NoError(t, err)
	}

	// reload: 2 was reserved elsewhere and 3 was deleted elsewhere.
	reserved := available("2", "Tripod")
	reserved.State = asset.StateRequested
	reserved.Borrower = strPtr("Jane Doe")
	reg.Replace([]asset.Record{available("1", "Camera"), reserved})
	x.Rebuild()

	assert.Equal(t, []string{"1"}, x.CartIDs())
	assert.Equal(t, asset.StateCart, reg.At(0).State)
	assert.Equal(t, asset.StateRequested, reg.At(1).State)
	assert.Equal(t, []string{"1", "2"}, ids(x.Rows(view.Inventory)))
}

func TestIndexCheckoutHelpers(t *testing.T) {
	reg, x := setup(t, available("1", "Camera"), available("2", "Tripod"))
	for i := 0; i < 2; i++ {
		_, err := x.ToggleCart(reg.Handle(i))
		require.NoError(t, err)
	}

	require.NoError(t, x.Settle("1"))
	assert.Equal(t, asset.StateRequested, reg.At(0).State)
	assert.Equal(t, []string{"2"}, x.CartIDs())

	assert.ErrorAs(t, x.Settle("1"), &asset.InvalidTransitionError{})

	x.ClearCart()
	assert.Empty(t, x.CartIDs())
	assert.Equal(t, asset.StateAvailable, reg.At(1).State)
}
