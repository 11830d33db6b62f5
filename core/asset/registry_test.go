package asset_test

import (
	"errors"
	"testing"

	"github.com/goto/assetkeeper/core/asset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistry(ids ...string) *asset.Registry {
	reg := asset.NewRegistry()
	records := make([]asset.Record, 0, len(ids))
	for _, id := range ids {
		records = append(records, asset.Record{ID: id, Name: "item " + id, State: asset.StateAvailable})
	}
	reg.Replace(records)
	return reg
}

func TestRegistry(t *testing.T) {
	t.Run("looks up records by id", func(t *testing.T) {
		reg := newRegistry("1", "2", "3")

		h, err := reg.Lookup("2")
		require.NoError(t, err)
		rec, err := reg.Get(h)
		require.NoError(t, err)
		assert.Equal(t, "2", rec.ID)

		_, err = reg.Lookup("9")
		assert.ErrorAs(t, err, &asset.NotFoundError{})
	})

	t.Run("handles become stale after a structural change", func(t *testing.T) {
		reg := newRegistry("1", "2", "3")
		h := reg.Handle(2)

		reg.Remove(0)

		_, err := reg.Get(h)
		var ierr asset.IndexInvalidatedError
		require.True(t, errors.As(err, &ierr))
		assert.Equal(t, h.Generation, ierr.Generation)
		assert.Equal(t, reg.Generation(), ierr.Current)
	})

	t.Run("handles beyond bounds are rejected", func(t *testing.T) {
		reg := newRegistry("1")

		_, err := reg.Get(asset.Handle{Index: 1, Generation: reg.Generation()})
		assert.ErrorAs(t, err, &asset.IndexInvalidatedError{})

		_, err = reg.Get(asset.Handle{Index: -1, Generation: reg.Generation()})
		assert.ErrorAs(t, err, &asset.IndexInvalidatedError{})
	})

	t.Run("in place changes keep handles valid", func(t *testing.T) {
		reg := newRegistry("1", "2")
		h := reg.Handle(1)

		reg.SetState(1, asset.StateCart)
		rec, err := reg.Get(h)
		require.NoError(t, err)
		assert.Equal(t, asset.StateCart, rec.State)

		rec.Name = "renamed"
		reg.Update(1, rec)
		rec, err = reg.Get(h)
		require.NoError(t, err)
		assert.Equal(t, "renamed", rec.Name)
	})

	t.Run("remove reindexes the remaining records", func(t *testing.T) {
		reg := newRegistry("1", "2", "3")

		reg.Remove(1)

		assert.Equal(t, 2, reg.Len())
		i, ok := reg.IndexOf("3")
		assert.True(t, ok)
		assert.Equal(t, 1, i)
		_, ok = reg.IndexOf("2")
		assert.False(t, ok)
	})

	t.Run("records returns a copy", func(t *testing.T) {
		reg := newRegistry("1")

		records := reg.Records()
		records[0].Name = "changed"

		assert.Equal(t, "item 1", reg.At(0).Name)
	})
}
