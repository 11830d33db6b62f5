package asset_test

import (
	"errors"
	"testing"

	"github.com/goto/assetkeeper/core/asset"
	"github.com/stretchr/testify/assert"
)

func TestTransition(t *testing.T) {
	type testCase struct {
		Description string
		From        asset.State
		Event       asset.Event
		Expected    asset.State
		Err         bool
	}

	var testCases = []testCase{
		{Description: "available item can be added to cart", From: asset.StateAvailable, Event: asset.EventAddToCart, Expected: asset.StateCart},
		{Description: "cart item can be removed from cart", From: asset.StateCart, Event: asset.EventRemoveFromCart, Expected: asset.StateAvailable},
		{Description: "cart item can be checked out", From: asset.StateCart, Event: asset.EventCheckout, Expected: asset.StateRequested},
		{Description: "requested item can be approved", From: asset.StateRequested, Event: asset.EventApprove, Expected: asset.StateBorrowed},
		{Description: "requested item can be made available", From: asset.StateRequested, Event: asset.EventMakeAvailable, Expected: asset.StateAvailable},
		{Description: "borrowed item can be made available", From: asset.StateBorrowed, Event: asset.EventMakeAvailable, Expected: asset.StateAvailable},
		{Description: "borrowed item can be returned", From: asset.StateBorrowed, Event: asset.EventReturn, Expected: asset.StateAvailable},
		{Description: "overdue item is handled as borrowed", From: asset.StateOverdue, Event: asset.EventReturn, Expected: asset.StateAvailable},
		{Description: "extending keeps a borrowed item borrowed", From: asset.StateBorrowed, Event: asset.EventExtend, Expected: asset.StateBorrowed},
		{Description: "extending keeps a requested item requested", From: asset.StateRequested, Event: asset.EventExtend, Expected: asset.StateRequested},
		{Description: "any live item can be deleted", From: asset.StateCart, Event: asset.EventDelete, Expected: asset.StateDeleted},
		{Description: "available item cannot be approved", From: asset.StateAvailable, Event: asset.EventApprove, Err: true},
		{Description: "borrowed item cannot be approved again", From: asset.StateBorrowed, Event: asset.EventApprove, Err: true},
		{Description: "available item cannot be extended", From: asset.StateAvailable, Event: asset.EventExtend, Err: true},
		{Description: "requested item cannot be added to cart", From: asset.StateRequested, Event: asset.EventAddToCart, Err: true},
		{Description: "requested item cannot be returned", From: asset.StateRequested, Event: asset.EventReturn, Err: true},
		{Description: "deleted item cannot be deleted again", From: asset.StateDeleted, Event: asset.EventDelete, Err: true},
	}
	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			got, err := asset.Transition("A-100", tc.From, tc.Event)
			if tc.Err {
				var terr asset.InvalidTransitionError
				assert.True(t, errors.As(err, &terr))
				assert.Equal(t, "A-100", terr.AssetID)
				assert.Equal(t, tc.Event, terr.Event)
				assert.Empty(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.Expected, got)
		})
	}
}

func TestRecordExtendedDue(t *testing.T) {
	t.Run("adds calendar days to the due date", func(t *testing.T) {
		due := asset.MustDate("2024-01-01")
		rec := asset.Record{ID: "1", State: asset.StateBorrowed, Due: &due}

		got, err := rec.ExtendedDue(asset.LoanPeriodDays)
		assert.NoError(t, err)
		assert.Equal(t, "2024-01-31", got.String())
	})

	t.Run("crosses month and year boundaries", func(t *testing.T) {
		due := asset.MustDate("2023-12-15")
		rec := asset.Record{ID: "1", State: asset.StateBorrowed, Due: &due}

		got, err := rec.ExtendedDue(asset.LoanPeriodDays)
		assert.NoError(t, err)
		assert.Equal(t, "2024-01-14", got.String())
	})

	t.Run("missing due date is a corrupt record", func(t *testing.T) {
		rec := asset.Record{ID: "1", State: asset.StateBorrowed}

		_, err := rec.ExtendedDue(asset.LoanPeriodDays)
		var cerr asset.CorruptRecordError
		assert.True(t, errors.As(err, &cerr))
		assert.Equal(t, asset.FieldDue, cerr.Field)
	})
}

func TestRecordPresented(t *testing.T) {
	due := asset.MustDate("2024-01-01")
	borrowed := asset.Record{ID: "1", State: asset.StateBorrowed, Due: &due}

	t.Run("borrowed item past its due date is overdue", func(t *testing.T) {
		assert.Equal(t, asset.StateOverdue, borrowed.Presented(asset.MustDate("2024-02-01")))
	})

	t.Run("borrowed item on its due date is not overdue", func(t *testing.T) {
		assert.Equal(t, asset.StateBorrowed, borrowed.Presented(asset.MustDate("2024-01-01")))
	})

	t.Run("requested item past its due date is not overdue", func(t *testing.T) {
		requested := borrowed
		requested.State = asset.StateRequested
		assert.Equal(t, asset.StateRequested, requested.Presented(asset.MustDate("2024-02-01")))
	})

	t.Run("extension by thirty days can keep an item overdue", func(t *testing.T) {
		newDue, err := borrowed.ExtendedDue(asset.LoanPeriodDays)
		assert.NoError(t, err)
		extended := borrowed
		extended.Due = &newDue

		assert.Equal(t, asset.StateOverdue, extended.Presented(asset.MustDate("2024-02-01")))
		assert.Equal(t, asset.StateBorrowed, extended.Presented(asset.MustDate("2024-01-31")))
	})

	t.Run("overdue always implies borrowed and a past due date", func(t *testing.T) {
		today := asset.MustDate("2024-02-01")
		for _, s := range []asset.State{asset.StateAvailable, asset.StateCart, asset.StateRequested, asset.StateBorrowed} {
			for _, d := range []string{"2024-01-01", "2024-02-01", "2024-03-01"} {
				dd := asset.MustDate(d)
				rec := asset.Record{ID: "1", State: s, Due: &dd}
				if rec.Presented(today) == asset.StateOverdue {
					assert.Equal(t, asset.StateBorrowed, rec.State)
					assert.True(t, today.After(dd))
				}
			}
		}
	})
}
