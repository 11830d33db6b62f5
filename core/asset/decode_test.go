package asset_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/goto/assetkeeper/core/asset"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func datePtr(s string) *asset.Date {
	d := asset.MustDate(s)
	return &d
}

func TestDecode(t *testing.T) {
	t.Run("asset without loan is available", func(t *testing.T) {
		got, err := asset.Decode(asset.Listing{
			Asset: asset.Stored{ID: "1", Name: "Camera", StorageLocation: "Shelf A", PurchaseDate: strPtr("2020-05-01")},
		})

		assert.NoError(t, err)
		want := asset.Record{
			ID:              "1",
			Name:            "Camera",
			State:           asset.StateAvailable,
			StorageLocation: "Shelf A",
			PurchaseDate:    datePtr("2020-05-01"),
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("loan fields are carried over", func(t *testing.T) {
		got, err := asset.Decode(asset.Listing{
			Asset: asset.Stored{ID: "1", Name: "Camera", StorageLocation: "Shelf A"},
			Loan: &asset.Loan{
				AssetID:       "1",
				BorrowerName:  "Jane Doe",
				BorrowerEmail: "jane@example.com",
				State:         "Borrowed",
				DateRequested: "2024-01-01",
				DueDate:       "2024-01-31",
				Comment:       strPtr("for the field trip"),
			},
		})

		assert.NoError(t, err)
		want := asset.Record{
			ID:              "1",
			Name:            "Camera",
			State:           asset.StateBorrowed,
			Borrower:        strPtr("Jane Doe"),
			Email:           strPtr("jane@example.com"),
			Requested:       datePtr("2024-01-01"),
			Due:             datePtr("2024-01-31"),
			StorageLocation: "Shelf A",
			Comment:         strPtr("for the field trip"),
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("malformed dates keep the record and report each field", func(t *testing.T) {
		got, err := asset.Decode(asset.Listing{
			Asset: asset.Stored{ID: "1", Name: "Camera", PurchaseDate: strPtr("last spring")},
			Loan: &asset.Loan{
				AssetID:       "1",
				BorrowerName:  "Jane Doe",
				BorrowerEmail: "jane@example.com",
				State:         "Requested",
				DateRequested: "2024-01-01",
				DueDate:       "2024-02-31",
			},
		})

		var cerr asset.CorruptRecordError
		assert.True(t, errors.As(err, &cerr))
		assert.Equal(t, "1", cerr.AssetID)
		assert.Contains(t, err.Error(), string(asset.FieldPurchaseDate))
		assert.Contains(t, err.Error(), string(asset.FieldDue))

		assert.Equal(t, asset.StateRequested, got.State)
		assert.Nil(t, got.PurchaseDate)
		assert.Nil(t, got.Due)
		assert.Equal(t, "2024-01-01", got.Requested.String())
	})

	t.Run("unknown loan state is corrupt", func(t *testing.T) {
		got, err := asset.Decode(asset.Listing{
			Asset: asset.Stored{ID: "1", Name: "Camera"},
			Loan: &asset.Loan{
				AssetID:       "1",
				BorrowerName:  "Jane Doe",
				BorrowerEmail: "jane@example.com",
				State:         "Lost",
				DateRequested: "2024-01-01",
				DueDate:       "2024-01-31",
			},
		})

		var cerr asset.CorruptRecordError
		assert.True(t, errors.As(err, &cerr))
		assert.Equal(t, asset.FieldState, cerr.Field)
		assert.Equal(t, "Lost", cerr.Value)
		assert.Equal(t, asset.StateAvailable, got.State)
	})
}

func TestRecordStored(t *testing.T) {
	rec := asset.Record{
		ID:              "1",
		Name:            "Camera",
		State:           asset.StateBorrowed,
		Borrower:        strPtr("Jane Doe"),
		StorageLocation: "Shelf A",
		PurchaseDate:    datePtr("2020-05-01"),
		Description:     strPtr("mirrorless"),
	}

	want := asset.Stored{
		ID:              "1",
		Name:            "Camera",
		StorageLocation: "Shelf A",
		PurchaseDate:    strPtr("2020-05-01"),
		Description:     strPtr("mirrorless"),
	}
	if diff := cmp.Diff(want, rec.Stored()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestRecordValue(t *testing.T) {
	rec := asset.Record{ID: "1", Name: "Camera", State: asset.StateAvailable, Due: datePtr("2024-01-31")}

	v, ok := rec.Value(asset.FieldDue)
	assert.True(t, ok)
	assert.Equal(t, "2024-01-31", v)

	_, ok = rec.Value(asset.FieldBorrower)
	assert.False(t, ok)
}
