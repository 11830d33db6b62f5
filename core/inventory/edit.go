package inventory

import (
	"context"
	"strings"

	"github.com/goto/assetkeeper/core/asset"
	"github.com/goto/assetkeeper/core/validator"
	"github.com/r3labs/diff/v2"
)

// EditRequest changes the asset row of one record. Nil fields are left as
// they are; an empty Description or PurchaseDate clears the value.
type EditRequest struct {
	ID              *string `json:"id" validate:"omitempty,min=1"`
	Name            *string `json:"name" validate:"omitempty,min=1"`
	Description     *string `json:"description"`
	PurchaseDate    *string `json:"purchase_date"`
	StorageLocation *string `json:"storage_location" validate:"omitempty,min=1"`
}

func (r EditRequest) apply(cur asset.Stored) (asset.Stored, error) {
	next := cur
	if r.ID != nil {
		id := strings.TrimSpace(*r.ID)
		if strings.Contains(id, ",") {
			return asset.Stored{}, asset.ValidationError{Op: "edit", IDs: []string{id}, Field: asset.FieldID.String(), Reason: "only one identifier can be edited at a time"}
		}
		if id == "" {
			return asset.Stored{}, asset.ValidationError{Op: "edit", Field: asset.FieldID.String(), Reason: "required field is empty"}
		}
		next.ID = id
	}
	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		if name == "" {
			return asset.Stored{}, asset.ValidationError{Op: "edit", Field: asset.FieldName.String(), Reason: "required field is empty"}
		}
		next.Name = name
	}
	if r.StorageLocation != nil {
		loc := strings.TrimSpace(*r.StorageLocation)
		if loc == "" {
			return asset.Stored{}, asset.ValidationError{Op: "edit", Field: asset.FieldStorageLocation.String(), Reason: "required field is empty"}
		}
		next.StorageLocation = loc
	}
	if r.Description != nil {
		next.Description = nil
		if d := strings.TrimSpace(*r.Description); d != "" {
			next.Description = &d
		}
	}
	if r.PurchaseDate != nil {
		next.PurchaseDate = nil
		if p := strings.TrimSpace(*r.PurchaseDate); p != "" {
			d, err := asset.ParseDate(p)
			if err != nil {
				return asset.Stored{}, asset.ValidationError{Op: "edit", Field: asset.FieldPurchaseDate.String(), Err: err}
			}
			date := d.String()
			next.PurchaseDate = &date
		}
	}
	return next, nil
}

// Edit rewrites the asset row of the record at h and returns what changed.
// Changing the identifier re-keys the loan row too.
func (s *Session) Edit(ctx context.Context, h asset.Handle, req EditRequest) (changes diff.Changelog, err error) {
	ctx, span := s.start(ctx, "edit")
	var rec asset.Record
	defer func() { s.finish(ctx, span, "edit", rec.ID, err) }()

	rec, err = s.reg.Get(h)
	if err != nil {
		return nil, err
	}
	if rec.State == asset.StateCart {
		return nil, asset.ValidationError{Op: "edit", IDs: []string{rec.ID}, Reason: "remove the asset from the cart before editing it"}
	}
	if err := validator.ValidateStruct(req); err != nil {
		return nil, asset.ValidationError{Op: "edit", Err: err}
	}

	cur := rec.Stored()
	next, err := req.apply(cur)
	if err != nil {
		return nil, err
	}
	changes, err = diff.Diff(cur, next)
	if err != nil {
		return nil, err
	}
	if len(changes) == 0 {
		return nil, nil
	}

	if next.ID != cur.ID {
		if _, ok := s.reg.IndexOf(next.ID); ok {
			return nil, asset.ValidationError{Op: "edit", IDs: []string{next.ID}, Field: asset.FieldID.String(), Reason: "asset identifiers already exist"}
		}
	}

	err = s.commit(ctx, "edit", rec.ID, true,
		func() error { return s.repo.UpdateAsset(ctx, cur.ID, next) },
		nil,
	)
	if err != nil {
		if isDuplicate(err) {
			err = asset.ValidationError{Op: "edit", IDs: []string{next.ID}, Field: asset.FieldID.String(), Reason: "asset identifiers already exist", Err: err}
		}
		return nil, err
	}
	s.record("edit", []string{next.ID}, "Edited "+next.Name+" ("+next.ID+")")
	return changes, nil
}
