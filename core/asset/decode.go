package asset

import (
	"errors"
	"fmt"
)

// Decode turns a joined listing row into a record. Unparsable stored values
// are reported as CorruptRecordError; the record is still returned with the
// offending field left empty so the remaining fields stay usable.
func Decode(l Listing) (Record, error) {
	rec := Record{
		ID:              l.Asset.ID,
		Name:            l.Asset.Name,
		State:           StateAvailable,
		StorageLocation: l.Asset.StorageLocation,
		Description:     cloneString(l.Asset.Description),
	}

	var errs []error
	parseOptional := func(field Field, raw *string) *Date {
		if raw == nil {
			return nil
		}
		d, err := ParseDate(*raw)
		if err != nil {
			errs = append(errs, CorruptRecordError{AssetID: rec.ID, Field: field, Value: *raw, Err: err})
			return nil
		}
		return &d
	}

	rec.PurchaseDate = parseOptional(FieldPurchaseDate, l.Asset.PurchaseDate)

	if l.Loan != nil {
		state, ok := parseLoanState(l.Loan.State)
		if ok {
			rec.State = state
		} else {
			errs = append(errs, CorruptRecordError{
				AssetID: rec.ID,
				Field:   FieldState,
				Value:   l.Loan.State,
				Err:     fmt.Errorf("unknown loan state"),
			})
		}
		borrower, email := l.Loan.BorrowerName, l.Loan.BorrowerEmail
		rec.Borrower = &borrower
		rec.Email = &email
		rec.Requested = parseOptional(FieldRequested, &l.Loan.DateRequested)
		rec.Due = parseOptional(FieldDue, &l.Loan.DueDate)
		rec.Comment = cloneString(l.Loan.Comment)
	}

	return rec, errors.Join(errs...)
}
