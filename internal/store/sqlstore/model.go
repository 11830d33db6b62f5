package sqlstore

import "github.com/goto/assetkeeper/core/asset"

// listingRow is one row of assets left joined with borrow_list. Every loan
// column is nullable because of the outer join.
type listingRow struct {
	AssetID         string  `db:"asset_id"`
	Name            string  `db:"name"`
	Description     *string `db:"description"`
	PurchaseDate    *string `db:"purchase_date"`
	StorageLocation string  `db:"storage_location"`

	LoanAssetID   *string `db:"loan_asset_id"`
	BorrowerName  *string `db:"borrower_name"`
	BorrowerEmail *string `db:"borrower_email"`
	State         *string `db:"state"`
	DateRequested *string `db:"date_requested"`
	ReturnDate    *string `db:"return_date"`
	Comments      *string `db:"comments"`
}

func (r listingRow) toListing() asset.Listing {
	l := asset.Listing{Asset: asset.Stored{
		ID:              r.AssetID,
		Name:            r.Name,
		Description:     r.Description,
		PurchaseDate:    r.PurchaseDate,
		StorageLocation: r.StorageLocation,
	}}
	if r.LoanAssetID == nil {
		return l
	}
	l.Loan = &asset.Loan{
		AssetID:       *r.LoanAssetID,
		BorrowerName:  value(r.BorrowerName),
		BorrowerEmail: value(r.BorrowerEmail),
		State:         value(r.State),
		DateRequested: value(r.DateRequested),
		DueDate:       value(r.ReturnDate),
		Comment:       r.Comments,
	}
	return l
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
