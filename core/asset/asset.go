package asset

//go:generate mockery --name=Repository -r --case underscore --with-expecter --structname AssetRepository --filename asset_repository.go --output=./mocks
import (
	"context"
)

// Repository is the persistent store the inventory is reconciled against.
// Implementations must be safe to share between sessions; every call is a
// single statement (or a single transaction) and commits on return.
type Repository interface {
	ListAssets(ctx context.Context) ([]Listing, error)
	FindAsset(ctx context.Context, id string) (Stored, error)
	FindActiveLoan(ctx context.Context, assetID string) (*Loan, error)
	InsertLoan(ctx context.Context, loan Loan) error
	InsertAsset(ctx context.Context, ast Stored) error
	UpdateAsset(ctx context.Context, oldID string, ast Stored) error
	DeleteAsset(ctx context.Context, id string) error
	DeleteLoan(ctx context.Context, assetID string) error
	UpdateLoanState(ctx context.Context, assetID string, state State) error
	UpdateLoanDueDate(ctx context.Context, assetID string, due Date) error
	Close() error
}

// Record is one asset together with its custody state, as held by the
// in-memory registry.
type Record struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	State           State   `json:"state"`
	Borrower        *string `json:"borrower,omitempty"`
	Email           *string `json:"email,omitempty"`
	Requested       *Date   `json:"date_requested,omitempty"`
	Due             *Date   `json:"due_date,omitempty"`
	StorageLocation string  `json:"storage_location"`
	PurchaseDate    *Date   `json:"purchase_date,omitempty"`
	Description     *string `json:"description,omitempty"`
	Comment         *string `json:"comment,omitempty"`
}

// Presented returns the state shown to a consumer. Overdue is never stored:
// a borrowed record whose due date lies strictly before today is presented
// as overdue while its stored state stays borrowed.
func (r Record) Presented(today Date) State {
	if r.State == StateBorrowed && r.Due != nil && today.After(*r.Due) {
		return StateOverdue
	}
	return r.State
}

// Value returns the textual value of a field and whether it is present.
func (r Record) Value(f Field) (string, bool) {
	switch f {
	case FieldID:
		return r.ID, true
	case FieldName:
		return r.Name, true
	case FieldState:
		return r.State.String(), true
	case FieldBorrower:
		return deref(r.Borrower)
	case FieldEmail:
		return deref(r.Email)
	case FieldRequested:
		return derefDate(r.Requested)
	case FieldDue:
		return derefDate(r.Due)
	case FieldStorageLocation:
		return r.StorageLocation, true
	case FieldPurchaseDate:
		return derefDate(r.PurchaseDate)
	case FieldDescription:
		return deref(r.Description)
	case FieldComment:
		return deref(r.Comment)
	}
	return "", false
}

// Stored converts the record back into its asset row.
func (r Record) Stored() Stored {
	s := Stored{
		ID:              r.ID,
		Name:            r.Name,
		StorageLocation: r.StorageLocation,
		Description:     cloneString(r.Description),
	}
	if r.PurchaseDate != nil {
		d := r.PurchaseDate.String()
		s.PurchaseDate = &d
	}
	return s
}

// Stored is an asset row as exchanged with the persistent store.
type Stored struct {
	ID              string  `json:"id" db:"asset_id" diff:"id"`
	Name            string  `json:"name" db:"name" diff:"name"`
	Description     *string `json:"description,omitempty" db:"description" diff:"description"`
	PurchaseDate    *string `json:"purchase_date,omitempty" db:"purchase_date" diff:"purchase_date"`
	StorageLocation string  `json:"storage_location" db:"storage_location" diff:"storage_location"`
}

// Loan is a loan row: the durable reservation or borrowing of one asset.
type Loan struct {
	AssetID       string  `json:"asset_id" db:"asset_id"`
	BorrowerName  string  `json:"borrower_name" db:"borrower_name"`
	BorrowerEmail string  `json:"borrower_email" db:"borrower_email"`
	State         string  `json:"state" db:"state"`
	DateRequested string  `json:"date_requested" db:"date_requested"`
	DueDate       string  `json:"due_date" db:"return_date"`
	Comment       *string `json:"comment,omitempty" db:"comments"`
}

// Listing is one row of the assets left outer joined with their active loan.
// Loan is nil when the asset has no active loan.
type Listing struct {
	Asset Stored
	Loan  *Loan
}

// LoanIntent is produced for a cart item at checkout time and only becomes a
// loan row once the checkout coordinator accepts it.
type LoanIntent struct {
	AssetID       string
	BorrowerName  string
	BorrowerEmail string
	Requested     Date
	Due           Date
	Comment       string
}

// Loan converts the intent into a requested loan row.
func (i LoanIntent) Loan() Loan {
	l := Loan{
		AssetID:       i.AssetID,
		BorrowerName:  i.BorrowerName,
		BorrowerEmail: i.BorrowerEmail,
		State:         StateRequested.String(),
		DateRequested: i.Requested.String(),
		DueDate:       i.Due.String(),
	}
	if i.Comment != "" {
		c := i.Comment
		l.Comment = &c
	}
	return l
}

func deref(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}

func derefDate(d *Date) (string, bool) {
	if d == nil {
		return "", false
	}
	return d.String(), true
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
