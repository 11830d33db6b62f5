package asset

import "fmt"

// Field names a column of an asset record.
type Field string

const (
	FieldID              Field = "id"
	FieldName            Field = "name"
	FieldState           Field = "state"
	FieldBorrower        Field = "borrower"
	FieldEmail           Field = "email"
	FieldRequested       Field = "date_requested"
	FieldDue             Field = "due_date"
	FieldStorageLocation Field = "storage_location"
	FieldPurchaseDate    Field = "purchase_date"
	FieldDescription     Field = "description"
	FieldComment         Field = "comment"
)

// AllFields lists every field in presentation order.
var AllFields = []Field{
	FieldID,
	FieldName,
	FieldState,
	FieldBorrower,
	FieldEmail,
	FieldRequested,
	FieldDue,
	FieldStorageLocation,
	FieldPurchaseDate,
	FieldDescription,
	FieldComment,
}

func (f Field) String() string {
	return string(f)
}

// IsValid reports whether f is a known field.
func (f Field) IsValid() bool {
	for _, known := range AllFields {
		if f == known {
			return true
		}
	}
	return false
}

// ParseField returns the field with the given name.
func ParseField(s string) (Field, error) {
	f := Field(s)
	if !f.IsValid() {
		return "", fmt.Errorf("unknown field %q", s)
	}
	return f, nil
}
