package sqlstore

import "errors"

var (
	// ErrForeignKeyViolation is returned by a dialect's error mapper for a
	// loan row referencing a missing asset.
	ErrForeignKeyViolation = errors.New("foreign key violation")
	errNilDB               = errors.New("sqlstore: nil database handle")
)
