package asset

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDuplicateKey    = errors.New("duplicate key")
	ErrDeleteCancelled = errors.New("delete cancelled")
	ErrEmptyCart       = errors.New("cart is empty")
)

type NotFoundError struct {
	AssetID string
}

func (err NotFoundError) Error() string {
	return fmt.Sprintf("could not find asset with id = %q", err.AssetID)
}

// ValidationError rejects input before anything is mutated.
type ValidationError struct {
	Op     string
	IDs    []string
	Field  string
	Reason string
	Err    error
}

func (err ValidationError) Error() string {
	var s strings.Builder
	if err.Op != "" {
		s.WriteString(err.Op + ": ")
	}
	if err.Field != "" {
		s.WriteString(err.Field + ": ")
	}
	reason := err.Reason
	if reason == "" && err.Err != nil {
		reason = err.Err.Error()
	}
	s.WriteString(reason)
	if len(err.IDs) > 0 {
		s.WriteString(": " + strings.Join(err.IDs, ", "))
	}
	return s.String()
}

func (err ValidationError) Unwrap() error {
	return err.Err
}

type InvalidTransitionError struct {
	AssetID string
	From    State
	Event   Event
}

func (err InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s asset %q in state %s", err.Event, err.AssetID, err.From)
}

// ConflictError reports a checkout lost to another actor, either holding an
// active loan on the asset or having deleted it.
type ConflictError struct {
	AssetID string
	Name    string
	Deleted bool
}

func (err ConflictError) Error() string {
	if err.Deleted {
		return fmt.Sprintf("%s (%s) has been removed from the inventory by someone else", err.Name, err.AssetID)
	}
	return fmt.Sprintf("%s (%s) has already been checked out by someone else", err.Name, err.AssetID)
}

// StoreUnavailableError wraps a failed round trip to the persistent store.
type StoreUnavailableError struct {
	Op      string
	AssetID string
	Err     error
}

func (err StoreUnavailableError) Error() string {
	var s strings.Builder
	s.WriteString("store unavailable: ")
	if err.Op != "" {
		s.WriteString(err.Op + ": ")
	}
	if err.AssetID != "" {
		s.WriteString("asset '" + err.AssetID + "': ")
	}
	if err.Err != nil {
		s.WriteString(err.Err.Error())
	}
	return s.String()
}

func (err StoreUnavailableError) Unwrap() error {
	return err.Err
}

// CorruptRecordError reports a persisted value that could not be parsed.
type CorruptRecordError struct {
	AssetID string
	Field   Field
	Value   string
	Err     error
}

func (err CorruptRecordError) Error() string {
	msg := fmt.Sprintf("corrupt record %q: field %s", err.AssetID, err.Field)
	if err.Value != "" {
		msg += fmt.Sprintf(" value %q", err.Value)
	}
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err CorruptRecordError) Unwrap() error {
	return err.Err
}

// IndexInvalidatedError is returned for a handle taken before the registry
// was structurally mutated, or pointing beyond its bounds.
type IndexInvalidatedError struct {
	Index      int
	Generation uint64
	Current    uint64
}

func (err IndexInvalidatedError) Error() string {
	return fmt.Sprintf("index %d of generation %d is no longer valid (current generation %d)",
		err.Index, err.Generation, err.Current)
}

// WrapStoreError keeps store errors callers act on (duplicate key, not found)
// and reports everything else as StoreUnavailableError.
func WrapStoreError(op, assetID string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrDuplicateKey) || errors.As(err, new(NotFoundError)) {
		return err
	}
	var unavailable StoreUnavailableError
	if errors.As(err, &unavailable) {
		return err
	}
	return StoreUnavailableError{Op: op, AssetID: assetID, Err: err}
}
