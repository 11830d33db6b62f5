package inventory

import (
	"context"
	"fmt"

	"github.com/goto/assetkeeper/core/asset"
)

// Confirm is asked before a destructive action. Returning false cancels it.
type Confirm func(rec asset.Record) bool

// Approve turns a requested loan into a borrowed one.
func (s *Session) Approve(ctx context.Context, h asset.Handle) (err error) {
	ctx, span := s.start(ctx, "approve")
	var rec asset.Record
	defer func() { s.finish(ctx, span, "approve", rec.ID, err) }()

	rec, to, err := s.prepare(h, asset.EventApprove)
	if err != nil {
		return err
	}

	err = s.commit(ctx, "approve", rec.ID, true,
		func() error { return s.repo.UpdateLoanState(ctx, rec.ID, to) },
		func() { s.reg.SetState(h.Index, to) },
	)
	if err != nil {
		return err
	}
	s.record("approve", []string{rec.ID}, fmt.Sprintf("Approved %s (%s)", rec.Name, rec.ID))
	return nil
}

// MakeAvailable ends a request or a loan by deleting its loan row.
func (s *Session) MakeAvailable(ctx context.Context, h asset.Handle) error {
	return s.release(ctx, h, asset.EventMakeAvailable, "Made %s (%s) available")
}

// Return ends a loan by deleting its loan row.
func (s *Session) Return(ctx context.Context, h asset.Handle) error {
	return s.release(ctx, h, asset.EventReturn, "Returned %s (%s)")
}

func (s *Session) release(ctx context.Context, h asset.Handle, ev asset.Event, msg string) (err error) {
	ctx, span := s.start(ctx, ev.String())
	var rec asset.Record
	defer func() { s.finish(ctx, span, ev.String(), rec.ID, err) }()

	rec, to, err := s.prepare(h, ev)
	if err != nil {
		return err
	}

	err = s.commit(ctx, ev.String(), rec.ID, true,
		func() error { return s.repo.DeleteLoan(ctx, rec.ID) },
		func() {
			released := rec
			released.State = to
			released.Borrower, released.Email = nil, nil
			released.Requested, released.Due = nil, nil
			released.Comment = nil
			s.reg.Update(h.Index, released)
		},
	)
	if err != nil {
		return err
	}
	s.record(ev.String(), []string{rec.ID}, fmt.Sprintf(msg, rec.Name, rec.ID))
	return nil
}

// Extend moves the due date of a request or loan by one loan period and
// returns the new due date.
func (s *Session) Extend(ctx context.Context, h asset.Handle) (due asset.Date, err error) {
	ctx, span := s.start(ctx, "extend")
	var rec asset.Record
	defer func() { s.finish(ctx, span, "extend", rec.ID, err) }()

	rec, _, err = s.prepare(h, asset.EventExtend)
	if err != nil {
		return asset.Date{}, err
	}
	due, err = rec.ExtendedDue(s.loanPeriod)
	if err != nil {
		return asset.Date{}, err
	}

	err = s.commit(ctx, "extend", rec.ID, true,
		func() error { return s.repo.UpdateLoanDueDate(ctx, rec.ID, due) },
		func() {
			extended := rec
			extended.Due = &due
			s.reg.Update(h.Index, extended)
		},
	)
	if err != nil {
		return asset.Date{}, err
	}
	s.record("extend", []string{rec.ID}, fmt.Sprintf("Extended due date of %s (%s) by %d days", rec.Name, rec.ID, s.loanPeriod))
	return due, nil
}

// Delete removes an asset and its loan row after confirm agrees. A nil
// confirm cancels the delete.
func (s *Session) Delete(ctx context.Context, h asset.Handle, confirm Confirm) (err error) {
	ctx, span := s.start(ctx, "delete")
	var rec asset.Record
	defer func() { s.finish(ctx, span, "delete", rec.ID, err) }()

	rec, _, err = s.prepare(h, asset.EventDelete)
	if err != nil {
		return err
	}
	if confirm == nil || !confirm(rec) {
		return asset.ErrDeleteCancelled
	}

	err = s.commit(ctx, "delete", rec.ID, false,
		func() error { return s.repo.DeleteAsset(ctx, rec.ID) },
		func() { _ = s.views.RemoveIndex(h.Index) },
	)
	if err != nil {
		return err
	}
	s.record("delete", []string{rec.ID}, fmt.Sprintf("Deleted %s (%s)", rec.Name, rec.ID))
	return nil
}

// prepare resolves h and validates ev against the record's stored state.
func (s *Session) prepare(h asset.Handle, ev asset.Event) (asset.Record, asset.State, error) {
	rec, err := s.reg.Get(h)
	if err != nil {
		return asset.Record{}, "", err
	}
	to, err := asset.Transition(rec.ID, rec.State, ev)
	if err != nil {
		return rec, "", err
	}
	return rec, to, nil
}
