// Package memory implements asset.Repository in process memory. It backs
// dry runs and tests; nothing survives the process.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/goto/assetkeeper/core/asset"
)

// Store is safe for concurrent use, so several sessions can share one.
type Store struct {
	mu     sync.RWMutex
	assets map[string]asset.Stored
	loans  map[string]asset.Loan
	closed bool
}

func New() *Store {
	return &Store{
		assets: map[string]asset.Stored{},
		loans:  map[string]asset.Loan{},
	}
}

func (s *Store) ListAssets(ctx context.Context) ([]asset.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.check(ctx); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(s.assets))
	for id := range s.assets {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return asset.CompareIDs(ids[i], ids[j]) < 0
	})

	out := make([]asset.Listing, 0, len(ids))
	for _, id := range ids {
		l := asset.Listing{Asset: cloneAsset(s.assets[id])}
		if loan, ok := s.loans[id]; ok {
			loan = cloneLoan(loan)
			l.Loan = &loan
		}
		out = append(out, l)
	}
	return out, nil
}

func (s *Store) FindAsset(ctx context.Context, id string) (asset.Stored, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.check(ctx); err != nil {
		return asset.Stored{}, err
	}

	ast, ok := s.assets[id]
	if !ok {
		return asset.Stored{}, asset.NotFoundError{AssetID: id}
	}
	return cloneAsset(ast), nil
}

func (s *Store) FindActiveLoan(ctx context.Context, assetID string) (*asset.Loan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.check(ctx); err != nil {
		return nil, err
	}

	loan, ok := s.loans[assetID]
	if !ok {
		return nil, nil
	}
	loan = cloneLoan(loan)
	return &loan, nil
}

func (s *Store) InsertLoan(ctx context.Context, loan asset.Loan) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx); err != nil {
		return err
	}

	if _, ok := s.assets[loan.AssetID]; !ok {
		return asset.NotFoundError{AssetID: loan.AssetID}
	}
	if _, ok := s.loans[loan.AssetID]; ok {
		return asset.ErrDuplicateKey
	}
	s.loans[loan.AssetID] = cloneLoan(loan)
	return nil
}

func (s *Store) InsertAsset(ctx context.Context, ast asset.Stored) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx); err != nil {
		return err
	}

	if _, ok := s.assets[ast.ID]; ok {
		return asset.ErrDuplicateKey
	}
	s.assets[ast.ID] = cloneAsset(ast)
	return nil
}

func (s *Store) UpdateAsset(ctx context.Context, oldID string, ast asset.Stored) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx); err != nil {
		return err
	}

	if _, ok := s.assets[oldID]; !ok {
		return asset.NotFoundError{AssetID: oldID}
	}
	if ast.ID != oldID {
		if _, taken := s.assets[ast.ID]; taken {
			return asset.ErrDuplicateKey
		}
		delete(s.assets, oldID)
		if loan, ok := s.loans[oldID]; ok {
			delete(s.loans, oldID)
			loan.AssetID = ast.ID
			s.loans[ast.ID] = loan
		}
	}
	s.assets[ast.ID] = cloneAsset(ast)
	return nil
}

func (s *Store) DeleteAsset(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx); err != nil {
		return err
	}

	if _, ok := s.assets[id]; !ok {
		return asset.NotFoundError{AssetID: id}
	}
	delete(s.assets, id)
	delete(s.loans, id)
	return nil
}

func (s *Store) DeleteLoan(ctx context.Context, assetID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx); err != nil {
		return err
	}

	if _, ok := s.loans[assetID]; !ok {
		return asset.NotFoundError{AssetID: assetID}
	}
	delete(s.loans, assetID)
	return nil
}

func (s *Store) UpdateLoanState(ctx context.Context, assetID string, state asset.State) error {
	return s.updateLoan(ctx, assetID, func(l *asset.Loan) {
		l.State = state.String()
	})
}

func (s *Store) UpdateLoanDueDate(ctx context.Context, assetID string, due asset.Date) error {
	return s.updateLoan(ctx, assetID, func(l *asset.Loan) {
		l.DueDate = due.String()
	})
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *Store) updateLoan(ctx context.Context, assetID string, fn func(*asset.Loan)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx); err != nil {
		return err
	}

	loan, ok := s.loans[assetID]
	if !ok {
		return asset.NotFoundError{AssetID: assetID}
	}
	fn(&loan)
	s.loans[assetID] = loan
	return nil
}

func (s *Store) check(ctx context.Context) error {
	if s.closed {
		return errClosed
	}
	return ctx.Err()
}

func cloneAsset(a asset.Stored) asset.Stored {
	a.Description = cloneString(a.Description)
	a.PurchaseDate = cloneString(a.PurchaseDate)
	return a
}

func cloneLoan(l asset.Loan) asset.Loan {
	l.Comment = cloneString(l.Comment)
	return l
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
