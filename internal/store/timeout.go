package store

import (
	"context"
	"time"

	"github.com/goto/assetkeeper/core/asset"
)

// WithTimeout bounds every call on repo by d. A zero d returns repo as is.
func WithTimeout(repo asset.Repository, d time.Duration) asset.Repository {
	if d <= 0 {
		return repo
	}
	return &timeoutRepository{next: repo, timeout: d}
}

type timeoutRepository struct {
	next    asset.Repository
	timeout time.Duration
}

func (r *timeoutRepository) ListAssets(ctx context.Context) ([]asset.Listing, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return r.next.ListAssets(ctx)
}

func (r *timeoutRepository) FindAsset(ctx context.Context, id string) (asset.Stored, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return r.next.FindAsset(ctx, id)
}

func (r *timeoutRepository) FindActiveLoan(ctx context.Context, assetID string) (*asset.Loan, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return r.next.FindActiveLoan(ctx, assetID)
}

func (r *timeoutRepository) InsertLoan(ctx context.Context, loan asset.Loan) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return r.next.InsertLoan(ctx, loan)
}

func (r *timeoutRepository) InsertAsset(ctx context.Context, ast asset.Stored) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return r.next.InsertAsset(ctx, ast)
}

func (r *timeoutRepository) UpdateAsset(ctx context.Context, oldID string, ast asset.Stored) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return r.next.UpdateAsset(ctx, oldID, ast)
}

func (r *timeoutRepository) DeleteAsset(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return r.next.DeleteAsset(ctx, id)
}

func (r *timeoutRepository) DeleteLoan(ctx context.Context, assetID string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return r.next.DeleteLoan(ctx, assetID)
}

func (r *timeoutRepository) UpdateLoanState(ctx context.Context, assetID string, state asset.State) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return r.next.UpdateLoanState(ctx, assetID, state)
}

func (r *timeoutRepository) UpdateLoanDueDate(ctx context.Context, assetID string, due asset.Date) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return r.next.UpdateLoanDueDate(ctx, assetID, due)
}

func (r *timeoutRepository) Close() error {
	return r.next.Close()
}
