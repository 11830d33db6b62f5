// Package sqlstore implements asset.Repository over any SQL database holding
// the assets and borrow_list tables. The postgres and sqlite packages provide
// the connections and dialects.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/goto/assetkeeper/core/asset"
	"github.com/jmoiron/sqlx"
)

const (
	assetsTable = "assets"
	loansTable  = "borrow_list"
)

// Dialect captures what differs between database engines.
type Dialect struct {
	Placeholder sq.PlaceholderFormat
	// MapError translates driver errors, returning asset.ErrDuplicateKey or
	// ErrForeignKeyViolation (wrapped) for constraint violations.
	MapError func(error) error
	// OrderBy orders the listing by asset id.
	OrderBy string
}

type AssetRepository struct {
	db      *sqlx.DB
	builder sq.StatementBuilderType
	dialect Dialect
}

func NewAssetRepository(db *sqlx.DB, d Dialect) (*AssetRepository, error) {
	if db == nil {
		return nil, errNilDB
	}
	if d.MapError == nil {
		d.MapError = func(err error) error { return err }
	}
	if d.OrderBy == "" {
		d.OrderBy = "a.asset_id"
	}
	return &AssetRepository{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(d.Placeholder),
		dialect: d,
	}, nil
}

func (r *AssetRepository) ListAssets(ctx context.Context) ([]asset.Listing, error) {
	query, args, err := r.builder.Select(
		"a.asset_id", "a.name", "a.description", "a.purchase_date", "a.storage_location",
		"b.asset_id AS loan_asset_id", "b.borrower_name", "b.borrower_email", "b.state",
		"b.date_requested", "b.return_date", "b.comments",
	).
		From(assetsTable + " a").
		LeftJoin(loansTable + " b ON b.asset_id = a.asset_id").
		OrderBy(r.dialect.OrderBy).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list assets query: %w", err)
	}

	var rows []listingRow
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}

	out := make([]asset.Listing, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toListing())
	}
	return out, nil
}

func (r *AssetRepository) FindAsset(ctx context.Context, id string) (asset.Stored, error) {
	query, args, err := r.builder.Select("asset_id", "name", "description", "purchase_date", "storage_location").
		From(assetsTable).
		Where(sq.Eq{"asset_id": id}).
		ToSql()
	if err != nil {
		return asset.Stored{}, fmt.Errorf("build find asset query: %w", err)
	}

	var ast asset.Stored
	if err := sqlx.GetContext(ctx, r.db, &ast, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return asset.Stored{}, asset.NotFoundError{AssetID: id}
		}
		return asset.Stored{}, fmt.Errorf("find asset %q: %w", id, err)
	}
	return ast, nil
}

func (r *AssetRepository) FindActiveLoan(ctx context.Context, assetID string) (*asset.Loan, error) {
	query, args, err := r.builder.Select(
		"asset_id", "borrower_name", "borrower_email", "state", "date_requested", "return_date", "comments",
	).
		From(loansTable).
		Where(sq.Eq{"asset_id": assetID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find loan query: %w", err)
	}

	var loan asset.Loan
	if err := sqlx.GetContext(ctx, r.db, &loan, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find loan of %q: %w", assetID, err)
	}
	return &loan, nil
}

func (r *AssetRepository) InsertLoan(ctx context.Context, loan asset.Loan) error {
	query, args, err := r.builder.Insert(loansTable).
		Columns("asset_id", "borrower_name", "borrower_email", "state", "date_requested", "return_date", "comments").
		Values(loan.AssetID, loan.BorrowerName, loan.BorrowerEmail, loan.State, loan.DateRequested, loan.DueDate, loan.Comment).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert loan query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return r.mapError(loan.AssetID, fmt.Errorf("insert loan of %q: %w", loan.AssetID, err))
	}
	return nil
}

func (r *AssetRepository) InsertAsset(ctx context.Context, ast asset.Stored) error {
	query, args, err := r.builder.Insert(assetsTable).
		Columns("asset_id", "name", "description", "purchase_date", "storage_location").
		Values(ast.ID, ast.Name, ast.Description, ast.PurchaseDate, ast.StorageLocation).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert asset query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return r.mapError(ast.ID, fmt.Errorf("insert asset %q: %w", ast.ID, err))
	}
	return nil
}

// UpdateAsset rewrites the asset row of oldID. When the identifier changes the
// loan row is re-keyed in the same transaction.
func (r *AssetRepository) UpdateAsset(ctx context.Context, oldID string, ast asset.Stored) error {
	return r.runWithinTx(ctx, func(tx *sqlx.Tx) error {
		query, args, err := r.builder.Update(assetsTable).
			SetMap(map[string]interface{}{
				"asset_id":         ast.ID,
				"name":             ast.Name,
				"description":      ast.Description,
				"purchase_date":    ast.PurchaseDate,
				"storage_location": ast.StorageLocation,
			}).
			Where(sq.Eq{"asset_id": oldID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("build update asset query: %w", err)
		}
		if err := r.execAffecting(ctx, tx, oldID, query, args); err != nil {
			return r.mapError(ast.ID, fmt.Errorf("update asset %q: %w", oldID, err))
		}

		if ast.ID == oldID {
			return nil
		}
		query, args, err = r.builder.Update(loansTable).
			Set("asset_id", ast.ID).
			Where(sq.Eq{"asset_id": oldID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("build re-key loan query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return r.mapError(ast.ID, fmt.Errorf("re-key loan of %q: %w", oldID, err))
		}
		return nil
	})
}

// DeleteAsset removes the asset row and any loan row of id.
func (r *AssetRepository) DeleteAsset(ctx context.Context, id string) error {
	return r.runWithinTx(ctx, func(tx *sqlx.Tx) error {
		query, args, err := r.builder.Delete(loansTable).Where(sq.Eq{"asset_id": id}).ToSql()
		if err != nil {
			return fmt.Errorf("build delete loan query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("delete loan of %q: %w", id, err)
		}

		query, args, err = r.builder.Delete(assetsTable).Where(sq.Eq{"asset_id": id}).ToSql()
		if err != nil {
			return fmt.Errorf("build delete asset query: %w", err)
		}
		return r.execAffecting(ctx, tx, id, query, args)
	})
}

func (r *AssetRepository) DeleteLoan(ctx context.Context, assetID string) error {
	query, args, err := r.builder.Delete(loansTable).Where(sq.Eq{"asset_id": assetID}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete loan query: %w", err)
	}
	return r.execAffecting(ctx, r.db, assetID, query, args)
}

func (r *AssetRepository) UpdateLoanState(ctx context.Context, assetID string, state asset.State) error {
	query, args, err := r.builder.Update(loansTable).
		Set("state", state.String()).
		Where(sq.Eq{"asset_id": assetID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update loan state query: %w", err)
	}
	return r.execAffecting(ctx, r.db, assetID, query, args)
}

func (r *AssetRepository) UpdateLoanDueDate(ctx context.Context, assetID string, due asset.Date) error {
	query, args, err := r.builder.Update(loansTable).
		Set("return_date", due.String()).
		Where(sq.Eq{"asset_id": assetID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update due date query: %w", err)
	}
	return r.execAffecting(ctx, r.db, assetID, query, args)
}

func (r *AssetRepository) Close() error {
	return r.db.Close()
}

// execAffecting runs a statement that must touch at least one row of id.
func (r *AssetRepository) execAffecting(ctx context.Context, exec sqlx.ExecerContext, id, query string, args []interface{}) error {
	res, err := exec.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return asset.NotFoundError{AssetID: id}
	}
	return nil
}

func (r *AssetRepository) mapError(id string, err error) error {
	err = r.dialect.MapError(err)
	if errors.Is(err, ErrForeignKeyViolation) {
		return asset.NotFoundError{AssetID: id}
	}
	return err
}

func (r *AssetRepository) runWithinTx(ctx context.Context, f func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	if err = f(tx); err != nil {
		if txErr := tx.Rollback(); txErr != nil {
			return fmt.Errorf("rollback transaction error: %v (original error: %w)", txErr, err)
		}
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}
