package postgres

import (
	"errors"
	"fmt"

	"github.com/goto/assetkeeper/core/asset"
	"github.com/goto/assetkeeper/internal/store/sqlstore"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
)

var (
	errNilDBClient    = errors.New("db client is nil")
	errCheckViolation = errors.New("check constraint violation")
)

func checkPostgresError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return fmt.Errorf("%w [%s]", asset.ErrDuplicateKey, pgErr.Detail)
		case pgerrcode.CheckViolation:
			return fmt.Errorf("%w [%s]", errCheckViolation, pgErr.Detail)
		case pgerrcode.ForeignKeyViolation:
			return fmt.Errorf("%w [%s]", sqlstore.ErrForeignKeyViolation, pgErr.Detail)
		}
	}
	return err
}
