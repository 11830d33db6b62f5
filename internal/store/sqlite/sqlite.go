// Package sqlite stores assets in a single SQLite file, the format the
// inventory has always been kept in.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/goto/assetkeeper/core/asset"
	"github.com/goto/assetkeeper/internal/store/sqlstore"
)

//go:embed schema.sql
var schema string

type Config struct {
	Path string `yaml:"path" mapstructure:"path" default:"assetkeeper.db"`
}

var errNilClient = errors.New("sqlite client is nil")

// Client wraps the sqlx handle of one database file.
type Client struct {
	db   *sqlx.DB
	path string
}

// NewClient opens the database file, creating its directory when needed.
// Foreign keys are enforced on every connection.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	path := cfg.Path
	if path == "" {
		path = "assetkeeper.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}

	dsn := "file:" + path + "?" + url.Values{
		"_pragma": []string{"foreign_keys(1)", "busy_timeout(5000)"},
	}.Encode()
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	return &Client{db: sqlx.NewDb(db, "sqlite"), path: path}, nil
}

// Init creates the assets and borrow_list tables if they do not exist.
func (c *Client) Init(ctx context.Context) error {
	if _, err := c.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

func (c *Client) Path() string {
	return c.path
}

func (c *Client) Close() error {
	return c.db.Close()
}

var numericID = fmt.Sprintf(
	`CASE WHEN a.asset_id <> '' AND length(a.asset_id) <= %d AND a.asset_id NOT GLOB '*[^0-9]*' THEN CAST(a.asset_id AS INTEGER) END`,
	asset.MaxNumericIDLen,
)

// listingOrder puts decimal identifiers first by value, then the rest bytewise.
var listingOrder = numericID + " IS NULL, " + numericID + ", a.asset_id"

// NewAssetRepository returns the asset.Repository stored in this file.
func NewAssetRepository(c *Client) (*sqlstore.AssetRepository, error) {
	if c == nil {
		return nil, errNilClient
	}
	return sqlstore.NewAssetRepository(c.db, sqlstore.Dialect{
		Placeholder: sq.Question,
		MapError:    checkSQLiteError,
		OrderBy:     listingOrder,
	})
}

func checkSQLiteError(err error) error {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE:
			return fmt.Errorf("%w [%s]", asset.ErrDuplicateKey, sqliteErr.Error())
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return fmt.Errorf("%w [%s]", sqlstore.ErrForeignKeyViolation, sqliteErr.Error())
		}
	}
	return err
}
