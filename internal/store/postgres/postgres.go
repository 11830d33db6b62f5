package postgres

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	sq "github.com/Masterminds/squirrel"
	"github.com/golang-migrate/migrate/v4"
	// Register database postgres
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	// Register golang migrate source
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/jmoiron/sqlx"
	"go.nhat.io/otelsql"
	semconv "go.opentelemetry.io/otel/semconv/v1.20.0"

	"github.com/goto/assetkeeper/core/asset"
	"github.com/goto/assetkeeper/internal/store/sqlstore"
)

//go:embed migrations/*.sql
var fs embed.FS

const instanceName = "assetkeeper"

var (
	registerOnce sync.Once
	driverName   string
	registerErr  error
)

// Client wraps the sqlx handle of the PostgreSQL store.
type Client struct {
	db  *sqlx.DB
	cfg Config
}

// NewClient opens a traced connection pool and checks it is reachable.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	name, err := tracedDriver()
	if err != nil {
		return nil, fmt.Errorf("register traced driver: %w", err)
	}

	sqlDB, err := sql.Open(name, cfg.ConnectionURL().String())
	if err != nil {
		return nil, fmt.Errorf("error creating and connecting DB: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("error creating and connecting DB: %w", err)
	}
	if err := otelsql.RecordStats(
		sqlDB,
		otelsql.WithSystem(semconv.DBSystemPostgreSQL),
		otelsql.WithInstanceName(instanceName),
	); err != nil {
		sqlDB.Close()
		return nil, err
	}

	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return NewClientWithDB(sqlDB, cfg)
}

// NewClientWithDB wraps an already opened database.
func NewClientWithDB(db *sql.DB, cfg Config) (*Client, error) {
	if db == nil {
		return nil, errNilDBClient
	}
	return &Client{db: sqlx.NewDb(db, "pgx"), cfg: cfg}, nil
}

func tracedDriver() (string, error) {
	registerOnce.Do(func() {
		driverName, registerErr = otelsql.Register(
			"pgx",
			otelsql.TraceQueryWithoutArgs(),
			otelsql.TraceRowsClose(),
			otelsql.TraceRowsAffected(),
			otelsql.WithSystem(semconv.DBSystemPostgreSQL),
			otelsql.WithInstanceName(instanceName),
		)
	})
	return driverName, registerErr
}

// listingOrder puts decimal identifiers first by value, then the rest bytewise.
var listingOrder = fmt.Sprintf(
	`CASE WHEN a.asset_id ~ '^[0-9]{1,%d}$' THEN a.asset_id::bigint END NULLS LAST, a.asset_id COLLATE "C"`,
	asset.MaxNumericIDLen,
)

// NewAssetRepository returns the asset.Repository stored in this database.
func NewAssetRepository(c *Client) (*sqlstore.AssetRepository, error) {
	if c == nil {
		return nil, errNilDBClient
	}
	return sqlstore.NewAssetRepository(c.db, sqlstore.Dialect{
		Placeholder: sq.Dollar,
		MapError:    checkPostgresError,
		OrderBy:     listingOrder,
	})
}

// Migrate applies every pending migration and returns the schema version.
func (c *Client) Migrate() (ver uint, err error) {
	m, err := initMigration(c.cfg)
	if err != nil {
		return 0, fmt.Errorf("migration failed: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("migration failed: %w", err)
	}
	if ver, _, err = m.Version(); err != nil {
		return ver, err
	}
	return ver, nil
}

// MigrateDown rolls back the most recent migration.
func (c *Client) MigrateDown() (ver uint, err error) {
	m, err := initMigration(c.cfg)
	if err != nil {
		return 0, fmt.Errorf("migration failed: %w", err)
	}
	defer m.Close()

	if err := m.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("migration failed: %w", err)
	}
	if ver, _, err = m.Version(); err != nil {
		if errors.Is(err, migrate.ErrNilVersion) {
			return 0, nil
		}
		return ver, err
	}
	return ver, nil
}

// ExecQueries is used for executing list of db query
func (c *Client) ExecQueries(ctx context.Context, queries []string) error {
	for _, query := range queries {
		if _, err := c.db.ExecContext(ctx, query); err != nil {
			return err
		}
	}
	return nil
}

func (c *Client) Close() error {
	return c.db.Close()
}

func initMigration(cfg Config) (*migrate.Migrate, error) {
	iofsDriver, err := iofs.New(fs, "migrations")
	if err != nil {
		return nil, err
	}
	return migrate.NewWithSourceInstance("iofs", iofsDriver, cfg.ConnectionURL().String())
}
