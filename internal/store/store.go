// Package store selects and opens the persistent store backing the inventory.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/goto/assetkeeper/core/asset"
	"github.com/goto/assetkeeper/core/validator"
	"github.com/goto/assetkeeper/internal/store/memory"
	"github.com/goto/assetkeeper/internal/store/postgres"
	"github.com/goto/assetkeeper/internal/store/sqlite"
	"github.com/goto/salt/log"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Drivers lists the supported store drivers.
var Drivers = []string{DriverSQLite, DriverPostgres, DriverMemory}

type Config struct {
	Driver   string          `yaml:"driver" mapstructure:"driver" default:"sqlite"`
	Timeout  time.Duration   `yaml:"timeout" mapstructure:"timeout" default:"5s"`
	SQLite   sqlite.Config   `yaml:"sqlite" mapstructure:"sqlite"`
	Postgres postgres.Config `yaml:"postgres" mapstructure:"postgres"`
}

// Open connects to the configured store. Every call on the returned
// repository is bounded by cfg.Timeout.
func Open(ctx context.Context, cfg Config, logger log.Logger) (asset.Repository, error) {
	if err := validator.ValidateOneOf(cfg.Driver, Drivers...); err != nil {
		return nil, fmt.Errorf("store.driver: %w", err)
	}
	repo, err := open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	logger.Debug("store opened", "driver", cfg.Driver)
	return WithTimeout(repo, cfg.Timeout), nil
}

func open(ctx context.Context, cfg Config) (asset.Repository, error) {
	switch cfg.Driver {
	case DriverSQLite, "":
		client, err := sqlite.NewClient(ctx, cfg.SQLite)
		if err != nil {
			return nil, err
		}
		if err := client.Init(ctx); err != nil {
			client.Close()
			return nil, err
		}
		return sqlite.NewAssetRepository(client)
	case DriverPostgres:
		client, err := postgres.NewClient(ctx, cfg.Postgres)
		if err != nil {
			return nil, err
		}
		return postgres.NewAssetRepository(client)
	case DriverMemory:
		return memory.New(), nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
}

// Init creates the schema of the configured store and returns a description
// of what was done.
func Init(ctx context.Context, cfg Config, logger log.Logger) (string, error) {
	switch cfg.Driver {
	case DriverSQLite, "":
		client, err := sqlite.NewClient(ctx, cfg.SQLite)
		if err != nil {
			return "", err
		}
		defer client.Close()
		if err := client.Init(ctx); err != nil {
			return "", err
		}
		logger.Info("sqlite schema created", "path", client.Path())
		return fmt.Sprintf("created database %s", client.Path()), nil
	case DriverPostgres:
		client, err := postgres.NewClient(ctx, cfg.Postgres)
		if err != nil {
			return "", err
		}
		defer client.Close()
		ver, err := client.Migrate()
		if err != nil {
			return "", err
		}
		logger.Info("postgres migrated", "version", ver)
		return fmt.Sprintf("migrated database %s to version %d", cfg.Postgres.Name, ver), nil
	case DriverMemory:
		return "memory store needs no initialisation", nil
	}
	return "", fmt.Errorf("unknown store driver %q", cfg.Driver)
}
