package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/goto/assetkeeper/core/asset"
	"github.com/goto/assetkeeper/core/inventory"
	"github.com/goto/assetkeeper/core/search"
	"github.com/goto/assetkeeper/internal/store"
	"github.com/goto/assetkeeper/pkg/statsd"
	"github.com/goto/assetkeeper/pkg/telemetry"
	"github.com/goto/salt/log"
)

// app owns the process-wide dependencies of the commands.
type app struct {
	cfg    *Config
	logger log.Logger

	repo     asset.Repository
	statsd   *statsd.Reporter
	session  *inventory.Session
	cleanUps []func()
}

func newApp(cfg *Config) *app {
	if cfg == nil {
		cfg = &Config{}
	}
	return &app{cfg: cfg}
}

func (a *app) Logger() log.Logger {
	if a.logger == nil {
		a.logger = initLogger(a.cfg.LogLevel)
	}
	return a.logger
}

// Session opens the store and loads the inventory on first use.
func (a *app) Session(ctx context.Context) (*inventory.Session, error) {
	if a.session != nil {
		return a.session, nil
	}
	logger := a.Logger()

	a.cfg.Telemetry.AppVersion = Version
	a.cfg.Telemetry.StoreDriver = a.cfg.Store.Driver
	if a.cfg.Telemetry.StoreDriver == "" {
		a.cfg.Telemetry.StoreDriver = store.DriverSQLite
	}
	cleanUp, err := telemetry.Init(ctx, a.cfg.Telemetry, logger)
	if err != nil {
		logger.Warn("telemetry disabled", "err", err)
	} else {
		a.cleanUps = append(a.cleanUps, cleanUp)
	}

	a.statsd, err = statsd.Init(logger, a.cfg.StatsD)
	if err != nil {
		return nil, fmt.Errorf("init statsd: %w", err)
	}

	filter, err := search.NewFilter(a.cfg.Search)
	if err != nil {
		return nil, err
	}

	a.repo, err = store.Open(ctx, a.cfg.Store, logger)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	s := inventory.NewSession(a.repo, logger,
		inventory.WithFilter(filter),
		inventory.WithLoanPeriod(a.cfg.LoanPeriodDays),
		inventory.WithStatsD(a.statsd),
	)
	if err := s.Load(ctx); err != nil {
		if errors.As(err, &asset.StoreUnavailableError{}) {
			return nil, err
		}
		logger.Warn("inventory loaded with unreadable values", "err", err)
	}
	a.session = s
	return s, nil
}

// Close releases everything Session opened.
func (a *app) Close() {
	if a.repo != nil {
		if err := a.repo.Close(); err != nil {
			a.Logger().Error("close store", "err", err)
		}
		a.repo = nil
	}
	if err := a.statsd.Close(); err != nil {
		a.Logger().Error("close statsd", "err", err)
	}
	a.statsd = nil
	for _, cleanUp := range a.cleanUps {
		cleanUp()
	}
	a.cleanUps = nil
	a.session = nil
}

func initLogger(logLevel string) *log.Logrus {
	if logLevel == "" {
		logLevel = "info"
	}
	logger := log.NewLogrus(
		log.LogrusWithLevel(logLevel),
		log.LogrusWithWriter(os.Stderr),
	)
	return logger
}
