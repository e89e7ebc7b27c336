package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"upkeep/config"
	"upkeep/internal/domain/lifecycle"
	"upkeep/internal/errors"
	"upkeep/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolMonitorInterval   = 5 * time.Second
	poolWaitWarnThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// ownedModels are the tables this service creates and evolves.
// Devices, users and preferences are read from the platform schema as-is.
var ownedModels = []any{
	&model.MaintenanceTaskModel{},
	&model.MaintenanceHistoryModel{},
	&model.MaintenanceReminderModel{},
	&model.NotificationModel{},
	&model.PushTokenModel{},
}

// New opens the maintenance database, migrates the owned tables when
// schema.autoMigrate is set and watches the connection pool until stop.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}

	// Multi-step writes go through TransactionManager.Execute, so the
	// implicit per-statement transaction is off.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitorCtx, stopMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if params.Config.Schema.AutoMigrate {
				if err := migrate(ctx, db, params.Logger); err != nil {
					return err
				}
			}

			go watchPool(monitorCtx, params.Logger, sqlDB)

			return nil
		},
		OnStop: func(context.Context) error {
			stopMonitor()

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

func migrate(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	if err := db.WithContext(ctx).AutoMigrate(ownedModels...); err != nil {
		return errors.Wrap(err, "failed to migrate maintenance schema")
	}

	logger.Info("[Postgres] Maintenance schema migrated", slog.Int("tables", len(ownedModels)))

	return nil
}

// poolWait is the pool contention observed between two samples.
type poolWait struct {
	count    int64
	duration time.Duration
}

func (w poolWait) average() time.Duration {
	if w.count == 0 {
		return 0
	}

	return w.duration / time.Duration(w.count)
}

func (w poolWait) level() slog.Level {
	if w.duration >= poolWaitWarnThreshold {
		return slog.LevelWarn
	}

	return slog.LevelDebug
}

func diffPoolStats(prev, cur sql.DBStats) poolWait {
	return poolWait{
		count:    cur.WaitCount - prev.WaitCount,
		duration: cur.WaitDuration - prev.WaitDuration,
	}
}

// watchPool samples sqlDB.Stats and logs whenever callers had to wait for a connection.
// Scheduler fan-out is the usual source of waits.
func watchPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB) {
	ticker := time.NewTicker(poolMonitorInterval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		cur := sqlDB.Stats()
		wait := diffPoolStats(prev, cur)
		prev = cur

		if wait.count <= 0 {
			continue
		}

		logger.LogAttrs(ctx, wait.level(), "[Postgres] Connection pool wait",
			slog.Int64("wait_count", wait.count),
			slog.Duration("wait_duration", wait.duration),
			slog.Duration("avg_wait", wait.average()),
			slog.Int("open_conns", cur.OpenConnections),
			slog.Int("in_use", cur.InUse),
			slog.Int("idle", cur.Idle),
			slog.Int("max_open_conns", cur.MaxOpenConnections),
		)
	}
}
