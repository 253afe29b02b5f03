package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"datadex/config"
	"datadex/internal/domain/constants"
	"datadex/internal/domain/lifecycle"
	"datadex/internal/errors"
	"datadex/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates PostgreSQL client mapping
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Disable GORM's per-statement implicit transaction.
		// We keep explicit transactions via txManager.Execute for multi-step atomic operations.
		SkipDefaultTransaction: true,
		Logger:                 newQueryLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	// Add lifecycle management
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if params.Config.AutoMigrate {
				if err := migrate(ctx, db); err != nil {
					return errors.Wrap(err, "failed to migrate schema")
				}
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// migrate creates the schema and seeds the singleton state rows. Seeding
// uses DO NOTHING conflicts so reruns never clobber live values.
func migrate(ctx context.Context, db *gorm.DB) error {
	err := db.WithContext(ctx).AutoMigrate(
		&model.AccountModel{},
		&model.LedgerStateModel{},
		&model.ReceiptModel{},
		&model.BurnRequestModel{},
		&model.StoreModel{},
		&model.ItemModel{},
		&model.PurchaseModel{},
		&model.SellerBalanceModel{},
		&model.OrderModel{},
		&model.OrderItemModel{},
		&model.RevenueSplitModel{},
		&model.ExchangeRateModel{},
	)
	if err != nil {
		return err
	}

	// One ACTIVE order per owner, enforced at the database level.
	err = db.WithContext(ctx).Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_orders_owner_active
		 ON orders (owner) WHERE status = 'ACTIVE'`,
	).Error
	if err != nil {
		return err
	}

	doNothing := clause.OnConflict{DoNothing: true}

	err = db.WithContext(ctx).Clauses(doNothing).
		Create(&model.LedgerStateModel{ID: ledgerStateRow}).Error
	if err != nil {
		return err
	}

	splits := []model.RevenueSplitModel{
		{Slot: constants.SplitSlotPlatform, Percentage: constants.DefaultPlatformPercentage},
		{Slot: constants.SplitSlotFacilitator, Percentage: constants.DefaultFacilitatorPercentage},
	}

	return db.WithContext(ctx).Clauses(doNothing).Create(&splits).Error
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration

			if waitDelta > 0 {
				attrs := []slog.Attr{
					slog.Int64("waitCountDelta", waitDelta),
					slog.Duration("waitDurationDelta", waitDurationDelta),
					slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
					slog.Int("maxOpenConns", cur.MaxOpenConnections),
					slog.Int("openConns", cur.OpenConnections),
					slog.Int("inUseConns", cur.InUse),
					slog.Int("idleConns", cur.Idle),
					slog.Int64("waitCountTotal", cur.WaitCount),
					slog.Duration("waitDurationTotal", cur.WaitDuration),
				}
				if waitDurationDelta >= dbPoolWarnDurationThreshold {
					logger.LogAttrs(ctx, slog.LevelWarn, "Postgres pool wait detected", attrs...)
				} else {
					logger.LogAttrs(ctx, slog.LevelDebug, "Postgres pool wait observed", attrs...)
				}
			}

			prev = cur
		}
	}
}
