package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"datadex/config"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Settlement transactions hold row locks, so anything slower than this is
// worth a warning.
const slowQueryThreshold = 200 * time.Millisecond

// queryLogger adapts gorm's logger.Interface onto the application slog
// handler. record-not-found is routine (absent accounts, unpriced items)
// and is never reported as an error.
type queryLogger struct {
	logger *slog.Logger
	level  logger.LogLevel
}

func newQueryLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &queryLogger{logger: baseLogger, level: level}
}

func (l *queryLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *queryLogger) printf(ctx context.Context, min logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.level < min || l.logger == nil {
		return
	}

	l.logger.LogAttrs(ctx, level, "database",
		slog.String("message", fmt.Sprintf(msg, args...)),
	)
}

func (l *queryLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		l.trace(ctx, slog.LevelError, "query failed", sqlAndRowsFn, elapsed,
			slog.String("error", err.Error()))
	case elapsed > slowQueryThreshold && l.level >= logger.Warn:
		l.trace(ctx, slog.LevelWarn, "slow query", sqlAndRowsFn, elapsed,
			slog.Duration("threshold", slowQueryThreshold))
	case l.level >= logger.Info:
		l.trace(ctx, slog.LevelInfo, "query", sqlAndRowsFn, elapsed)
	}
}

func (l *queryLogger) trace(ctx context.Context, level slog.Level, msg string, sqlAndRowsFn func() (string, int64), elapsed time.Duration, extra ...slog.Attr) {
	sql, rows := sqlAndRowsFn()
	attrs := append([]slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}, extra...)

	l.logger.LogAttrs(ctx, level, msg, attrs...)
}
