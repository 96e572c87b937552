package uow

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"civic-hub/internal/infra/repository"
	sqlc "civic-hub/internal/infra/sqlc/generated"
	"civic-hub/internal/pkg/config"
	"civic-hub/internal/pkg/errs"
	"civic-hub/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// RetryPolicy bounds how often a transaction is replayed after a
// serialization failure or deadlock.
type RetryPolicy struct {
	MaxRetries int
	Base       time.Duration
}

var defaultRetryPolicy = RetryPolicy{MaxRetries: 3, Base: 100 * time.Millisecond}

func retryPolicyFrom(cfg config.DBConfig) RetryPolicy {
	p := defaultRetryPolicy
	if cfg.TxMaxRetries > 0 {
		p.MaxRetries = cfg.TxMaxRetries
	}
	if cfg.TxRetryBase > 0 {
		p.Base = cfg.TxRetryBase
	}
	return p
}

// backoff doubles per attempt and adds up to 20% jitter.
func (p RetryPolicy) backoff(attempt int) time.Duration {
	wait := time.Duration(1<<attempt) * p.Base
	if spread := int64(wait / 5); spread > 0 {
		wait += time.Duration(rand.Int64N(spread))
	}
	return wait
}

func (p RetryPolicy) shouldRetry(err error, attempt int) bool {
	return attempt < p.MaxRetries && isRetryableError(err)
}

type PostgresUoW struct {
	pool   *pgxpool.Pool
	repos  repositories
	policy RetryPolicy
	logger *slog.Logger
}

// repositories are stateless; every transaction shares them and passes its
// own DBTX.
type repositories struct {
	resources     shared.ResourceRepository
	bookings      shared.BookingRepository
	assets        shared.AssetRepository
	borrowLogs    shared.BorrowLogRepository
	requests      shared.ChangeRequestRepository
	households    shared.HouseholdRepository
	notifications shared.NotificationRepository
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, cfg config.DBConfig, logger *slog.Logger) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		repos: repositories{
			resources:     repository.NewResourceRepository(q),
			bookings:      repository.NewBookingRepository(q),
			assets:        repository.NewAssetRepository(q),
			borrowLogs:    repository.NewBorrowLogRepository(q),
			requests:      repository.NewChangeRequestRepository(q),
			households:    repository.NewHouseholdRepository(q),
			notifications: repository.NewNotificationRepository(q),
		},
		policy: retryPolicyFrom(cfg),
		logger: logger,
	}
}

// Within runs fn in a READ COMMITTED transaction. Use cases that guard an
// invariant lock the rows they read with FOR UPDATE.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	opts := pgx.TxOptions{IsoLevel: pgx.ReadCommitted}

	for attempt := 0; ; attempt++ {
		err := u.attempt(ctx, opts, fn)
		if err == nil {
			return nil
		}
		if !u.policy.shouldRetry(err, attempt) {
			if isRetryableError(err) {
				u.logger.Error("transaction failed after max retries", "attempts", attempt+1, "error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		wait := u.policy.backoff(attempt)
		u.logger.Warn("retrying transaction",
			"attempt", attempt+1,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// attempt owns one transaction from begin to commit or rollback.
func (u *PostgresUoW) attempt(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, opts)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer func() {
		if rbErr := pgxTx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			u.logger.Warn("rollback failed", "error", rbErr.Error())
		}
	}()

	if err := fn(ctx, &pgTx{dbtx: pgxTx, repos: &u.repos}); err != nil {
		return err
	}
	if err := pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgErrCodeSerializationFailure || pgErr.Code == pgErrCodeDeadlockDetected
}

type pgTx struct {
	dbtx  sqlc.DBTX
	repos *repositories
}

func (t *pgTx) DB() sqlc.DBTX                                  { return t.dbtx }
func (t *pgTx) Resources() shared.ResourceRepository           { return t.repos.resources }
func (t *pgTx) Bookings() shared.BookingRepository             { return t.repos.bookings }
func (t *pgTx) Assets() shared.AssetRepository                 { return t.repos.assets }
func (t *pgTx) BorrowLogs() shared.BorrowLogRepository         { return t.repos.borrowLogs }
func (t *pgTx) ChangeRequests() shared.ChangeRequestRepository { return t.repos.requests }
func (t *pgTx) Households() shared.HouseholdRepository         { return t.repos.households }
func (t *pgTx) Notifications() shared.NotificationRepository   { return t.repos.notifications }
