//go:build unit

package uow

import (
	"errors"
	"testing"
	"time"

	"civic-hub/internal/infra"
	"civic-hub/internal/pkg/config"
	"civic-hub/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, want: true},
		{name: "deadlock", err: &pgconn.PgError{Code: "40P01"}, want: true},
		{name: "deadlock behind repository wrapping", err: infra.WrapRepoErr("failed to lock asset", &pgconn.PgError{Code: "40P01"}), want: true},
		{name: "deadlock behind commit mark", err: errs.Mark(&pgconn.PgError{Code: "40001"}, errTransactionCommit), want: true},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}

func TestRetryPolicy(t *testing.T) {
	retryable := &pgconn.PgError{Code: "40001"}

	t.Run("success: retries up to the limit", func(t *testing.T) {
		p := RetryPolicy{MaxRetries: 3, Base: 100 * time.Millisecond}

		assert.True(t, p.shouldRetry(retryable, 0))
		assert.True(t, p.shouldRetry(retryable, 2))
		assert.False(t, p.shouldRetry(retryable, 3))
		assert.False(t, p.shouldRetry(errors.New("boom"), 0))
	})

	t.Run("success: backoff doubles with bounded jitter", func(t *testing.T) {
		p := RetryPolicy{MaxRetries: 3, Base: 100 * time.Millisecond}

		for attempt := 0; attempt < 3; attempt++ {
			wait := p.backoff(attempt)
			floor := time.Duration(1<<attempt) * p.Base

			assert.GreaterOrEqual(t, wait, floor)
			assert.Less(t, wait, floor+floor/5)
		}
	})

	t.Run("success: config overrides defaults", func(t *testing.T) {
		assert.Equal(t, defaultRetryPolicy, retryPolicyFrom(config.DBConfig{}))
		assert.Equal(t,
			RetryPolicy{MaxRetries: 5, Base: time.Second},
			retryPolicyFrom(config.DBConfig{TxMaxRetries: 5, TxRetryBase: time.Second}))
	})
}
