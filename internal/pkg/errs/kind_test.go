//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"civic-hub/internal/domain/booking"
	"civic-hub/internal/domain/household"
	"civic-hub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	errBookingClash := errs.Mark(errs.New("booking clash"), errs.ErrConflict)
	errPersonMissing := errs.Mark(errs.New("person missing"), errs.ErrNotFound)

	tests := []struct {
		name string
		err  error
		want errs.Kind
	}{
		{name: "nil error has no kind", err: nil, want: ""},
		{name: "marked sentinel", err: errBookingClash, want: errs.KindConflict},
		{name: "wrapped marked sentinel", err: errs.Wrap(errBookingClash, "approve booking"), want: errs.KindConflict},
		{name: "plain error is internal", err: errors.New("boom"), want: errs.KindInternal},
		{
			name: "handler failure wins over the kind of its cause",
			err:  errs.Mark(errs.Wrap(errPersonMissing, "apply ADD_PERSON"), errs.ErrHandlerFailed),
			want: errs.KindHandlerFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errs.KindOf(tt.err))
		})
	}
}

func TestIsKeepsSentinelIdentity(t *testing.T) {
	errA := errs.Mark(errs.New("first sentinel"), errs.ErrValidation)
	errB := errs.Mark(errs.New("second sentinel"), errs.ErrValidation)

	wrapped := errs.Wrap(errA, "context")
	assert.True(t, errs.Is(wrapped, errA))
	assert.False(t, errs.Is(wrapped, errB))
	assert.True(t, errs.Is(wrapped, errs.ErrValidation))
	assert.Equal(t, "context: first sentinel", wrapped.Error())
}

func TestIsAcrossAggregates(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		reference error
		want      bool
	}{
		{name: "same sentinel through a wrap", err: errs.Wrap(household.ErrNoMembership, "submit"), reference: household.ErrNoMembership, want: true},
		{name: "missing household is not missing membership", err: household.ErrHouseholdNotFound, reference: household.ErrNoMembership, want: false},
		{name: "not found of another aggregate", err: booking.ErrBookingNotFound, reference: household.ErrNoMembership, want: false},
		{name: "validation sentinels stay apart", err: booking.ErrEmptyTitle, reference: booking.ErrInvalidWindow, want: false},
		{name: "domain sentinel carries its kind", err: booking.ErrBookingNotFound, reference: errs.ErrNotFound, want: true},
		{name: "kind does not leak to another kind", err: booking.ErrBookingNotFound, reference: errs.ErrConflict, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errs.Is(tt.err, tt.reference))
		})
	}
}

func TestExtractStackLines(t *testing.T) {
	t.Run("success: trimmed and capped", func(t *testing.T) {
		err := errs.Wrap(errs.New("borrow failed"), "ledger")

		lines := errs.ExtractStackLines(err, 3)

		assert.Len(t, lines, 3)
		assert.Equal(t, "ledger: borrow failed", lines[0])
		for _, l := range lines {
			assert.NotEmpty(t, l)
			assert.NotContains(t, l, "\t")
		}
	})

	t.Run("success: nil error", func(t *testing.T) {
		assert.Nil(t, errs.ExtractStackLines(nil, 5))
	})
}
