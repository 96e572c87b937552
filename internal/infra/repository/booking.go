package repository

import (
	"context"
	"time"

	"civic-hub/internal/domain/booking"
	"civic-hub/internal/domain/resource"
	"civic-hub/internal/infra"
	"civic-hub/internal/infra/repository/converter"
	sqlc "civic-hub/internal/infra/sqlc/generated"
	"civic-hub/internal/pkg/errs"
	"civic-hub/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) error
	UpdateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingParams) (int64, error)
	DeleteBooking(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	LockBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	ListApprovedOverlappingBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListApprovedOverlappingBookingsParams) ([]sqlc.Bookings, error)
	CountActiveBookingsByResource(ctx context.Context, db sqlc.DBTX, arg sqlc.CountActiveBookingsByResourceParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
}

func NewBookingRepository(queries BookingWriteQueries) *BookingRepository {
	return &BookingRepository{queries: queries}
}

func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	err := r.queries.CreateBooking(ctx, tx, converter.BookingToCreateParams(b))
	if err != nil {
		wrapped := infra.WrapRepoErr("failed to create booking", err)
		if infra.IsKind(wrapped, infra.KindForeignKeyViolated) {
			return resource.ErrResourceNotFound
		}
		return wrapped
	}
	return nil
}

// Update maps a violation of the approved-overlap exclusion constraint to
// ErrBookingConflict.
func (r *BookingRepository) Update(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	n, err := r.queries.UpdateBooking(ctx, tx, converter.BookingToUpdateParams(b))
	if err != nil {
		wrapped := infra.WrapRepoErr("failed to update booking", err)
		if infra.IsKind(wrapped, infra.KindExclusionViolated) {
			return errs.Wrap(booking.ErrBookingConflict, "exclusion constraint")
		}
		return wrapped
	}
	if n == 0 {
		return booking.ErrBookingNotFound
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteBooking(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if n == 0 {
		return booking.ErrBookingNotFound
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return converter.BookingFromRow(row), nil
}

func (r *BookingRepository) LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.LockBookingByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	return converter.BookingFromRow(row), nil
}

func (r *BookingRepository) ListApprovedOverlapping(ctx context.Context, tx sqlc.DBTX, resourceID uuid.UUID, window booking.Window) ([]*booking.Booking, error) {
	rows, err := r.queries.ListApprovedOverlappingBookings(ctx, tx, sqlc.ListApprovedOverlappingBookingsParams{
		ResourceID:  resourceID,
		WindowEnd:   pgconv.TimeToPgtype(window.End()),
		WindowStart: pgconv.TimeToPgtype(window.Start()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list approved overlapping bookings", err)
	}

	result := make([]*booking.Booking, len(rows))
	for i, row := range rows {
		result[i] = converter.BookingFromRow(row)
	}
	return result, nil
}

func (r *BookingRepository) CountActiveByResource(ctx context.Context, tx sqlc.DBTX, resourceID uuid.UUID, now time.Time) (int, error) {
	count, err := r.queries.CountActiveBookingsByResource(ctx, tx, sqlc.CountActiveBookingsByResourceParams{
		ResourceID: resourceID,
		Now:        pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count active bookings", err)
	}
	return int(count), nil
}
