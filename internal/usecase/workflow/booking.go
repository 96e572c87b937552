package workflow

import (
	"context"
	"time"

	"civic-hub/internal/domain/booking"
	"civic-hub/internal/domain/notification"
	"civic-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

// ApproveBooking is the only path to APPROVED. It locks the resource row so
// that concurrent approvals on the same resource serialize, then checks the
// pending booking against every approved booking that overlaps it.
func ApproveBooking(ctx context.Context, tx shared.Tx, bookingID uuid.UUID, now time.Time) (*booking.Booking, error) {
	b, err := tx.Bookings().FindByID(ctx, tx.DB(), bookingID)
	if err != nil {
		return nil, err
	}
	if _, err := tx.Resources().LockByID(ctx, tx.DB(), b.ResourceID()); err != nil {
		return nil, err
	}
	// Re-read under the resource lock; the status may have moved meanwhile.
	b, err = tx.Bookings().LockByID(ctx, tx.DB(), bookingID)
	if err != nil {
		return nil, err
	}

	approved, err := tx.Bookings().ListApprovedOverlapping(ctx, tx.DB(), b.ResourceID(), b.Window())
	if err != nil {
		return nil, err
	}
	if err := b.Approve(approved, now); err != nil {
		return nil, err
	}
	if err := tx.Bookings().Update(ctx, tx.DB(), b); err != nil {
		return nil, err
	}
	if err := NotifyBookingDecided(ctx, tx, b, now); err != nil {
		return nil, err
	}
	return b, nil
}

func NotifyBookingDecided(ctx context.Context, tx shared.Tx, b *booking.Booking, now time.Time) error {
	n, err := notification.BookingDecided(b.RequesterID(), b.Title(), b.Status().String(), now)
	if err != nil {
		return err
	}
	return tx.Notifications().Create(ctx, tx.DB(), n)
}
