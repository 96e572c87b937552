package asset

import (
	"strings"
	"time"

	"civic-hub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBorrowLogNotFound = errs.Mark(errs.New("borrow log not found"), errs.ErrNotFound)
	ErrAlreadyReturned   = errs.Mark(errs.New("borrow log is already closed"), errs.ErrInvalidStateTransition)
	ErrNotBorrower       = errs.Mark(errs.New("borrow log belongs to another user"), errs.ErrForbidden)
)

type BorrowRequest struct {
	BorrowerID      uuid.UUID
	Quantity        int
	ConditionBefore string
	BookingID       *uuid.UUID
	Notes           *string
}

// BorrowLog is one ledger entry. It is created open, closed once on return
// and never deleted.
type BorrowLog struct {
	id              uuid.UUID
	assetID         uuid.UUID
	borrowerID      uuid.UUID
	bookingID       *uuid.UUID
	quantity        int
	borrowedAt      time.Time
	returnedAt      *time.Time
	status          LogStatus
	conditionBefore string
	conditionAfter  *string
	notes           *string
}

func ReconstructBorrowLog(
	id, assetID, borrowerID uuid.UUID,
	bookingID *uuid.UUID,
	quantity int,
	borrowedAt time.Time,
	returnedAt *time.Time,
	status LogStatus,
	conditionBefore string,
	conditionAfter, notes *string,
) *BorrowLog {
	return &BorrowLog{
		id:              id,
		assetID:         assetID,
		borrowerID:      borrowerID,
		bookingID:       bookingID,
		quantity:        quantity,
		borrowedAt:      borrowedAt,
		returnedAt:      returnedAt,
		status:          status,
		conditionBefore: conditionBefore,
		conditionAfter:  conditionAfter,
		notes:           notes,
	}
}

// Return closes the entry. A DAMAGED or BROKEN condition closes it as DAMAGED.
func (l *BorrowLog) Return(conditionAfter string, notes *string, now time.Time) error {
	if !l.status.IsOpen() {
		return errs.Wrapf(ErrAlreadyReturned, "status %s", l.status)
	}

	condition := strings.TrimSpace(conditionAfter)
	l.status = LogStatusReturned
	if IsDamaged(condition) {
		l.status = LogStatusDamaged
	}
	if condition != "" {
		l.conditionAfter = &condition
	}
	if notes != nil {
		l.notes = notes
	}
	returned := now
	l.returnedAt = &returned
	return nil
}

func (l *BorrowLog) ID() uuid.UUID           { return l.id }
func (l *BorrowLog) AssetID() uuid.UUID      { return l.assetID }
func (l *BorrowLog) BorrowerID() uuid.UUID   { return l.borrowerID }
func (l *BorrowLog) BookingID() *uuid.UUID   { return l.bookingID }
func (l *BorrowLog) Quantity() int           { return l.quantity }
func (l *BorrowLog) BorrowedAt() time.Time   { return l.borrowedAt }
func (l *BorrowLog) ReturnedAt() *time.Time  { return l.returnedAt }
func (l *BorrowLog) Status() LogStatus       { return l.status }
func (l *BorrowLog) ConditionBefore() string { return l.conditionBefore }
func (l *BorrowLog) ConditionAfter() *string { return l.conditionAfter }
func (l *BorrowLog) Notes() *string          { return l.notes }
