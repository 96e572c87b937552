package booking

import (
	"strings"
	"time"

	"civic-hub/internal/domain/approval"
	"civic-hub/internal/pkg/clock"
	"civic-hub/internal/pkg/errs"
	"civic-hub/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle         = errs.Mark(errs.New("booking title cannot be empty"), errs.ErrValidation)
	ErrTitleTooLong       = errs.Mark(errs.New("booking title is too long (max 200 characters)"), errs.ErrValidation)
	ErrEmptyPurpose       = errs.Mark(errs.New("booking purpose cannot be empty"), errs.ErrValidation)
	ErrBookingNotFound    = errs.Mark(errs.New("booking not found"), errs.ErrNotFound)
	ErrBookingConflict    = errs.Mark(errs.New("booking overlaps an approved booking on the same resource"), errs.ErrConflict)
	ErrNotEditable        = errs.Mark(errs.New("only pending bookings can be edited"), errs.ErrInvalidStateTransition)
	ErrHandoverNotAllowed = errs.Mark(errs.New("handover can only be recorded on approved bookings"), errs.ErrInvalidStateTransition)
	ErrNotBookingOwner    = errs.Mark(errs.New("booking belongs to another user"), errs.ErrForbidden)
)

type Services struct {
	Clock clock.Clock
	Hours BusinessHours
}

type Details struct {
	Title              string
	Description        *string
	Purpose            string
	Visibility         Visibility
	CleaningCommitment bool
}

type Handover struct {
	BeforeChecked bool
	AfterChecked  bool
	Notes         *string
}

// EditPatch carries the fields a requester may change while the booking is pending.
type EditPatch struct {
	Title              *string
	Description        *string
	Purpose            *string
	Visibility         *Visibility
	CleaningCommitment *bool
	Start              *time.Time
	End                *time.Time
}

type Booking struct {
	id          uuid.UUID
	resourceID  uuid.UUID
	requesterID uuid.UUID
	details     Details
	window      Window
	status      approval.Status
	handover    Handover
	createdAt   time.Time
	updatedAt   time.Time
}

func NewBooking(services *Services, resourceID, requesterID uuid.UUID, window Window, details Details) (*Booking, error) {
	normalized, err := validateDetails(details)
	if err != nil {
		return nil, err
	}

	now := services.Clock.Now()
	if window.Start().Before(now) {
		return nil, ErrStartInPast
	}
	if err := services.Hours.Validate(window); err != nil {
		return nil, err
	}

	return &Booking{
		id:          uuid.New(),
		resourceID:  resourceID,
		requesterID: requesterID,
		details:     normalized,
		window:      window,
		status:      approval.StatusPending,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructBooking(
	id, resourceID, requesterID uuid.UUID,
	details Details,
	window Window,
	status approval.Status,
	handover Handover,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:          id,
		resourceID:  resourceID,
		requesterID: requesterID,
		details:     details,
		window:      window,
		status:      status,
		handover:    handover,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Approve moves a pending booking to APPROVED unless one of the approved
// bookings passed in overlaps it. Callers must pass every approved booking on
// the resource that may overlap, read under a lock on the resource.
func (b *Booking) Approve(approved []*Booking, now time.Time) error {
	next, err := approval.Transition(b.status, approval.StatusApproved)
	if err != nil {
		return err
	}
	if other := FindConflict(b, approved); other != nil {
		return errs.Wrapf(ErrBookingConflict, "conflicts with booking %s (%s - %s)",
			other.ID(), other.Window().Start().Format(time.RFC3339), other.Window().End().Format(time.RFC3339))
	}
	b.status = next
	b.updatedAt = now
	return nil
}

func (b *Booking) Reject(now time.Time) error {
	next, err := approval.Transition(b.status, approval.StatusRejected)
	if err != nil {
		return err
	}
	b.status = next
	b.updatedAt = now
	return nil
}

// Edit applies p while the booking is pending. The window is re-validated
// for ordering and business hours but may already lie in the past.
func (b *Booking) Edit(p EditPatch, hours BusinessHours, now time.Time) error {
	if b.status != approval.StatusPending {
		return ErrNotEditable
	}

	window, err := NewWindow(patch.Coalesce(p.Start, b.window.start), patch.Coalesce(p.End, b.window.end))
	if err != nil {
		return err
	}
	if err := hours.Validate(window); err != nil {
		return err
	}

	details, err := validateDetails(Details{
		Title:              patch.Coalesce(p.Title, b.details.Title),
		Description:        patch.CoalescePtr(p.Description, b.details.Description),
		Purpose:            patch.Coalesce(p.Purpose, b.details.Purpose),
		Visibility:         patch.Coalesce(p.Visibility, b.details.Visibility),
		CleaningCommitment: patch.Coalesce(p.CleaningCommitment, b.details.CleaningCommitment),
	})
	if err != nil {
		return err
	}

	b.window = window
	b.details = details
	b.updatedAt = now
	return nil
}

func (b *Booking) RecordHandover(h Handover, now time.Time) error {
	if b.status != approval.StatusApproved {
		return ErrHandoverNotAllowed
	}
	b.handover = h
	b.updatedAt = now
	return nil
}

// IsActive reports whether the booking still holds or claims its slot.
func (b *Booking) IsActive(now time.Time) bool {
	return b.status != approval.StatusRejected && b.window.end.After(now)
}

func (b *Booking) IsPrivate() bool {
	return b.details.Visibility == VisibilityPrivate
}

// FindConflict returns the first approved booking on the candidate's resource
// whose window overlaps the candidate, ignoring the candidate itself.
func FindConflict(candidate *Booking, others []*Booking) *Booking {
	for _, other := range others {
		if other == nil || other.id == candidate.id || other.resourceID != candidate.resourceID {
			continue
		}
		if other.status != approval.StatusApproved {
			continue
		}
		if candidate.window.Overlaps(other.window) {
			return other
		}
	}
	return nil
}

func validateDetails(d Details) (Details, error) {
	d.Title = strings.TrimSpace(d.Title)
	if d.Title == "" {
		return Details{}, ErrEmptyTitle
	}
	if len([]rune(d.Title)) > MaxTitleLength {
		return Details{}, ErrTitleTooLong
	}
	d.Purpose = strings.TrimSpace(d.Purpose)
	if d.Purpose == "" {
		return Details{}, ErrEmptyPurpose
	}
	if d.Visibility == "" {
		d.Visibility = VisibilityPublic
	}
	if !d.Visibility.IsValid() {
		return Details{}, ErrInvalidVisibility
	}
	return d, nil
}

func (b *Booking) ID() uuid.UUID           { return b.id }
func (b *Booking) ResourceID() uuid.UUID   { return b.resourceID }
func (b *Booking) RequesterID() uuid.UUID  { return b.requesterID }
func (b *Booking) Details() Details        { return b.details }
func (b *Booking) Title() string           { return b.details.Title }
func (b *Booking) Visibility() Visibility  { return b.details.Visibility }
func (b *Booking) Window() Window          { return b.window }
func (b *Booking) Status() approval.Status { return b.status }
func (b *Booking) Handover() Handover      { return b.handover }
func (b *Booking) CreatedAt() time.Time    { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time    { return b.updatedAt }
