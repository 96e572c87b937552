package changerequest

import (
	"encoding/json"
	"strings"
	"time"

	"civic-hub/internal/domain/approval"
	"civic-hub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrRequestNotFound    = errs.Mark(errs.New("change request not found"), errs.ErrNotFound)
	ErrNoHousehold        = errs.Mark(errs.New("request type requires a household but the requester has none"), errs.ErrValidation)
	ErrDescriptionTooLong = errs.Mark(errs.New("description is too long (max 1000 characters)"), errs.ErrValidation)
	ErrNotRequestOwner    = errs.Mark(errs.New("change request belongs to another user"), errs.ErrForbidden)
)

const MaxDescriptionLength = 1000

// ChangeRequest is a resident's request for an administrative mutation. The
// payload is kept opaque until an administrator approves it.
type ChangeRequest struct {
	id          uuid.UUID
	reqType     Type
	requesterID uuid.UUID
	householdID *uuid.UUID
	description *string
	payload     json.RawMessage
	status      approval.Status
	decidedBy   *uuid.UUID
	decidedAt   *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

func NewChangeRequest(
	reqType Type,
	requesterID uuid.UUID,
	householdID *uuid.UUID,
	payload json.RawMessage,
	description *string,
	now time.Time,
) (*ChangeRequest, error) {
	t, err := ParseType(string(reqType))
	if err != nil {
		return nil, err
	}
	raw, err := NormalizeRaw(payload)
	if err != nil {
		return nil, err
	}

	var desc *string
	if description != nil {
		d := strings.TrimSpace(*description)
		if len([]rune(d)) > MaxDescriptionLength {
			return nil, ErrDescriptionTooLong
		}
		if d != "" {
			desc = &d
		}
	}

	return &ChangeRequest{
		id:          uuid.New(),
		reqType:     t,
		requesterID: requesterID,
		householdID: householdID,
		description: desc,
		payload:     raw,
		status:      approval.StatusPending,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructChangeRequest(
	id uuid.UUID,
	reqType Type,
	requesterID uuid.UUID,
	householdID *uuid.UUID,
	description *string,
	payload json.RawMessage,
	status approval.Status,
	decidedBy *uuid.UUID,
	decidedAt *time.Time,
	createdAt, updatedAt time.Time,
) *ChangeRequest {
	return &ChangeRequest{
		id:          id,
		reqType:     reqType,
		requesterID: requesterID,
		householdID: householdID,
		description: description,
		payload:     payload,
		status:      status,
		decidedBy:   decidedBy,
		decidedAt:   decidedAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Decide records the administrator's verdict. Applying the payload is the
// caller's job and must happen in the same transaction.
func (r *ChangeRequest) Decide(d approval.Decision, deciderID uuid.UUID, now time.Time) error {
	next, err := approval.Transition(r.status, d.Target())
	if err != nil {
		return err
	}
	decidedAt := now
	decider := deciderID
	r.status = next
	r.decidedBy = &decider
	r.decidedAt = &decidedAt
	r.updatedAt = now
	return nil
}

// DecodePayload returns the typed payload for this request's type.
func (r *ChangeRequest) DecodePayload() (Payload, error) {
	return DecodePayload(r.reqType, r.payload)
}

func (r *ChangeRequest) ID() uuid.UUID            { return r.id }
func (r *ChangeRequest) Type() Type               { return r.reqType }
func (r *ChangeRequest) RequesterID() uuid.UUID   { return r.requesterID }
func (r *ChangeRequest) HouseholdID() *uuid.UUID  { return r.householdID }
func (r *ChangeRequest) Description() *string     { return r.description }
func (r *ChangeRequest) Payload() json.RawMessage { return r.payload }
func (r *ChangeRequest) Status() approval.Status  { return r.status }
func (r *ChangeRequest) DecidedBy() *uuid.UUID    { return r.decidedBy }
func (r *ChangeRequest) DecidedAt() *time.Time    { return r.decidedAt }
func (r *ChangeRequest) CreatedAt() time.Time     { return r.createdAt }
func (r *ChangeRequest) UpdatedAt() time.Time     { return r.updatedAt }
