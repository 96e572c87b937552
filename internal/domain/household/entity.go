package household

import (
	"strings"
	"time"

	"civic-hub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrHouseholdNotFound = errs.Mark(errs.New("household not found"), errs.ErrNotFound)
	ErrNoMembership      = errs.Mark(errs.New("user is not a member of any household"), errs.ErrNotFound)
	ErrEmptyCode         = errs.Mark(errs.New("household code cannot be empty"), errs.ErrValidation)
	ErrEmptyAddress      = errs.Mark(errs.New("household address cannot be empty"), errs.ErrValidation)
	ErrDuplicateCode     = errs.Mark(errs.New("household code is already in use"), errs.ErrConflict)
	ErrAlreadyMember     = errs.Mark(errs.New("user already belongs to a household"), errs.ErrConflict)
)

// Household is a registered residence. Its members are users of the system;
// its persons are the residents recorded on it.
type Household struct {
	id        uuid.UUID
	code      string
	address   string
	createdAt time.Time
	updatedAt time.Time
}

func NewHousehold(code, address string, now time.Time) (*Household, error) {
	h := &Household{id: uuid.New(), createdAt: now, updatedAt: now}
	if err := h.Update(&code, &address, now); err != nil {
		return nil, err
	}
	return h, nil
}

func ReconstructHousehold(id uuid.UUID, code, address string, createdAt, updatedAt time.Time) *Household {
	return &Household{
		id:        id,
		code:      code,
		address:   address,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Update changes the fields that are set. Blank values are rejected rather
// than cleared.
func (h *Household) Update(code, address *string, now time.Time) error {
	newCode, newAddress := h.code, h.address
	if code != nil {
		newCode = strings.TrimSpace(*code)
		if newCode == "" {
			return ErrEmptyCode
		}
	}
	if address != nil {
		newAddress = strings.TrimSpace(*address)
		if newAddress == "" {
			return ErrEmptyAddress
		}
	}
	h.code = newCode
	h.address = newAddress
	h.updatedAt = now
	return nil
}

func (h *Household) ID() uuid.UUID        { return h.id }
func (h *Household) Code() string         { return h.code }
func (h *Household) Address() string      { return h.address }
func (h *Household) CreatedAt() time.Time { return h.createdAt }
func (h *Household) UpdatedAt() time.Time { return h.updatedAt }
