package changerequest

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"civic-hub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrPayloadSchema  = errs.Mark(errs.New("payload does not match the request type"), errs.ErrValidation)
	ErrPayloadNotJSON = errs.Mark(errs.New("payload must be a JSON object"), errs.ErrValidation)
)

const dateLayout = "2006-01-02"

// Payload is the typed body of a change request. Exactly one concrete type
// exists per request Type.
type Payload interface {
	Type() Type
	validate() error
}

type HouseholdUpdatePayload struct {
	Address     *string `json:"address,omitempty"`
	Code        *string `json:"code,omitempty"`
	HouseholdID *string `json:"householdId,omitempty"` // household code as sent by older clients
}

func (HouseholdUpdatePayload) Type() Type { return TypeHouseholdUpdate }

func (p HouseholdUpdatePayload) validate() error {
	if p.Address == nil && p.EffectiveCode() == nil {
		return errs.Wrap(ErrPayloadSchema, "address or code is required")
	}
	return nil
}

// EffectiveCode prefers code over the legacy householdId field.
func (p HouseholdUpdatePayload) EffectiveCode() *string {
	if p.Code != nil {
		return p.Code
	}
	return p.HouseholdID
}

type AddPersonPayload struct {
	FullName     string  `json:"fullName"`
	DateOfBirth  *string `json:"dateOfBirth,omitempty"`
	Gender       *string `json:"gender,omitempty"`
	IDNumber     *string `json:"idNumber,omitempty"`
	Relationship *string `json:"relationship,omitempty"`
}

func (AddPersonPayload) Type() Type { return TypeAddPerson }

func (p AddPersonPayload) validate() error {
	if strings.TrimSpace(p.FullName) == "" {
		return errs.Wrap(ErrPayloadSchema, "fullName is required")
	}
	if _, err := p.BirthDate(); err != nil {
		return err
	}
	return nil
}

// BirthDate parses dateOfBirth (YYYY-MM-DD). Empty means unknown.
func (p AddPersonPayload) BirthDate() (*time.Time, error) {
	if p.DateOfBirth == nil || strings.TrimSpace(*p.DateOfBirth) == "" {
		return nil, nil
	}
	d, err := time.Parse(dateLayout, strings.TrimSpace(*p.DateOfBirth))
	if err != nil {
		return nil, errs.Wrap(ErrPayloadSchema, "dateOfBirth must be YYYY-MM-DD")
	}
	return &d, nil
}

type RemovePersonPayload struct {
	PersonID uuid.UUID `json:"personId"`
	FullName *string   `json:"fullName,omitempty"`
	IDNumber *string   `json:"idNumber,omitempty"`
}

func (RemovePersonPayload) Type() Type { return TypeRemovePerson }

func (p RemovePersonPayload) validate() error {
	if p.PersonID == uuid.Nil {
		return errs.Wrap(ErrPayloadSchema, "personId is required")
	}
	return nil
}

type CulturalCenterBookingPayload struct {
	BookingID uuid.UUID `json:"bookingId"`
}

func (CulturalCenterBookingPayload) Type() Type { return TypeCulturalCenterBooking }

func (p CulturalCenterBookingPayload) validate() error {
	if p.BookingID == uuid.Nil {
		return errs.Wrap(ErrPayloadSchema, "bookingId is required")
	}
	return nil
}

// DecodePayload decodes raw into the payload type registered for t. Unknown
// fields and type mismatches are schema errors.
func DecodePayload(t Type, raw json.RawMessage) (Payload, error) {
	var p Payload
	var err error
	switch t {
	case TypeHouseholdUpdate:
		p, err = decodeInto[HouseholdUpdatePayload](raw)
	case TypeAddPerson:
		p, err = decodeInto[AddPersonPayload](raw)
	case TypeRemovePerson:
		p, err = decodeInto[RemovePersonPayload](raw)
	case TypeCulturalCenterBooking:
		p, err = decodeInto[CulturalCenterBookingPayload](raw)
	default:
		return nil, errs.Wrapf(ErrUnknownType, "%q", t)
	}
	if err != nil {
		return nil, err
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func decodeInto[T Payload](raw json.RawMessage) (T, error) {
	var v T
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		return v, errs.Wrap(ErrPayloadSchema, err.Error())
	}
	return v, nil
}

// NormalizeRaw checks that raw is a JSON object and returns it compacted.
// An empty body becomes {}.
func NormalizeRaw(raw json.RawMessage) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return json.RawMessage("{}"), nil
	}
	if trimmed[0] != '{' || !json.Valid(trimmed) {
		return nil, ErrPayloadNotJSON
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return nil, ErrPayloadNotJSON
	}
	return json.RawMessage(buf.Bytes()), nil
}
