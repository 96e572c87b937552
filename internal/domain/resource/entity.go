package resource

import (
	"strings"
	"time"

	"civic-hub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyResourceName         = errs.Mark(errs.New("resource name cannot be empty"), errs.ErrValidation)
	ErrResourceNameTooLong       = errs.Mark(errs.New("resource name is too long (max 255 characters)"), errs.ErrValidation)
	ErrInvalidBuilding           = errs.Mark(errs.New("building must be one of A, B, C"), errs.ErrValidation)
	ErrInvalidCapacity           = errs.Mark(errs.New("capacity must be a positive integer"), errs.ErrValidation)
	ErrResourceNotFound          = errs.Mark(errs.New("resource not found"), errs.ErrNotFound)
	ErrResourceHasActiveBookings = errs.Mark(errs.New("resource still has active bookings"), errs.ErrConflict)
)

const (
	MaxResourceNameLength = 255
)

type Building string

const (
	BuildingA Building = "A"
	BuildingB Building = "B"
	BuildingC Building = "C"
)

func ParseBuilding(s string) (Building, error) {
	b := Building(strings.ToUpper(strings.TrimSpace(s)))
	switch b {
	case BuildingA, BuildingB, BuildingC:
		return b, nil
	default:
		return "", ErrInvalidBuilding
	}
}

func (b Building) String() string { return string(b) }

// Attributes are the administrator-editable fields of a cultural center.
type Attributes struct {
	Name        string
	Building    Building
	Floor       *int
	Room        *string
	Capacity    int
	Description *string
}

// Resource is a bookable cultural center room.
type Resource struct {
	id        uuid.UUID
	attrs     Attributes
	createdAt time.Time
	updatedAt time.Time
}

func NewResource(attrs Attributes, now time.Time) (*Resource, error) {
	normalized, err := validateAttributes(attrs)
	if err != nil {
		return nil, err
	}

	return &Resource{
		id:        uuid.New(),
		attrs:     normalized,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructResource(id uuid.UUID, attrs Attributes, createdAt, updatedAt time.Time) *Resource {
	return &Resource{
		id:        id,
		attrs:     attrs,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Update replaces every attribute; identity is immutable.
func (r *Resource) Update(attrs Attributes, now time.Time) error {
	normalized, err := validateAttributes(attrs)
	if err != nil {
		return err
	}
	r.attrs = normalized
	r.updatedAt = now
	return nil
}

func validateAttributes(attrs Attributes) (Attributes, error) {
	attrs.Name = strings.TrimSpace(attrs.Name)
	if attrs.Name == "" {
		return Attributes{}, ErrEmptyResourceName
	}
	if len(attrs.Name) > MaxResourceNameLength {
		return Attributes{}, ErrResourceNameTooLong
	}

	building, err := ParseBuilding(string(attrs.Building))
	if err != nil {
		return Attributes{}, err
	}
	attrs.Building = building

	if attrs.Capacity <= 0 {
		return Attributes{}, ErrInvalidCapacity
	}

	if attrs.Room != nil {
		room := strings.TrimSpace(*attrs.Room)
		if room == "" {
			attrs.Room = nil
		} else {
			attrs.Room = &room
		}
	}
	return attrs, nil
}

func (r *Resource) ID() uuid.UUID          { return r.id }
func (r *Resource) Name() string           { return r.attrs.Name }
func (r *Resource) Building() Building     { return r.attrs.Building }
func (r *Resource) Floor() *int            { return r.attrs.Floor }
func (r *Resource) Room() *string          { return r.attrs.Room }
func (r *Resource) Capacity() int          { return r.attrs.Capacity }
func (r *Resource) Description() *string   { return r.attrs.Description }
func (r *Resource) Attributes() Attributes { return r.attrs }
func (r *Resource) CreatedAt() time.Time   { return r.createdAt }
func (r *Resource) UpdatedAt() time.Time   { return r.updatedAt }
