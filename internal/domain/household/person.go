package household

import (
	"strings"
	"time"

	"civic-hub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrPersonNotFound    = errs.Mark(errs.New("person not found in household"), errs.ErrNotFound)
	ErrEmptyFullName     = errs.Mark(errs.New("full name cannot be empty"), errs.ErrValidation)
	ErrBirthInFuture     = errs.Mark(errs.New("date of birth cannot be in the future"), errs.ErrValidation)
	ErrDuplicateIDNumber = errs.Mark(errs.New("a person with this id number is already registered"), errs.ErrConflict)
)

type PersonAttributes struct {
	FullName     string
	DateOfBirth  *time.Time
	Gender       *string
	IDNumber     *string
	Relationship *string
}

type Person struct {
	id          uuid.UUID
	householdID uuid.UUID
	attrs       PersonAttributes
	createdAt   time.Time
}

func NewPerson(householdID uuid.UUID, attrs PersonAttributes, now time.Time) (*Person, error) {
	attrs.FullName = strings.TrimSpace(attrs.FullName)
	if attrs.FullName == "" {
		return nil, ErrEmptyFullName
	}
	if attrs.DateOfBirth != nil && attrs.DateOfBirth.After(now) {
		return nil, ErrBirthInFuture
	}
	attrs.Gender = trimmed(attrs.Gender)
	attrs.IDNumber = trimmed(attrs.IDNumber)
	attrs.Relationship = trimmed(attrs.Relationship)

	return &Person{
		id:          uuid.New(),
		householdID: householdID,
		attrs:       attrs,
		createdAt:   now,
	}, nil
}

func ReconstructPerson(id, householdID uuid.UUID, attrs PersonAttributes, createdAt time.Time) *Person {
	return &Person{
		id:          id,
		householdID: householdID,
		attrs:       attrs,
		createdAt:   createdAt,
	}
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func (p *Person) ID() uuid.UUID                { return p.id }
func (p *Person) HouseholdID() uuid.UUID       { return p.householdID }
func (p *Person) Attributes() PersonAttributes { return p.attrs }
func (p *Person) FullName() string             { return p.attrs.FullName }
func (p *Person) CreatedAt() time.Time         { return p.createdAt }
