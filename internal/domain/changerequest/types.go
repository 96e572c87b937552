package changerequest

import (
	"strings"

	"civic-hub/internal/pkg/errs"
)

var ErrUnknownType = errs.Mark(errs.New("unknown change request type"), errs.ErrUnknownRequestType)

type Type string

const (
	TypeHouseholdUpdate       Type = "HOUSEHOLD_UPDATE"
	TypeAddPerson             Type = "ADD_PERSON"
	TypeRemovePerson          Type = "REMOVE_PERSON"
	TypeCulturalCenterBooking Type = "CULTURAL_CENTER_BOOKING"
)

// Types lists every request type in a stable order.
var Types = []Type{
	TypeHouseholdUpdate,
	TypeAddPerson,
	TypeRemovePerson,
	TypeCulturalCenterBooking,
}

func ParseType(s string) (Type, error) {
	t := Type(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Types {
		if t == known {
			return t, nil
		}
	}
	return "", errs.Wrapf(ErrUnknownType, "%q", s)
}

func (t Type) String() string { return string(t) }

// NeedsHousehold reports whether the handler for t operates on the
// requester's household.
func (t Type) NeedsHousehold() bool {
	return t != TypeCulturalCenterBooking
}
