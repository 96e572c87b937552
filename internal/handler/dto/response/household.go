package response

import (
	"time"

	"civic-hub/internal/usecase/queries"

	"github.com/google/uuid"
)

type PersonResponse struct {
	ID           uuid.UUID  `json:"id"`
	HouseholdID  uuid.UUID  `json:"householdId"`
	FullName     string     `json:"fullName"`
	DateOfBirth  *time.Time `json:"dateOfBirth"`
	Gender       *string    `json:"gender"`
	IDNumber     *string    `json:"idNumber"`
	Relationship *string    `json:"relationship"`
	CreatedAt    time.Time  `json:"createdAt"`
}

type HouseholdResponse struct {
	ID          uuid.UUID        `json:"id"`
	Code        string           `json:"code"`
	Address     string           `json:"address"`
	PersonCount int              `json:"personCount"`
	MemberCount int              `json:"memberCount"`
	Persons     []PersonResponse `json:"persons,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

func FromHouseholdView(v *queries.HouseholdView) HouseholdResponse {
	return mapTo[HouseholdResponse](v)
}

func FromHouseholdList(vs []*queries.HouseholdView) []HouseholdResponse {
	if len(vs) == 0 {
		return []HouseholdResponse{}
	}
	return mapTo[[]HouseholdResponse](vs)
}

func FromPersonList(vs []*queries.PersonView) []PersonResponse {
	if len(vs) == 0 {
		return []PersonResponse{}
	}
	return mapTo[[]PersonResponse](vs)
}
