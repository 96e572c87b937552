package converter

import (
	"civic-hub/internal/domain/household"
	sqlc "civic-hub/internal/infra/sqlc/generated"
	"civic-hub/internal/pkg/pgconv"
)

func HouseholdFromRow(row sqlc.Households) *household.Household {
	return household.ReconstructHousehold(row.ID, row.Code, row.Address, pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt))
}

func PersonToCreateParams(p *household.Person) sqlc.CreatePersonParams {
	attrs := p.Attributes()
	return sqlc.CreatePersonParams{
		ID:           p.ID(),
		HouseholdID:  p.HouseholdID(),
		FullName:     attrs.FullName,
		DateOfBirth:  pgconv.DatePtrToPgtype(attrs.DateOfBirth),
		Gender:       pgconv.StringPtrToPgtype(attrs.Gender),
		IDNumber:     pgconv.StringPtrToPgtype(attrs.IDNumber),
		Relationship: pgconv.StringPtrToPgtype(attrs.Relationship),
		CreatedAt:    pgconv.TimeToPgtype(p.CreatedAt()),
	}
}

func PersonFromRow(row sqlc.Persons) *household.Person {
	attrs := household.PersonAttributes{
		FullName:     row.FullName,
		DateOfBirth:  pgconv.DatePtrFromPgtype(row.DateOfBirth),
		Gender:       pgconv.StringPtrFromPgtype(row.Gender),
		IDNumber:     pgconv.StringPtrFromPgtype(row.IDNumber),
		Relationship: pgconv.StringPtrFromPgtype(row.Relationship),
	}
	return household.ReconstructPerson(row.ID, row.HouseholdID, attrs, pgconv.TimeFromPgtype(row.CreatedAt))
}
