package converter

import (
	"civic-hub/internal/domain/resource"
	sqlc "civic-hub/internal/infra/sqlc/generated"
	"civic-hub/internal/pkg/pgconv"
)

func ResourceToCreateParams(r *resource.Resource) sqlc.CreateResourceParams {
	return sqlc.CreateResourceParams{
		ID:          r.ID(),
		Name:        r.Name(),
		Building:    r.Building().String(),
		Floor:       pgconv.IntPtrToPgtype(r.Floor()),
		Room:        pgconv.StringPtrToPgtype(r.Room()),
		Capacity:    toInt32(r.Capacity()),
		Description: pgconv.StringPtrToPgtype(r.Description()),
		CreatedAt:   pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func ResourceToUpdateParams(r *resource.Resource) sqlc.UpdateResourceParams {
	return sqlc.UpdateResourceParams{
		ID:          r.ID(),
		Name:        r.Name(),
		Building:    r.Building().String(),
		Floor:       pgconv.IntPtrToPgtype(r.Floor()),
		Room:        pgconv.StringPtrToPgtype(r.Room()),
		Capacity:    toInt32(r.Capacity()),
		Description: pgconv.StringPtrToPgtype(r.Description()),
		UpdatedAt:   pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func ResourceFromRow(row sqlc.Resources) *resource.Resource {
	attrs := resource.Attributes{
		Name:        row.Name,
		Building:    resource.Building(row.Building),
		Floor:       pgconv.IntPtrFromPgtype(row.Floor),
		Room:        pgconv.StringPtrFromPgtype(row.Room),
		Capacity:    int(row.Capacity),
		Description: pgconv.StringPtrFromPgtype(row.Description),
	}
	return resource.ReconstructResource(row.ID, attrs, pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt))
}
