package response

import (
	"time"

	"civic-hub/internal/usecase/queries"

	"github.com/google/uuid"
)

type ResourceResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Building    string    `json:"building"`
	Floor       *int      `json:"floor"`
	Room        *string   `json:"room"`
	Capacity    int       `json:"capacity"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromResourceView(v *queries.ResourceView) ResourceResponse {
	return mapTo[ResourceResponse](v)
}

func FromResourceList(vs []*queries.ResourceView) []ResourceResponse {
	if len(vs) == 0 {
		return []ResourceResponse{}
	}
	return mapTo[[]ResourceResponse](vs)
}
