package request

import (
	"civic-hub/internal/usecase/commands"
)

type ResourceRequest struct {
	Name        string  `json:"name" binding:"required,max=200"`
	Building    string  `json:"building" binding:"required,oneof=A B C"`
	Floor       *int    `json:"floor"`
	Room        *string `json:"room" binding:"omitempty,max=50"`
	Capacity    int     `json:"capacity" binding:"required,min=1"`
	Description *string `json:"description"`
}

func (r *ResourceRequest) ToInput() commands.ResourceInput {
	return commands.ResourceInput{
		Name:        r.Name,
		Building:    r.Building,
		Floor:       r.Floor,
		Room:        r.Room,
		Capacity:    r.Capacity,
		Description: r.Description,
	}
}
