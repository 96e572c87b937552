package request

import (
	"civic-hub/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateHouseholdRequest struct {
	Code    string `json:"code" binding:"required,max=50"`
	Address string `json:"address" binding:"required"`
}

func (r *CreateHouseholdRequest) ToCommand() commands.CreateHouseholdRequest {
	return commands.CreateHouseholdRequest{Code: r.Code, Address: r.Address}
}

type AddMemberRequest struct {
	UserID uuid.UUID `json:"userId" binding:"required"`
}
