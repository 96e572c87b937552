package request

import (
	"encoding/json"

	"civic-hub/internal/usecase/commands"
)

type SubmitChangeRequest struct {
	Type        string          `json:"type" binding:"required"`
	Payload     json.RawMessage `json:"payload" swaggertype:"object"`
	Description *string         `json:"description"`
}

func (r *SubmitChangeRequest) ToCommand() commands.SubmitRequestRequest {
	return commands.SubmitRequestRequest{
		Type:        r.Type,
		Payload:     r.Payload,
		Description: r.Description,
	}
}
