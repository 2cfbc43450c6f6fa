package request

import (
	"sharekit/internal/usecase/commands"
)

type CreateItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   *bool  `json:"available"`
	RequestID   *int64 `json:"requestId"`
}

func (r CreateItemRequest) ToCommand() commands.CreateItemRequest {
	available := false
	if r.Available != nil {
		available = *r.Available
	}
	return commands.CreateItemRequest{
		Name:        r.Name,
		Description: r.Description,
		Available:   available,
		RequestID:   r.RequestID,
	}
}

type UpdateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

func (r UpdateItemRequest) ToCommand() commands.UpdateItemRequest {
	return commands.UpdateItemRequest{
		Name:        r.Name,
		Description: r.Description,
		Available:   r.Available,
	}
}

type CreateCommentRequest struct {
	Text string `json:"text"`
}
