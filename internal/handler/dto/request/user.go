package request

import (
	"sharekit/internal/usecase/commands"
)

// Shape validation happens at the gateway; the server binds loosely and
// lets domain checks reject bad payloads.

type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (r CreateUserRequest) ToCommand() commands.CreateUserRequest {
	return commands.CreateUserRequest{
		Name:  r.Name,
		Email: r.Email,
	}
}

type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

func (r UpdateUserRequest) ToCommand() commands.UpdateUserRequest {
	return commands.UpdateUserRequest{
		Name:  r.Name,
		Email: r.Email,
	}
}
