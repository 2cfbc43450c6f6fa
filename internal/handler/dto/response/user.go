package response

import (
	"sharekit/internal/usecase/queries"
)

type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func FromUserView(v *queries.UserView) *UserResponse {
	return &UserResponse{
		ID:    v.ID,
		Name:  v.Name,
		Email: v.Email,
	}
}

func FromUserViews(views []*queries.UserView) []*UserResponse {
	out := make([]*UserResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromUserView(v))
	}
	return out
}
