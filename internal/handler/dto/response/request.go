package response

import (
	"sharekit/internal/pkg/timefmt"
	"sharekit/internal/usecase/queries"
)

type RequestItemResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

type RequestResponse struct {
	ID          int64                 `json:"id"`
	Description string                `json:"description"`
	Created     timefmt.LocalDateTime `json:"created"`
	Items       []RequestItemResponse `json:"items"`
}

func FromRequestView(v *queries.RequestView) *RequestResponse {
	items := make([]RequestItemResponse, 0, len(v.Items))
	for _, it := range v.Items {
		items = append(items, RequestItemResponse{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			Available:   it.Available,
			RequestID:   it.RequestID,
		})
	}
	return &RequestResponse{
		ID:          v.ID,
		Description: v.Description,
		Created:     timefmt.New(v.Created),
		Items:       items,
	}
}

func FromRequestViews(views []*queries.RequestView) []*RequestResponse {
	out := make([]*RequestResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromRequestView(v))
	}
	return out
}
