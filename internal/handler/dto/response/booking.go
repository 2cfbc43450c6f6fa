package response

import (
	"sharekit/internal/pkg/timefmt"
	"sharekit/internal/usecase/queries"
)

type BookingItemResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

type BookingResponse struct {
	ID     int64                 `json:"id"`
	Start  timefmt.LocalDateTime `json:"start"`
	End    timefmt.LocalDateTime `json:"end"`
	Status string                `json:"status"`
	Item   BookingItemResponse   `json:"item"`
	Booker UserResponse          `json:"booker"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:     v.ID,
		Start:  timefmt.New(v.Start),
		End:    timefmt.New(v.End),
		Status: v.Status,
		Item: BookingItemResponse{
			ID:          v.Item.ID,
			Name:        v.Item.Name,
			Description: v.Item.Description,
			Available:   v.Item.Available,
			RequestID:   v.Item.RequestID,
		},
		Booker: UserResponse{
			ID:    v.Booker.ID,
			Name:  v.Booker.Name,
			Email: v.Booker.Email,
		},
	}
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	out := make([]*BookingResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromBookingView(v))
	}
	return out
}
