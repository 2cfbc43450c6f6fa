package response

import (
	"sharekit/internal/pkg/timefmt"
	"sharekit/internal/usecase/queries"
)

type BookingRefResponse struct {
	ID     int64                 `json:"id"`
	ItemID int64                 `json:"itemId"`
	Start  timefmt.LocalDateTime `json:"start"`
	End    timefmt.LocalDateTime `json:"end"`
}

type CommentResponse struct {
	ID         int64                 `json:"id"`
	Text       string                `json:"text"`
	AuthorName string                `json:"authorName"`
	Created    timefmt.LocalDateTime `json:"created"`
}

type ItemResponse struct {
	ID          int64                  `json:"id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Available   bool                   `json:"available"`
	RequestID   *int64                 `json:"requestId,omitempty"`
	Bookings    []BookingRefResponse   `json:"bookings"`
	Comments    []CommentResponse      `json:"comments"`
	LastBooking *timefmt.LocalDateTime `json:"lastBooking,omitempty"`
	NextBooking *timefmt.LocalDateTime `json:"nextBooking,omitempty"`
}

func FromItemView(v *queries.ItemView) *ItemResponse {
	bookings := make([]BookingRefResponse, 0, len(v.Bookings))
	for _, b := range v.Bookings {
		bookings = append(bookings, BookingRefResponse{
			ID:     b.ID,
			ItemID: b.ItemID,
			Start:  timefmt.New(b.Start),
			End:    timefmt.New(b.End),
		})
	}
	comments := make([]CommentResponse, 0, len(v.Comments))
	for _, cm := range v.Comments {
		comments = append(comments, FromCommentView(&cm))
	}
	return &ItemResponse{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Available:   v.Available,
		RequestID:   v.RequestID,
		Bookings:    bookings,
		Comments:    comments,
		LastBooking: timefmt.NewPtr(v.LastBooking),
		NextBooking: timefmt.NewPtr(v.NextBooking),
	}
}

func FromItemViews(views []*queries.ItemView) []*ItemResponse {
	out := make([]*ItemResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromItemView(v))
	}
	return out
}

func FromCommentView(v *queries.CommentView) CommentResponse {
	return CommentResponse{
		ID:         v.ID,
		Text:       v.Text,
		AuthorName: v.AuthorName,
		Created:    timefmt.New(v.Created),
	}
}
