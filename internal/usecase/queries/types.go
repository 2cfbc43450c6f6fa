package queries

import "time"

// Read models (DTO for read side)

type UserView struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ItemRef is the compact item shape nested in booking and request views.
type ItemRef struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   *int64 `json:"request_id,omitempty"`
}

// BookingRef is the compact booking shape nested in item views.
type BookingRef struct {
	ID     int64     `json:"id"`
	ItemID int64     `json:"item_id"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
}

type CommentView struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"author_name"`
	Created    time.Time `json:"created"`
}

// ItemView carries the enriched catalog entry. LastBooking/NextBooking are
// computed for the owner only; other viewers get the plain lists.
type ItemView struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Available   bool          `json:"available"`
	RequestID   *int64        `json:"request_id,omitempty"`
	Bookings    []BookingRef  `json:"bookings"`
	Comments    []CommentView `json:"comments"`
	LastBooking *time.Time    `json:"last_booking,omitempty"`
	NextBooking *time.Time    `json:"next_booking,omitempty"`
}

type BookingView struct {
	ID     int64     `json:"id"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Status string    `json:"status"`
	Item   ItemRef   `json:"item"`
	Booker UserView  `json:"booker"`

	// ItemOwnerID never leaves the server; it backs the participant check.
	ItemOwnerID int64 `json:"-"`
}

type RequestView struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Created     time.Time `json:"created"`
	Items       []ItemRef `json:"items"`
}

// Page reproduces the source paging behavior literally: the page index is
// from/size via integer division, not a record offset.
type Page struct {
	From int
	Size int
}

const defaultPageSize = 10

func (p Page) Normalize() Page {
	if p.Size <= 0 {
		p.Size = defaultPageSize
	}
	if p.From < 0 {
		p.From = 0
	}
	return p
}

func (p Page) Limit() int32 {
	return int32(p.Size)
}

func (p Page) Offset() int32 {
	return int32(p.From / p.Size * p.Size)
}
