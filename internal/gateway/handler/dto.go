package handler

import (
	"time"

	"sharekit/internal/pkg/errs"
	"sharekit/internal/pkg/timefmt"
)

// Gateway DTOs own the request-shape validation; whatever passes here is
// forwarded to the server unchanged.

type CreateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty" binding:"omitempty,email"`
}

type CreateItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Available   *bool  `json:"available" binding:"required"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

type UpdateItemRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Available   *bool   `json:"available,omitempty"`
}

type CreateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

type CreateBookingRequest struct {
	ItemID *int64                 `json:"itemId" binding:"required"`
	Start  *timefmt.LocalDateTime `json:"start" binding:"required"`
	End    *timefmt.LocalDateTime `json:"end" binding:"required"`
}

var (
	errStartInPast    = errs.New("start must not be in the past")
	errEndNotInFuture = errs.New("end must be in the future")
	errStartAfterEnd  = errs.New("start must be before end")
)

// ValidatePeriod applies the cross-field checks binding tags cannot express.
func (r CreateBookingRequest) ValidatePeriod(now time.Time) error {
	if r.Start.Time.Before(now.Truncate(time.Second)) {
		return errStartInPast
	}
	if !r.End.Time.After(now) {
		return errEndNotInFuture
	}
	if !r.Start.Time.Before(r.End.Time) {
		return errStartAfterEnd
	}
	return nil
}

type CreateRequestRequest struct {
	Description string `json:"description" binding:"required"`
}
