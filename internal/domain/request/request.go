package request

import (
	"strings"
	"time"

	"sharekit/internal/pkg/errs"
)

var ErrDescriptionRequired = errs.New("request description is required")

// ItemRequest asks the community for an item nobody has listed yet.
// Read-only after creation; fulfilling items are derived from the catalog.
type ItemRequest struct {
	ID          int64
	Description string
	RequestorID int64
	Created     time.Time
}

func New(requestorID int64, description string, now time.Time) (*ItemRequest, error) {
	if strings.TrimSpace(description) == "" {
		return nil, ErrDescriptionRequired
	}
	return &ItemRequest{
		Description: description,
		RequestorID: requestorID,
		Created:     now,
	}, nil
}
