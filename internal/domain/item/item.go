package item

import (
	"strings"
	"time"

	"sharekit/internal/pkg/errs"
)

var (
	ErrNameRequired        = errs.New("item name is required")
	ErrDescriptionRequired = errs.New("item description is required")
	ErrCommentTextRequired = errs.New("comment text is required")
)

// Item is always exclusively owned by one user. RequestID links the item
// back to the item-request it was listed in answer to, when there is one.
type Item struct {
	ID          int64
	Name        string
	Description string
	Available   bool
	OwnerID     int64
	RequestID   *int64
}

func New(ownerID int64, name, description string, available bool, requestID *int64) (*Item, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}
	if strings.TrimSpace(description) == "" {
		return nil, ErrDescriptionRequired
	}
	return &Item{
		Name:        name,
		Description: description,
		Available:   available,
		OwnerID:     ownerID,
		RequestID:   requestID,
	}, nil
}

func (i *Item) IsOwnedBy(userID int64) bool {
	return i.OwnerID == userID
}

// ApplyPatch overwrites only the fields present in the input.
func (i *Item) ApplyPatch(name, description *string, available *bool) error {
	if name != nil {
		if strings.TrimSpace(*name) == "" {
			return ErrNameRequired
		}
		i.Name = *name
	}
	if description != nil {
		if strings.TrimSpace(*description) == "" {
			return ErrDescriptionRequired
		}
		i.Description = *description
	}
	if available != nil {
		i.Available = *available
	}
	return nil
}

// Comment records proof-of-use feedback. Immutable once written.
type Comment struct {
	ID       int64
	Text     string
	ItemID   int64
	AuthorID int64
	Created  time.Time
}

func NewComment(itemID, authorID int64, text string, now time.Time) (*Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrCommentTextRequired
	}
	return &Comment{
		Text:     text,
		ItemID:   itemID,
		AuthorID: authorID,
		Created:  now,
	}, nil
}
