package queries

import (
	"context"
	"strings"
	"time"

	"sharekit/internal/infra"
	"sharekit/internal/pkg/errs"
)

var ErrItemNotFound = errs.New("item not found")

// ItemRow is the bare catalog record before enrichment.
type ItemRow struct {
	ID          int64
	Name        string
	Description string
	Available   bool
	OwnerID     int64
	RequestID   *int64
}

type ItemReadStore interface {
	FindByID(ctx context.Context, id int64) (*ItemRow, error)
	FindByOwner(ctx context.Context, ownerID int64) ([]*ItemRow, error)
	// SearchAvailable matches text case-insensitively against name or
	// description, restricted to available items.
	SearchAvailable(ctx context.Context, text string) ([]*ItemRow, error)
	BookingsForItem(ctx context.Context, itemID int64) ([]BookingRef, error)
	CommentsForItem(ctx context.Context, itemID int64) ([]CommentView, error)
}

type ItemQueries interface {
	// GetByID returns the owner-enriched view (computed last/next booking
	// dates) when viewerID owns the item, the plain view otherwise.
	GetByID(ctx context.Context, viewerID, itemID int64) (*ItemView, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*ItemView, error)
	Search(ctx context.Context, text string) ([]*ItemView, error)
}

type itemQueriesImpl struct {
	store ItemReadStore
}

func NewItemQueries(store ItemReadStore) ItemQueries {
	return &itemQueriesImpl{store: store}
}

func (q *itemQueriesImpl) GetByID(ctx context.Context, viewerID, itemID int64) (*ItemView, error) {
	row, err := q.store.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	withDates := row.OwnerID == viewerID
	return q.enrich(ctx, row, withDates)
}

func (q *itemQueriesImpl) ListByOwner(ctx context.Context, ownerID int64) ([]*ItemView, error) {
	rows, err := q.store.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return q.enrichAll(ctx, rows)
}

func (q *itemQueriesImpl) Search(ctx context.Context, text string) ([]*ItemView, error) {
	// Blank search text short-circuits without touching storage.
	if strings.TrimSpace(text) == "" {
		return []*ItemView{}, nil
	}

	rows, err := q.store.SearchAvailable(ctx, text)
	if err != nil {
		return nil, err
	}
	return q.enrichAll(ctx, rows)
}

func (q *itemQueriesImpl) enrichAll(ctx context.Context, rows []*ItemRow) ([]*ItemView, error) {
	views := make([]*ItemView, 0, len(rows))
	for _, row := range rows {
		view, err := q.enrich(ctx, row, true)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func (q *itemQueriesImpl) enrich(ctx context.Context, row *ItemRow, withDates bool) (*ItemView, error) {
	bookings, err := q.store.BookingsForItem(ctx, row.ID)
	if err != nil {
		return nil, err
	}
	comments, err := q.store.CommentsForItem(ctx, row.ID)
	if err != nil {
		return nil, err
	}

	view := &ItemView{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Available:   row.Available,
		RequestID:   row.RequestID,
		Bookings:    bookings,
		Comments:    comments,
	}
	if withDates {
		view.LastBooking, view.NextBooking = bookingDates(bookings)
	}
	return view, nil
}

// bookingDates picks the latest end date and the earliest start date across
// every booking of the item, regardless of status.
func bookingDates(bookings []BookingRef) (last, next *time.Time) {
	for i := range bookings {
		b := bookings[i]
		if last == nil || b.End.After(*last) {
			end := b.End
			last = &end
		}
		if next == nil || b.Start.Before(*next) {
			start := b.Start
			next = &start
		}
	}
	return last, next
}
