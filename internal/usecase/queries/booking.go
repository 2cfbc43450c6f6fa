package queries

import (
	"context"

	"sharekit/internal/infra"
	"sharekit/internal/pkg/clock"
	"sharekit/internal/pkg/errs"
)

var (
	ErrBookingNotFound     = errs.New("booking not found")
	ErrBookingAccessDenied = errs.New("booking is visible only to the booker or the item owner")
)

type BookingReadStore interface {
	FindViewByID(ctx context.Context, id int64) (*BookingView, error)
	// ListByBooker/ListByOwner return views ordered by start date descending.
	ListByBooker(ctx context.Context, bookerID int64, filter BookingFilter) ([]*BookingView, error)
	ListByOwner(ctx context.Context, ownerID int64, filter BookingFilter) ([]*BookingView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, userID, bookingID int64) (*BookingView, error)
	ListForBooker(ctx context.Context, userID int64, state string, page Page) ([]*BookingView, error)
	ListForOwner(ctx context.Context, userID int64, state string, page Page) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
	users UserReadStore
	clock clock.Clock
}

func NewBookingQueries(store BookingReadStore, users UserReadStore, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{store: store, users: users, clock: clk}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, userID, bookingID int64) (*BookingView, error) {
	view, err := q.store.FindViewByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if view.Booker.ID != userID && view.ItemOwnerID != userID {
		return nil, ErrBookingAccessDenied
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListForBooker(ctx context.Context, userID int64, state string, page Page) ([]*BookingView, error) {
	filter, err := q.buildFilter(ctx, userID, state, page)
	if err != nil {
		return nil, err
	}
	return q.store.ListByBooker(ctx, userID, filter)
}

func (q *bookingQueriesImpl) ListForOwner(ctx context.Context, userID int64, state string, page Page) ([]*BookingView, error) {
	filter, err := q.buildFilter(ctx, userID, state, page)
	if err != nil {
		return nil, err
	}
	return q.store.ListByOwner(ctx, userID, filter)
}

func (q *bookingQueriesImpl) buildFilter(ctx context.Context, userID int64, state string, page Page) (BookingFilter, error) {
	// The subject user must exist even when the result set would be empty.
	if _, err := q.users.FindByID(ctx, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return BookingFilter{}, ErrUserNotFound
		}
		return BookingFilter{}, err
	}

	parsed, err := ParseState(state)
	if err != nil {
		return BookingFilter{}, err
	}

	return BookingFilter{
		State: parsed,
		Now:   q.clock.Now(),
		Page:  page.Normalize(),
	}, nil
}
