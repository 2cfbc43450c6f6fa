package queries

import (
	"context"

	"sharekit/internal/infra"
	"sharekit/internal/pkg/errs"
)

var ErrRequestNotFound = errs.New("item request not found")

type RequestReadStore interface {
	FindByID(ctx context.Context, id int64) (*RequestView, error)
	// FindByRequestor returns the user's own requests, newest first.
	FindByRequestor(ctx context.Context, requestorID int64) ([]*RequestView, error)
	// FindOthers returns everyone else's requests, newest first, paginated.
	FindOthers(ctx context.Context, requestorID int64, page Page) ([]*RequestView, error)
	// FulfillingItems lists catalog items whose request id links back.
	FulfillingItems(ctx context.Context, requestID int64) ([]ItemRef, error)
}

type RequestQueries interface {
	GetByID(ctx context.Context, userID, requestID int64) (*RequestView, error)
	ListOwn(ctx context.Context, userID int64) ([]*RequestView, error)
	ListOthers(ctx context.Context, userID int64, page Page) ([]*RequestView, error)
}

type requestQueriesImpl struct {
	store RequestReadStore
	users UserReadStore
}

func NewRequestQueries(store RequestReadStore, users UserReadStore) RequestQueries {
	return &requestQueriesImpl{store: store, users: users}
}

func (q *requestQueriesImpl) GetByID(ctx context.Context, userID, requestID int64) (*RequestView, error) {
	if err := q.checkUserExists(ctx, userID); err != nil {
		return nil, err
	}

	view, err := q.store.FindByID(ctx, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return q.attachItems(ctx, view)
}

func (q *requestQueriesImpl) ListOwn(ctx context.Context, userID int64) ([]*RequestView, error) {
	if err := q.checkUserExists(ctx, userID); err != nil {
		return nil, err
	}

	views, err := q.store.FindByRequestor(ctx, userID)
	if err != nil {
		return nil, err
	}
	return q.attachItemsAll(ctx, views)
}

func (q *requestQueriesImpl) ListOthers(ctx context.Context, userID int64, page Page) ([]*RequestView, error) {
	if err := q.checkUserExists(ctx, userID); err != nil {
		return nil, err
	}

	views, err := q.store.FindOthers(ctx, userID, page.Normalize())
	if err != nil {
		return nil, err
	}
	return q.attachItemsAll(ctx, views)
}

func (q *requestQueriesImpl) attachItemsAll(ctx context.Context, views []*RequestView) ([]*RequestView, error) {
	for _, view := range views {
		if _, err := q.attachItems(ctx, view); err != nil {
			return nil, err
		}
	}
	return views, nil
}

func (q *requestQueriesImpl) attachItems(ctx context.Context, view *RequestView) (*RequestView, error) {
	items, err := q.store.FulfillingItems(ctx, view.ID)
	if err != nil {
		return nil, err
	}
	view.Items = items
	return view, nil
}

func (q *requestQueriesImpl) checkUserExists(ctx context.Context, userID int64) error {
	if _, err := q.users.FindByID(ctx, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}
