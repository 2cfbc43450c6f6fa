//go:build unit

package queries_test

import (
	"context"

	"sharekit/internal/usecase/queries"

	"github.com/stretchr/testify/mock"
)

type mockUserReadStore struct {
	mock.Mock
}

func (m *mockUserReadStore) FindByID(ctx context.Context, id int64) (*queries.UserView, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*queries.UserView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserReadStore) FindAll(ctx context.Context) ([]*queries.UserView, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*queries.UserView), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockItemReadStore struct {
	mock.Mock
}

func (m *mockItemReadStore) FindByID(ctx context.Context, id int64) (*queries.ItemRow, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*queries.ItemRow), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItemReadStore) FindByOwner(ctx context.Context, ownerID int64) ([]*queries.ItemRow, error) {
	args := m.Called(ctx, ownerID)
	if v := args.Get(0); v != nil {
		return v.([]*queries.ItemRow), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItemReadStore) SearchAvailable(ctx context.Context, text string) ([]*queries.ItemRow, error) {
	args := m.Called(ctx, text)
	if v := args.Get(0); v != nil {
		return v.([]*queries.ItemRow), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItemReadStore) BookingsForItem(ctx context.Context, itemID int64) ([]queries.BookingRef, error) {
	args := m.Called(ctx, itemID)
	if v := args.Get(0); v != nil {
		return v.([]queries.BookingRef), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItemReadStore) CommentsForItem(ctx context.Context, itemID int64) ([]queries.CommentView, error) {
	args := m.Called(ctx, itemID)
	if v := args.Get(0); v != nil {
		return v.([]queries.CommentView), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockBookingReadStore struct {
	mock.Mock
}

func (m *mockBookingReadStore) FindViewByID(ctx context.Context, id int64) (*queries.BookingView, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*queries.BookingView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingReadStore) ListByBooker(ctx context.Context, bookerID int64, filter queries.BookingFilter) ([]*queries.BookingView, error) {
	args := m.Called(ctx, bookerID, filter)
	if v := args.Get(0); v != nil {
		return v.([]*queries.BookingView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingReadStore) ListByOwner(ctx context.Context, ownerID int64, filter queries.BookingFilter) ([]*queries.BookingView, error) {
	args := m.Called(ctx, ownerID, filter)
	if v := args.Get(0); v != nil {
		return v.([]*queries.BookingView), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockRequestReadStore struct {
	mock.Mock
}

func (m *mockRequestReadStore) FindByID(ctx context.Context, id int64) (*queries.RequestView, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*queries.RequestView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRequestReadStore) FindByRequestor(ctx context.Context, requestorID int64) ([]*queries.RequestView, error) {
	args := m.Called(ctx, requestorID)
	if v := args.Get(0); v != nil {
		return v.([]*queries.RequestView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRequestReadStore) FindOthers(ctx context.Context, requestorID int64, page queries.Page) ([]*queries.RequestView, error) {
	args := m.Called(ctx, requestorID, page)
	if v := args.Get(0); v != nil {
		return v.([]*queries.RequestView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRequestReadStore) FulfillingItems(ctx context.Context, requestID int64) ([]queries.ItemRef, error) {
	args := m.Called(ctx, requestID)
	if v := args.Get(0); v != nil {
		return v.([]queries.ItemRef), args.Error(1)
	}
	return nil, args.Error(1)
}
