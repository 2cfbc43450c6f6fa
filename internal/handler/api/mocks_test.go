//go:build unit

package api_test

import (
	"context"

	"sharekit/internal/usecase/commands"
	"sharekit/internal/usecase/queries"

	"github.com/stretchr/testify/mock"
)

type mockUserCommands struct {
	mock.Mock
}

func (m *mockUserCommands) Create(ctx context.Context, req commands.CreateUserRequest) (*queries.UserView, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*queries.UserView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserCommands) Update(ctx context.Context, userID int64, req commands.UpdateUserRequest) (*queries.UserView, error) {
	args := m.Called(ctx, userID, req)
	if v := args.Get(0); v != nil {
		return v.(*queries.UserView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserCommands) Delete(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

type mockUserQueries struct {
	mock.Mock
}

func (m *mockUserQueries) GetByID(ctx context.Context, id int64) (*queries.UserView, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*queries.UserView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserQueries) List(ctx context.Context) ([]*queries.UserView, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*queries.UserView), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockBookingCommands struct {
	mock.Mock
}

func (m *mockBookingCommands) Create(ctx context.Context, bookerID int64, req commands.CreateBookingRequest) (*queries.BookingView, error) {
	args := m.Called(ctx, bookerID, req)
	if v := args.Get(0); v != nil {
		return v.(*queries.BookingView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingCommands) UpdateStatus(ctx context.Context, userID, bookingID int64, approve bool) (*queries.BookingView, error) {
	args := m.Called(ctx, userID, bookingID, approve)
	if v := args.Get(0); v != nil {
		return v.(*queries.BookingView), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockBookingQueries struct {
	mock.Mock
}

func (m *mockBookingQueries) GetByID(ctx context.Context, userID, bookingID int64) (*queries.BookingView, error) {
	args := m.Called(ctx, userID, bookingID)
	if v := args.Get(0); v != nil {
		return v.(*queries.BookingView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingQueries) ListForBooker(ctx context.Context, userID int64, state string, page queries.Page) ([]*queries.BookingView, error) {
	args := m.Called(ctx, userID, state, page)
	if v := args.Get(0); v != nil {
		return v.([]*queries.BookingView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingQueries) ListForOwner(ctx context.Context, userID int64, state string, page queries.Page) ([]*queries.BookingView, error) {
	args := m.Called(ctx, userID, state, page)
	if v := args.Get(0); v != nil {
		return v.([]*queries.BookingView), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockItemCommands struct {
	mock.Mock
}

func (m *mockItemCommands) Create(ctx context.Context, ownerID int64, req commands.CreateItemRequest) (*queries.ItemView, error) {
	args := m.Called(ctx, ownerID, req)
	if v := args.Get(0); v != nil {
		return v.(*queries.ItemView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItemCommands) Update(ctx context.Context, userID, itemID int64, req commands.UpdateItemRequest) (*queries.ItemView, error) {
	args := m.Called(ctx, userID, itemID, req)
	if v := args.Get(0); v != nil {
		return v.(*queries.ItemView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItemCommands) Delete(ctx context.Context, itemID int64) error {
	return m.Called(ctx, itemID).Error(0)
}

func (m *mockItemCommands) AddComment(ctx context.Context, userID, itemID int64, text string) (*queries.CommentView, error) {
	args := m.Called(ctx, userID, itemID, text)
	if v := args.Get(0); v != nil {
		return v.(*queries.CommentView), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockItemQueries struct {
	mock.Mock
}

func (m *mockItemQueries) GetByID(ctx context.Context, viewerID, itemID int64) (*queries.ItemView, error) {
	args := m.Called(ctx, viewerID, itemID)
	if v := args.Get(0); v != nil {
		return v.(*queries.ItemView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItemQueries) ListByOwner(ctx context.Context, ownerID int64) ([]*queries.ItemView, error) {
	args := m.Called(ctx, ownerID)
	if v := args.Get(0); v != nil {
		return v.([]*queries.ItemView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItemQueries) Search(ctx context.Context, text string) ([]*queries.ItemView, error) {
	args := m.Called(ctx, text)
	if v := args.Get(0); v != nil {
		return v.([]*queries.ItemView), args.Error(1)
	}
	return nil, args.Error(1)
}
