//go:build unit

package commands_test

import (
	"context"
	"time"

	"sharekit/internal/domain/booking"
	"sharekit/internal/domain/item"
	"sharekit/internal/domain/request"
	"sharekit/internal/domain/user"
	"sharekit/internal/infra/db"
	"sharekit/internal/usecase/queries"
	"sharekit/internal/usecase/shared"

	"github.com/stretchr/testify/mock"
)

// fakeUoW runs the transactional closure directly against in-memory mocks.
// Retry and isolation behavior belongs to the infra layer and is out of
// scope here.
type fakeUoW struct {
	tx          *fakeTx
	withinCalls int
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{tx: &fakeTx{
		users:    new(mockUserRepo),
		items:    new(mockItemRepo),
		bookings: new(mockBookingRepo),
		requests: new(mockRequestRepo),
		reads:    new(mockCommandReads),
	}}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.withinCalls++
	return fn(ctx, u.tx)
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return u.tx.reads
}

type fakeTx struct {
	users    *mockUserRepo
	items    *mockItemRepo
	bookings *mockBookingRepo
	requests *mockRequestRepo
	reads    *mockCommandReads
}

func (t *fakeTx) Users() shared.UserRepository       { return t.users }
func (t *fakeTx) Items() shared.ItemRepository       { return t.items }
func (t *fakeTx) Bookings() shared.BookingRepository { return t.bookings }
func (t *fakeTx) Requests() shared.RequestRepository { return t.requests }
func (t *fakeTx) Reads() shared.CommandReads         { return t.reads }
func (t *fakeTx) DB() db.DBTX                        { return nil }

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, db db.DBTX, u *user.User) (int64, error) {
	args := m.Called(ctx, db, u)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, db db.DBTX, u *user.User) error {
	return m.Called(ctx, db, u).Error(0)
}

func (m *mockUserRepo) Delete(ctx context.Context, db db.DBTX, id int64) error {
	return m.Called(ctx, db, id).Error(0)
}

type mockItemRepo struct {
	mock.Mock
}

func (m *mockItemRepo) Create(ctx context.Context, db db.DBTX, it *item.Item) (int64, error) {
	args := m.Called(ctx, db, it)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockItemRepo) Update(ctx context.Context, db db.DBTX, it *item.Item) error {
	return m.Called(ctx, db, it).Error(0)
}

func (m *mockItemRepo) Delete(ctx context.Context, db db.DBTX, id int64) error {
	return m.Called(ctx, db, id).Error(0)
}

func (m *mockItemRepo) AddComment(ctx context.Context, db db.DBTX, c *item.Comment) (int64, error) {
	args := m.Called(ctx, db, c)
	return args.Get(0).(int64), args.Error(1)
}

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) Create(ctx context.Context, db db.DBTX, b *booking.Booking) (int64, error) {
	args := m.Called(ctx, db, b)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, db db.DBTX, id int64, status booking.Status) error {
	return m.Called(ctx, db, id, status).Error(0)
}

type mockRequestRepo struct {
	mock.Mock
}

func (m *mockRequestRepo) Create(ctx context.Context, db db.DBTX, r *request.ItemRequest) (int64, error) {
	args := m.Called(ctx, db, r)
	return args.Get(0).(int64), args.Error(1)
}

type mockCommandReads struct {
	mock.Mock
}

func (m *mockCommandReads) UserByID(ctx context.Context, id int64) (*shared.UserSnapshot, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*shared.UserSnapshot), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCommandReads) ItemByID(ctx context.Context, id int64) (*shared.ItemSnapshot, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*shared.ItemSnapshot), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCommandReads) BookingByID(ctx context.Context, id int64) (*shared.BookingSnapshot, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*shared.BookingSnapshot), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCommandReads) RequestByID(ctx context.Context, id int64) (*shared.RequestSnapshot, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*shared.RequestSnapshot), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCommandReads) HasCompletedBooking(ctx context.Context, itemID, bookerID int64, now time.Time) (bool, error) {
	args := m.Called(ctx, itemID, bookerID, now)
	return args.Bool(0), args.Error(1)
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
