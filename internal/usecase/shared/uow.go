package shared

import (
	"context"
	"time"

	"sharekit/internal/domain/booking"
	"sharekit/internal/domain/item"
	"sharekit/internal/domain/request"
	"sharekit/internal/domain/user"
	"sharekit/internal/infra/db"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Users() UserRepository
	Items() ItemRepository
	Bookings() BookingRepository
	Requests() RequestRepository
	Reads() CommandReads
	DB() db.DBTX
}

// Write-side snapshots keep commands off the read-side view types.
type UserSnapshot struct {
	ID    int64
	Name  string
	Email string
}

type ItemSnapshot struct {
	ID          int64
	Name        string
	Description string
	Available   bool
	OwnerID     int64
	RequestID   *int64
}

type BookingSnapshot struct {
	ID       int64
	ItemID   int64
	BookerID int64
	Start    time.Time
	End      time.Time
	Status   booking.Status
}

type RequestSnapshot struct {
	ID          int64
	RequestorID int64
}

type CommandReads interface {
	UserByID(ctx context.Context, id int64) (*UserSnapshot, error)
	ItemByID(ctx context.Context, id int64) (*ItemSnapshot, error)
	BookingByID(ctx context.Context, id int64) (*BookingSnapshot, error)
	RequestByID(ctx context.Context, id int64) (*RequestSnapshot, error)
	// HasCompletedBooking reports whether bookerID has a booking on itemID
	// whose end date is not after now (proof-of-use check for comments).
	HasCompletedBooking(ctx context.Context, itemID, bookerID int64, now time.Time) (bool, error)
}

type UserRepository interface {
	Create(ctx context.Context, db db.DBTX, u *user.User) (int64, error)
	Update(ctx context.Context, db db.DBTX, u *user.User) error
	Delete(ctx context.Context, db db.DBTX, id int64) error
}

type ItemRepository interface {
	Create(ctx context.Context, db db.DBTX, it *item.Item) (int64, error)
	Update(ctx context.Context, db db.DBTX, it *item.Item) error
	Delete(ctx context.Context, db db.DBTX, id int64) error
	AddComment(ctx context.Context, db db.DBTX, c *item.Comment) (int64, error)
}

type BookingRepository interface {
	Create(ctx context.Context, db db.DBTX, b *booking.Booking) (int64, error)
	UpdateStatus(ctx context.Context, db db.DBTX, id int64, status booking.Status) error
}

type RequestRepository interface {
	Create(ctx context.Context, db db.DBTX, r *request.ItemRequest) (int64, error)
}
