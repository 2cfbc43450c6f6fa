package booking

import (
	"time"

	"sharekit/internal/pkg/errs"
)

var (
	ErrAlreadyDecided = errs.New("booking has already been decided")
	ErrNotOwner       = errs.New("only the item owner may decide a booking")
)

type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Period is the reserved time window. start < end is checked at the DTO
// validation boundary (gateway), not here; the ledger stores whatever the
// server was handed.
type Period struct {
	Start time.Time
	End   time.Time
}

func NewPeriod(start, end time.Time) Period {
	return Period{Start: start, End: end}
}

func (p Period) Duration() time.Duration {
	return p.End.Sub(p.Start)
}

// CompletedBy reports whether the window fully precedes now. Comment
// eligibility hangs off this.
func (p Period) CompletedBy(now time.Time) bool {
	return !p.End.After(now)
}

// Booking is an independent lifecycle record: it references an item and a
// booker but is owned by neither. There is no deletion path; decided
// bookings are retained indefinitely.
type Booking struct {
	ID       int64
	ItemID   int64
	BookerID int64
	Period   Period
	Status   Status
}

func New(itemID, bookerID int64, period Period) *Booking {
	return &Booking{
		ItemID:   itemID,
		BookerID: bookerID,
		Period:   period,
		Status:   StatusWaiting,
	}
}

func Reconstruct(id, itemID, bookerID int64, period Period, status Status) *Booking {
	return &Booking{
		ID:       id,
		ItemID:   itemID,
		BookerID: bookerID,
		Period:   period,
		Status:   status,
	}
}

// Decide moves WAITING to APPROVED or REJECTED. Both outcomes are terminal.
// actorID must be the owner of the booked item.
func (b *Booking) Decide(actorID, itemOwnerID int64, approve bool) error {
	if actorID != itemOwnerID {
		return ErrNotOwner
	}
	if b.Status != StatusWaiting {
		return ErrAlreadyDecided
	}
	if approve {
		b.Status = StatusApproved
	} else {
		b.Status = StatusRejected
	}
	return nil
}

// VisibleTo limits reads to the two participants of the booking.
func (b *Booking) VisibleTo(userID, itemOwnerID int64) bool {
	return b.BookerID == userID || itemOwnerID == userID
}
