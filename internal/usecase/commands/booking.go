package commands

import (
	"context"
	"time"

	dombooking "sharekit/internal/domain/booking"
	"sharekit/internal/infra"
	"sharekit/internal/pkg/errs"
	"sharekit/internal/usecase/queries"
	"sharekit/internal/usecase/shared"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrItemUnavailable = errs.New("item is not available for booking")
)

type CreateBookingRequest struct {
	ItemID int64
	Start  time.Time
	End    time.Time
}

type BookingCommands interface {
	Create(ctx context.Context, bookerID int64, req CreateBookingRequest) (*queries.BookingView, error)
	// UpdateStatus approves or rejects a WAITING booking. Only the owner of
	// the booked item may call it; both outcomes are terminal.
	UpdateStatus(ctx context.Context, userID, bookingID int64, approve bool) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	uow          shared.UnitOfWork
	bookingReads queries.BookingReadStore
}

func NewBookingCommands(uow shared.UnitOfWork, bookingReads queries.BookingReadStore) BookingCommands {
	return &bookingCommandsImpl{uow: uow, bookingReads: bookingReads}
}

func (c *bookingCommandsImpl) Create(ctx context.Context, bookerID int64, req CreateBookingRequest) (*queries.BookingView, error) {
	var createdID int64
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().UserByID(ctx, bookerID); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return derr
		}

		itemSnap, derr := tx.Reads().ItemByID(ctx, req.ItemID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrItemNotFound
			}
			return derr
		}
		if !itemSnap.Available {
			return ErrItemUnavailable
		}

		// Calendar overlap with existing bookings is deliberately not
		// checked; every new booking starts out WAITING.
		entity := dombooking.New(req.ItemID, bookerID, dombooking.NewPeriod(req.Start, req.End))
		id, derr := tx.Bookings().Create(ctx, tx.DB(), entity)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Read-after-write: hand back the enriched view with nested DTOs.
	return c.bookingReads.FindViewByID(ctx, createdID)
}

func (c *bookingCommandsImpl) UpdateStatus(ctx context.Context, userID, bookingID int64, approve bool) (*queries.BookingView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().BookingByID(ctx, bookingID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return derr
		}

		itemSnap, derr := tx.Reads().ItemByID(ctx, snap.ItemID)
		if derr != nil {
			return derr
		}

		entity := dombooking.Reconstruct(
			snap.ID, snap.ItemID, snap.BookerID,
			dombooking.NewPeriod(snap.Start, snap.End),
			snap.Status,
		)
		if derr = entity.Decide(userID, itemSnap.OwnerID, approve); derr != nil {
			return derr
		}

		return tx.Bookings().UpdateStatus(ctx, tx.DB(), bookingID, entity.Status)
	})
	if err != nil {
		return nil, err
	}

	return c.bookingReads.FindViewByID(ctx, bookingID)
}
