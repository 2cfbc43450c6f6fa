package writerepo

import (
	"context"

	"sharekit/internal/domain/booking"
	"sharekit/internal/infra"
	"sharekit/internal/infra/db"
	"sharekit/internal/pkg/pgconv"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (int64, error) {
	query := `
		INSERT INTO bookings (item_id, booker_id, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err := dbtx.QueryRow(ctx, query,
		b.ItemID, b.BookerID,
		pgconv.TimeToPgtype(b.Period.Start), pgconv.TimeToPgtype(b.Period.End),
		string(b.Status),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, id int64, status booking.Status) error {
	query := `UPDATE bookings SET status = $2 WHERE id = $1`

	if _, err := dbtx.Exec(ctx, query, id, string(status)); err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	return nil
}
