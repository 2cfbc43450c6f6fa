package readstore

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"sharekit/internal/infra"
	"sharekit/internal/infra/db"
	"sharekit/internal/pkg/pgconv"
	"sharekit/internal/usecase/queries"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

const bookingViewSelect = `
	SELECT b.id, b.start_date, b.end_date, b.status,
	       i.id, i.name, i.description, i.available, i.request_id, i.owner_id,
	       u.id, u.name, u.email
	FROM bookings b
	JOIN items i ON i.id = b.item_id
	JOIN users u ON u.id = b.booker_id`

func (r *BookingReadStore) FindViewByID(ctx context.Context, id int64) (*queries.BookingView, error) {
	query := bookingViewSelect + ` WHERE b.id = $1`

	view, err := scanBookingView(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return view, nil
}

func (r *BookingReadStore) ListByBooker(ctx context.Context, bookerID int64, filter queries.BookingFilter) ([]*queries.BookingView, error) {
	return r.list(ctx, "b.booker_id", bookerID, filter)
}

func (r *BookingReadStore) ListByOwner(ctx context.Context, ownerID int64, filter queries.BookingFilter) ([]*queries.BookingView, error) {
	return r.list(ctx, "i.owner_id", ownerID, filter)
}

// list appends the state predicate to the subject clause. Time-relative
// states compare against the single instant captured in the filter.
func (r *BookingReadStore) list(ctx context.Context, subjectColumn string, subjectID int64, filter queries.BookingFilter) ([]*queries.BookingView, error) {
	where := subjectColumn + " = $1"
	args := []any{subjectID}

	switch filter.State {
	case queries.StateCurrent:
		where += " AND b.start_date < $2 AND b.end_date > $2"
		args = append(args, filter.Now)
	case queries.StatePast:
		where += " AND b.end_date < $2"
		args = append(args, filter.Now)
	case queries.StateFuture:
		where += " AND b.start_date > $2"
		args = append(args, filter.Now)
	case queries.StateWaiting, queries.StateRejected:
		where += " AND b.status = $2"
		args = append(args, string(filter.State))
	case queries.StateAll:
		// no predicate
	}

	query := fmt.Sprintf("%s WHERE %s ORDER BY b.start_date DESC LIMIT $%d OFFSET $%d",
		bookingViewSelect, where, len(args)+1, len(args)+2)
	args = append(args, filter.Page.Limit(), filter.Page.Offset())

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	views := make([]*queries.BookingView, 0)
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking view", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking views", err)
	}
	return views, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var view queries.BookingView
	var requestID pgtype.Int8
	err := row.Scan(
		&view.ID, &view.Start, &view.End, &view.Status,
		&view.Item.ID, &view.Item.Name, &view.Item.Description, &view.Item.Available, &requestID, &view.ItemOwnerID,
		&view.Booker.ID, &view.Booker.Name, &view.Booker.Email,
	)
	if err != nil {
		return nil, err
	}
	view.Item.RequestID = pgconv.Int64PtrFromPgtype(requestID)
	return &view, nil
}
