package readstore

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"sharekit/internal/infra"
	"sharekit/internal/infra/db"
	"sharekit/internal/pkg/pgconv"
	"sharekit/internal/usecase/queries"
)

type ItemReadStore struct {
	db db.DBTX
}

func NewItemReadStore(dbtx db.DBTX) *ItemReadStore {
	return &ItemReadStore{db: dbtx}
}

const itemColumns = `id, name, description, available, owner_id, request_id`

func (r *ItemReadStore) FindByID(ctx context.Context, id int64) (*queries.ItemRow, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`

	row, err := scanItemRow(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item by ID", err)
	}
	return row, nil
}

func (r *ItemReadStore) FindByOwner(ctx context.Context, ownerID int64) ([]*queries.ItemRow, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE owner_id = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items by owner", err)
	}
	defer rows.Close()
	return collectItemRows(rows)
}

func (r *ItemReadStore) SearchAvailable(ctx context.Context, text string) ([]*queries.ItemRow, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM items
		WHERE available = TRUE
		  AND (name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
		ORDER BY id`

	rows, err := r.db.Query(ctx, query, text)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search items", err)
	}
	defer rows.Close()
	return collectItemRows(rows)
}

func (r *ItemReadStore) BookingsForItem(ctx context.Context, itemID int64) ([]queries.BookingRef, error) {
	const query = `
		SELECT id, item_id, start_date, end_date
		FROM bookings
		WHERE item_id = $1
		ORDER BY start_date`

	rows, err := r.db.Query(ctx, query, itemID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings for item", err)
	}
	defer rows.Close()

	refs := make([]queries.BookingRef, 0)
	for rows.Next() {
		var ref queries.BookingRef
		if err := rows.Scan(&ref.ID, &ref.ItemID, &ref.Start, &ref.End); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return refs, nil
}

func (r *ItemReadStore) CommentsForItem(ctx context.Context, itemID int64) ([]queries.CommentView, error) {
	const query = `
		SELECT c.id, c.text, u.name, c.created
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.item_id = $1
		ORDER BY c.created`

	rows, err := r.db.Query(ctx, query, itemID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list comments for item", err)
	}
	defer rows.Close()

	views := make([]queries.CommentView, 0)
	for rows.Next() {
		var view queries.CommentView
		if err := rows.Scan(&view.ID, &view.Text, &view.AuthorName, &view.Created); err != nil {
			return nil, infra.WrapRepoErr("failed to scan comment row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate comment rows", err)
	}
	return views, nil
}

type itemScanner interface {
	Scan(dest ...any) error
}

func scanItemRow(s itemScanner) (*queries.ItemRow, error) {
	var row queries.ItemRow
	var requestID pgtype.Int8
	if err := s.Scan(&row.ID, &row.Name, &row.Description, &row.Available, &row.OwnerID, &requestID); err != nil {
		return nil, err
	}
	row.RequestID = pgconv.Int64PtrFromPgtype(requestID)
	return &row, nil
}

func collectItemRows(rows pgx.Rows) ([]*queries.ItemRow, error) {
	result := make([]*queries.ItemRow, 0)
	for rows.Next() {
		row, err := scanItemRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan item row", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate item rows", err)
	}
	return result, nil
}
