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

type RequestReadStore struct {
	db db.DBTX
}

func NewRequestReadStore(dbtx db.DBTX) *RequestReadStore {
	return &RequestReadStore{db: dbtx}
}

func (r *RequestReadStore) FindByID(ctx context.Context, id int64) (*queries.RequestView, error) {
	query := `SELECT id, description, created FROM requests WHERE id = $1`

	var view queries.RequestView
	err := r.db.QueryRow(ctx, query, id).Scan(&view.ID, &view.Description, &view.Created)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find request by ID", err)
	}
	return &view, nil
}

func (r *RequestReadStore) FindByRequestor(ctx context.Context, requestorID int64) ([]*queries.RequestView, error) {
	query := `
		SELECT id, description, created
		FROM requests
		WHERE requestor_id = $1
		ORDER BY created DESC`

	rows, err := r.db.Query(ctx, query, requestorID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list requests by requestor", err)
	}
	defer rows.Close()
	return collectRequestViews(rows)
}

func (r *RequestReadStore) FindOthers(ctx context.Context, requestorID int64, page queries.Page) ([]*queries.RequestView, error) {
	query := `
		SELECT id, description, created
		FROM requests
		WHERE requestor_id <> $1
		ORDER BY created DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, requestorID, page.Limit(), page.Offset())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list other requests", err)
	}
	defer rows.Close()
	return collectRequestViews(rows)
}

func (r *RequestReadStore) FulfillingItems(ctx context.Context, requestID int64) ([]queries.ItemRef, error) {
	query := `
		SELECT id, name, description, available, request_id
		FROM items
		WHERE request_id = $1
		ORDER BY id`

	rows, err := r.db.Query(ctx, query, requestID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list fulfilling items", err)
	}
	defer rows.Close()

	refs := make([]queries.ItemRef, 0)
	for rows.Next() {
		var ref queries.ItemRef
		var reqID pgtype.Int8
		if err := rows.Scan(&ref.ID, &ref.Name, &ref.Description, &ref.Available, &reqID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan fulfilling item", err)
		}
		ref.RequestID = pgconv.Int64PtrFromPgtype(reqID)
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate fulfilling items", err)
	}
	return refs, nil
}

func collectRequestViews(rows pgx.Rows) ([]*queries.RequestView, error) {
	views := make([]*queries.RequestView, 0)
	for rows.Next() {
		var view queries.RequestView
		if err := rows.Scan(&view.ID, &view.Description, &view.Created); err != nil {
			return nil, infra.WrapRepoErr("failed to scan request view", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate request views", err)
	}
	return views, nil
}
