package writerepo

import (
	"context"

	"sharekit/internal/domain/request"
	"sharekit/internal/infra"
	"sharekit/internal/infra/db"
	"sharekit/internal/pkg/pgconv"
)

type RequestRepository struct{}

func NewRequestRepository() *RequestRepository {
	return &RequestRepository{}
}

func (r *RequestRepository) Create(ctx context.Context, dbtx db.DBTX, req *request.ItemRequest) (int64, error) {
	query := `
		INSERT INTO requests (description, requestor_id, created)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id int64
	err := dbtx.QueryRow(ctx, query,
		req.Description, req.RequestorID, pgconv.TimeToPgtype(req.Created),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create request", err)
	}
	return id, nil
}
