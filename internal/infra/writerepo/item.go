package writerepo

import (
	"context"

	"sharekit/internal/domain/item"
	"sharekit/internal/infra"
	"sharekit/internal/infra/db"
	"sharekit/internal/pkg/pgconv"
)

type ItemRepository struct{}

func NewItemRepository() *ItemRepository {
	return &ItemRepository{}
}

func (r *ItemRepository) Create(ctx context.Context, dbtx db.DBTX, it *item.Item) (int64, error) {
	query := `
		INSERT INTO items (name, description, available, owner_id, request_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err := dbtx.QueryRow(ctx, query,
		it.Name, it.Description, it.Available, it.OwnerID, pgconv.Int64PtrToPgtype(it.RequestID),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create item", err)
	}
	return id, nil
}

func (r *ItemRepository) Update(ctx context.Context, dbtx db.DBTX, it *item.Item) error {
	query := `UPDATE items SET name = $2, description = $3, available = $4 WHERE id = $1`

	if _, err := dbtx.Exec(ctx, query, it.ID, it.Name, it.Description, it.Available); err != nil {
		return infra.WrapRepoErr("failed to update item", err)
	}
	return nil
}

func (r *ItemRepository) Delete(ctx context.Context, dbtx db.DBTX, id int64) error {
	query := `DELETE FROM items WHERE id = $1`

	if _, err := dbtx.Exec(ctx, query, id); err != nil {
		return infra.WrapRepoErr("failed to delete item", err)
	}
	return nil
}

func (r *ItemRepository) AddComment(ctx context.Context, dbtx db.DBTX, c *item.Comment) (int64, error) {
	query := `
		INSERT INTO comments (text, item_id, author_id, created)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	err := dbtx.QueryRow(ctx, query,
		c.Text, c.ItemID, c.AuthorID, pgconv.TimeToPgtype(c.Created),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to add comment", err)
	}
	return id, nil
}
