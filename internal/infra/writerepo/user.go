package writerepo

import (
	"context"

	"sharekit/internal/domain/user"
	"sharekit/internal/infra"
	"sharekit/internal/infra/db"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, dbtx db.DBTX, u *user.User) (int64, error) {
	query := `INSERT INTO users (name, email) VALUES ($1, $2) RETURNING id`

	var id int64
	if err := dbtx.QueryRow(ctx, query, u.Name, u.Email).Scan(&id); err != nil {
		return 0, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) Update(ctx context.Context, dbtx db.DBTX, u *user.User) error {
	query := `UPDATE users SET name = $2, email = $3 WHERE id = $1`

	if _, err := dbtx.Exec(ctx, query, u.ID, u.Name, u.Email); err != nil {
		return infra.WrapRepoErr("failed to update user", err)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, dbtx db.DBTX, id int64) error {
	query := `DELETE FROM users WHERE id = $1`

	if _, err := dbtx.Exec(ctx, query, id); err != nil {
		return infra.WrapRepoErr("failed to delete user", err)
	}
	return nil
}
