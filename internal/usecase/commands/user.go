package commands

import (
	"context"

	domuser "sharekit/internal/domain/user"
	"sharekit/internal/infra"
	"sharekit/internal/pkg/errs"
	"sharekit/internal/usecase/queries"
	"sharekit/internal/usecase/shared"
)

var (
	ErrUserNotFound = errs.New("user not found")
	ErrEmailTaken   = errs.New("email is already in use")
)

type CreateUserRequest struct {
	Name  string
	Email string
}

type UpdateUserRequest struct {
	Name  *string
	Email *string
}

type UserCommands interface {
	Create(ctx context.Context, req CreateUserRequest) (*queries.UserView, error)
	Update(ctx context.Context, userID int64, req UpdateUserRequest) (*queries.UserView, error)
	// Delete is idempotent; deleting an absent id is not an error.
	Delete(ctx context.Context, userID int64) error
}

type userCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewUserCommands(uow shared.UnitOfWork) UserCommands {
	return &userCommandsImpl{uow: uow}
}

func (c *userCommandsImpl) Create(ctx context.Context, req CreateUserRequest) (*queries.UserView, error) {
	entity, err := domuser.New(req.Name, req.Email)
	if err != nil {
		return nil, err
	}

	var created *queries.UserView
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Users().Create(ctx, tx.DB(), entity)
		if derr != nil {
			// Uniqueness lives in the storage constraint, not app code.
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrEmailTaken
			}
			return derr
		}
		created = &queries.UserView{ID: id, Name: entity.Name, Email: entity.Email}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (c *userCommandsImpl) Update(ctx context.Context, userID int64, req UpdateUserRequest) (*queries.UserView, error) {
	var updated *queries.UserView
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().UserByID(ctx, userID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return derr
		}

		entity := &domuser.User{ID: snap.ID, Name: snap.Name, Email: snap.Email}
		if derr = entity.ApplyPatch(req.Name, req.Email); derr != nil {
			return derr
		}

		if derr = tx.Users().Update(ctx, tx.DB(), entity); derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrEmailTaken
			}
			return derr
		}
		updated = &queries.UserView{ID: entity.ID, Name: entity.Name, Email: entity.Email}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *userCommandsImpl) Delete(ctx context.Context, userID int64) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Delete(ctx, tx.DB(), userID)
	})
}
