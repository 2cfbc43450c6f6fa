package commands

import (
	"context"

	domrequest "sharekit/internal/domain/request"
	"sharekit/internal/infra"
	"sharekit/internal/pkg/clock"
	"sharekit/internal/usecase/queries"
	"sharekit/internal/usecase/shared"
)

type RequestCommands interface {
	Create(ctx context.Context, userID int64, description string) (*queries.RequestView, error)
}

type requestCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRequestCommands(uow shared.UnitOfWork, clk clock.Clock) RequestCommands {
	return &requestCommandsImpl{uow: uow, clock: clk}
}

func (c *requestCommandsImpl) Create(ctx context.Context, userID int64, description string) (*queries.RequestView, error) {
	entity, err := domrequest.New(userID, description, c.clock.Now())
	if err != nil {
		return nil, err
	}

	var created *queries.RequestView
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().UserByID(ctx, userID); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return derr
		}

		id, derr := tx.Requests().Create(ctx, tx.DB(), entity)
		if derr != nil {
			return derr
		}
		created = &queries.RequestView{
			ID:          id,
			Description: entity.Description,
			Created:     entity.Created,
			Items:       []queries.ItemRef{},
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
