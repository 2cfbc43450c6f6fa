package commands

import (
	"context"

	domitem "sharekit/internal/domain/item"
	"sharekit/internal/infra"
	"sharekit/internal/pkg/clock"
	"sharekit/internal/pkg/errs"
	"sharekit/internal/usecase/queries"
	"sharekit/internal/usecase/shared"
)

var (
	ErrItemNotFound       = errs.New("item not found")
	ErrRequestNotFound    = errs.New("item request not found")
	ErrNotItemOwner       = errs.New("only the owner may edit an item")
	ErrNoCompletedBooking = errs.New("user did not book this item")
)

type CreateItemRequest struct {
	Name        string
	Description string
	Available   bool
	RequestID   *int64
}

type UpdateItemRequest struct {
	Name        *string
	Description *string
	Available   *bool
}

type ItemCommands interface {
	Create(ctx context.Context, ownerID int64, req CreateItemRequest) (*queries.ItemView, error)
	Update(ctx context.Context, userID, itemID int64, req UpdateItemRequest) (*queries.ItemView, error)
	// Delete is idempotent; deleting an absent id is not an error.
	Delete(ctx context.Context, itemID int64) error
	AddComment(ctx context.Context, userID, itemID int64, text string) (*queries.CommentView, error)
}

type itemCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewItemCommands(uow shared.UnitOfWork, clk clock.Clock) ItemCommands {
	return &itemCommandsImpl{uow: uow, clock: clk}
}

func (c *itemCommandsImpl) Create(ctx context.Context, ownerID int64, req CreateItemRequest) (*queries.ItemView, error) {
	entity, err := domitem.New(ownerID, req.Name, req.Description, req.Available, req.RequestID)
	if err != nil {
		return nil, err
	}

	var created *queries.ItemView
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().UserByID(ctx, ownerID); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return derr
		}

		// A dangling request id is an explicit NotFound, never a blind attach.
		if req.RequestID != nil {
			if _, derr := tx.Reads().RequestByID(ctx, *req.RequestID); derr != nil {
				if infra.IsKind(derr, infra.KindNotFound) {
					return ErrRequestNotFound
				}
				return derr
			}
		}

		id, derr := tx.Items().Create(ctx, tx.DB(), entity)
		if derr != nil {
			return derr
		}
		created = itemViewFromEntity(id, entity)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (c *itemCommandsImpl) Update(ctx context.Context, userID, itemID int64, req UpdateItemRequest) (*queries.ItemView, error) {
	var updated *queries.ItemView
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().UserByID(ctx, userID); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return derr
		}

		snap, derr := tx.Reads().ItemByID(ctx, itemID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrItemNotFound
			}
			return derr
		}

		// Ownership is checked here uniformly, for every update path.
		if snap.OwnerID != userID {
			return ErrNotItemOwner
		}

		entity := &domitem.Item{
			ID:          snap.ID,
			Name:        snap.Name,
			Description: snap.Description,
			Available:   snap.Available,
			OwnerID:     snap.OwnerID,
			RequestID:   snap.RequestID,
		}
		if derr = entity.ApplyPatch(req.Name, req.Description, req.Available); derr != nil {
			return derr
		}

		if derr = tx.Items().Update(ctx, tx.DB(), entity); derr != nil {
			return derr
		}
		updated = itemViewFromEntity(entity.ID, entity)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *itemCommandsImpl) Delete(ctx context.Context, itemID int64) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Items().Delete(ctx, tx.DB(), itemID)
	})
}

func (c *itemCommandsImpl) AddComment(ctx context.Context, userID, itemID int64, text string) (*queries.CommentView, error) {
	// Eligibility is pure validation, so it runs on command reads without
	// opening a write transaction.
	reads := c.uow.CommandReads()

	author, err := reads.UserByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if _, err = reads.ItemByID(ctx, itemID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	now := c.clock.Now()
	completed, err := reads.HasCompletedBooking(ctx, itemID, userID, now)
	if err != nil {
		return nil, err
	}
	if !completed {
		return nil, ErrNoCompletedBooking
	}

	comment, err := domitem.NewComment(itemID, userID, text, now)
	if err != nil {
		return nil, err
	}

	var created *queries.CommentView
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Items().AddComment(ctx, tx.DB(), comment)
		if derr != nil {
			return derr
		}
		created = &queries.CommentView{
			ID:         id,
			Text:       comment.Text,
			AuthorName: author.Name,
			Created:    comment.Created,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func itemViewFromEntity(id int64, it *domitem.Item) *queries.ItemView {
	return &queries.ItemView{
		ID:          id,
		Name:        it.Name,
		Description: it.Description,
		Available:   it.Available,
		RequestID:   it.RequestID,
		Bookings:    []queries.BookingRef{},
		Comments:    []queries.CommentView{},
	}
}
