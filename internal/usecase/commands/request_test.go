//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	domrequest "sharekit/internal/domain/request"
	"sharekit/internal/infra"
	"sharekit/internal/pkg/clock"
	"sharekit/internal/usecase/commands"
	"sharekit/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRequestCommands_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)

	t.Run("stamps creation time from the clock", func(t *testing.T) {
		uow := newFakeUoW()
		uow.tx.reads.On("UserByID", ctx, int64(2)).Return(&shared.UserSnapshot{ID: 2}, nil)
		uow.tx.requests.On("Create", ctx, nil, mock.MatchedBy(func(r *domrequest.ItemRequest) bool {
			return r.RequestorID == 2 && r.Description == "Need a drill" && r.Created.Equal(now)
		})).Return(int64(5), nil)

		cmds := commands.NewRequestCommands(uow, clk)
		view, err := cmds.Create(ctx, 2, "Need a drill")
		require.NoError(t, err)

		assert.Equal(t, int64(5), view.ID)
		assert.Equal(t, now, view.Created)
		assert.NotNil(t, view.Items, "fresh request carries an empty item list")
	})

	t.Run("blank description", func(t *testing.T) {
		uow := newFakeUoW()

		cmds := commands.NewRequestCommands(uow, clk)
		_, err := cmds.Create(ctx, 2, "  ")
		require.ErrorIs(t, err, domrequest.ErrDescriptionRequired)
		uow.tx.requests.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown requestor", func(t *testing.T) {
		uow := newFakeUoW()
		uow.tx.reads.On("UserByID", ctx, int64(404)).
			Return(nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound))

		cmds := commands.NewRequestCommands(uow, clk)
		_, err := cmds.Create(ctx, 404, "Need a drill")
		require.ErrorIs(t, err, commands.ErrUserNotFound)
	})
}
