//go:build unit

package commands_test

import (
	"context"
	"testing"

	"sharekit/internal/domain/user"
	"sharekit/internal/infra"
	"sharekit/internal/usecase/commands"
	"sharekit/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserCommands_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("persists and returns the created view", func(t *testing.T) {
		uow := newFakeUoW()
		uow.tx.users.On("Create", ctx, nil, mock.MatchedBy(func(u *user.User) bool {
			return u.Name == "alice" && u.Email == "alice@example.com"
		})).Return(int64(1), nil)

		cmds := commands.NewUserCommands(uow)
		view, err := cmds.Create(ctx, commands.CreateUserRequest{Name: "alice", Email: "alice@example.com"})
		require.NoError(t, err)

		assert.Equal(t, int64(1), view.ID)
		assert.Equal(t, "alice", view.Name)
		assert.Equal(t, "alice@example.com", view.Email)
	})

	t.Run("duplicate email maps to the conflict sentinel", func(t *testing.T) {
		uow := newFakeUoW()
		uow.tx.users.On("Create", ctx, nil, mock.Anything).
			Return(int64(0), infra.WrapRepoErr("insert user", nil, infra.KindDuplicateKey))

		cmds := commands.NewUserCommands(uow)
		_, err := cmds.Create(ctx, commands.CreateUserRequest{Name: "alice", Email: "alice@example.com"})
		require.ErrorIs(t, err, commands.ErrEmailTaken)
	})

	t.Run("invalid input fails before any write", func(t *testing.T) {
		uow := newFakeUoW()

		cmds := commands.NewUserCommands(uow)
		_, err := cmds.Create(ctx, commands.CreateUserRequest{Name: "", Email: "alice@example.com"})
		require.ErrorIs(t, err, user.ErrNameRequired)
		uow.tx.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUserCommands_Update(t *testing.T) {
	ctx := context.Background()
	snap := &shared.UserSnapshot{ID: 1, Name: "alice", Email: "alice@example.com"}
	str := func(s string) *string { return &s }

	t.Run("patches name only", func(t *testing.T) {
		uow := newFakeUoW()
		uow.tx.reads.On("UserByID", ctx, int64(1)).Return(snap, nil)
		uow.tx.users.On("Update", ctx, nil, mock.MatchedBy(func(u *user.User) bool {
			return u.ID == 1 && u.Name == "alicia" && u.Email == "alice@example.com"
		})).Return(nil)

		cmds := commands.NewUserCommands(uow)
		view, err := cmds.Update(ctx, 1, commands.UpdateUserRequest{Name: str("alicia")})
		require.NoError(t, err)
		assert.Equal(t, "alicia", view.Name)
		assert.Equal(t, "alice@example.com", view.Email)
	})

	t.Run("unknown user", func(t *testing.T) {
		uow := newFakeUoW()
		uow.tx.reads.On("UserByID", ctx, int64(404)).
			Return(nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound))

		cmds := commands.NewUserCommands(uow)
		_, err := cmds.Update(ctx, 404, commands.UpdateUserRequest{Name: str("alicia")})
		require.ErrorIs(t, err, commands.ErrUserNotFound)
	})

	t.Run("duplicate email on update", func(t *testing.T) {
		uow := newFakeUoW()
		uow.tx.reads.On("UserByID", ctx, int64(1)).Return(snap, nil)
		uow.tx.users.On("Update", ctx, nil, mock.Anything).
			Return(infra.WrapRepoErr("update user", nil, infra.KindDuplicateKey))

		cmds := commands.NewUserCommands(uow)
		_, err := cmds.Update(ctx, 1, commands.UpdateUserRequest{Email: str("taken@example.com")})
		require.ErrorIs(t, err, commands.ErrEmailTaken)
	})
}

func TestUserCommands_Delete(t *testing.T) {
	ctx := context.Background()

	uow := newFakeUoW()
	uow.tx.users.On("Delete", ctx, nil, int64(1)).Return(nil)

	cmds := commands.NewUserCommands(uow)
	require.NoError(t, cmds.Delete(ctx, 1))
	uow.tx.users.AssertExpectations(t)
}
