//go:build unit

package item_test

import (
	"testing"
	"time"

	"sharekit/internal/domain/item"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	requestID := int64(5)

	t.Run("valid item", func(t *testing.T) {
		actual, err := item.New(1, "Drill", "Cordless drill", true, &requestID)
		require.NoError(t, err)

		assert.Equal(t, int64(1), actual.OwnerID)
		assert.True(t, actual.Available)
		require.NotNil(t, actual.RequestID)
		assert.Equal(t, requestID, *actual.RequestID)
	})

	t.Run("blank name", func(t *testing.T) {
		_, err := item.New(1, "  ", "Cordless drill", true, nil)
		require.ErrorIs(t, err, item.ErrNameRequired)
	})

	t.Run("blank description", func(t *testing.T) {
		_, err := item.New(1, "Drill", "", true, nil)
		require.ErrorIs(t, err, item.ErrDescriptionRequired)
	})
}

func TestApplyPatch(t *testing.T) {
	str := func(s string) *string { return &s }
	boolPtr := func(b bool) *bool { return &b }

	t.Run("patches only provided fields", func(t *testing.T) {
		i := &item.Item{ID: 3, Name: "Drill", Description: "Cordless drill", Available: true, OwnerID: 1}

		require.NoError(t, i.ApplyPatch(nil, nil, boolPtr(false)))
		assert.Equal(t, "Drill", i.Name)
		assert.False(t, i.Available)

		require.NoError(t, i.ApplyPatch(str("Hammer"), str("Claw hammer"), nil))
		assert.Equal(t, "Hammer", i.Name)
		assert.Equal(t, "Claw hammer", i.Description)
		assert.False(t, i.Available)
	})

	t.Run("rejects blank patch values", func(t *testing.T) {
		i := &item.Item{ID: 3, Name: "Drill", Description: "Cordless drill", Available: true, OwnerID: 1}

		require.ErrorIs(t, i.ApplyPatch(str("  "), nil, nil), item.ErrNameRequired)
		require.ErrorIs(t, i.ApplyPatch(nil, str(""), nil), item.ErrDescriptionRequired)
		assert.Equal(t, "Drill", i.Name)
	})
}

func TestIsOwnedBy(t *testing.T) {
	i := &item.Item{ID: 3, OwnerID: 1}

	assert.True(t, i.IsOwnedBy(1))
	assert.False(t, i.IsOwnedBy(2))
}

func TestNewComment(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("valid comment", func(t *testing.T) {
		actual, err := item.NewComment(3, 2, "Great drill", now)
		require.NoError(t, err)

		assert.Equal(t, int64(3), actual.ItemID)
		assert.Equal(t, int64(2), actual.AuthorID)
		assert.Equal(t, now, actual.Created)
	})

	t.Run("blank text", func(t *testing.T) {
		_, err := item.NewComment(3, 2, "   ", now)
		require.ErrorIs(t, err, item.ErrCommentTextRequired)
	})
}
