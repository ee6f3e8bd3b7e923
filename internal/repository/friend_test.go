package repository

import (
	"context"
	"testing"

	"murmur/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTwoUsers(t *testing.T, users UserRepository) (*models.User, *models.User) {
	t.Helper()
	ctx := context.Background()
	a := &models.User{Username: "alpha", Email: "alpha@example.com"}
	b := &models.User{Username: "beta", Email: "beta@example.com"}
	require.NoError(t, users.Create(ctx, a))
	require.NoError(t, users.Create(ctx, b))
	return a, b
}

func TestFriendRepositoryAddEdgeIsSymmetric(t *testing.T) {
	db := openTestDB(t)
	users := NewUserRepository(db)
	friends := NewFriendRepository(db)
	ctx := context.Background()

	a, b := seedTwoUsers(t, users)
	require.NoError(t, friends.AddEdge(ctx, a.ID, b.ID))

	aFriends, err := friends.ListFriendIDs(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{b.ID}, aFriends)

	bFriends, err := friends.ListFriendIDs(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{a.ID}, bFriends)
}

func TestFriendRepositoryAddEdgeIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	users := NewUserRepository(db)
	friends := NewFriendRepository(db)
	ctx := context.Background()

	a, b := seedTwoUsers(t, users)
	require.NoError(t, friends.AddEdge(ctx, a.ID, b.ID))
	require.NoError(t, friends.AddEdge(ctx, a.ID, b.ID))

	n, err := friends.CountFriends(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestFriendRepositoryRemoveEdgeBothDirections(t *testing.T) {
	db := openTestDB(t)
	users := NewUserRepository(db)
	friends := NewFriendRepository(db)
	ctx := context.Background()

	a, b := seedTwoUsers(t, users)
	require.NoError(t, friends.AddEdge(ctx, a.ID, b.ID))
	require.NoError(t, friends.RemoveEdge(ctx, b.ID, a.ID))

	for _, id := range []uint{a.ID, b.ID} {
		ids, err := friends.ListFriendIDs(ctx, id)
		require.NoError(t, err)
		assert.Empty(t, ids)
	}
}

func TestFriendRepositoryRemoveEdgeMissingIsNoop(t *testing.T) {
	db := openTestDB(t)
	users := NewUserRepository(db)
	friends := NewFriendRepository(db)

	a, b := seedTwoUsers(t, users)
	assert.NoError(t, friends.RemoveEdge(context.Background(), a.ID, b.ID))
}

func TestFriendRepositoryListFriendsReturnsUsers(t *testing.T) {
	db := openTestDB(t)
	users := NewUserRepository(db)
	friends := NewFriendRepository(db)
	ctx := context.Background()

	a, b := seedTwoUsers(t, users)
	require.NoError(t, friends.AddEdge(ctx, a.ID, b.ID))

	got, err := friends.ListFriends(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "beta", got[0].Username)
}
