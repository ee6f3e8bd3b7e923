package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

type cachedUser struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

func withTestRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	prev := client
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(prev) })
	return mr
}

func TestGetJSONMissReturnsFalse(t *testing.T) {
	withTestRedis(t)

	var out cachedUser
	assert.False(t, GetJSON(context.Background(), UserKey(42), &out))
}

func TestSetThenGetJSONRoundTrip(t *testing.T) {
	withTestRedis(t)
	ctx := context.Background()

	SetJSON(ctx, UserKey(7), cachedUser{ID: 7, Username: "lernantino"}, UserTTL)

	var out cachedUser
	assert.True(t, GetJSON(ctx, UserKey(7), &out))
	assert.Equal(t, uint(7), out.ID)
	assert.Equal(t, "lernantino", out.Username)
}

func TestSetJSONAppliesTTL(t *testing.T) {
	mr := withTestRedis(t)
	ctx := context.Background()

	SetJSON(ctx, ThoughtKey(3), cachedUser{ID: 3}, ThoughtTTL)
	assert.Equal(t, ThoughtTTL, mr.TTL(ThoughtKey(3)))

	mr.FastForward(ThoughtTTL + time.Second)

	var out cachedUser
	assert.False(t, GetJSON(ctx, ThoughtKey(3), &out))
}

func TestInvalidateUserClearsFriendsKey(t *testing.T) {
	withTestRedis(t)
	ctx := context.Background()

	SetJSON(ctx, UserKey(9), cachedUser{ID: 9}, UserTTL)
	SetJSON(ctx, FriendsKey(9), []uint{1, 2}, FriendsTTL)

	InvalidateUser(ctx, 9)

	var u cachedUser
	assert.False(t, GetJSON(ctx, UserKey(9), &u))
	var friends []uint
	assert.False(t, GetJSON(ctx, FriendsKey(9), &friends))
}

func TestGetJSONWithNilClientIsNoop(t *testing.T) {
	prev := client
	SetClient(nil)
	t.Cleanup(func() { SetClient(prev) })

	var out cachedUser
	assert.False(t, GetJSON(context.Background(), UserKey(1), &out))
	SetJSON(context.Background(), UserKey(1), out, UserTTL) // must not panic
}
