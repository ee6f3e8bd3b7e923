package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"murmur/internal/observability"
)

const (
	UserKeyPrefix    = "user:%d"
	ThoughtKeyPrefix = "thought:%d"
	FriendsKeyPrefix = "user:%d:friends"
)

const (
	UserTTL    = 5 * time.Minute
	ThoughtTTL = 2 * time.Minute
	FriendsTTL = 5 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func ThoughtKey(thoughtID uint) string {
	return fmt.Sprintf(ThoughtKeyPrefix, thoughtID)
}

func FriendsKey(userID uint) string {
	return fmt.Sprintf(FriendsKeyPrefix, userID)
}

// GetJSON reads key into dest. Returns false on miss, missing client, or
// decode failure, so callers always fall through to the database.
func GetJSON(ctx context.Context, key string, dest interface{}) bool {
	if client == nil {
		return false
	}
	raw, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false
	}
	return true
}

// SetJSON stores value under key with the given TTL. Failures are swallowed;
// the cache is strictly best-effort.
func SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if client == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	client.Set(ctx, key, raw, ttl)
}

// Aside implements the cache-aside read pattern: serve the cached value at
// key if present, otherwise run load (which must fill dest) and populate the
// cache best-effort. Errors from load are returned untouched and nothing is
// cached for them, so a NOT_FOUND never gets pinned.
func Aside(ctx context.Context, key string, dest interface{}, ttl time.Duration, load func() error) error {
	ctx, span := observability.GetTraceLayer().TraceRedisOperation(ctx, "get")
	hit := GetJSON(ctx, key, dest)
	span.End()
	if hit {
		return nil
	}

	if err := load(); err != nil {
		return err
	}

	ctx, span = observability.GetTraceLayer().TraceRedisOperation(ctx, "set")
	SetJSON(ctx, key, dest, ttl)
	span.End()
	return nil
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
	Invalidate(ctx, FriendsKey(userID))
}

func InvalidateThought(ctx context.Context, thoughtID uint) {
	Invalidate(ctx, ThoughtKey(thoughtID))
}
