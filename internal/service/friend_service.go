package service

import (
	"context"

	"murmur/internal/models"
	"murmur/internal/observability"
	"murmur/internal/repository"

	"go.opentelemetry.io/otel/attribute"
)

// FriendService provides friend list business logic. Friendship is
// symmetric: adding or removing a friend always affects both users' lists.
type FriendService struct {
	friendRepo repository.FriendRepository
	userRepo   repository.UserRepository
}

// NewFriendService returns a new FriendService.
func NewFriendService(friendRepo repository.FriendRepository, userRepo repository.UserRepository) *FriendService {
	return &FriendService{
		friendRepo: friendRepo,
		userRepo:   userRepo,
	}
}

// AddFriend links two existing users. Re-adding an existing friend is a
// no-op. Returns the requesting user with the refreshed friend list.
func (s *FriendService) AddFriend(ctx context.Context, userID, friendID uint) (*models.User, error) {
	if userID == friendID {
		return nil, models.NewValidationError("cannot add yourself as a friend")
	}

	span, ctx := observability.NewSpan(ctx, "friend.link")
	defer span.End()
	span.AddAttributes(
		attribute.Int("user.id", int(userID)),
		attribute.Int("friend.id", int(friendID)),
	)

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		span.SetError(err)
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, friendID); err != nil {
		span.SetError(err)
		return nil, err
	}

	if err := s.friendRepo.AddEdge(ctx, userID, friendID); err != nil {
		span.SetError(err)
		return nil, err
	}
	return s.userRepo.GetByID(ctx, userID)
}

// DeleteFriend unlinks two users in both directions. Removing a friend that
// is not on the list is a no-op. Returns the requesting user with the
// refreshed friend list.
func (s *FriendService) DeleteFriend(ctx context.Context, userID, friendID uint) (*models.User, error) {
	span, ctx := observability.NewSpan(ctx, "friend.unlink")
	defer span.End()
	span.AddAttributes(
		attribute.Int("user.id", int(userID)),
		attribute.Int("friend.id", int(friendID)),
	)

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		span.SetError(err)
		return nil, err
	}

	if err := s.friendRepo.RemoveEdge(ctx, userID, friendID); err != nil {
		span.SetError(err)
		return nil, err
	}
	return s.userRepo.GetByID(ctx, userID)
}

// GetFriends returns the full user records of a user's friends.
func (s *FriendService) GetFriends(ctx context.Context, userID uint) ([]models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.friendRepo.ListFriends(ctx, userID)
}
