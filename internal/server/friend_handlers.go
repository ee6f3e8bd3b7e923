package server

import (
	"murmur/internal/middleware"
	"murmur/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetFriends handles GET /api/users/:userId/friends
func (s *Server) GetFriends(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	friends, err := s.friendService.GetFriends(ctx, userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	if friends == nil {
		friends = []models.User{}
	}
	return c.JSON(friends)
}

// AddFriend handles POST /api/users/:userId/friends/:friendId
// Friendship is mutual: the link appears on both users' friend lists.
// Re-adding an existing friend is a no-op.
func (s *Server) AddFriend(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}
	friendID, err := s.parseID(c, "friendId")
	if err != nil {
		return nil
	}

	user, err := s.friendService.AddFriend(ctx, userID, friendID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}

// DeleteFriend handles DELETE /api/users/:userId/friends/:friendId
// The link is removed from both users' friend lists; removing an absent
// friend is a no-op.
func (s *Server) DeleteFriend(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}
	friendID, err := s.parseID(c, "friendId")
	if err != nil {
		return nil
	}

	user, err := s.friendService.DeleteFriend(ctx, userID, friendID)
	if err != nil {
		return respondServiceError(c, err)
	}
	middleware.IntegrityCascades.WithLabelValues("remove_friend").Inc()
	return c.JSON(user)
}
