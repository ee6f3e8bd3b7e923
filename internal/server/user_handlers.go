package server

import (
	"murmur/internal/middleware"
	"murmur/internal/models"
	"murmur/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateUserRequest is the body for POST /api/users.
type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UpdateUserRequest is the body for PUT /api/users/:userId.
// Absent fields are left unchanged.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
}

// GetUsers handles GET /api/users
func (s *Server) GetUsers(c *fiber.Ctx) error {
	ctx := c.UserContext()
	p := parsePagination(c, 20)

	users, err := s.userService.GetUsers(ctx, p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	if users == nil {
		users = []models.User{}
	}
	return c.JSON(users)
}

// GetUser handles GET /api/users/:userId
func (s *Server) GetUser(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetUser(ctx, userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}

// CreateUser handles POST /api/users
func (s *Server) CreateUser(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.CreateUser(ctx, req.Username, req.Email)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// UpdateUser handles PUT /api/users/:userId
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateUser(ctx, userID, service.UpdateUserInput{
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}

// DeleteUser handles DELETE /api/users/:userId
// Deleting a user also deletes their thoughts and friend links.
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	if err := s.userService.DeleteUser(ctx, userID); err != nil {
		return respondServiceError(c, err)
	}
	middleware.IntegrityCascades.WithLabelValues("delete_user").Inc()

	return c.JSON(fiber.Map{
		"message": "User and associated thoughts deleted",
	})
}
