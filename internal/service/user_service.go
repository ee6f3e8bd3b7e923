// Package service contains the business logic of the application.
package service

import (
	"context"

	"murmur/internal/models"
	"murmur/internal/observability"
	"murmur/internal/repository"
	"murmur/internal/validation"

	"go.opentelemetry.io/otel/attribute"
)

// UserService provides user account business logic.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// UpdateUserInput carries optional user fields; nil means "leave unchanged".
type UpdateUserInput struct {
	Username *string
	Email    *string
}

// CreateUser validates and creates a new user.
func (s *UserService) CreateUser(ctx context.Context, username, email string) (*models.User, error) {
	username = validation.NormalizeUsername(username)
	if err := validation.ValidateUsername(username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	// Pre-flight duplicate check for a precise message; the unique constraint
	// still backstops concurrent creates.
	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("email already registered")
	}

	user := &models.User{Username: username, Email: email}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUsers returns a page of users, each with its friend list populated.
func (s *UserService) GetUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.userRepo.List(ctx, limit, offset)
}

// GetUser returns a single user with recent thoughts and friends attached.
func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByIDWithThoughts(ctx, id, 0)
}

// UpdateUser applies the provided fields to an existing user.
func (s *UserService) UpdateUser(ctx context.Context, id uint, input UpdateUserInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Username != nil {
		username := validation.NormalizeUsername(*input.Username)
		if err := validation.ValidateUsername(username); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Username = username
	}
	if input.Email != nil {
		if err := validation.ValidateEmail(*input.Email); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Email = *input.Email
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes a user and everything the user owns: their thoughts and
// all friend links naming them. Reactions the user left on other people's
// thoughts stay behind; they belong to those thoughts.
func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	span, ctx := observability.NewSpan(ctx, "user.delete_cascade")
	defer span.End()
	span.AddAttributes(attribute.Int("user.id", int(id)))

	if err := s.userRepo.DeleteWithOwned(ctx, id); err != nil {
		span.SetError(err)
		return err
	}
	return nil
}
