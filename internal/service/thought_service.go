package service

import (
	"context"
	"time"

	"murmur/internal/models"
	"murmur/internal/repository"
	"murmur/internal/validation"

	"github.com/google/uuid"
)

// ThoughtService provides thought and reaction business logic.
type ThoughtService struct {
	thoughtRepo repository.ThoughtRepository
	userRepo    repository.UserRepository
}

// NewThoughtService returns a new ThoughtService.
func NewThoughtService(thoughtRepo repository.ThoughtRepository, userRepo repository.UserRepository) *ThoughtService {
	return &ThoughtService{
		thoughtRepo: thoughtRepo,
		userRepo:    userRepo,
	}
}

// CreateThought validates and creates a thought. The author is resolved
// before anything is written, so a thought can never be created for a
// username that does not exist.
func (s *ThoughtService) CreateThought(ctx context.Context, username, text string) (*models.Thought, error) {
	username = validation.NormalizeUsername(username)
	if err := validation.ValidateUsername(username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateThoughtText(text); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, models.NewNotFoundByNameError("User", username)
	}

	thought := &models.Thought{
		ThoughtText: text,
		Username:    author.Username,
		UserID:      author.ID,
		Reactions:   []models.Reaction{},
	}
	if err := s.thoughtRepo.Create(ctx, thought); err != nil {
		return nil, err
	}
	return thought, nil
}

// GetThoughts returns a page of thoughts, newest first.
func (s *ThoughtService) GetThoughts(ctx context.Context, limit, offset int) ([]models.Thought, error) {
	return s.thoughtRepo.List(ctx, limit, offset)
}

// GetThought returns a single thought by ID.
func (s *ThoughtService) GetThought(ctx context.Context, id uint) (*models.Thought, error) {
	return s.thoughtRepo.GetByID(ctx, id)
}

// UpdateThought replaces the text of an existing thought. Authorship and
// reactions are immutable.
func (s *ThoughtService) UpdateThought(ctx context.Context, id uint, text string) (*models.Thought, error) {
	if err := validation.ValidateThoughtText(text); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	thought, err := s.thoughtRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	thought.ThoughtText = text
	if err := s.thoughtRepo.Update(ctx, thought); err != nil {
		return nil, err
	}
	thought.ReactionCount = len(thought.Reactions)
	return thought, nil
}

// DeleteThought removes a thought and, with it, its embedded reactions.
func (s *ThoughtService) DeleteThought(ctx context.Context, id uint) error {
	if _, err := s.thoughtRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.thoughtRepo.Delete(ctx, id)
}

// AddReaction appends a reaction to a thought. The reaction ID and timestamp
// are assigned here; clients never supply them.
func (s *ThoughtService) AddReaction(ctx context.Context, thoughtID uint, username, body string) (*models.Thought, error) {
	username = validation.NormalizeUsername(username)
	if err := validation.ValidateUsername(username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateReactionBody(body); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	thought, err := s.thoughtRepo.GetByID(ctx, thoughtID)
	if err != nil {
		return nil, err
	}

	thought.Reactions = append(thought.Reactions, models.Reaction{
		ReactionID:   uuid.NewString(),
		ReactionBody: body,
		Username:     username,
		CreatedAt:    time.Now().UTC(),
	})
	if err := s.thoughtRepo.Update(ctx, thought); err != nil {
		return nil, err
	}
	thought.ReactionCount = len(thought.Reactions)
	return thought, nil
}

// RemoveReaction deletes a reaction from a thought by reaction ID. Removing
// a reaction that is already gone is not an error; the thought is returned
// unchanged.
func (s *ThoughtService) RemoveReaction(ctx context.Context, thoughtID uint, reactionID string) (*models.Thought, error) {
	thought, err := s.thoughtRepo.GetByID(ctx, thoughtID)
	if err != nil {
		return nil, err
	}

	kept := thought.Reactions[:0]
	for _, r := range thought.Reactions {
		if r.ReactionID != reactionID {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(thought.Reactions) {
		return thought, nil
	}

	thought.Reactions = kept
	if err := s.thoughtRepo.Update(ctx, thought); err != nil {
		return nil, err
	}
	thought.ReactionCount = len(thought.Reactions)
	return thought, nil
}

// ListReactions returns the reactions of a thought.
func (s *ThoughtService) ListReactions(ctx context.Context, thoughtID uint) ([]models.Reaction, error) {
	thought, err := s.thoughtRepo.GetByID(ctx, thoughtID)
	if err != nil {
		return nil, err
	}
	return thought.Reactions, nil
}
