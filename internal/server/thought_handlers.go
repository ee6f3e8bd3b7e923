package server

import (
	"murmur/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateThoughtRequest is the body for POST /api/thoughts. The username names
// the author; the thought is rejected if no such user exists.
type CreateThoughtRequest struct {
	ThoughtText string `json:"thought_text"`
	Username    string `json:"username"`
}

// UpdateThoughtRequest is the body for PUT /api/thoughts/:thoughtId.
type UpdateThoughtRequest struct {
	ThoughtText string `json:"thought_text"`
}

// CreateReactionRequest is the body for POST /api/thoughts/:thoughtId/reactions.
type CreateReactionRequest struct {
	ReactionBody string `json:"reaction_body"`
	Username     string `json:"username"`
}

const timestampDisplayLayout = "Jan 2, 2006 at 3:04 pm"

// decorateThought fills display-only fields gated behind feature flags.
func (s *Server) decorateThought(t *models.Thought) {
	if s.featureFlags.Enabled("formatted_timestamps", t.UserID) {
		t.CreatedAtFormatted = t.CreatedAt.Format(timestampDisplayLayout)
	}
}

// GetThoughts handles GET /api/thoughts
func (s *Server) GetThoughts(c *fiber.Ctx) error {
	ctx := c.UserContext()
	p := parsePagination(c, 20)

	thoughts, err := s.thoughtService.GetThoughts(ctx, p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	if thoughts == nil {
		thoughts = []models.Thought{}
	}
	for i := range thoughts {
		s.decorateThought(&thoughts[i])
	}
	return c.JSON(thoughts)
}

// GetThought handles GET /api/thoughts/:thoughtId
func (s *Server) GetThought(c *fiber.Ctx) error {
	ctx := c.UserContext()
	thoughtID, err := s.parseID(c, "thoughtId")
	if err != nil {
		return nil
	}

	thought, err := s.thoughtService.GetThought(ctx, thoughtID)
	if err != nil {
		return respondServiceError(c, err)
	}
	s.decorateThought(thought)
	return c.JSON(thought)
}

// CreateThought handles POST /api/thoughts
func (s *Server) CreateThought(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req CreateThoughtRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	thought, err := s.thoughtService.CreateThought(ctx, req.Username, req.ThoughtText)
	if err != nil {
		return respondServiceError(c, err)
	}
	s.decorateThought(thought)
	return c.Status(fiber.StatusCreated).JSON(thought)
}

// UpdateThought handles PUT /api/thoughts/:thoughtId
func (s *Server) UpdateThought(c *fiber.Ctx) error {
	ctx := c.UserContext()
	thoughtID, err := s.parseID(c, "thoughtId")
	if err != nil {
		return nil
	}

	var req UpdateThoughtRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	thought, err := s.thoughtService.UpdateThought(ctx, thoughtID, req.ThoughtText)
	if err != nil {
		return respondServiceError(c, err)
	}
	s.decorateThought(thought)
	return c.JSON(thought)
}

// DeleteThought handles DELETE /api/thoughts/:thoughtId
// The thought's embedded reactions are discarded with it.
func (s *Server) DeleteThought(c *fiber.Ctx) error {
	ctx := c.UserContext()
	thoughtID, err := s.parseID(c, "thoughtId")
	if err != nil {
		return nil
	}

	if err := s.thoughtService.DeleteThought(ctx, thoughtID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Thought deleted",
	})
}

// GetReactions handles GET /api/thoughts/:thoughtId/reactions
func (s *Server) GetReactions(c *fiber.Ctx) error {
	ctx := c.UserContext()
	thoughtID, err := s.parseID(c, "thoughtId")
	if err != nil {
		return nil
	}

	reactions, err := s.thoughtService.ListReactions(ctx, thoughtID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(reactions)
}

// AddReaction handles POST /api/thoughts/:thoughtId/reactions
func (s *Server) AddReaction(c *fiber.Ctx) error {
	ctx := c.UserContext()
	thoughtID, err := s.parseID(c, "thoughtId")
	if err != nil {
		return nil
	}

	var req CreateReactionRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	thought, err := s.thoughtService.AddReaction(ctx, thoughtID, req.Username, req.ReactionBody)
	if err != nil {
		return respondServiceError(c, err)
	}
	s.decorateThought(thought)
	return c.Status(fiber.StatusCreated).JSON(thought)
}

// RemoveReaction handles DELETE /api/thoughts/:thoughtId/reactions/:reactionId
// Removing a reaction that is already gone succeeds and returns the thought
// unchanged.
func (s *Server) RemoveReaction(c *fiber.Ctx) error {
	ctx := c.UserContext()
	thoughtID, err := s.parseID(c, "thoughtId")
	if err != nil {
		return nil
	}
	reactionID := c.Params("reactionId")
	if reactionID == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid reaction ID"))
	}

	thought, err := s.thoughtService.RemoveReaction(ctx, thoughtID, reactionID)
	if err != nil {
		return respondServiceError(c, err)
	}
	s.decorateThought(thought)
	return c.JSON(thought)
}
