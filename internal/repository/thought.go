package repository

import (
	"context"
	"errors"

	"murmur/internal/cache"
	"murmur/internal/models"

	"gorm.io/gorm"
)

// ThoughtRepository defines persistence operations for thoughts.
type ThoughtRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Thought, error)
	List(ctx context.Context, limit, offset int) ([]models.Thought, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Thought, error)
	Create(ctx context.Context, thought *models.Thought) error
	Update(ctx context.Context, thought *models.Thought) error
	Delete(ctx context.Context, id uint) error
}

type thoughtRepository struct {
	db *gorm.DB
}

// NewThoughtRepository returns a new ThoughtRepository implementation.
func NewThoughtRepository(db *gorm.DB) ThoughtRepository {
	return &thoughtRepository{db: db}
}

// GetByID reads through the cache; misses load the row and populate it
// best-effort. Write paths invalidate the key, so hits never outlive an edit.
func (r *thoughtRepository) GetByID(ctx context.Context, id uint) (*models.Thought, error) {
	ctx, span := startSpan(ctx, "GetByID", "thoughts")
	defer span.End()

	var thought models.Thought
	err := cache.Aside(ctx, cache.ThoughtKey(id), &thought, cache.ThoughtTTL, func() error {
		if err := r.db.WithContext(ctx).First(&thought, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Thought", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &thought, nil
}

func (r *thoughtRepository) List(ctx context.Context, limit, offset int) ([]models.Thought, error) {
	ctx, span := startSpan(ctx, "List", "thoughts")
	defer span.End()

	var thoughts []models.Thought
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&thoughts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return thoughts, nil
}

func (r *thoughtRepository) ListByUser(ctx context.Context, userID uint) ([]models.Thought, error) {
	ctx, span := startSpan(ctx, "ListByUser", "thoughts")
	defer span.End()

	var thoughts []models.Thought
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&thoughts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return thoughts, nil
}

func (r *thoughtRepository) Create(ctx context.Context, thought *models.Thought) error {
	ctx, span := startSpan(ctx, "Create", "thoughts")
	defer span.End()

	if err := r.db.WithContext(ctx).Create(thought).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Update persists the full row, including the serialized reactions column.
func (r *thoughtRepository) Update(ctx context.Context, thought *models.Thought) error {
	ctx, span := startSpan(ctx, "Update", "thoughts")
	defer span.End()

	if err := r.db.WithContext(ctx).Save(thought).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateThought(ctx, thought.ID)
	return nil
}

func (r *thoughtRepository) Delete(ctx context.Context, id uint) error {
	ctx, span := startSpan(ctx, "Delete", "thoughts")
	defer span.End()

	if err := r.db.WithContext(ctx).Delete(&models.Thought{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateThought(ctx, id)
	return nil
}
