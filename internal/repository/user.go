// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"
	"strings"

	"murmur/internal/cache"
	"murmur/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByIDWithThoughts(ctx context.Context, id uint, limit int) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	DeleteWithOwned(ctx context.Context, id uint) error
	List(ctx context.Context, limit, offset int) ([]models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// loadFriendIDs fills the derived friend fields on a user from its outgoing
// friend edges. Edges are stored in both directions so one side suffices.
func (r *userRepository) loadFriendIDs(ctx context.Context, user *models.User) error {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.FriendEdge{}).
		Where("user_id = ?", user.ID).
		Order("friend_id").
		Pluck("friend_id", &ids).Error; err != nil {
		return models.NewInternalError(err)
	}
	if ids == nil {
		ids = []uint{}
	}
	user.FriendIDs = ids
	user.FriendCount = len(ids)
	return nil
}

// GetByID reads through the cache: a hit skips the database entirely, a miss
// loads the row plus friend list and populates the cache best-effort.
func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	ctx, span := startSpan(ctx, "GetByID", "users")
	defer span.End()

	var user models.User
	err := cache.Aside(ctx, cache.UserKey(id), &user, cache.UserTTL, func() error {
		if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("User", id)
			}
			return models.NewInternalError(err)
		}
		return r.loadFriendIDs(ctx, &user)
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByIDWithThoughts(ctx context.Context, id uint, limit int) (*models.User, error) {
	ctx, span := startSpan(ctx, "GetByIDWithThoughts", "users")
	defer span.End()

	var user models.User
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	if err := r.db.WithContext(ctx).
		Preload("Thoughts", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC").Limit(limit)
		}).
		First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User", id)
		}
		return nil, models.NewInternalError(err)
	}
	if err := r.loadFriendIDs(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, span := startSpan(ctx, "GetByEmail", "users")
	defer span.End()

	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	ctx, span := startSpan(ctx, "GetByUsername", "users")
	defer span.End()

	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	ctx, span := startSpan(ctx, "Create", "users")
	defer span.End()

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("username or email already taken")
		}
		return models.NewInternalError(err)
	}
	user.FriendIDs = []uint{}
	return nil
}

// isUniqueConstraintError checks if a DB error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	// PostgreSQL unique violation SQLSTATE 23505; SQLite reports "UNIQUE constraint failed"
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505")
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	ctx, span := startSpan(ctx, "Update", "users")
	defer span.End()

	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("username or email already taken")
		}
		return models.NewInternalError(err)
	}
	cache.InvalidateUser(ctx, user.ID)
	return nil
}

// DeleteWithOwned removes a user together with everything the user owns:
// all of their thoughts and every friend edge touching them, in one
// transaction so no orphaned rows survive a partial failure.
func (r *userRepository) DeleteWithOwned(ctx context.Context, id uint) error {
	ctx, span := startSpan(ctx, "DeleteWithOwned", "users")
	defer span.End()

	var friendIDs, thoughtIDs []uint
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("User", id)
			}
			return models.NewInternalError(err)
		}
		// Collect what the cascade touches so stale cache entries can be
		// dropped after commit.
		if err := tx.Model(&models.FriendEdge{}).
			Where("friend_id = ?", id).
			Pluck("user_id", &friendIDs).Error; err != nil {
			return models.NewInternalError(err)
		}
		if err := tx.Model(&models.Thought{}).
			Where("user_id = ?", id).
			Pluck("id", &thoughtIDs).Error; err != nil {
			return models.NewInternalError(err)
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Thought{}).Error; err != nil {
			return models.NewInternalError(err)
		}
		if err := tx.Where("user_id = ? OR friend_id = ?", id, id).Delete(&models.FriendEdge{}).Error; err != nil {
			return models.NewInternalError(err)
		}
		if err := tx.Delete(&models.User{}, id).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	cache.InvalidateUser(ctx, id)
	// Each former friend's cached record still names this user.
	for _, fid := range friendIDs {
		cache.InvalidateUser(ctx, fid)
	}
	for _, tid := range thoughtIDs {
		cache.InvalidateThought(ctx, tid)
	}
	return nil
}

func (r *userRepository) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	ctx, span := startSpan(ctx, "List", "users")
	defer span.End()

	var users []models.User
	if err := r.db.WithContext(ctx).
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	if len(users) == 0 {
		return users, nil
	}

	// One pass over the page's edges instead of a query per user.
	ids := make([]uint, len(users))
	for i := range users {
		ids[i] = users[i].ID
	}
	var edges []models.FriendEdge
	if err := r.db.WithContext(ctx).
		Where("user_id IN ?", ids).
		Order("friend_id").
		Find(&edges).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	byUser := make(map[uint][]uint, len(users))
	for _, e := range edges {
		byUser[e.UserID] = append(byUser[e.UserID], e.FriendID)
	}
	for i := range users {
		friends := byUser[users[i].ID]
		if friends == nil {
			friends = []uint{}
		}
		users[i].FriendIDs = friends
		users[i].FriendCount = len(friends)
	}
	return users, nil
}
