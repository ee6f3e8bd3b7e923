package repository

import (
	"context"

	"murmur/internal/cache"
	"murmur/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FriendRepository defines the interface for friend edge operations.
// Edges are symmetric: every link is stored in both directions, and both
// rows are written or removed inside one transaction.
type FriendRepository interface {
	AddEdge(ctx context.Context, userID, friendID uint) error
	RemoveEdge(ctx context.Context, userID, friendID uint) error
	ListFriendIDs(ctx context.Context, userID uint) ([]uint, error)
	ListFriends(ctx context.Context, userID uint) ([]models.User, error)
	CountFriends(ctx context.Context, userID uint) (int64, error)
}

type friendRepository struct {
	db *gorm.DB
}

// NewFriendRepository creates a new friend repository.
func NewFriendRepository(db *gorm.DB) FriendRepository {
	return &friendRepository{db: db}
}

func (r *friendRepository) AddEdge(ctx context.Context, userID, friendID uint) error {
	ctx, span := startSpan(ctx, "AddEdge", "friend_edges")
	defer span.End()

	edges := []models.FriendEdge{
		{UserID: userID, FriendID: friendID},
		{UserID: friendID, FriendID: userID},
	}
	// ON CONFLICT DO NOTHING keeps re-adding an existing friend idempotent.
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&edges).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	// Both users' cached records carry friend lists.
	cache.InvalidateUser(ctx, userID)
	cache.InvalidateUser(ctx, friendID)
	return nil
}

func (r *friendRepository) RemoveEdge(ctx context.Context, userID, friendID uint) error {
	ctx, span := startSpan(ctx, "RemoveEdge", "friend_edges")
	defer span.End()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.
			Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
				userID, friendID, friendID, userID).
			Delete(&models.FriendEdge{}).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateUser(ctx, userID)
	cache.InvalidateUser(ctx, friendID)
	return nil
}

func (r *friendRepository) ListFriendIDs(ctx context.Context, userID uint) ([]uint, error) {
	ctx, span := startSpan(ctx, "ListFriendIDs", "friend_edges")
	defer span.End()

	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.FriendEdge{}).
		Where("user_id = ?", userID).
		Order("friend_id").
		Pluck("friend_id", &ids).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	if ids == nil {
		ids = []uint{}
	}
	return ids, nil
}

func (r *friendRepository) ListFriends(ctx context.Context, userID uint) ([]models.User, error) {
	ctx, span := startSpan(ctx, "ListFriends", "friend_edges")
	defer span.End()

	var users []models.User
	if err := r.db.WithContext(ctx).
		Table("users").
		Joins("JOIN friend_edges f ON users.id = f.friend_id").
		Where("f.user_id = ?", userID).
		Order("users.id").
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

func (r *friendRepository) CountFriends(ctx context.Context, userID uint) (int64, error) {
	ctx, span := startSpan(ctx, "CountFriends", "friend_edges")
	defer span.End()

	var n int64
	if err := r.db.WithContext(ctx).
		Model(&models.FriendEdge{}).
		Where("user_id = ?", userID).
		Count(&n).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return n, nil
}
