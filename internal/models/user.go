// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a member of the Murmur application.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"unique;not null" json:"username"`
	Email     string    `gorm:"unique;not null;size:50" json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Thoughts authored by this user.
	Thoughts []Thought `gorm:"foreignKey:UserID" json:"thoughts,omitempty"`

	// FriendIDs and FriendCount are never persisted; they are recomputed
	// from friend_edges on every read so the count cannot drift.
	FriendIDs   []uint `gorm:"-" json:"friends"`
	FriendCount int    `gorm:"-" json:"friend_count"`
}

// FriendEdge is one direction of a symmetric friendship. Every friendship is
// stored as two rows (a->b and b->a); the composite primary key gives
// add-friend its set semantics.
type FriendEdge struct {
	UserID    uint      `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	FriendID  uint      `gorm:"primaryKey;autoIncrement:false" json:"friend_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM.
func (FriendEdge) TableName() string {
	return "friend_edges"
}
