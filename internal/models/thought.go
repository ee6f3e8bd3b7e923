// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Thought text length bounds enforced at write time.
const (
	ThoughtTextMinLen = 1
	ThoughtTextMaxLen = 280
)

// Thought represents a short post authored by a user. Reactions are embedded
// values owned by the thought: they live and die with this row, so deleting a
// thought discards its reactions in a single statement.
type Thought struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	ThoughtText string     `gorm:"type:text;not null" json:"thought_text"`
	Username    string     `gorm:"not null;index" json:"username"`
	UserID      uint       `gorm:"not null;index" json:"user_id"`
	Reactions   []Reaction `gorm:"serializer:json" json:"reactions"`

	// ReactionCount is never persisted; recomputed from Reactions on read.
	ReactionCount int `gorm:"-" json:"reaction_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// CreatedAtFormatted is a display form of CreatedAt, populated only when
	// the formatted_timestamps feature flag is enabled.
	CreatedAtFormatted string `gorm:"-" json:"created_at_formatted,omitempty"`
}

// AfterFind normalizes a loaded thought: an empty reaction set is a slice,
// not nil, and the derived count always matches it.
func (t *Thought) AfterFind(_ *gorm.DB) error {
	if t.Reactions == nil {
		t.Reactions = []Reaction{}
	}
	t.ReactionCount = len(t.Reactions)
	return nil
}
