// Package models contains data structures for the application's domain models.
package models

import "time"

// Reaction body length bounds enforced at write time.
const (
	ReactionBodyMinLen = 1
	ReactionBodyMaxLen = 280
)

// Reaction is an embedded value inside a Thought's reactions set. It has no
// table of its own; its identifier is assigned once at creation and is the
// handle used for targeted removal.
type Reaction struct {
	ReactionID   string    `json:"reaction_id"`
	ReactionBody string    `json:"reaction_body"`
	Username     string    `json:"username"`
	CreatedAt    time.Time `json:"created_at"`
}
