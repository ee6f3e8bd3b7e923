package server

import (
	"fmt"
	"net/http"
	"testing"

	"murmur/internal/models"
)

func TestCreateThoughtEndpoint(t *testing.T) {
	_, app, db := newTestServer(t)

	author := models.User{Username: "poster", Email: "poster@example.com"}
	if err := db.Create(&author).Error; err != nil {
		t.Fatalf("create author: %v", err)
	}

	resp := doJSON(t, app, http.MethodPost, "/api/thoughts", CreateThoughtRequest{
		ThoughtText: "here's a cool thought...",
		Username:    "poster",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var thought models.Thought
	decodeBody(t, resp, &thought)
	if thought.ID == 0 || thought.UserID != author.ID || thought.Username != "poster" {
		t.Fatalf("unexpected thought %#v", thought)
	}
	if thought.Reactions == nil || len(thought.Reactions) != 0 {
		t.Fatalf("expected empty reactions, got %#v", thought.Reactions)
	}
	if thought.CreatedAtFormatted == "" {
		t.Fatal("formatted_timestamps flag is on; expected formatted timestamp")
	}
}

func TestCreateThoughtEndpointGhostAuthor(t *testing.T) {
	_, app, db := newTestServer(t)

	resp := doJSON(t, app, http.MethodPost, "/api/thoughts", CreateThoughtRequest{
		ThoughtText: "orphan attempt",
		Username:    "ghost",
	})
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}

	// Nothing may have been written.
	var count int64
	db.Model(&models.Thought{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no thoughts, found %d", count)
	}
}

func TestThoughtReactionRoundTrip(t *testing.T) {
	_, app, db := newTestServer(t)

	author := models.User{Username: "author", Email: "author@example.com"}
	if err := db.Create(&author).Error; err != nil {
		t.Fatalf("create author: %v", err)
	}
	thought := models.Thought{ThoughtText: "react to me", Username: author.Username, UserID: author.ID}
	if err := db.Create(&thought).Error; err != nil {
		t.Fatalf("create thought: %v", err)
	}

	// Add a reaction.
	resp := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/thoughts/%d/reactions", thought.ID), CreateReactionRequest{
		ReactionBody: "love this",
		Username:     "author",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	var withReaction models.Thought
	decodeBody(t, resp, &withReaction)
	if len(withReaction.Reactions) != 1 || withReaction.ReactionCount != 1 {
		t.Fatalf("reaction missing: %#v", withReaction)
	}
	reactionID := withReaction.Reactions[0].ReactionID
	if reactionID == "" {
		t.Fatal("reaction ID must be server-assigned")
	}

	// List reactions.
	listResp := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/thoughts/%d/reactions", thought.ID), nil)
	var reactions []models.Reaction
	decodeBody(t, listResp, &reactions)
	if len(reactions) != 1 || reactions[0].ReactionBody != "love this" {
		t.Fatalf("unexpected reactions %#v", reactions)
	}

	// Remove it.
	delResp := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/thoughts/%d/reactions/%s", thought.ID, reactionID), nil)
	if delResp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", delResp.StatusCode)
	}
	var after models.Thought
	decodeBody(t, delResp, &after)
	if len(after.Reactions) != 0 || after.ReactionCount != 0 {
		t.Fatalf("reaction not removed: %#v", after)
	}

	// Removing again is a no-op, not an error.
	againResp := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/thoughts/%d/reactions/%s", thought.ID, reactionID), nil)
	defer func() { _ = againResp.Body.Close() }()
	if againResp.StatusCode != http.StatusOK {
		t.Fatalf("expected idempotent 200, got %d", againResp.StatusCode)
	}
}

func TestAddReactionEndpointMissingThought(t *testing.T) {
	_, app, _ := newTestServer(t)

	resp := doJSON(t, app, http.MethodPost, "/api/thoughts/404/reactions", CreateReactionRequest{
		ReactionBody: "too late",
		Username:     "anyone",
	})
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestUpdateThoughtEndpoint(t *testing.T) {
	_, app, db := newTestServer(t)

	author := models.User{Username: "editor", Email: "editor@example.com"}
	if err := db.Create(&author).Error; err != nil {
		t.Fatalf("create author: %v", err)
	}
	thought := models.Thought{ThoughtText: "first draft", Username: author.Username, UserID: author.ID}
	if err := db.Create(&thought).Error; err != nil {
		t.Fatalf("create thought: %v", err)
	}

	resp := doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/thoughts/%d", thought.ID), UpdateThoughtRequest{
		ThoughtText: "second draft",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var updated models.Thought
	decodeBody(t, resp, &updated)
	if updated.ThoughtText != "second draft" {
		t.Fatalf("unexpected text %q", updated.ThoughtText)
	}
}

func TestDeleteThoughtEndpointDiscardReactions(t *testing.T) {
	_, app, db := newTestServer(t)

	author := models.User{Username: "deleter", Email: "deleter@example.com"}
	if err := db.Create(&author).Error; err != nil {
		t.Fatalf("create author: %v", err)
	}
	thought := models.Thought{
		ThoughtText: "short lived",
		Username:    author.Username,
		UserID:      author.ID,
		Reactions:   []models.Reaction{{ReactionID: "r1", ReactionBody: "bye", Username: "someone"}},
	}
	if err := db.Create(&thought).Error; err != nil {
		t.Fatalf("create thought: %v", err)
	}

	resp := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/thoughts/%d", thought.ID), nil)
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var count int64
	db.Model(&models.Thought{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no thoughts, found %d", count)
	}

	// The user survives.
	var userCount int64
	db.Model(&models.User{}).Count(&userCount)
	if userCount != 1 {
		t.Fatalf("author must not be deleted, %d users left", userCount)
	}
}

func TestDeleteThoughtEndpointMissing(t *testing.T) {
	_, app, _ := newTestServer(t)

	resp := doJSON(t, app, http.MethodDelete, "/api/thoughts/404", nil)
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}
