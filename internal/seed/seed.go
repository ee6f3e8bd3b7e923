// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"
	"unicode/utf8"

	"murmur/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumThoughts int
	// MaxReactionsPerThought caps the random reactions added to each thought.
	MaxReactionsPerThought int
	// FriendDensity is the rough number of friendships per user.
	FriendDensity int
	ShouldClean   bool
}

// Seed populates the database with test data
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Starting database seeding with %d users and %d thoughts...", opts.NumUsers, opts.NumThoughts)
	gofakeit.Seed(time.Now().UnixNano())

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	users, err := createUsers(db, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("%d seed users created", len(users))

	thoughts, err := createThoughts(db, users, opts.NumThoughts, opts.MaxReactionsPerThought)
	if err != nil {
		return fmt.Errorf("failed to create thoughts: %w", err)
	}
	log.Printf("%d thoughts created", len(thoughts))

	links, err := createFriendships(db, users, opts.FriendDensity)
	if err != nil {
		return fmt.Errorf("failed to create friendships: %w", err)
	}
	log.Printf("%d friendships created", links)

	log.Println("Database seeding completed successfully")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	sql := `TRUNCATE TABLE friend_edges, thoughts, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}

func createUsers(db *gorm.DB, count int) ([]models.User, error) {
	if count <= 0 {
		count = 10
	}

	users := make([]models.User, 0, count)
	seen := make(map[string]bool, count)
	for len(users) < count {
		username := strings.ToLower(gofakeit.Username())
		if seen[username] {
			continue
		}
		seen[username] = true
		users = append(users, models.User{
			Username: username,
			Email:    fmt.Sprintf("%s@%s", username, gofakeit.DomainName()),
		})
	}

	if err := db.Create(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// thoughtText produces short post text within the 280 character bound.
func thoughtText(r *rand.Rand) string {
	return clampText(gofakeit.Sentence(4 + r.Intn(12)))
}

// clampText bounds text to the thought limit counting runes, so multibyte
// characters are never split mid-sequence.
func clampText(s string) string {
	if utf8.RuneCountInString(s) <= models.ThoughtTextMaxLen {
		return s
	}
	return string([]rune(s)[:models.ThoughtTextMaxLen])
}

func createThoughts(db *gorm.DB, users []models.User, count, maxReactions int) ([]models.Thought, error) {
	if count <= 0 {
		count = 3 * len(users)
	}
	if maxReactions <= 0 {
		maxReactions = 4
	}

	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	thoughts := make([]models.Thought, 0, count)
	for i := 0; i < count; i++ {
		author := users[r.Intn(len(users))]

		// realistic created_at spread over the last 90 days
		createdAt := time.Now().
			Add(-time.Duration(r.Intn(90)) * 24 * time.Hour).
			Add(-time.Duration(r.Intn(24)) * time.Hour)

		reactions := make([]models.Reaction, r.Intn(maxReactions+1))
		for j := range reactions {
			reactor := users[r.Intn(len(users))]
			reactions[j] = models.Reaction{
				ReactionID:   uuid.NewString(),
				ReactionBody: thoughtText(r),
				Username:     reactor.Username,
				CreatedAt:    createdAt.Add(time.Duration(j+1) * time.Minute),
			}
		}

		thoughts = append(thoughts, models.Thought{
			ThoughtText: thoughtText(r),
			Username:    author.Username,
			UserID:      author.ID,
			Reactions:   reactions,
			CreatedAt:   createdAt,
		})
	}

	if err := db.Create(&thoughts).Error; err != nil {
		return nil, err
	}
	return thoughts, nil
}

// createFriendships links random user pairs. Edges are written in both
// directions so seeded data obeys the same symmetry as the API.
func createFriendships(db *gorm.DB, users []models.User, density int) (int, error) {
	if len(users) < 2 {
		return 0, nil
	}
	if density <= 0 {
		density = 3
	}

	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	edges := make([]models.FriendEdge, 0, len(users)*density*2)
	for _, u := range users {
		for i := 0; i < density; i++ {
			friend := users[r.Intn(len(users))]
			if friend.ID == u.ID {
				continue
			}
			edges = append(edges,
				models.FriendEdge{UserID: u.ID, FriendID: friend.ID},
				models.FriendEdge{UserID: friend.ID, FriendID: u.ID},
			)
		}
	}
	if len(edges) == 0 {
		return 0, nil
	}

	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&edges).Error; err != nil {
		return 0, err
	}
	return len(edges) / 2, nil
}
