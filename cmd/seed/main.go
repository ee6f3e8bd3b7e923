// Command main runs the database seeder for Murmur.
package main

import (
	"flag"
	"log"

	"murmur/internal/config"
	"murmur/internal/database"
	"murmur/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 25, "Number of users to create")
	numThoughts := flag.Int("thoughts", 100, "Number of thoughts to create")
	maxReactions := flag.Int("reactions", 4, "Max reactions per thought")
	friendDensity := flag.Int("friends", 3, "Approximate friendships per user")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d users, %d thoughts, clean=%v\n", *numUsers, *numThoughts, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumUsers:               *numUsers,
		NumThoughts:            *numThoughts,
		MaxReactionsPerThought: *maxReactions,
		FriendDensity:          *friendDensity,
		ShouldClean:            *shouldClean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("All done! Your database is now populated with test data.")
}
