package seed

import (
	"strings"
	"testing"
	"unicode/utf8"

	"murmur/internal/database"
	"murmur/internal/models"
	"murmur/internal/validation"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openSeedTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestClampTextCountsRunes(t *testing.T) {
	short := "a perfectly fine thought"
	if got := clampText(short); got != short {
		t.Fatalf("text within bounds must not change, got %q", got)
	}

	long := strings.Repeat("é", 300)
	got := clampText(long)
	if !utf8.ValidString(got) {
		t.Fatal("clamped text is not valid UTF-8")
	}
	if n := utf8.RuneCountInString(got); n != models.ThoughtTextMaxLen {
		t.Fatalf("expected %d runes, got %d", models.ThoughtTextMaxLen, n)
	}
	if err := validation.ValidateThoughtText(got); err != nil {
		t.Fatalf("clamped text fails validation: %v", err)
	}
}

func TestSeedCreatesConsistentData(t *testing.T) {
	db := openSeedTestDB(t)

	// ShouldClean stays false: sqlite has no TRUNCATE.
	if err := Seed(db, Options{NumUsers: 8, NumThoughts: 20, FriendDensity: 2}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var userCount, thoughtCount int64
	db.Model(&models.User{}).Count(&userCount)
	db.Model(&models.Thought{}).Count(&thoughtCount)
	if userCount != 8 {
		t.Fatalf("expected 8 users, got %d", userCount)
	}
	if thoughtCount != 20 {
		t.Fatalf("expected 20 thoughts, got %d", thoughtCount)
	}

	// Every thought must name an existing author.
	var orphans int64
	db.Model(&models.Thought{}).
		Where("user_id NOT IN (?)", db.Model(&models.User{}).Select("id")).
		Count(&orphans)
	if orphans != 0 {
		t.Fatalf("found %d orphaned thoughts", orphans)
	}

	// Every edge must have its reverse.
	var edges []models.FriendEdge
	if err := db.Find(&edges).Error; err != nil {
		t.Fatalf("load edges: %v", err)
	}
	index := make(map[[2]uint]bool, len(edges))
	for _, e := range edges {
		index[[2]uint{e.UserID, e.FriendID}] = true
	}
	for _, e := range edges {
		if !index[[2]uint{e.FriendID, e.UserID}] {
			t.Fatalf("edge %d->%d has no reverse", e.UserID, e.FriendID)
		}
	}
}
