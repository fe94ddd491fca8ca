package seed

import (
	"fmt"
	"log"

	"inkwell/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

// Seed populates the database with test data
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("🌱 Starting database seeding with %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := ClearAll(db); err != nil {
			log.Println("⚠️  Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	factory := NewFactory(db)

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			return fmt.Errorf("creating user %d: %w", i, err)
		}
		users = append(users, user)
	}
	log.Printf("👤 Created %d users", len(users))

	if len(users) == 0 {
		return nil
	}

	posts := 0
	comments := 0
	for i := 0; i < opts.NumPosts; i++ {
		owner := users[factory.rng.Intn(len(users))]
		post, err := factory.CreatePost(owner, 90)
		if err != nil {
			return fmt.Errorf("creating post %d: %w", i, err)
		}
		posts++

		// A few anonymous comments per post, some posts with none
		for j := 0; j < factory.rng.Intn(5); j++ {
			if _, err := factory.CreateComment(post); err != nil {
				return fmt.Errorf("creating comment on post %d: %w", post.ID, err)
			}
			comments++
		}

		if err := factory.SprinkleReactions(post); err != nil {
			return fmt.Errorf("setting reactions on post %d: %w", post.ID, err)
		}
	}
	log.Printf("📝 Created %d posts with %d comments", posts, comments)

	return nil
}

// ClearAll removes all seeded data, children before parents so FK
// constraints hold.
func ClearAll(db *gorm.DB) error {
	tables := []string{"comments", "posts", "users"}
	for _, table := range tables {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	log.Println("🧹 Cleared existing data")
	return nil
}
