// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"agora/internal/models"
	"agora/internal/validation"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers   int
	NumThreads int
	MaxReplies int
	MaxDays    int
}

func (o Options) withDefaults() Options {
	if o.NumUsers <= 0 {
		o.NumUsers = 20
	}
	if o.NumThreads <= 0 {
		o.NumThreads = 40
	}
	if o.MaxReplies <= 0 {
		o.MaxReplies = 8
	}
	if o.MaxDays <= 0 {
		o.MaxDays = 30
	}
	return o
}

func slugifyName(name string) string {
	return validation.Slugify(name)
}

// Run seeds built-in spaces plus demo users, threads, replies, and channel
// messages. Intended for development databases only.
func Run(db *gorm.DB, opts Options) error {
	opts = opts.withDefaults()
	gofakeit.Seed(time.Now().UnixNano())
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	if err := Spaces(db); err != nil {
		return fmt.Errorf("seed spaces: %w", err)
	}

	users, err := createDemoUsers(db, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	var spaces []models.Space
	if err := db.Find(&spaces).Error; err != nil {
		return err
	}
	var channels []models.Channel
	if err := db.Find(&channels).Error; err != nil {
		return err
	}

	threadCount := 0
	for i := 0; i < opts.NumThreads; i++ {
		space := spaces[r.Intn(len(spaces))]
		author := users[r.Intn(len(users))]
		createdAt := randomPast(r, opts.MaxDays)

		thread := models.Thread{
			Title:          gofakeit.Sentence(r.Intn(6) + 3),
			Content:        gofakeit.Paragraph(1, 3, 8, "\n"),
			SpaceID:        space.ID,
			UserID:         author.ID,
			LastActivityAt: createdAt,
			CreatedAt:      createdAt,
		}
		if err := db.Create(&thread).Error; err != nil {
			return fmt.Errorf("seed thread: %w", err)
		}
		threadCount++

		replies := r.Intn(opts.MaxReplies + 1)
		last := createdAt
		for j := 0; j < replies; j++ {
			last = last.Add(time.Duration(r.Intn(720)+1) * time.Minute)
			reply := models.ThreadReply{
				Content:   gofakeit.Sentence(r.Intn(15) + 3),
				ThreadID:  thread.ID,
				UserID:    users[r.Intn(len(users))].ID,
				CreatedAt: last,
			}
			if err := db.Create(&reply).Error; err != nil {
				return fmt.Errorf("seed reply: %w", err)
			}
		}
		// Keep the denormalized aggregates consistent with the rows we just
		// wrote, since we bypassed the regular append path for backdating.
		if err := db.Model(&models.Thread{}).Where("id = ?", thread.ID).Updates(map[string]interface{}{
			"reply_count":      replies,
			"last_activity_at": last,
		}).Error; err != nil {
			return err
		}
	}

	messageCount := 0
	for _, channel := range channels {
		n := r.Intn(15) + 5
		at := randomPast(r, opts.MaxDays)
		for j := 0; j < n; j++ {
			at = at.Add(time.Duration(r.Intn(120)+1) * time.Minute)
			message := models.ChannelMessage{
				Content:   gofakeit.Sentence(r.Intn(12) + 2),
				ChannelID: channel.ID,
				UserID:    users[r.Intn(len(users))].ID,
				CreatedAt: at,
			}
			if err := db.Create(&message).Error; err != nil {
				return fmt.Errorf("seed message: %w", err)
			}
			messageCount++
		}
	}

	log.Printf("seeded %d users, %d threads, %d channel messages", len(users), threadCount, messageCount)
	return nil
}

func createDemoUsers(db *gorm.DB, n int) ([]models.User, error) {
	// All demo accounts share one hash; hashing per user makes large seeds slow.
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, n)
	for i := 0; i < n; i++ {
		first := gofakeit.FirstName()
		last := gofakeit.LastName()
		username := strings.ToLower(fmt.Sprintf("%s_%s%d", first, last, i))

		user := models.User{
			Email:        fmt.Sprintf("%s@example.com", username),
			Username:     username,
			DisplayName:  first + " " + last,
			PasswordHash: string(hash),
			Role:         models.RoleMember,
			Bio:          gofakeit.Sentence(8),
			AvatarURL:    fmt.Sprintf("https://i.pravatar.cc/150?u=%s", username),
		}
		if err := db.Create(&user).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func randomPast(r *rand.Rand, maxDays int) time.Time {
	daysBack := r.Intn(maxDays)
	hoursBack := r.Intn(24)
	minsBack := r.Intn(60)
	return time.Now().UTC().
		Add(-time.Duration(daysBack)*24*time.Hour -
			time.Duration(hoursBack)*time.Hour -
			time.Duration(minsBack)*time.Minute)
}
