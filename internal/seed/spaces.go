package seed

import (
	"errors"

	"agora/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BuiltInSpace is a permanent system space.
type BuiltInSpace struct {
	Name        string
	Slug        string
	Description string
	Icon        string
	SortOrder   int
	Channels    []string
}

// BuiltInSpaces defines the permanent system spaces and their default channels.
var BuiltInSpaces = []BuiltInSpace{
	{Name: "General", Slug: "general", Description: "Community-wide discussion.", Icon: "💬", SortOrder: 0, Channels: []string{"Lounge", "Random"}},
	{Name: "Introductions", Slug: "introductions", Description: "Say hello and meet other members.", Icon: "👋", SortOrder: 1, Channels: []string{"Welcome"}},
	{Name: "Show & Tell", Slug: "show-and-tell", Description: "Share what you are working on.", Icon: "🛠️", SortOrder: 2, Channels: []string{"Projects"}},
	{Name: "Help", Slug: "help-desk", Description: "Questions and troubleshooting.", Icon: "🆘", SortOrder: 3, Channels: []string{"Support"}},
}

// Spaces seeds permanent built-in spaces and their default channels.
// Safe to run repeatedly.
func Spaces(db *gorm.DB) error {
	for _, item := range BuiltInSpaces {
		err := db.Transaction(func(tx *gorm.DB) error {
			space := models.Space{
				Name:        item.Name,
				Slug:        item.Slug,
				Description: item.Description,
				Icon:        item.Icon,
				SortOrder:   item.SortOrder,
			}

			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "slug"}},
				DoUpdates: clause.AssignmentColumns([]string{"name", "description", "icon", "sort_order", "updated_at"}),
			}).Create(&space).Error; err != nil {
				return err
			}

			if space.ID == 0 {
				if err := tx.Where("slug = ?", item.Slug).First(&space).Error; err != nil {
					return err
				}
			}

			for _, channelName := range item.Channels {
				slug := slugifyName(channelName)
				var existing models.Channel
				queryErr := tx.Where("space_id = ? AND slug = ?", space.ID, slug).First(&existing).Error
				if queryErr == nil {
					continue
				}
				if !errors.Is(queryErr, gorm.ErrRecordNotFound) {
					return queryErr
				}
				channel := models.Channel{
					Name:    channelName,
					Slug:    slug,
					SpaceID: space.ID,
				}
				if err := tx.Create(&channel).Error; err != nil {
					return err
				}
			}

			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}
