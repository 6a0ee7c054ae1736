package models

import (
	"time"
)

// Channel is a persistent chat room within a space holding an append-only
// message log. Channel slugs are unique per space, not globally: two spaces
// may each have a channel slugged "general".
type Channel struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Slug        string    `gorm:"not null;uniqueIndex:idx_channels_space_slug" json:"slug"`
	Description string    `json:"description,omitempty"`
	SpaceID     uint      `gorm:"not null;uniqueIndex:idx_channels_space_slug" json:"space_id"`
	Space       *Space    `gorm:"foreignKey:SpaceID" json:"space,omitempty"`
	CreatedAt   time.Time `json:"created_at"`

	Messages []ChannelMessage `gorm:"foreignKey:ChannelID;constraint:OnDelete:CASCADE" json:"messages,omitempty"`
}

// ChannelMessage is a single entry in a channel's chat log, immutable once posted.
type ChannelMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	ChannelID uint      `gorm:"not null;index" json:"channel_id"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	CreatedAt time.Time `json:"created_at"`
}
