package models

import (
	"time"
)

// SpaceSummaryColumns is the projection used when a space is inlined into
// thread listings.
var SpaceSummaryColumns = []string{"id", "name", "slug"}

// Space is a top-level community subdivision containing channels and threads.
// Spaces are admin-created; destroying a space cascades to its channels and threads.
type Space struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Slug        string `gorm:"uniqueIndex;not null" json:"slug"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	// SortOrder determines display order, not necessarily creation order.
	SortOrder int       `gorm:"not null;default:0" json:"sort_order"`
	Channels  []Channel `gorm:"foreignKey:SpaceID;constraint:OnDelete:CASCADE" json:"channels,omitempty"`
	Threads   []Thread  `gorm:"foreignKey:SpaceID;constraint:OnDelete:CASCADE" json:"threads,omitempty"`
	// ChannelCount and ThreadCount are not persisted; computed at query time.
	ChannelCount int       `gorm:"->" json:"channel_count"`
	ThreadCount  int       `gorm:"->" json:"thread_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
}
