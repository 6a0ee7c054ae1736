package models

import (
	"time"
)

// Thread is a discussion topic within a space. ReplyCount and LastActivityAt
// are denormalized aggregates maintained in the same transaction as reply
// inserts; they are never recomputed independently.
type Thread struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Title   string `gorm:"not null" json:"title"`
	Content string `gorm:"type:text;not null" json:"content"`
	SpaceID uint   `gorm:"not null;index" json:"space_id"`
	Space   *Space `gorm:"foreignKey:SpaceID" json:"space,omitempty"`
	UserID  uint   `gorm:"not null" json:"user_id"`
	User    User   `gorm:"foreignKey:UserID" json:"user"`
	// ReplyCount always equals the number of ThreadReply rows referencing
	// this thread.
	ReplyCount int `gorm:"not null;default:0" json:"reply_count"`
	// LastActivityAt is the primary sort key for "recently active" feeds.
	// Initialized to creation time, advanced on every successful reply,
	// never decreased.
	LastActivityAt time.Time `gorm:"not null;index" json:"last_activity_at"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at,omitempty"`

	Replies []ThreadReply `gorm:"foreignKey:ThreadID;constraint:OnDelete:CASCADE" json:"replies,omitempty"`
}

// ThreadReply is a response to a thread, immutable once posted.
type ThreadReply struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	ThreadID  uint      `gorm:"not null;index" json:"thread_id"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	CreatedAt time.Time `json:"created_at"`
}
