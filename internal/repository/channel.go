package repository

import (
	"context"

	"agora/internal/models"
	"agora/internal/observability"

	"gorm.io/gorm"
)

// ChannelRepository defines interface for channel and channel message operations
type ChannelRepository interface {
	Create(ctx context.Context, channel *models.Channel) error
	GetByID(ctx context.Context, id uint) (*models.Channel, error)
	ListBySpace(ctx context.Context, spaceID uint) ([]*models.Channel, error)
	Delete(ctx context.Context, id uint) error

	CreateMessage(ctx context.Context, message *models.ChannelMessage) error
	GetMessage(ctx context.Context, id uint) (*models.ChannelMessage, error)
	ListMessages(ctx context.Context, channelID uint, limit int) ([]*models.ChannelMessage, error)
}

type channelRepository struct {
	db *gorm.DB
}

// NewChannelRepository creates a new ChannelRepository
func NewChannelRepository(db *gorm.DB) ChannelRepository {
	return &channelRepository{db: db}
}

func (r *channelRepository) Create(ctx context.Context, channel *models.Channel) error {
	defer observability.TrackQuery("create", "channels")()
	return r.db.WithContext(ctx).Create(channel).Error
}

func (r *channelRepository) GetByID(ctx context.Context, id uint) (*models.Channel, error) {
	defer observability.TrackQuery("get", "channels")()
	var channel models.Channel
	if err := r.db.WithContext(ctx).First(&channel, id).Error; err != nil {
		return nil, err
	}
	return &channel, nil
}

func (r *channelRepository) ListBySpace(ctx context.Context, spaceID uint) ([]*models.Channel, error) {
	defer observability.TrackQuery("list", "channels")()
	var channels []*models.Channel
	err := r.db.WithContext(ctx).Where("space_id = ?", spaceID).Order("created_at asc, id asc").Find(&channels).Error
	return channels, err
}

func (r *channelRepository) Delete(ctx context.Context, id uint) error {
	defer observability.TrackQuery("delete", "channels")()
	res := r.db.WithContext(ctx).Delete(&models.Channel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *channelRepository) CreateMessage(ctx context.Context, message *models.ChannelMessage) error {
	defer observability.TrackQuery("create", "channel_messages")()
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *channelRepository) GetMessage(ctx context.Context, id uint) (*models.ChannelMessage, error) {
	defer observability.TrackQuery("get", "channel_messages")()
	var message models.ChannelMessage
	err := r.db.WithContext(ctx).
		Preload("User", func(db *gorm.DB) *gorm.DB { return db.Select(models.AuthorColumns) }).
		First(&message, id).Error
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// ListMessages returns messages in chronological order. A zero or negative
// limit returns the full log.
func (r *channelRepository) ListMessages(ctx context.Context, channelID uint, limit int) ([]*models.ChannelMessage, error) {
	defer observability.TrackQuery("list", "channel_messages")()
	var messages []*models.ChannelMessage
	query := r.db.WithContext(ctx).
		Preload("User", func(db *gorm.DB) *gorm.DB { return db.Select(models.AuthorColumns) }).
		Where("channel_id = ?", channelID).
		Order("created_at asc, id asc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&messages).Error
	return messages, err
}
