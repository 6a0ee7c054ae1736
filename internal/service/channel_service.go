package service

import (
	"context"
	"errors"
	"strings"

	"agora/internal/models"
	"agora/internal/observability"
	"agora/internal/repository"
	"agora/internal/validation"

	"gorm.io/gorm"
)

const maxMessageLen = 4000

// ChannelService manages channels and their message logs.
type ChannelService struct {
	channelRepo repository.ChannelRepository
	spaceRepo   repository.SpaceRepository
}

type CreateChannelInput struct {
	SpaceID     uint
	Name        string
	Description string
}

type PostMessageInput struct {
	ChannelID uint
	UserID    uint
	Content   string
}

// NewChannelService creates a new ChannelService
func NewChannelService(channelRepo repository.ChannelRepository, spaceRepo repository.SpaceRepository) *ChannelService {
	return &ChannelService{channelRepo: channelRepo, spaceRepo: spaceRepo}
}

func (s *ChannelService) CreateChannel(ctx context.Context, in CreateChannelInput) (*models.Channel, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, models.NewValidationError("Name is required")
	}
	if len(name) > 100 {
		return nil, models.NewValidationError("Name too long (max 100 characters)")
	}

	slug := validation.Slugify(name)
	if err := validation.ValidateSlug(slug); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	if _, err := s.spaceRepo.GetByID(ctx, in.SpaceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Space", in.SpaceID)
		}
		return nil, err
	}

	channel := &models.Channel{
		Name:        name,
		Slug:        slug,
		Description: strings.TrimSpace(in.Description),
		SpaceID:     in.SpaceID,
	}
	if err := s.channelRepo.Create(ctx, channel); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, models.NewConflictError("A channel with this name already exists in this space")
		}
		return nil, err
	}

	return channel, nil
}

// DeleteChannel removes a channel and everything in its message log.
func (s *ChannelService) DeleteChannel(ctx context.Context, id uint) error {
	if err := s.channelRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Channel", id)
		}
		return err
	}
	return nil
}

// PostMessage appends a message to a channel's log. Messages are immutable
// once posted.
func (s *ChannelService) PostMessage(ctx context.Context, in PostMessageInput) (*models.ChannelMessage, error) {
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(content) > maxMessageLen {
		return nil, models.NewValidationError("Message too long (max 4000 characters)")
	}

	if _, err := s.channelRepo.GetByID(ctx, in.ChannelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Channel", in.ChannelID)
		}
		return nil, err
	}

	message := &models.ChannelMessage{
		Content:   content,
		ChannelID: in.ChannelID,
		UserID:    in.UserID,
	}
	if err := s.channelRepo.CreateMessage(ctx, message); err != nil {
		return nil, err
	}
	observability.ChannelMessagesTotal.Inc()

	return s.channelRepo.GetMessage(ctx, message.ID)
}

// ListMessages returns a channel's log oldest first. Clients poll this; every
// read reflects all messages committed before it began.
func (s *ChannelService) ListMessages(ctx context.Context, channelID uint, limit int) ([]*models.ChannelMessage, error) {
	if _, err := s.channelRepo.GetByID(ctx, channelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Channel", channelID)
		}
		return nil, err
	}
	return s.channelRepo.ListMessages(ctx, channelID, limit)
}
