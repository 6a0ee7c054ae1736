package service

import (
	"context"
	"strings"
	"testing"

	"agora/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// uniqueViolation mimics the error shape sqlite produces for duplicate keys.
type uniqueViolation struct{}

func (uniqueViolation) Error() string { return "UNIQUE constraint failed: channels.slug" }

func TestChannelService_CreateChannel(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()
		svc := NewChannelService(noopChannelRepo(), noopSpaceRepo())
		_, err := svc.CreateChannel(ctx, CreateChannelInput{SpaceID: 1})
		assertValidationError(t, err)
	})

	t.Run("missing space", func(t *testing.T) {
		t.Parallel()
		spaceRepo := noopSpaceRepo()
		spaceRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Space, error) {
			return nil, gorm.ErrRecordNotFound
		}
		svc := NewChannelService(noopChannelRepo(), spaceRepo)
		_, err := svc.CreateChannel(ctx, CreateChannelInput{SpaceID: 99, Name: "General"})
		assertNotFoundError(t, err)
	})

	t.Run("duplicate slug in space conflicts", func(t *testing.T) {
		t.Parallel()
		channelRepo := noopChannelRepo()
		channelRepo.createFn = func(_ context.Context, _ *models.Channel) error {
			return uniqueViolation{}
		}
		svc := NewChannelService(channelRepo, noopSpaceRepo())
		_, err := svc.CreateChannel(ctx, CreateChannelInput{SpaceID: 1, Name: "General"})
		assertConflictError(t, err)
	})

	t.Run("success slugifies name", func(t *testing.T) {
		t.Parallel()
		channelRepo := noopChannelRepo()
		var created *models.Channel
		channelRepo.createFn = func(_ context.Context, channel *models.Channel) error {
			channel.ID = 11
			created = channel
			return nil
		}
		svc := NewChannelService(channelRepo, noopSpaceRepo())

		channel, err := svc.CreateChannel(ctx, CreateChannelInput{SpaceID: 2, Name: "Show & Tell"})
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "show-tell", channel.Slug)
		assert.Equal(t, "Show & Tell", channel.Name)
		assert.Equal(t, uint(2), channel.SpaceID)
	})
}

func TestChannelService_PostMessage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("empty content", func(t *testing.T) {
		t.Parallel()
		channelRepo := noopChannelRepo()
		stored := false
		channelRepo.createMessageFn = func(_ context.Context, _ *models.ChannelMessage) error {
			stored = true
			return nil
		}
		svc := NewChannelService(channelRepo, noopSpaceRepo())

		_, err := svc.PostMessage(ctx, PostMessageInput{ChannelID: 1, UserID: 1, Content: " \n\t "})
		assertValidationError(t, err)
		assert.False(t, stored)
	})

	t.Run("content too long", func(t *testing.T) {
		t.Parallel()
		svc := NewChannelService(noopChannelRepo(), noopSpaceRepo())
		_, err := svc.PostMessage(ctx, PostMessageInput{
			ChannelID: 1, UserID: 1,
			Content: strings.Repeat("x", maxMessageLen+1),
		})
		assertValidationError(t, err)
	})

	t.Run("missing channel", func(t *testing.T) {
		t.Parallel()
		channelRepo := noopChannelRepo()
		channelRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Channel, error) {
			return nil, gorm.ErrRecordNotFound
		}
		svc := NewChannelService(channelRepo, noopSpaceRepo())
		_, err := svc.PostMessage(ctx, PostMessageInput{ChannelID: 99, UserID: 1, Content: "hi"})
		assertNotFoundError(t, err)
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		channelRepo := noopChannelRepo()
		var stored *models.ChannelMessage
		channelRepo.createMessageFn = func(_ context.Context, message *models.ChannelMessage) error {
			message.ID = 7
			stored = message
			return nil
		}
		channelRepo.getMessageFn = func(_ context.Context, id uint) (*models.ChannelMessage, error) {
			require.Equal(t, uint(7), id)
			return stored, nil
		}
		svc := NewChannelService(channelRepo, noopSpaceRepo())

		message, err := svc.PostMessage(ctx, PostMessageInput{ChannelID: 4, UserID: 2, Content: "  hello  "})
		require.NoError(t, err)
		assert.Equal(t, "hello", message.Content)
		assert.Equal(t, uint(4), message.ChannelID)
	})
}

func TestChannelService_DeleteChannel(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		channelRepo := noopChannelRepo()
		channelRepo.deleteFn = func(_ context.Context, _ uint) error {
			return gorm.ErrRecordNotFound
		}
		svc := NewChannelService(channelRepo, noopSpaceRepo())
		assertNotFoundError(t, svc.DeleteChannel(ctx, 99))
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		channelRepo := noopChannelRepo()
		var deleted uint
		channelRepo.deleteFn = func(_ context.Context, id uint) error {
			deleted = id
			return nil
		}
		svc := NewChannelService(channelRepo, noopSpaceRepo())
		require.NoError(t, svc.DeleteChannel(ctx, 4))
		assert.Equal(t, uint(4), deleted)
	})
}

func TestChannelService_ListMessages_MissingChannel(t *testing.T) {
	t.Parallel()

	channelRepo := noopChannelRepo()
	channelRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Channel, error) {
		return nil, gorm.ErrRecordNotFound
	}
	svc := NewChannelService(channelRepo, noopSpaceRepo())

	_, err := svc.ListMessages(context.Background(), 99, 0)
	assertNotFoundError(t, err)
}
