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

func TestThreadService_CreateThread_Validation(t *testing.T) {
	t.Parallel()

	svc := NewThreadService(noopThreadRepo(), noopSpaceRepo())
	ctx := context.Background()

	t.Run("empty title", func(t *testing.T) {
		t.Parallel()
		_, err := svc.CreateThread(ctx, CreateThreadInput{UserID: 1, SpaceID: 1, Content: "body"})
		assertValidationError(t, err)
	})

	t.Run("whitespace only title", func(t *testing.T) {
		t.Parallel()
		_, err := svc.CreateThread(ctx, CreateThreadInput{UserID: 1, SpaceID: 1, Title: "   ", Content: "body"})
		assertValidationError(t, err)
	})

	t.Run("empty content", func(t *testing.T) {
		t.Parallel()
		_, err := svc.CreateThread(ctx, CreateThreadInput{UserID: 1, SpaceID: 1, Title: "Topic"})
		assertValidationError(t, err)
	})

	t.Run("title too long", func(t *testing.T) {
		t.Parallel()
		_, err := svc.CreateThread(ctx, CreateThreadInput{
			UserID: 1, SpaceID: 1,
			Title:   strings.Repeat("x", maxThreadTitleLen+1),
			Content: "body",
		})
		assertValidationError(t, err)
	})

	t.Run("missing space", func(t *testing.T) {
		t.Parallel()
		spaceRepo := noopSpaceRepo()
		spaceRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Space, error) {
			return nil, gorm.ErrRecordNotFound
		}
		svc2 := NewThreadService(noopThreadRepo(), spaceRepo)
		_, err := svc2.CreateThread(ctx, CreateThreadInput{UserID: 1, SpaceID: 99, Title: "Topic", Content: "body"})
		assertNotFoundError(t, err)
	})
}

func TestThreadService_CreateThread_Success(t *testing.T) {
	t.Parallel()

	threadRepo := noopThreadRepo()
	var created *models.Thread
	threadRepo.createFn = func(_ context.Context, thread *models.Thread) error {
		thread.ID = 42
		created = thread
		return nil
	}
	threadRepo.getByIDFn = func(_ context.Context, id uint) (*models.Thread, error) {
		require.Equal(t, uint(42), id)
		return created, nil
	}

	svc := NewThreadService(threadRepo, noopSpaceRepo())
	thread, err := svc.CreateThread(context.Background(), CreateThreadInput{
		UserID: 7, SpaceID: 3,
		Title:   "  Topic  ",
		Content: "  body  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Topic", thread.Title, "title is trimmed")
	assert.Equal(t, "body", thread.Content)
	assert.Equal(t, uint(7), thread.UserID)
	assert.Equal(t, uint(3), thread.SpaceID)
	assert.Equal(t, 0, thread.ReplyCount)
}

func TestThreadService_AppendReply(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("empty content leaves no side effects", func(t *testing.T) {
		t.Parallel()
		threadRepo := noopThreadRepo()
		appended := false
		threadRepo.appendReplyFn = func(_ context.Context, _ *models.ThreadReply) error {
			appended = true
			return nil
		}
		svc := NewThreadService(threadRepo, noopSpaceRepo())

		_, err := svc.AppendReply(ctx, AppendReplyInput{UserID: 1, ThreadID: 1, Content: "   "})
		assertValidationError(t, err)
		assert.False(t, appended, "validation failures must not reach storage")
	})

	t.Run("content too long", func(t *testing.T) {
		t.Parallel()
		svc := NewThreadService(noopThreadRepo(), noopSpaceRepo())
		_, err := svc.AppendReply(ctx, AppendReplyInput{
			UserID: 1, ThreadID: 1,
			Content: strings.Repeat("x", maxReplyLen+1),
		})
		assertValidationError(t, err)
	})

	t.Run("missing thread maps to not found", func(t *testing.T) {
		t.Parallel()
		threadRepo := noopThreadRepo()
		threadRepo.appendReplyFn = func(_ context.Context, _ *models.ThreadReply) error {
			return gorm.ErrRecordNotFound
		}
		svc := NewThreadService(threadRepo, noopSpaceRepo())
		_, err := svc.AppendReply(ctx, AppendReplyInput{UserID: 1, ThreadID: 99, Content: "hi"})
		assertNotFoundError(t, err)
	})

	t.Run("success trims content", func(t *testing.T) {
		t.Parallel()
		threadRepo := noopThreadRepo()
		var stored *models.ThreadReply
		threadRepo.appendReplyFn = func(_ context.Context, reply *models.ThreadReply) error {
			reply.ID = 5
			stored = reply
			return nil
		}
		threadRepo.getReplyFn = func(_ context.Context, id uint) (*models.ThreadReply, error) {
			require.Equal(t, uint(5), id)
			return stored, nil
		}
		svc := NewThreadService(threadRepo, noopSpaceRepo())

		reply, err := svc.AppendReply(ctx, AppendReplyInput{UserID: 2, ThreadID: 9, Content: "  hello  "})
		require.NoError(t, err)
		assert.Equal(t, "hello", reply.Content)
		assert.Equal(t, uint(9), reply.ThreadID)
	})
}

func TestThreadService_GetThread_NotFound(t *testing.T) {
	t.Parallel()

	threadRepo := noopThreadRepo()
	threadRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Thread, error) {
		return nil, gorm.ErrRecordNotFound
	}
	svc := NewThreadService(threadRepo, noopSpaceRepo())

	_, err := svc.GetThread(context.Background(), 99)
	assertNotFoundError(t, err)
}

func TestThreadService_ListThreads_RoutesBySpace(t *testing.T) {
	t.Parallel()

	threadRepo := noopThreadRepo()
	var gotSpaceID uint
	var recentCalled bool
	threadRepo.listBySpaceFn = func(_ context.Context, spaceID uint, _ int) ([]*models.Thread, error) {
		gotSpaceID = spaceID
		return nil, nil
	}
	threadRepo.listRecentFn = func(_ context.Context, _ int) ([]*models.Thread, error) {
		recentCalled = true
		return nil, nil
	}
	svc := NewThreadService(threadRepo, noopSpaceRepo())
	ctx := context.Background()

	_, err := svc.ListThreads(ctx, 3, 10)
	require.NoError(t, err)
	assert.Equal(t, uint(3), gotSpaceID)

	_, err = svc.ListThreads(ctx, 0, 10)
	require.NoError(t, err)
	assert.True(t, recentCalled)
}

func TestThreadService_DeleteThread(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		threadRepo := noopThreadRepo()
		threadRepo.deleteFn = func(_ context.Context, _ uint) error {
			return gorm.ErrRecordNotFound
		}
		svc := NewThreadService(threadRepo, noopSpaceRepo())
		assertNotFoundError(t, svc.DeleteThread(ctx, 99))
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		threadRepo := noopThreadRepo()
		var deleted uint
		threadRepo.deleteFn = func(_ context.Context, id uint) error {
			deleted = id
			return nil
		}
		svc := NewThreadService(threadRepo, noopSpaceRepo())
		require.NoError(t, svc.DeleteThread(ctx, 7))
		assert.Equal(t, uint(7), deleted)
	})
}
