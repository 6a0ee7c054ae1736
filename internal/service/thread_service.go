// Package service contains business logic for the application.
package service

import (
	"context"
	"errors"
	"strings"

	"agora/internal/models"
	"agora/internal/observability"
	"agora/internal/repository"

	"gorm.io/gorm"
)

const (
	maxThreadTitleLen = 200
	maxThreadBodyLen  = 20000
	maxReplyLen       = 10000
)

// ThreadService manages discussion threads and their replies.
type ThreadService struct {
	threadRepo repository.ThreadRepository
	spaceRepo  repository.SpaceRepository
}

type CreateThreadInput struct {
	UserID  uint
	SpaceID uint
	Title   string
	Content string
}

type AppendReplyInput struct {
	UserID   uint
	ThreadID uint
	Content  string
}

// NewThreadService creates a new ThreadService
func NewThreadService(threadRepo repository.ThreadRepository, spaceRepo repository.SpaceRepository) *ThreadService {
	return &ThreadService{threadRepo: threadRepo, spaceRepo: spaceRepo}
}

func (s *ThreadService) CreateThread(ctx context.Context, in CreateThreadInput) (*models.Thread, error) {
	title := strings.TrimSpace(in.Title)
	content := strings.TrimSpace(in.Content)

	if title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if len(title) > maxThreadTitleLen {
		return nil, models.NewValidationError("Title too long (max 200 characters)")
	}
	if content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(content) > maxThreadBodyLen {
		return nil, models.NewValidationError("Content too long (max 20000 characters)")
	}

	if _, err := s.spaceRepo.GetByID(ctx, in.SpaceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Space", in.SpaceID)
		}
		return nil, err
	}

	thread := &models.Thread{
		Title:   title,
		Content: content,
		SpaceID: in.SpaceID,
		UserID:  in.UserID,
	}
	if err := s.threadRepo.Create(ctx, thread); err != nil {
		return nil, err
	}

	return s.threadRepo.GetByID(ctx, thread.ID)
}

func (s *ThreadService) GetThread(ctx context.Context, id uint) (*models.Thread, error) {
	thread, err := s.threadRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Thread", id)
		}
		return nil, err
	}
	return thread, nil
}

// ListThreads returns threads ordered by most recent activity. A zero spaceID
// lists across all spaces.
func (s *ThreadService) ListThreads(ctx context.Context, spaceID uint, limit int) ([]*models.Thread, error) {
	if spaceID == 0 {
		return s.threadRepo.ListRecent(ctx, limit)
	}
	return s.threadRepo.ListBySpace(ctx, spaceID, limit)
}

// DeleteThread removes a thread and its replies. The route guard restricts
// this to admins; authors cannot delete their own threads.
func (s *ThreadService) DeleteThread(ctx context.Context, id uint) error {
	if err := s.threadRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Thread", id)
		}
		return err
	}
	return nil
}

// AppendReply posts a reply and advances the parent thread's reply count and
// activity timestamp atomically. Validation failures leave no trace in storage.
func (s *ThreadService) AppendReply(ctx context.Context, in AppendReplyInput) (*models.ThreadReply, error) {
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(content) > maxReplyLen {
		return nil, models.NewValidationError("Reply too long (max 10000 characters)")
	}

	reply := &models.ThreadReply{
		Content:  content,
		ThreadID: in.ThreadID,
		UserID:   in.UserID,
	}
	if err := s.threadRepo.AppendReply(ctx, reply); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Thread", in.ThreadID)
		}
		return nil, err
	}
	observability.ThreadRepliesTotal.Inc()

	return s.threadRepo.GetReply(ctx, reply.ID)
}

// ListReplies returns a thread's replies oldest first. An unknown thread
// yields an empty list rather than an error.
func (s *ThreadService) ListReplies(ctx context.Context, threadID uint) ([]*models.ThreadReply, error) {
	return s.threadRepo.ListReplies(ctx, threadID)
}
