package repository

import (
	"context"
	"time"

	"agora/internal/models"
	"agora/internal/observability"

	"gorm.io/gorm"
)

// MaxThreadPageSize caps the number of threads returned by a single listing.
const MaxThreadPageSize = 50

// ThreadRepository defines interface for thread and reply operations
type ThreadRepository interface {
	Create(ctx context.Context, thread *models.Thread) error
	GetByID(ctx context.Context, id uint) (*models.Thread, error)
	ListBySpace(ctx context.Context, spaceID uint, limit int) ([]*models.Thread, error)
	ListRecent(ctx context.Context, limit int) ([]*models.Thread, error)
	Delete(ctx context.Context, id uint) error

	AppendReply(ctx context.Context, reply *models.ThreadReply) error
	GetReply(ctx context.Context, id uint) (*models.ThreadReply, error)
	ListReplies(ctx context.Context, threadID uint) ([]*models.ThreadReply, error)
}

type threadRepository struct {
	db *gorm.DB
}

// NewThreadRepository creates a new ThreadRepository
func NewThreadRepository(db *gorm.DB) ThreadRepository {
	return &threadRepository{db: db}
}

func (r *threadRepository) Create(ctx context.Context, thread *models.Thread) error {
	defer observability.TrackQuery("create", "threads")()
	if thread.LastActivityAt.IsZero() {
		thread.LastActivityAt = time.Now().UTC()
	}
	return r.db.WithContext(ctx).Create(thread).Error
}

func (r *threadRepository) GetByID(ctx context.Context, id uint) (*models.Thread, error) {
	defer observability.TrackQuery("get", "threads")()
	var thread models.Thread
	err := r.db.WithContext(ctx).
		Preload("User", func(db *gorm.DB) *gorm.DB { return db.Select(models.AuthorColumns) }).
		Preload("Space").
		First(&thread, id).Error
	if err != nil {
		return nil, err
	}
	return &thread, nil
}

func (r *threadRepository) ListBySpace(ctx context.Context, spaceID uint, limit int) ([]*models.Thread, error) {
	defer observability.TrackQuery("list", "threads")()
	var threads []*models.Thread
	err := r.listQuery(ctx, limit).Where("space_id = ?", spaceID).Find(&threads).Error
	return threads, err
}

func (r *threadRepository) ListRecent(ctx context.Context, limit int) ([]*models.Thread, error) {
	defer observability.TrackQuery("list", "threads")()
	var threads []*models.Thread
	err := r.listQuery(ctx, limit).Find(&threads).Error
	return threads, err
}

// listQuery orders by recent activity with id as a tiebreaker so ordering is
// stable when two threads share a timestamp.
func (r *threadRepository) listQuery(ctx context.Context, limit int) *gorm.DB {
	if limit <= 0 || limit > MaxThreadPageSize {
		limit = MaxThreadPageSize
	}
	return r.db.WithContext(ctx).
		Preload("User", func(db *gorm.DB) *gorm.DB { return db.Select(models.AuthorColumns) }).
		Preload("Space", func(db *gorm.DB) *gorm.DB { return db.Select(models.SpaceSummaryColumns) }).
		Order("last_activity_at desc, id desc").
		Limit(limit)
}

func (r *threadRepository) Delete(ctx context.Context, id uint) error {
	defer observability.TrackQuery("delete", "threads")()
	res := r.db.WithContext(ctx).Delete(&models.Thread{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AppendReply inserts the reply and advances the parent thread's aggregates
// in one transaction. The counter is bumped with a relative SQL expression so
// concurrent appends never lose updates; if the thread row is gone the whole
// transaction rolls back and the reply is not persisted.
func (r *threadRepository) AppendReply(ctx context.Context, reply *models.ThreadReply) error {
	defer observability.TrackQuery("append_reply", "threads")()
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(reply).Error; err != nil {
			return err
		}
		res := tx.Model(&models.Thread{}).
			Where("id = ?", reply.ThreadID).
			Updates(map[string]interface{}{
				"reply_count":      gorm.Expr("reply_count + 1"),
				"last_activity_at": time.Now().UTC(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *threadRepository) GetReply(ctx context.Context, id uint) (*models.ThreadReply, error) {
	defer observability.TrackQuery("get", "thread_replies")()
	var reply models.ThreadReply
	err := r.db.WithContext(ctx).
		Preload("User", func(db *gorm.DB) *gorm.DB { return db.Select(models.AuthorColumns) }).
		First(&reply, id).Error
	if err != nil {
		return nil, err
	}
	return &reply, nil
}

// ListReplies returns the full reply log in chronological order. A missing
// thread yields an empty slice, not an error.
func (r *threadRepository) ListReplies(ctx context.Context, threadID uint) ([]*models.ThreadReply, error) {
	defer observability.TrackQuery("list", "thread_replies")()
	var replies []*models.ThreadReply
	err := r.db.WithContext(ctx).
		Preload("User", func(db *gorm.DB) *gorm.DB { return db.Select(models.AuthorColumns) }).
		Where("thread_id = ?", threadID).
		Order("created_at asc, id asc").
		Find(&replies).Error
	return replies, err
}
