package repository

import (
	"context"
	"fmt"
	"regexp"
	"sync"
	"testing"
	"time"

	"agora/internal/models"
	"agora/internal/observability"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedThread(t *testing.T, db *gorm.DB, spaceID, userID uint) *models.Thread {
	t.Helper()
	repo := NewThreadRepository(db)
	thread := &models.Thread{
		Title:   "First topic",
		Content: "Opening post",
		SpaceID: spaceID,
		UserID:  userID,
	}
	require.NoError(t, repo.Create(context.Background(), thread))
	return thread
}

func TestThreadRepository_Create_InitializesActivity(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice")
	space := seedSpace(t, db, "general")

	thread := seedThread(t, db, space.ID, user.ID)

	assert.Equal(t, 0, thread.ReplyCount)
	assert.False(t, thread.LastActivityAt.IsZero())
}

func TestThreadRepository_AppendReply_Sequential(t *testing.T) {
	db := newTestDB(t)
	repo := NewThreadRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "alice")
	space := seedSpace(t, db, "general")
	thread := seedThread(t, db, space.ID, user.ID)
	createdActivity := thread.LastActivityAt

	for i := 0; i < 50; i++ {
		reply := &models.ThreadReply{
			Content:  fmt.Sprintf("reply %d", i),
			ThreadID: thread.ID,
			UserID:   user.ID,
		}
		require.NoError(t, repo.AppendReply(ctx, reply))
	}

	got, err := repo.GetByID(ctx, thread.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, got.ReplyCount)
	assert.False(t, got.LastActivityAt.Before(createdActivity))

	replies, err := repo.ListReplies(ctx, thread.ID)
	require.NoError(t, err)
	assert.Len(t, replies, 50)

	// The counter must agree with the actual number of rows.
	var count int64
	require.NoError(t, db.Model(&models.ThreadReply{}).Where("thread_id = ?", thread.ID).Count(&count).Error)
	assert.EqualValues(t, got.ReplyCount, count)
}

func TestThreadRepository_AppendReply_Concurrent(t *testing.T) {
	db := newTestDB(t)
	repo := NewThreadRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "alice")
	space := seedSpace(t, db, "general")
	thread := seedThread(t, db, space.ID, user.ID)

	const writers = 50
	var wg sync.WaitGroup
	errs := make(chan error, writers)

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			errs <- repo.AppendReply(ctx, &models.ThreadReply{
				Content:  fmt.Sprintf("concurrent reply %d", n),
				ThreadID: thread.ID,
				UserID:   user.ID,
			})
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	got, err := repo.GetByID(ctx, thread.ID)
	require.NoError(t, err)
	assert.Equal(t, writers, got.ReplyCount, "no increments may be lost under concurrency")

	replies, err := repo.ListReplies(ctx, thread.ID)
	require.NoError(t, err)
	assert.Len(t, replies, writers)
}

func TestThreadRepository_AppendReply_MissingThread(t *testing.T) {
	db := newTestDB(t)
	repo := NewThreadRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "alice")

	err := repo.AppendReply(ctx, &models.ThreadReply{
		Content:  "orphan",
		ThreadID: 999,
		UserID:   user.ID,
	})
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// The insert must have been rolled back with the failed counter update.
	var count int64
	require.NoError(t, db.Model(&models.ThreadReply{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestThreadRepository_AppendReply_RollsBackOnMissingThread_Postgres(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewThreadRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "thread_replies"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "threads"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.AppendReply(ctx, &models.ThreadReply{Content: "orphan", ThreadID: 42, UserID: 1})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestThreadRepository_ListReplies_ChronologicalOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewThreadRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "alice")
	space := seedSpace(t, db, "general")
	thread := seedThread(t, db, space.ID, user.ID)

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.AppendReply(ctx, &models.ThreadReply{
			Content:  fmt.Sprintf("reply %d", i),
			ThreadID: thread.ID,
			UserID:   user.ID,
		}))
	}

	replies, err := repo.ListReplies(ctx, thread.ID)
	require.NoError(t, err)
	require.Len(t, replies, 5)
	for i, reply := range replies {
		assert.Equal(t, fmt.Sprintf("reply %d", i), reply.Content)
		assert.Equal(t, "alice", reply.User.Username)
		assert.Empty(t, reply.User.Email, "author projection must not expose email")
	}
}

func TestThreadRepository_ListReplies_MissingThreadIsEmpty(t *testing.T) {
	db := newTestDB(t)
	repo := NewThreadRepository(db)

	replies, err := repo.ListReplies(context.Background(), 999)
	require.NoError(t, err)
	assert.Empty(t, replies)
}

func TestThreadRepository_ListBySpace_RecentActivityFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewThreadRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "alice")
	space := seedSpace(t, db, "general")

	older := seedThread(t, db, space.ID, user.ID)
	newer := seedThread(t, db, space.ID, user.ID)

	// Push the older thread's timestamps behind, then reply to it so it
	// jumps back to the top of the feed.
	past := time.Now().UTC().Add(-time.Hour)
	require.NoError(t, db.Model(&models.Thread{}).Where("id = ?", older.ID).
		Update("last_activity_at", past).Error)

	threads, err := repo.ListBySpace(ctx, space.ID, 10)
	require.NoError(t, err)
	require.Len(t, threads, 2)
	assert.Equal(t, newer.ID, threads[0].ID)
	require.NotNil(t, threads[0].Space, "listings inline the space")
	assert.Equal(t, space.Slug, threads[0].Space.Slug)
	assert.Equal(t, space.Name, threads[0].Space.Name)

	require.NoError(t, repo.AppendReply(ctx, &models.ThreadReply{
		Content:  "bump",
		ThreadID: older.ID,
		UserID:   user.ID,
	}))

	threads, err = repo.ListBySpace(ctx, space.ID, 10)
	require.NoError(t, err)
	require.Len(t, threads, 2)
	assert.Equal(t, older.ID, threads[0].ID, "replying must move a thread to the top")
	assert.Equal(t, 1, threads[0].ReplyCount)
}

func TestThreadRepository_RecordsQueryLatency(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice")
	space := seedSpace(t, db, "general")
	seedThread(t, db, space.ID, user.ID)

	n := testutil.CollectAndCount(observability.DatabaseQueryLatency, "agora_database_query_latency_seconds")
	assert.GreaterOrEqual(t, n, 1, "repository calls must record query latency")
}

func TestThreadRepository_List_CapsPageSize(t *testing.T) {
	db := newTestDB(t)
	repo := NewThreadRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "alice")
	space := seedSpace(t, db, "general")
	for i := 0; i < MaxThreadPageSize+5; i++ {
		seedThread(t, db, space.ID, user.ID)
	}

	threads, err := repo.ListRecent(ctx, 1000)
	require.NoError(t, err)
	assert.Len(t, threads, MaxThreadPageSize)

	threads, err = repo.ListRecent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, threads, MaxThreadPageSize)
}
