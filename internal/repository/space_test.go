package repository

import (
	"context"
	"testing"

	"agora/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSpaceRepository_List_OrderAndCounts(t *testing.T) {
	db := newTestDB(t)
	spaceRepo := NewSpaceRepository(db)
	channelRepo := NewChannelRepository(db)
	_ = NewThreadRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "alice")

	second := &models.Space{Slug: "help", Name: "Help", SortOrder: 2}
	first := &models.Space{Slug: "general", Name: "General", SortOrder: 1}
	require.NoError(t, spaceRepo.Create(ctx, second))
	require.NoError(t, spaceRepo.Create(ctx, first))

	require.NoError(t, channelRepo.Create(ctx, &models.Channel{Name: "Lounge", Slug: "lounge", SpaceID: first.ID}))
	require.NoError(t, channelRepo.Create(ctx, &models.Channel{Name: "Random", Slug: "random", SpaceID: first.ID}))
	seedThread(t, db, first.ID, user.ID)

	spaces, err := spaceRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, spaces, 2)

	assert.Equal(t, "general", spaces[0].Slug, "sort_order decides listing order, not creation order")
	assert.Equal(t, 2, spaces[0].ChannelCount)
	assert.Equal(t, 1, spaces[0].ThreadCount)
	assert.Equal(t, "help", spaces[1].Slug)
	assert.Equal(t, 0, spaces[1].ChannelCount)
	assert.Equal(t, 0, spaces[1].ThreadCount)
}

func TestSpaceRepository_Create_DuplicateSlug(t *testing.T) {
	db := newTestDB(t)
	repo := NewSpaceRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Space{Slug: "general", Name: "General"}))

	err := repo.Create(ctx, &models.Space{Slug: "general", Name: "Also General"})
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
}

func TestSpaceRepository_GetBySlug(t *testing.T) {
	db := newTestDB(t)
	repo := NewSpaceRepository(db)
	ctx := context.Background()

	seedSpace(t, db, "general")

	space, err := repo.GetBySlug(ctx, "general")
	require.NoError(t, err)
	assert.Equal(t, "general", space.Slug)

	_, err = repo.GetBySlug(ctx, "nope")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSpaceRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := NewSpaceRepository(db)
	ctx := context.Background()

	space := seedSpace(t, db, "general")

	require.NoError(t, repo.Delete(ctx, space.ID))
	assert.ErrorIs(t, repo.Delete(ctx, space.ID), gorm.ErrRecordNotFound)
}
