package repository

import (
	"context"

	"agora/internal/models"
	"agora/internal/observability"

	"gorm.io/gorm"
)

// SpaceRepository defines interface for space operations
type SpaceRepository interface {
	Create(ctx context.Context, space *models.Space) error
	GetByID(ctx context.Context, id uint) (*models.Space, error)
	GetBySlug(ctx context.Context, slug string) (*models.Space, error)
	List(ctx context.Context) ([]*models.Space, error)
	Update(ctx context.Context, space *models.Space) error
	Delete(ctx context.Context, id uint) error
}

type spaceRepository struct {
	db *gorm.DB
}

// NewSpaceRepository creates a new SpaceRepository
func NewSpaceRepository(db *gorm.DB) SpaceRepository {
	return &spaceRepository{db: db}
}

func (r *spaceRepository) Create(ctx context.Context, space *models.Space) error {
	defer observability.TrackQuery("create", "spaces")()
	return r.db.WithContext(ctx).Create(space).Error
}

func (r *spaceRepository) GetByID(ctx context.Context, id uint) (*models.Space, error) {
	defer observability.TrackQuery("get", "spaces")()
	var space models.Space
	if err := r.withCounts(ctx).First(&space, "spaces.id = ?", id).Error; err != nil {
		return nil, err
	}
	return &space, nil
}

func (r *spaceRepository) GetBySlug(ctx context.Context, slug string) (*models.Space, error) {
	defer observability.TrackQuery("get", "spaces")()
	var space models.Space
	if err := r.withCounts(ctx).First(&space, "spaces.slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &space, nil
}

// List returns all spaces ordered by sort order, with channel and thread
// counts computed per space.
func (r *spaceRepository) List(ctx context.Context) ([]*models.Space, error) {
	defer observability.TrackQuery("list", "spaces")()
	var spaces []*models.Space
	err := r.withCounts(ctx).Order("spaces.sort_order asc, spaces.id asc").Find(&spaces).Error
	return spaces, err
}

func (r *spaceRepository) withCounts(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.Space{}).
		Select("spaces.*, " +
			"(SELECT COUNT(*) FROM channels WHERE channels.space_id = spaces.id) AS channel_count, " +
			"(SELECT COUNT(*) FROM threads WHERE threads.space_id = spaces.id) AS thread_count")
}

func (r *spaceRepository) Update(ctx context.Context, space *models.Space) error {
	defer observability.TrackQuery("update", "spaces")()
	return r.db.WithContext(ctx).Save(space).Error
}

func (r *spaceRepository) Delete(ctx context.Context, id uint) error {
	defer observability.TrackQuery("delete", "spaces")()
	res := r.db.WithContext(ctx).Delete(&models.Space{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
