package service

import (
	"context"
	"errors"
	"strings"

	"agora/internal/models"
	"agora/internal/repository"
	"agora/internal/validation"

	"gorm.io/gorm"
)

// SpaceService manages top-level community spaces.
type SpaceService struct {
	spaceRepo   repository.SpaceRepository
	channelRepo repository.ChannelRepository
}

type CreateSpaceInput struct {
	Name        string
	Description string
	Icon        string
	SortOrder   int
}

type UpdateSpaceInput struct {
	ID          uint
	Name        string
	Description string
	Icon        string
	SortOrder   int
}

// NewSpaceService creates a new SpaceService
func NewSpaceService(spaceRepo repository.SpaceRepository, channelRepo repository.ChannelRepository) *SpaceService {
	return &SpaceService{spaceRepo: spaceRepo, channelRepo: channelRepo}
}

func (s *SpaceService) CreateSpace(ctx context.Context, in CreateSpaceInput) (*models.Space, error) {
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

	space := &models.Space{
		Slug:        slug,
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Icon:        in.Icon,
		SortOrder:   in.SortOrder,
	}
	if err := s.spaceRepo.Create(ctx, space); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, models.NewConflictError("A space with this name already exists")
		}
		return nil, err
	}

	return s.spaceRepo.GetByID(ctx, space.ID)
}

func (s *SpaceService) ListSpaces(ctx context.Context) ([]*models.Space, error) {
	return s.spaceRepo.List(ctx)
}

// GetSpaceBySlug returns the space with its channels attached.
func (s *SpaceService) GetSpaceBySlug(ctx context.Context, slug string) (*models.Space, error) {
	space, err := s.spaceRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Space", slug)
		}
		return nil, err
	}

	channels, err := s.channelRepo.ListBySpace(ctx, space.ID)
	if err != nil {
		return nil, err
	}
	space.Channels = make([]models.Channel, 0, len(channels))
	for _, ch := range channels {
		space.Channels = append(space.Channels, *ch)
	}

	return space, nil
}

// UpdateSpace edits a space's presentation fields. The slug is fixed at
// creation so existing links keep working.
func (s *SpaceService) UpdateSpace(ctx context.Context, in UpdateSpaceInput) (*models.Space, error) {
	space, err := s.spaceRepo.GetByID(ctx, in.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Space", in.ID)
		}
		return nil, err
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, models.NewValidationError("Name is required")
	}
	if len(name) > 100 {
		return nil, models.NewValidationError("Name too long (max 100 characters)")
	}

	space.Name = name
	space.Description = strings.TrimSpace(in.Description)
	space.Icon = in.Icon
	space.SortOrder = in.SortOrder

	if err := s.spaceRepo.Update(ctx, space); err != nil {
		return nil, err
	}
	return s.spaceRepo.GetByID(ctx, space.ID)
}

func (s *SpaceService) DeleteSpace(ctx context.Context, id uint) error {
	if err := s.spaceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Space", id)
		}
		return err
	}
	return nil
}
