package service

import (
	"context"
	"errors"
	"strings"

	"agora/internal/models"
	"agora/internal/repository"
	"agora/internal/validation"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	defaultUserPageSize = 20
	maxUserPageSize     = 100
)

// UserService manages registration, authentication, and profiles.
type UserService struct {
	userRepo repository.UserRepository
}

type RegisterInput struct {
	Email       string
	Password    string
	Username    string
	DisplayName string
}

type UpdateProfileInput struct {
	UserID      uint
	DisplayName string
	Bio         string
	AvatarURL   string
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	// Usernames are stored slugified so the unique index is effectively
	// case-insensitive: "Alice" and "alice" are the same account.
	username := validation.Slugify(in.Username)
	displayName := strings.TrimSpace(in.DisplayName)

	if err := validation.ValidateEmail(email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateUsername(username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if displayName == "" {
		displayName = username
	}
	if len(displayName) > 100 {
		return nil, models.NewValidationError("Display name too long (max 100 characters)")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Email:        email,
		Username:     username,
		DisplayName:  displayName,
		PasswordHash: string(hash),
		Role:         models.RoleMember,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, models.NewConflictError("Email or username already in use")
		}
		return nil, err
	}

	return user, nil
}

// Authenticate verifies credentials and returns the user. The same error is
// returned for an unknown email and a wrong password.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewUnauthorizedError("Invalid email or password")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, models.NewUnauthorizedError("Invalid email or password")
	}

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User", id)
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	// Stored usernames are slugified at registration, so lowercase the
	// lookup to keep profile URLs case-insensitive.
	username = strings.ToLower(strings.TrimSpace(username))
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User", username)
		}
		return nil, err
	}
	// Public profile: never expose contact or role details.
	user.Email = ""
	user.Role = ""
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context, search string, limit int) ([]*models.User, error) {
	if limit <= 0 {
		limit = defaultUserPageSize
	}
	if limit > maxUserPageSize {
		limit = maxUserPageSize
	}
	return s.userRepo.List(ctx, strings.TrimSpace(search), limit)
}

func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User", in.UserID)
		}
		return nil, err
	}

	displayName := strings.TrimSpace(in.DisplayName)
	if displayName == "" {
		return nil, models.NewValidationError("Display name is required")
	}
	if len(displayName) > 100 {
		return nil, models.NewValidationError("Display name too long (max 100 characters)")
	}
	if len(in.Bio) > 500 {
		return nil, models.NewValidationError("Bio too long (max 500 characters)")
	}

	user.DisplayName = displayName
	user.Bio = strings.TrimSpace(in.Bio)
	user.AvatarURL = strings.TrimSpace(in.AvatarURL)

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// IsAdmin reports whether the user holds the admin role.
func (s *UserService) IsAdmin(ctx context.Context, userID uint) (bool, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return false, err
	}
	return user.Role == models.RoleAdmin, nil
}
