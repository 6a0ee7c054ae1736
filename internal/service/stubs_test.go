package service

import (
	"context"
	"errors"
	"testing"

	"agora/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// threadRepoStub is a stub for repository.ThreadRepository.
type threadRepoStub struct {
	createFn      func(context.Context, *models.Thread) error
	getByIDFn     func(context.Context, uint) (*models.Thread, error)
	listBySpaceFn func(context.Context, uint, int) ([]*models.Thread, error)
	listRecentFn  func(context.Context, int) ([]*models.Thread, error)
	deleteFn      func(context.Context, uint) error
	appendReplyFn func(context.Context, *models.ThreadReply) error
	getReplyFn    func(context.Context, uint) (*models.ThreadReply, error)
	listRepliesFn func(context.Context, uint) ([]*models.ThreadReply, error)
}

func (s *threadRepoStub) Create(ctx context.Context, thread *models.Thread) error {
	return s.createFn(ctx, thread)
}
func (s *threadRepoStub) GetByID(ctx context.Context, id uint) (*models.Thread, error) {
	return s.getByIDFn(ctx, id)
}
func (s *threadRepoStub) ListBySpace(ctx context.Context, spaceID uint, limit int) ([]*models.Thread, error) {
	return s.listBySpaceFn(ctx, spaceID, limit)
}
func (s *threadRepoStub) ListRecent(ctx context.Context, limit int) ([]*models.Thread, error) {
	return s.listRecentFn(ctx, limit)
}
func (s *threadRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *threadRepoStub) AppendReply(ctx context.Context, reply *models.ThreadReply) error {
	return s.appendReplyFn(ctx, reply)
}
func (s *threadRepoStub) GetReply(ctx context.Context, id uint) (*models.ThreadReply, error) {
	return s.getReplyFn(ctx, id)
}
func (s *threadRepoStub) ListReplies(ctx context.Context, threadID uint) ([]*models.ThreadReply, error) {
	return s.listRepliesFn(ctx, threadID)
}

func noopThreadRepo() *threadRepoStub {
	return &threadRepoStub{
		createFn:      func(_ context.Context, _ *models.Thread) error { return nil },
		getByIDFn:     func(_ context.Context, _ uint) (*models.Thread, error) { return &models.Thread{}, nil },
		listBySpaceFn: func(_ context.Context, _ uint, _ int) ([]*models.Thread, error) { return nil, nil },
		listRecentFn:  func(_ context.Context, _ int) ([]*models.Thread, error) { return nil, nil },
		deleteFn:      func(_ context.Context, _ uint) error { return nil },
		appendReplyFn: func(_ context.Context, _ *models.ThreadReply) error { return nil },
		getReplyFn:    func(_ context.Context, _ uint) (*models.ThreadReply, error) { return &models.ThreadReply{}, nil },
		listRepliesFn: func(_ context.Context, _ uint) ([]*models.ThreadReply, error) { return nil, nil },
	}
}

// spaceRepoStub is a stub for repository.SpaceRepository.
type spaceRepoStub struct {
	createFn    func(context.Context, *models.Space) error
	getByIDFn   func(context.Context, uint) (*models.Space, error)
	getBySlugFn func(context.Context, string) (*models.Space, error)
	listFn      func(context.Context) ([]*models.Space, error)
	updateFn    func(context.Context, *models.Space) error
	deleteFn    func(context.Context, uint) error
}

func (s *spaceRepoStub) Create(ctx context.Context, space *models.Space) error {
	return s.createFn(ctx, space)
}
func (s *spaceRepoStub) GetByID(ctx context.Context, id uint) (*models.Space, error) {
	return s.getByIDFn(ctx, id)
}
func (s *spaceRepoStub) GetBySlug(ctx context.Context, slug string) (*models.Space, error) {
	return s.getBySlugFn(ctx, slug)
}
func (s *spaceRepoStub) List(ctx context.Context) ([]*models.Space, error) {
	return s.listFn(ctx)
}
func (s *spaceRepoStub) Update(ctx context.Context, space *models.Space) error {
	return s.updateFn(ctx, space)
}
func (s *spaceRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopSpaceRepo() *spaceRepoStub {
	return &spaceRepoStub{
		createFn:    func(_ context.Context, _ *models.Space) error { return nil },
		getByIDFn:   func(_ context.Context, _ uint) (*models.Space, error) { return &models.Space{}, nil },
		getBySlugFn: func(_ context.Context, _ string) (*models.Space, error) { return &models.Space{}, nil },
		listFn:      func(_ context.Context) ([]*models.Space, error) { return nil, nil },
		updateFn:    func(_ context.Context, _ *models.Space) error { return nil },
		deleteFn:    func(_ context.Context, _ uint) error { return nil },
	}
}

// channelRepoStub is a stub for repository.ChannelRepository.
type channelRepoStub struct {
	createFn        func(context.Context, *models.Channel) error
	getByIDFn       func(context.Context, uint) (*models.Channel, error)
	listBySpaceFn   func(context.Context, uint) ([]*models.Channel, error)
	deleteFn        func(context.Context, uint) error
	createMessageFn func(context.Context, *models.ChannelMessage) error
	getMessageFn    func(context.Context, uint) (*models.ChannelMessage, error)
	listMessagesFn  func(context.Context, uint, int) ([]*models.ChannelMessage, error)
}

func (s *channelRepoStub) Create(ctx context.Context, channel *models.Channel) error {
	return s.createFn(ctx, channel)
}
func (s *channelRepoStub) GetByID(ctx context.Context, id uint) (*models.Channel, error) {
	return s.getByIDFn(ctx, id)
}
func (s *channelRepoStub) ListBySpace(ctx context.Context, spaceID uint) ([]*models.Channel, error) {
	return s.listBySpaceFn(ctx, spaceID)
}
func (s *channelRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *channelRepoStub) CreateMessage(ctx context.Context, message *models.ChannelMessage) error {
	return s.createMessageFn(ctx, message)
}
func (s *channelRepoStub) GetMessage(ctx context.Context, id uint) (*models.ChannelMessage, error) {
	return s.getMessageFn(ctx, id)
}
func (s *channelRepoStub) ListMessages(ctx context.Context, channelID uint, limit int) ([]*models.ChannelMessage, error) {
	return s.listMessagesFn(ctx, channelID, limit)
}

func noopChannelRepo() *channelRepoStub {
	return &channelRepoStub{
		createFn:        func(_ context.Context, _ *models.Channel) error { return nil },
		getByIDFn:       func(_ context.Context, _ uint) (*models.Channel, error) { return &models.Channel{}, nil },
		listBySpaceFn:   func(_ context.Context, _ uint) ([]*models.Channel, error) { return nil, nil },
		deleteFn:        func(_ context.Context, _ uint) error { return nil },
		createMessageFn: func(_ context.Context, _ *models.ChannelMessage) error { return nil },
		getMessageFn:    func(_ context.Context, _ uint) (*models.ChannelMessage, error) { return &models.ChannelMessage{}, nil },
		listMessagesFn:  func(_ context.Context, _ uint, _ int) ([]*models.ChannelMessage, error) { return nil, nil },
	}
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	createFn        func(context.Context, *models.User) error
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	listFn          func(context.Context, string, int) ([]*models.User, error)
	updateFn        func(context.Context, *models.User) error
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) List(ctx context.Context, search string, limit int) ([]*models.User, error) {
	return s.listFn(ctx, search, limit)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn:        func(_ context.Context, _ *models.User) error { return nil },
		getByIDFn:       func(_ context.Context, _ uint) (*models.User, error) { return &models.User{}, nil },
		getByEmailFn:    func(_ context.Context, _ string) (*models.User, error) { return &models.User{}, nil },
		getByUsernameFn: func(_ context.Context, _ string) (*models.User, error) { return &models.User{}, nil },
		listFn:          func(_ context.Context, _ string, _ int) ([]*models.User, error) { return nil, nil },
		updateFn:        func(_ context.Context, _ *models.User) error { return nil },
	}
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code)
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, models.CodeValidation)
}

func assertNotFoundError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, models.CodeNotFound)
}

func assertConflictError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, models.CodeConflict)
}

func assertUnauthorizedError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, models.CodeUnauthorized)
}
