package repository

import (
	"fmt"
	"testing"

	"agora/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

// newTestDB opens a per-test in-memory sqlite database. cache=shared keeps
// all connections in the pool pointed at the same database; the pool is
// capped at a single connection so concurrent transactions serialize instead
// of failing with SQLITE_BUSY.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Space{},
		&models.Channel{},
		&models.ChannelMessage{},
		&models.Thread{},
		&models.ThreadReply{},
	))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Email:        username + "@example.com",
		Username:     username,
		DisplayName:  username,
		PasswordHash: "x",
		Role:         models.RoleMember,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedSpace(t *testing.T, db *gorm.DB, slug string) *models.Space {
	t.Helper()
	space := &models.Space{Slug: slug, Name: slug}
	require.NoError(t, db.Create(space).Error)
	return space
}
