package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"github.com/treyloggins4-create/tk/internal/domain"
	apperrors "github.com/treyloggins4-create/tk/pkg/errors"
)

func newTestStore(t *testing.T) *SubmissionStore {
	t.Helper()

	sqlDB, err := sql.Open("sqlite", "file::memory:")
	require.NoError(t, err)
	// in-memory SQLite lives in a single connection
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(sqlite.Dialector{DriverName: "sqlite", Conn: sqlDB}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.ContactSubmission{}))

	return NewSubmissionStore(db)
}

func TestInsertAssignsDefaults(t *testing.T) {
	s := newTestStore(t)

	created, err := s.Insert(context.Background(), &domain.ContactSubmission{
		Name:    "Alice Johnson",
		Email:   "alice@example.com",
		Phone:   "555-0101",
		Service: "power-washing",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, domain.StatusNew, created.Status)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Nil(t, created.UpdatedAt)
}

func TestListAllOrdersNewestFirst(t *testing.T) {
	s := newTestStore(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i, name := range []string{"oldest", "middle", "newest"} {
		_, err := s.Insert(context.Background(), &domain.ContactSubmission{
			Name:      name,
			Email:     name + "@example.com",
			Phone:     "555-0101",
			Service:   "sealing",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}

	subs, err := s.ListAll(context.Background())

	require.NoError(t, err)
	require.Len(t, subs, 3)
	assert.Equal(t, "newest", subs[0].Name)
	assert.Equal(t, "middle", subs[1].Name)
	assert.Equal(t, "oldest", subs[2].Name)
}

func TestListAllEmpty(t *testing.T) {
	s := newTestStore(t)

	subs, err := s.ListAll(context.Background())

	require.NoError(t, err)
	assert.Empty(t, subs)
}

func TestUpdateStatus(t *testing.T) {
	s := newTestStore(t)
	created, err := s.Insert(context.Background(), &domain.ContactSubmission{
		Name:    "Alice Johnson",
		Email:   "alice@example.com",
		Phone:   "555-0101",
		Service: "power-washing",
	})
	require.NoError(t, err)

	updated, err := s.UpdateStatus(context.Background(), created.ID, domain.StatusQuoted)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusQuoted, updated.Status)
	assert.NotNil(t, updated.UpdatedAt)

	// the change is persisted, everything else is untouched
	subs, err := s.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, domain.StatusQuoted, subs[0].Status)
	assert.Equal(t, "Alice Johnson", subs[0].Name)
}

func TestUpdateStatusAnyTransition(t *testing.T) {
	s := newTestStore(t)
	created, err := s.Insert(context.Background(), &domain.ContactSubmission{
		Name:    "Bob Smith",
		Email:   "bob@example.com",
		Phone:   "555-0202",
		Service: "junk-removal",
	})
	require.NoError(t, err)

	// transitions are unconstrained, including moving backwards
	for _, status := range []string{domain.StatusCompleted, domain.StatusNew, domain.StatusCancelled} {
		updated, err := s.UpdateStatus(context.Background(), created.ID, status)
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	s := newTestStore(t)

	_, err := s.UpdateStatus(context.Background(), "some-id", "archived")

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestUpdateStatusUnknownID(t *testing.T) {
	s := newTestStore(t)

	_, err := s.UpdateStatus(context.Background(), "does-not-exist", domain.StatusContacted)

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}
