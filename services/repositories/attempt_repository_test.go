package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kurs-wjo/wjo_api/model"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Question{}, &model.Attempt{}))
	return db
}

func TestAttemptUpsertStreak(t *testing.T) {
	repo := NewAttemptRepository(testDB(t))

	// First contact creates the row.
	require.NoError(t, repo.Upsert("u1", "q1", true))
	attempt, err := repo.Get("u1", "q1")
	require.NoError(t, err)
	assert.True(t, attempt.IsCorrect)
	assert.Equal(t, 1, attempt.ConsecutiveCorrect)

	// Correct answers extend the streak in place.
	require.NoError(t, repo.Upsert("u1", "q1", true))
	require.NoError(t, repo.Upsert("u1", "q1", true))
	attempt, err = repo.Get("u1", "q1")
	require.NoError(t, err)
	assert.Equal(t, 3, attempt.ConsecutiveCorrect)

	// A miss resets it to zero.
	require.NoError(t, repo.Upsert("u1", "q1", false))
	attempt, err = repo.Get("u1", "q1")
	require.NoError(t, err)
	assert.False(t, attempt.IsCorrect)
	assert.Equal(t, 0, attempt.ConsecutiveCorrect)

	// Still one row per (user, question).
	attempts, err := repo.GetByUser("u1")
	require.NoError(t, err)
	assert.Len(t, attempts, 1)
}

func TestAttemptUpsertIsolatedPerUser(t *testing.T) {
	repo := NewAttemptRepository(testDB(t))

	require.NoError(t, repo.Upsert("u1", "q1", true))
	require.NoError(t, repo.Upsert("u2", "q1", false))

	a1, err := repo.Get("u1", "q1")
	require.NoError(t, err)
	assert.Equal(t, 1, a1.ConsecutiveCorrect)

	a2, err := repo.Get("u2", "q1")
	require.NoError(t, err)
	assert.Equal(t, 0, a2.ConsecutiveCorrect)
}

func TestWasAnsweredOnDate(t *testing.T) {
	repo := NewAttemptRepository(testDB(t))

	// Unknown pair is simply false, not an error.
	answered, err := repo.WasAnsweredOnDate("u1", "q1", time.Now())
	require.NoError(t, err)
	assert.False(t, answered)

	require.NoError(t, repo.Upsert("u1", "q1", true))

	answered, err = repo.WasAnsweredOnDate("u1", "q1", time.Now())
	require.NoError(t, err)
	assert.True(t, answered)

	answered, err = repo.WasAnsweredOnDate("u1", "q1", time.Now().AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.False(t, answered, "tomorrow counts as unanswered again")
}

func TestDeleteByUser(t *testing.T) {
	repo := NewAttemptRepository(testDB(t))

	require.NoError(t, repo.Upsert("u1", "q1", true))
	require.NoError(t, repo.Upsert("u1", "q2", true))
	require.NoError(t, repo.Upsert("u2", "q1", true))

	require.NoError(t, repo.DeleteByUser("u1"))

	attempts, err := repo.GetByUser("u1")
	require.NoError(t, err)
	assert.Empty(t, attempts)

	attempts, err = repo.GetByUser("u2")
	require.NoError(t, err)
	assert.Len(t, attempts, 1, "other users keep their attempts")
}
