package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockCleanupRepository struct {
	expirationTime time.Time
	removed        int64
}

func (m *mockCleanupRepository) RemoveReadOlderThan(_ context.Context, expirationTime time.Time) (int64, error) {
	m.expirationTime = expirationTime
	return m.removed, nil
}

func Test_NewNotificationsCleaner_WhenExpirationNotPositive_ShouldFail(t *testing.T) {

	_, err := NewNotificationsCleaner(&mockCleanupRepository{}, 0)
	assert.Error(t, err)
}

func Test_CleanOldNotifications_ShouldUseConfiguredExpiration(t *testing.T) {

	repo := &mockCleanupRepository{removed: 3}
	cleaner, err := NewNotificationsCleaner(repo, 30)
	require.NoError(t, err)
	defer cleaner.Stop()

	cleaner.cleanOldNotifications()

	expected := time.Now().Add(-30 * 24 * time.Hour)
	assert.WithinDuration(t, expected, repo.expirationTime, time.Minute)
}
