package service

import (
	"testing"

	"lexibot/internal/testutil"
	"lexibot/internal/wordstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newModerationService(t *testing.T, users *testutil.MockUserRepository, stats *testutil.MockStatsRepository, bans *testutil.MockBanRepository) (*ModerationService, *wordstore.Registry) {
	t.Helper()
	logger := testutil.NewTestLogger()
	dataDir := t.TempDir()

	store, err := wordstore.New(dataDir, logger)
	require.NoError(t, err)
	require.NoError(t, store.Create(wordstore.DefaultCollection, testutil.SampleWords()))
	registry, err := wordstore.NewRegistry(dataDir, store, logger)
	require.NoError(t, err)

	return NewModerationService(users, stats, bans, registry, logger), registry
}

func TestModerationService_BanAndCheck(t *testing.T) {
	bans := new(testutil.MockBanRepository)
	bans.On("Ban", int64(42)).Return(nil)
	bans.On("IsBanned", int64(42)).Return(true, nil)

	svc, _ := newModerationService(t, new(testutil.MockUserRepository), new(testutil.MockStatsRepository), bans)

	require.NoError(t, svc.Ban(42))
	banned, err := svc.IsBanned(42)
	require.NoError(t, err)
	assert.True(t, banned)
	bans.AssertExpectations(t)
}

func TestModerationService_DeleteUser(t *testing.T) {
	users := new(testutil.MockUserRepository)
	stats := new(testutil.MockStatsRepository)
	users.On("Delete", int64(42)).Return(true, nil)
	stats.On("DeleteUser", int64(42)).Return(true, nil)

	svc, registry := newModerationService(t, users, stats, new(testutil.MockBanRepository))
	require.NoError(t, registry.Set(42, wordstore.DefaultCollection, "Alice"))

	existed, err := svc.DeleteUser(42)
	require.NoError(t, err)
	assert.True(t, existed)
	assert.Equal(t, "", registry.DisplayName(42))
	users.AssertExpectations(t)
	stats.AssertExpectations(t)
}

func TestModerationService_DeleteUnknownUser(t *testing.T) {
	users := new(testutil.MockUserRepository)
	stats := new(testutil.MockStatsRepository)
	users.On("Delete", int64(99)).Return(false, nil)
	stats.On("DeleteUser", int64(99)).Return(false, nil)

	svc, _ := newModerationService(t, users, stats, new(testutil.MockBanRepository))

	existed, err := svc.DeleteUser(99)
	require.NoError(t, err)
	assert.False(t, existed)
}
