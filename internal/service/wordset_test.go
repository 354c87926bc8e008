package service

import (
	"os"
	"path/filepath"
	"testing"

	"lexibot/internal/badwords"
	"lexibot/internal/domain"
	"lexibot/internal/testutil"
	"lexibot/internal/wordstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWordSetService(t *testing.T, maxWords int) (*WordSetService, *wordstore.Store) {
	t.Helper()
	logger := testutil.NewTestLogger()
	dataDir := t.TempDir()

	store, err := wordstore.New(dataDir, logger)
	require.NoError(t, err)
	require.NoError(t, store.Create(wordstore.DefaultCollection, testutil.SampleWords()))

	registry, err := wordstore.NewRegistry(dataDir, store, logger)
	require.NoError(t, err)

	blocklist := filepath.Join(dataDir, "bad_words.json")
	require.NoError(t, os.WriteFile(blocklist, []byte(`["damn"]`), 0o644))
	filter := badwords.Load(blocklist, logger)

	svc := NewWordSetService(store, registry, wordstore.NewAllocator(), filter, maxWords, logger)
	return svc, store
}

func TestWordSetService_DefaultsToSharedCollection(t *testing.T) {
	svc, _ := newWordSetService(t, 50)

	assert.Equal(t, wordstore.DefaultCollection, svc.ActiveCollection(42))
	assert.False(t, svc.HasPersonalSet(42))
	assert.Len(t, svc.Words(42), len(testutil.SampleWords()))
}

func TestWordSetService_CreatePersonalSet(t *testing.T) {
	svc, store := newWordSetService(t, 50)

	name, err := svc.CreatePersonalSet(123456789, "Alice")
	require.NoError(t, err)
	assert.True(t, store.Exists(name))
	assert.Equal(t, name, svc.ActiveCollection(123456789))
	assert.True(t, svc.HasPersonalSet(123456789))

	own, err := svc.PersonalSets(123456789, "Alice")
	require.NoError(t, err)
	assert.Contains(t, own, name)
}

func TestWordSetService_CreatePersonalSetCleansUpOnBindFailure(t *testing.T) {
	logger := testutil.NewTestLogger()
	dataDir := t.TempDir()

	store, err := wordstore.New(dataDir, logger)
	require.NoError(t, err)
	require.NoError(t, store.Create(wordstore.DefaultCollection, testutil.SampleWords()))

	registry, err := wordstore.NewRegistry(dataDir, store, logger)
	require.NoError(t, err)

	// a directory squatting on the registry blob path makes every flush,
	// and with it the binding, fail
	require.NoError(t, os.Mkdir(filepath.Join(dataDir, "config.json"), 0o755))

	filter := badwords.Load(filepath.Join(dataDir, "bad_words.json"), logger)
	svc := NewWordSetService(store, registry, wordstore.NewAllocator(), filter, 50, logger)

	_, err = svc.CreatePersonalSet(42, "Alice")
	require.Error(t, err)

	// the freshly created collection file must not be left behind
	names, err := store.Collections()
	require.NoError(t, err)
	assert.Equal(t, []string{wordstore.DefaultCollection}, names)
	assert.Equal(t, wordstore.DefaultCollection, svc.ActiveCollection(42))
}

func TestWordSetService_AddWordToDefaultFails(t *testing.T) {
	svc, _ := newWordSetService(t, 50)

	err := svc.AddWord(42, "tree", "дерево")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestWordSetService_AddWordRespectsCap(t *testing.T) {
	maxWords := 3
	svc, store := newWordSetService(t, maxWords)

	name, err := svc.CreatePersonalSet(42, "Alice")
	require.NoError(t, err)

	words := []string{"one", "two", "three"}
	for _, w := range words {
		require.NoError(t, svc.AddWord(42, w, w))
	}

	err = svc.AddWord(42, "four", "четыре")
	assert.ErrorIs(t, err, domain.ErrLimitExceeded)

	// the overflowing add must leave the collection untouched
	stored, err := store.Load(name)
	require.NoError(t, err)
	assert.Len(t, stored, maxWords)
}

func TestWordSetService_AddWordBlocked(t *testing.T) {
	svc, _ := newWordSetService(t, 50)

	_, err := svc.CreatePersonalSet(42, "Alice")
	require.NoError(t, err)

	err = svc.AddWord(42, "damn", "чёрт")
	assert.ErrorIs(t, err, domain.ErrBadWord)
}

func TestWordSetService_DeleteWord(t *testing.T) {
	svc, _ := newWordSetService(t, 50)

	_, err := svc.CreatePersonalSet(42, "Alice")
	require.NoError(t, err)
	require.NoError(t, svc.AddWord(42, "cat", "кошка"))

	removed, err := svc.DeleteWord(42, "CAT")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = svc.DeleteWord(42, "ghost")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestWordSetService_DeleteSetRevertsToDefault(t *testing.T) {
	svc, store := newWordSetService(t, 50)

	name, err := svc.CreatePersonalSet(42, "Alice")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSet(42))
	assert.False(t, store.Exists(name))
	assert.Equal(t, wordstore.DefaultCollection, svc.ActiveCollection(42))
}

func TestWordSetService_SelectCollection(t *testing.T) {
	svc, store := newWordSetService(t, 50)
	require.NoError(t, store.Create("animals.json", testutil.SampleWords()))

	require.NoError(t, svc.SelectCollection(42, "animals", "Alice"))
	assert.Equal(t, "animals.json", svc.ActiveCollection(42))

	err := svc.SelectCollection(42, "missing", "Alice")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
