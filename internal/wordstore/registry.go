package wordstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"lexibot/internal/domain"

	"go.uber.org/zap"
)

// registryEntry is one persisted user -> collection binding
type registryEntry struct {
	Collection  string `json:"collection"`
	DisplayName string `json:"display_name"`
}

type registryFile struct {
	Users map[string]registryEntry `json:"users"`
}

// Registry remembers which collection is active for each user. The
// full mapping lives in memory and is rewritten to a single JSON blob
// on every change; a lone bot process is the only writer.
type Registry struct {
	path   string
	store  *Store
	logger *zap.Logger

	mu      sync.RWMutex
	entries map[int64]registryEntry
}

// NewRegistry loads the registry blob from dataDir/config.json.
// A missing or corrupt blob starts the registry empty rather than
// refusing to boot.
func NewRegistry(dataDir string, store *Store, logger *zap.Logger) (*Registry, error) {
	r := &Registry{
		path:    filepath.Join(dataDir, "config.json"),
		store:   store,
		logger:  logger,
		entries: make(map[int64]registryEntry),
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read registry: %w", domain.ErrIO)
		}
		return r, nil
	}

	var f registryFile
	if err := json.Unmarshal(data, &f); err != nil {
		logger.Error("Corrupt collection registry, starting empty", zap.Error(err))
		return r, nil
	}
	for id, entry := range f.Users {
		userID, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			logger.Warn("Skipping registry entry with bad user id", zap.String("user_id", id))
			continue
		}
		r.entries[userID] = entry
	}
	return r, nil
}

// Get resolves the active collection, falling back to the default
// for users who never picked one.
func (r *Registry) Get(userID int64) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if e, ok := r.entries[userID]; ok {
		return e.Collection
	}
	return DefaultCollection
}

// DisplayName returns the cached display name, if any
func (r *Registry) DisplayName(userID int64) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.entries[userID].DisplayName
}

// Set binds a user to a collection and persists immediately.
// Fails when the target collection does not exist.
func (r *Registry) Set(userID int64, collection, displayName string) error {
	collection = Normalize(collection)
	if !r.store.Exists(collection) {
		return fmt.Errorf("collection %s: %w", collection, domain.ErrNotFound)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	prev, had := r.entries[userID]
	r.entries[userID] = registryEntry{Collection: collection, DisplayName: displayName}
	if err := r.flush(); err != nil {
		// keep memory and disk in step
		if had {
			r.entries[userID] = prev
		} else {
			delete(r.entries, userID)
		}
		return err
	}
	return nil
}

// Remove drops a user's binding entirely, reverting them to the default
func (r *Registry) Remove(userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[userID]; !ok {
		return nil
	}
	delete(r.entries, userID)
	return r.flush()
}

// OnCollectionDeleted clears every binding that pointed at the deleted
// collection, reverting those users to the default.
func (r *Registry) OnCollectionDeleted(collection string) error {
	collection = Normalize(collection)

	r.mu.Lock()
	defer r.mu.Unlock()

	changed := false
	for userID, e := range r.entries {
		if e.Collection == collection {
			delete(r.entries, userID)
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return r.flush()
}

// flush rewrites the backing blob; callers must hold the write lock
func (r *Registry) flush() error {
	f := registryFile{Users: make(map[string]registryEntry, len(r.entries))}
	for userID, e := range r.entries {
		f.Users[strconv.FormatInt(userID, 10)] = e
	}

	data, err := json.MarshalIndent(f, "", "    ")
	if err != nil {
		return fmt.Errorf("encode registry: %w", domain.ErrIO)
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), "config.json.tmp-*")
	if err != nil {
		return fmt.Errorf("create registry temp: %w", domain.ErrIO)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write registry: %w", domain.ErrIO)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close registry: %w", domain.ErrIO)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace registry: %w", domain.ErrIO)
	}
	return nil
}
