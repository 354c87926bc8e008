package service

import (
	"errors"
	"fmt"
	"strings"

	"lexibot/internal/badwords"
	"lexibot/internal/domain"
	"lexibot/internal/wordstore"

	"go.uber.org/zap"
)

// allocateAttempts bounds how often a colliding personal-set name is redrawn
const allocateAttempts = 3

// WordSetService manages word collections and each user's binding to one
type WordSetService struct {
	store    *wordstore.Store
	registry *wordstore.Registry
	alloc    *wordstore.Allocator
	filter   *badwords.Filter
	maxWords int
	logger   *zap.Logger
}

// NewWordSetService creates a new word set service
func NewWordSetService(
	store *wordstore.Store,
	registry *wordstore.Registry,
	alloc *wordstore.Allocator,
	filter *badwords.Filter,
	maxWords int,
	logger *zap.Logger,
) *WordSetService {
	return &WordSetService{
		store:    store,
		registry: registry,
		alloc:    alloc,
		filter:   filter,
		maxWords: maxWords,
		logger:   logger,
	}
}

// ActiveCollection resolves the collection the user currently studies
func (s *WordSetService) ActiveCollection(userID int64) string {
	return s.registry.Get(userID)
}

// Words loads the user's active collection. An unreadable collection
// degrades to an empty list so the chat loop keeps responding.
func (s *WordSetService) Words(userID int64) []domain.WordPair {
	name := s.registry.Get(userID)
	words, err := s.store.Load(name)
	if err != nil {
		s.logger.Warn("Falling back to empty word list",
			zap.Int64("user_id", userID),
			zap.String("collection", name),
			zap.Error(err),
		)
		return []domain.WordPair{}
	}
	return words
}

// AvailableCollections lists every collection on disk
func (s *WordSetService) AvailableCollections() ([]string, error) {
	return s.store.Collections()
}

// SelectCollection makes an existing collection the user's active one
func (s *WordSetService) SelectCollection(userID int64, name, displayName string) error {
	return s.registry.Set(userID, name, displayName)
}

// CreatePersonalSet allocates a fresh personal collection, creates it
// empty and binds the user to it. Name collisions are redrawn a few
// times before giving up.
func (s *WordSetService) CreatePersonalSet(userID int64, displayName string) (string, error) {
	var name string
	created := false
	for i := 0; i < allocateAttempts; i++ {
		name = s.alloc.Allocate(userID, displayName)
		if err := s.store.Create(name, nil); err != nil {
			if errors.Is(err, domain.ErrConflict) {
				continue
			}
			return "", err
		}
		created = true
		break
	}
	if !created {
		return "", fmt.Errorf("allocate personal set for %d: %w", userID, domain.ErrConflict)
	}

	if err := s.registry.Set(userID, name, displayName); err != nil {
		// don't leave an orphaned file behind when the binding fails
		if delErr := s.store.Delete(name); delErr != nil {
			s.logger.Warn("Failed to remove unbound personal set",
				zap.String("collection", name),
				zap.Error(delErr),
			)
		}
		return "", err
	}
	s.logger.Info("Personal word set created",
		zap.Int64("user_id", userID),
		zap.String("collection", name),
	)
	return name, nil
}

// HasPersonalSet reports whether the user's active collection is their own
func (s *WordSetService) HasPersonalSet(userID int64) bool {
	return s.registry.Get(userID) != wordstore.DefaultCollection
}

// AddWord appends a pair to the user's personal set. The shared default
// set stays read-only, the blocklist is consulted on both sides and the
// per-set size cap is enforced.
func (s *WordSetService) AddWord(userID int64, en, ru string) error {
	name := s.registry.Get(userID)
	if name == wordstore.DefaultCollection {
		return fmt.Errorf("default collection is read-only: %w", domain.ErrConflict)
	}
	if s.filter.Contains(en) || s.filter.Contains(ru) {
		return fmt.Errorf("word rejected: %w", domain.ErrBadWord)
	}

	words, err := s.store.Load(name)
	if err != nil {
		return err
	}
	if len(words) >= s.maxWords {
		return fmt.Errorf("collection %s holds %d words: %w", name, len(words), domain.ErrLimitExceeded)
	}
	return s.store.Add(name, domain.WordPair{En: strings.TrimSpace(en), Ru: strings.TrimSpace(ru)})
}

// DeleteWord removes a pair from the user's personal set by its
// english side. Reports whether anything matched.
func (s *WordSetService) DeleteWord(userID int64, en string) (bool, error) {
	name := s.registry.Get(userID)
	if name == wordstore.DefaultCollection {
		return false, fmt.Errorf("default collection is read-only: %w", domain.ErrConflict)
	}
	return s.store.DeleteByEnglish(name, en)
}

// Deduplicate drops duplicate entries from the user's active collection
func (s *WordSetService) Deduplicate(userID int64) (int, error) {
	return s.store.Deduplicate(s.registry.Get(userID))
}

// DeleteSet removes the user's personal set and reverts everyone bound
// to it back to the default collection.
func (s *WordSetService) DeleteSet(userID int64) error {
	name := s.registry.Get(userID)
	if err := s.store.Delete(name); err != nil {
		return err
	}
	if err := s.registry.OnCollectionDeleted(name); err != nil {
		return err
	}
	s.logger.Info("Personal word set deleted",
		zap.Int64("user_id", userID),
		zap.String("collection", name),
	)
	return nil
}

// SetInfo describes the user's active collection
func (s *WordSetService) SetInfo(userID int64) (*domain.CollectionInfo, error) {
	return s.store.Info(s.registry.Get(userID))
}

// SharedWords loads the shared default collection
func (s *WordSetService) SharedWords() ([]domain.WordPair, error) {
	return s.store.Load(wordstore.DefaultCollection)
}

// AddToShared appends a pair to the shared default collection. Only
// the blocklist applies; the per-user cap does not.
func (s *WordSetService) AddToShared(en, ru string) error {
	if s.filter.Contains(en) || s.filter.Contains(ru) {
		return fmt.Errorf("word rejected: %w", domain.ErrBadWord)
	}
	return s.store.Add(wordstore.DefaultCollection, domain.WordPair{
		En: strings.TrimSpace(en),
		Ru: strings.TrimSpace(ru),
	})
}

// DeleteFromShared removes a pair from the shared default collection
func (s *WordSetService) DeleteFromShared(en string) (bool, error) {
	return s.store.DeleteByEnglish(wordstore.DefaultCollection, en)
}

// PersonalSets lists collections whose name carries the user's stable
// prefix, i.e. sets this user created at some point.
func (s *WordSetService) PersonalSets(userID int64, displayName string) ([]string, error) {
	all, err := s.store.Collections()
	if err != nil {
		return nil, err
	}
	prefix := s.alloc.BaseName(userID, displayName)
	var own []string
	for _, name := range all {
		if strings.HasPrefix(name, prefix) {
			own = append(own, name)
		}
	}
	return own, nil
}
