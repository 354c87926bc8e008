package wordstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"lexibot/internal/domain"

	"go.uber.org/zap"
)

// DefaultCollection is the shared read-only set every user starts on.
// It can never be deleted.
const DefaultCollection = "all_words.json"

const collectionExt = ".json"

// Store keeps each word collection as a JSON file under <dir>.
// Every mutation rewrites the whole file; writes go through a temp
// file and rename so a crash never leaves a half-written collection.
type Store struct {
	dir    string
	logger *zap.Logger
}

// New creates a store rooted at dataDir/words
func New(dataDir string, logger *zap.Logger) (*Store, error) {
	dir := filepath.Join(dataDir, "words")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create words dir: %w", err)
	}
	return &Store{dir: dir, logger: logger}, nil
}

// Normalize strips any directory part from the name and appends the
// collection extension when missing. Collection names come from chat
// input, so they must never resolve outside the store directory.
func Normalize(name string) string {
	name = filepath.Base(name)
	if !strings.HasSuffix(name, collectionExt) {
		return name + collectionExt
	}
	return name
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, Normalize(name))
}

// Exists reports whether a collection file is present
func (s *Store) Exists(name string) bool {
	_, err := os.Stat(s.path(name))
	return err == nil
}

// Load reads and parses a collection. Callers get a typed error so
// "empty collection" and "unreadable collection" stay distinguishable.
func (s *Store) Load(name string) ([]domain.WordPair, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("collection %s: %w", name, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("read collection %s: %w", name, domain.ErrIO)
	}

	var words []domain.WordPair
	if err := json.Unmarshal(data, &words); err != nil {
		s.logger.Error("Corrupt word collection",
			zap.String("collection", name),
			zap.Error(err),
		)
		return nil, fmt.Errorf("parse collection %s: %w", name, domain.ErrParse)
	}
	return words, nil
}

// Save rewrites a collection atomically
func (s *Store) Save(name string, words []domain.WordPair) error {
	if words == nil {
		words = []domain.WordPair{}
	}
	data, err := json.MarshalIndent(words, "", "    ")
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", name, domain.ErrIO)
	}

	target := s.path(name)
	tmp, err := os.CreateTemp(s.dir, Normalize(name)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", name, domain.ErrIO)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write collection %s: %w", name, domain.ErrIO)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close collection %s: %w", name, domain.ErrIO)
	}
	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace collection %s: %w", name, domain.ErrIO)
	}
	return nil
}

// Add appends a pair to a collection. Duplicates are allowed here;
// Deduplicate cleans them up on demand.
func (s *Store) Add(name string, pair domain.WordPair) error {
	words, err := s.Load(name)
	if err != nil {
		return err
	}
	return s.Save(name, append(words, pair))
}

// DeleteByEnglish removes every pair whose english side matches,
// case-insensitively. Returns whether anything was removed.
func (s *Store) DeleteByEnglish(name, en string) (bool, error) {
	words, err := s.Load(name)
	if err != nil {
		return false, err
	}

	kept := words[:0]
	for _, w := range words {
		if !strings.EqualFold(w.En, en) {
			kept = append(kept, w)
		}
	}
	if len(kept) == len(words) {
		return false, nil
	}
	if err := s.Save(name, kept); err != nil {
		return false, err
	}
	return true, nil
}

// Deduplicate keeps the first occurrence per case-insensitive english
// word and reports how many entries were dropped.
func (s *Store) Deduplicate(name string) (int, error) {
	words, err := s.Load(name)
	if err != nil {
		return 0, err
	}

	seen := make(map[string]struct{}, len(words))
	unique := make([]domain.WordPair, 0, len(words))
	for _, w := range words {
		key := strings.ToLower(w.En)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, w)
	}

	removed := len(words) - len(unique)
	if removed == 0 {
		return 0, nil
	}
	if err := s.Save(name, unique); err != nil {
		return 0, err
	}
	return removed, nil
}

// Create makes a new collection, failing when the name is taken
func (s *Store) Create(name string, words []domain.WordPair) error {
	if s.Exists(name) {
		return fmt.Errorf("collection %s: %w", name, domain.ErrConflict)
	}
	return s.Save(name, words)
}

// Delete removes a collection. The default collection is protected.
func (s *Store) Delete(name string) error {
	if Normalize(name) == DefaultCollection {
		return fmt.Errorf("collection %s is protected: %w", name, domain.ErrConflict)
	}
	if !s.Exists(name) {
		return fmt.Errorf("collection %s: %w", name, domain.ErrNotFound)
	}
	if err := os.Remove(s.path(name)); err != nil {
		return fmt.Errorf("delete collection %s: %w", name, domain.ErrIO)
	}
	return nil
}

// Info returns word count and on-disk size for a collection
func (s *Store) Info(name string) (*domain.CollectionInfo, error) {
	words, err := s.Load(name)
	if err != nil {
		return nil, err
	}
	st, err := os.Stat(s.path(name))
	if err != nil {
		return nil, fmt.Errorf("stat collection %s: %w", name, domain.ErrIO)
	}
	return &domain.CollectionInfo{
		Name:      Normalize(name),
		WordCount: len(words),
		SizeBytes: st.Size(),
	}, nil
}

// Collections lists all collection names, sorted
func (s *Store) Collections() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", domain.ErrIO)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), collectionExt) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}
