package badwords

import (
	"encoding/json"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Filter rejects words from a configured blocklist. The list is a
// JSON array of strings; a missing or corrupt file yields an empty
// filter so word additions keep working.
type Filter struct {
	words map[string]struct{}
}

// Load reads the blocklist from path
func Load(path string, logger *zap.Logger) *Filter {
	f := &Filter{words: make(map[string]struct{})}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("Failed to read bad-words list", zap.String("path", path), zap.Error(err))
		}
		return f
	}

	var words []string
	if err := json.Unmarshal(data, &words); err != nil {
		logger.Warn("Corrupt bad-words list", zap.String("path", path), zap.Error(err))
		return f
	}
	for _, w := range words {
		f.words[strings.ToLower(w)] = struct{}{}
	}
	return f
}

// Contains reports whether the word is blocked, case-insensitively
func (f *Filter) Contains(word string) bool {
	_, ok := f.words[strings.ToLower(word)]
	return ok
}
