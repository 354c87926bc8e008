package assets

import (
	"os"
	"path/filepath"
	"strings"
)

var (
	imageExts = []string{".png", ".jpg", ".jpeg", ".gif"}
	audioExts = []string{".mp3", ".ogg", ".wav"}
)

// Library resolves optional image and audio files for english words.
// Assets are keyed by the lowercased word; a miss is not an error.
type Library struct {
	imagesDir string
	soundsDir string
}

// NewLibrary creates a library rooted at dataDir
func NewLibrary(dataDir string) *Library {
	return &Library{
		imagesDir: filepath.Join(dataDir, "images"),
		soundsDir: filepath.Join(dataDir, "sounds"),
	}
}

// Image returns the path of an illustration for the word, if present
func (l *Library) Image(word string) (string, bool) {
	return find(l.imagesDir, word, imageExts)
}

// Audio returns the path of a pronunciation clip for the word, if present
func (l *Library) Audio(word string) (string, bool) {
	return find(l.soundsDir, word, audioExts)
}

func find(dir, word string, exts []string) (string, bool) {
	base := strings.ToLower(word)
	for _, ext := range exts {
		path := filepath.Join(dir, base+ext)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}
