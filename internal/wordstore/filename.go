package wordstore

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
	"unicode"
)

const (
	maxStemLen    = 12
	noNameToken   = "usr"
	namePadRune   = 'x'
	suffixLetters = "abcdefghijklmnopqrstuvwxyz"
)

// Allocator derives collection names for personal word sets: a stem
// traceable to the owner plus a dated random suffix to keep names
// unique across re-creations.
type Allocator struct {
	now  func() time.Time
	rand *rand.Rand
}

// NewAllocator creates an allocator seeded from the clock
func NewAllocator() *Allocator {
	return &Allocator{
		now:  time.Now,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// BaseName builds the stable part of a personal collection name: the
// first three letters of the display name (lowercased, padded with
// "x", or "usr" when the name has no letters) plus the last three
// digits of the user id.
func (a *Allocator) BaseName(userID int64, displayName string) string {
	var letters []rune
	for _, r := range displayName {
		if unicode.IsLetter(r) {
			letters = append(letters, unicode.ToLower(r))
			if len(letters) == 3 {
				break
			}
		}
	}

	var b strings.Builder
	if len(letters) == 0 {
		b.WriteString(noNameToken)
	} else {
		b.WriteString(string(letters))
		for i := len(letters); i < 3; i++ {
			b.WriteRune(namePadRune)
		}
	}

	id := strconv.FormatInt(userID, 10)
	id = strings.TrimPrefix(id, "-")
	if len(id) > 3 {
		id = id[len(id)-3:]
	}
	b.WriteString(id)
	return b.String()
}

// DynamicSuffix is one random lowercase letter on odd days of the
// month and two on even days, followed by a DDMM stamp. The parity
// rule is kept for compatibility with historical set names.
func (a *Allocator) DynamicSuffix() string {
	now := a.now()
	count := 2
	if now.Day()%2 == 1 {
		count = 1
	}

	var b strings.Builder
	for i := 0; i < count; i++ {
		b.WriteByte(suffixLetters[a.rand.Intn(len(suffixLetters))])
	}
	b.WriteString(now.Format("0201"))
	return b.String()
}

// Allocate produces a full collection name for a user's personal set
func (a *Allocator) Allocate(userID int64, displayName string) string {
	stem := a.BaseName(userID, displayName) + a.DynamicSuffix()
	if len(stem) > maxStemLen {
		stem = stem[:maxStemLen]
	}
	return stem + collectionExt
}
