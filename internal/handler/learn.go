package handler

import (
	"fmt"

	"lexibot/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// startLearning opens the flashcard view at the first word
func (h *Handler) startLearning(c tele.Context) error {
	userID := c.Sender().ID

	words := h.wordSets.Words(userID)
	if len(words) == 0 {
		return c.Send("В наборе пока нет слов 😕", mainMenuMarkup())
	}

	h.SetState(userID, &domain.StateData{
		State:     domain.StateViewingFlashcard,
		WordIndex: 0,
	})
	return h.sendFlashcard(c, words[0], 1, len(words))
}

// showNextWord advances the flashcard sequence, wrapping around
func (h *Handler) showNextWord(c tele.Context) error {
	userID := c.Sender().ID

	words := h.wordSets.Words(userID)
	if len(words) == 0 {
		return c.Send("В наборе пока нет слов 😕", mainMenuMarkup())
	}

	state := h.GetState(userID)
	idx := state.WordIndex
	if state.State == domain.StateViewingFlashcard {
		idx = (idx + 1) % len(words)
	} else {
		idx = 0
	}

	h.SetState(userID, &domain.StateData{
		State:     domain.StateViewingFlashcard,
		WordIndex: idx,
	})
	return h.sendFlashcard(c, words[idx], idx+1, len(words))
}

// showRandomWord shows a random flashcard
func (h *Handler) showRandomWord(c tele.Context) error {
	userID := c.Sender().ID

	words := h.wordSets.Words(userID)
	word, ok := h.games.RandomWord(words)
	if !ok {
		return c.Send("В наборе пока нет слов 😕", mainMenuMarkup())
	}

	h.SetState(userID, &domain.StateData{State: domain.StateViewingFlashcard})
	return h.sendFlashcard(c, word, 0, len(words))
}

// sendFlashcard renders one word, attaching a picture and audio when
// the asset library has them.
func (h *Handler) sendFlashcard(c tele.Context, word domain.WordPair, position, total int) error {
	caption := fmt.Sprintf("📖 %s — %s", word.En, word.Ru)
	if position > 0 {
		caption += fmt.Sprintf("\n\n%d из %d", position, total)
	}

	if path, ok := h.assets.Image(word.En); ok {
		photo := &tele.Photo{File: tele.FromDisk(path), Caption: caption}
		if err := c.Send(photo, learnMarkup()); err == nil {
			if audioPath, hasAudio := h.assets.Audio(word.En); hasAudio {
				return c.Send(&tele.Audio{File: tele.FromDisk(audioPath)})
			}
			return nil
		}
	}

	if err := c.Send(caption, learnMarkup()); err != nil {
		return err
	}
	if audioPath, ok := h.assets.Audio(word.En); ok {
		return c.Send(&tele.Audio{File: tele.FromDisk(audioPath)})
	}
	return nil
}
