package handler

import (
	"fmt"
	"strings"
	"time"

	"lexibot/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// showGamesMenu opens the games menu
func (h *Handler) showGamesMenu(c tele.Context) error {
	userID := c.Sender().ID
	h.SetState(userID, &domain.StateData{State: domain.StateInGamesMenu})
	return c.Send("🎮 Выбери игру:", gamesMenuMarkup())
}

func (h *Handler) record(userID int64, gameType string, correct bool, timeTaken *float64) {
	h.games.Record(domain.GameEvent{
		UserID:     userID,
		GameType:   gameType,
		Correct:    correct,
		TimeTaken:  timeTaken,
		Collection: h.wordSets.ActiveCollection(userID),
		OccurredAt: time.Now(),
	})
}

func (h *Handler) pickGameWord(c tele.Context) (domain.WordPair, []domain.WordPair, bool) {
	words := h.wordSets.Words(c.Sender().ID)
	word, ok := h.games.RandomWord(words)
	return word, words, ok
}

const noWordsForGame = "Для игры нужны слова в наборе 😕"

// --- choose translation ---

func (h *Handler) startChooseTranslation(c tele.Context) error {
	word, words, ok := h.pickGameWord(c)
	if !ok {
		return c.Send(noWordsForGame, gamesMenuMarkup())
	}

	options := h.games.QuizOptions(words, word)
	h.SetState(c.Sender().ID, &domain.StateData{
		State:       domain.StateChooseTranslation,
		GameWord:    word,
		QuizOptions: options,
	})
	return c.Send(
		fmt.Sprintf("🤔 Как переводится слово *%s*?", word.En),
		optionsMarkup(options),
		tele.ModeMarkdown,
	)
}

func (h *Handler) handleChooseTranslationAnswer(c tele.Context, state *domain.StateData, text string) error {
	correct := text == state.GameWord.Ru
	h.record(c.Sender().ID, domain.GameChooseTranslation, correct, nil)

	if correct {
		if err := c.Send("✅ Верно!"); err != nil {
			return err
		}
	} else {
		if err := c.Send(fmt.Sprintf("❌ Неверно. Правильный ответ: %s", state.GameWord.Ru)); err != nil {
			return err
		}
	}
	return h.startChooseTranslation(c)
}

// --- find the missing letter ---

func (h *Handler) startFindLetter(c tele.Context) error {
	word, _, ok := h.pickGameWord(c)
	if !ok {
		return c.Send(noWordsForGame, gamesMenuMarkup())
	}

	masked, letter, ok := h.games.MissingLetter(word.En)
	if !ok {
		// single-letter word, redraw
		return h.startFindLetter(c)
	}

	h.SetState(c.Sender().ID, &domain.StateData{
		State:         domain.StateFindMissingLetter,
		GameWord:      word,
		MissingLetter: letter,
	})
	return c.Send(
		fmt.Sprintf("🔍 Какая буква пропущена?\n\n*%s* (%s)", masked, word.Ru),
		backMarkup(),
		tele.ModeMarkdown,
	)
}

func (h *Handler) handleFindLetterAnswer(c tele.Context, state *domain.StateData, text string) error {
	correct := strings.EqualFold(text, state.MissingLetter)
	h.record(c.Sender().ID, domain.GameFindMissingLetter, correct, nil)

	if correct {
		if err := c.Send("✅ Верно!"); err != nil {
			return err
		}
	} else {
		if err := c.Send(fmt.Sprintf("❌ Неверно. Пропущена буква: %s", state.MissingLetter)); err != nil {
			return err
		}
	}
	return h.startFindLetter(c)
}

// --- build the word from letters ---

func (h *Handler) startBuildWord(c tele.Context) error {
	word, _, ok := h.pickGameWord(c)
	if !ok {
		return c.Send(noWordsForGame, gamesMenuMarkup())
	}

	shuffled := h.games.ShuffleWord(word.En)
	h.SetState(c.Sender().ID, &domain.StateData{
		State:    domain.StateBuildWord,
		GameWord: word,
	})
	return c.Send(
		fmt.Sprintf("🧩 Собери слово из букв:\n\n*%s* (%s)", shuffled, word.Ru),
		backMarkup(),
		tele.ModeMarkdown,
	)
}

func (h *Handler) handleBuildWordAnswer(c tele.Context, state *domain.StateData, text string) error {
	correct := h.games.CheckAnswer(text, state.GameWord.En)
	h.record(c.Sender().ID, domain.GameBuildWord, correct, nil)

	if correct {
		if err := c.Send("✅ Верно!"); err != nil {
			return err
		}
	} else {
		if err := c.Send(fmt.Sprintf("❌ Неверно. Это слово: %s", state.GameWord.En)); err != nil {
			return err
		}
	}
	return h.startBuildWord(c)
}

// --- guess the word by ear ---

func (h *Handler) startGuessWord(c tele.Context) error {
	word, _, ok := h.pickGameWord(c)
	if !ok {
		return c.Send(noWordsForGame, gamesMenuMarkup())
	}

	h.SetState(c.Sender().ID, &domain.StateData{
		State:    domain.StateGuessWord,
		GameWord: word,
	})

	if path, hasAudio := h.assets.Audio(word.En); hasAudio {
		audio := &tele.Audio{File: tele.FromDisk(path), Caption: "🎧 Какое это слово? Напиши его по-английски."}
		return c.Send(audio, backMarkup())
	}
	// no recording for this word, fall back to the translation hint
	return c.Send(
		fmt.Sprintf("🎧 Запиши по-английски слово «%s»", word.Ru),
		backMarkup(),
	)
}

func (h *Handler) handleGuessWordAnswer(c tele.Context, state *domain.StateData, text string) error {
	correct := h.games.CheckAnswer(text, state.GameWord.En)
	h.record(c.Sender().ID, domain.GameGuessWord, correct, nil)

	if correct {
		if err := c.Send("✅ Верно!"); err != nil {
			return err
		}
	} else {
		if err := c.Send(fmt.Sprintf("❌ Неверно. Это слово: %s", state.GameWord.En)); err != nil {
			return err
		}
	}
	return h.startGuessWord(c)
}

// --- timed recall typing ---

func (h *Handler) startRecall(c tele.Context) error {
	word, _, ok := h.pickGameWord(c)
	if !ok {
		return c.Send(noWordsForGame, gamesMenuMarkup())
	}

	h.SetState(c.Sender().ID, &domain.StateData{
		State:         domain.StateRecallTyping,
		GameWord:      word,
		QuestionStart: time.Now(),
	})
	return c.Send(
		fmt.Sprintf("📝 Напиши по-английски: *%s*\n\n⏱ У тебя %d секунд!", word.Ru, h.recallCountdown),
		backMarkup(),
		tele.ModeMarkdown,
	)
}

func (h *Handler) handleRecallAnswer(c tele.Context, state *domain.StateData, text string) error {
	userID := c.Sender().ID
	elapsed := time.Since(state.QuestionStart).Seconds()

	if elapsed > float64(h.recallCountdown) {
		h.record(userID, domain.GameRecallTyping, false, nil)
		if err := c.Send(fmt.Sprintf("⏱ Время вышло! Это слово: %s", state.GameWord.En)); err != nil {
			return err
		}
		return h.startRecall(c)
	}

	correct := h.games.CheckAnswer(text, state.GameWord.En)
	var timeTaken *float64
	if correct {
		timeTaken = &elapsed
	}
	h.record(userID, domain.GameRecallTyping, correct, timeTaken)

	if correct {
		if err := c.Send(fmt.Sprintf("✅ Верно! Время: %.1f сек", elapsed)); err != nil {
			return err
		}
	} else {
		if err := c.Send(fmt.Sprintf("❌ Неверно. Это слово: %s", state.GameWord.En)); err != nil {
			return err
		}
	}
	return h.startRecall(c)
}
