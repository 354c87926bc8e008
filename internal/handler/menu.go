package handler

import (
	tele "gopkg.in/telebot.v3"
)

// Menu button labels
const (
	btnLearn    = "📚 Учить слова"
	btnGames    = "🎮 Игры"
	btnTest     = "📝 Тест знаний"
	btnStats    = "📊 Статистика"
	btnRanking  = "🏆 Рейтинг"
	btnMySet    = "📁 Мой набор"
	btnMainMenu = "⬆️ В главное меню"

	btnNextWord   = "➡️ Следующее слово"
	btnRandomWord = "🎲 Случайное слово"

	btnGameChooseTranslation = "🤔 Выбери перевод"
	btnGameFindLetter        = "🔍 Найди букву"
	btnGameBuildWord         = "🧩 Собери слово"
	btnGameGuessWord         = "🎧 Угадай слово"
	btnGameRecallTyping      = "📝 Ввод по памяти"

	btnAddWord    = "➕ Добавить слово"
	btnDelWord    = "➖ Удалить слово"
	btnMyWords    = "📄 Мои слова"
	btnSetInfo    = "ℹ️ О наборе"
	btnDedup      = "🧹 Убрать дубли"
	btnCreateSet  = "🆕 Создать набор"
	btnDeleteSet  = "🗑 Удалить набор"
	btnPickSet    = "📚 Выбрать набор"
	btnConfirmYes = "✅ Да"
	btnConfirmNo  = "❌ Нет"
)

// intent is the closed set of actions a menu press can mean
type intent int

const (
	intentNone intent = iota
	intentMainMenu
	intentLearn
	intentGames
	intentTest
	intentStats
	intentRanking
	intentMySet
	intentNextWord
	intentRandomWord
	intentGameChooseTranslation
	intentGameFindLetter
	intentGameBuildWord
	intentGameGuessWord
	intentGameRecallTyping
	intentAddWord
	intentDelWord
	intentMyWords
	intentSetInfo
	intentDedup
	intentCreateSet
	intentDeleteSet
	intentPickSet
)

// intentByText maps incoming button text to its intent. Unknown text
// falls through to the state machine.
var intentByText = map[string]intent{
	btnMainMenu:              intentMainMenu,
	btnLearn:                 intentLearn,
	btnGames:                 intentGames,
	btnTest:                  intentTest,
	btnStats:                 intentStats,
	btnRanking:               intentRanking,
	btnMySet:                 intentMySet,
	btnNextWord:              intentNextWord,
	btnRandomWord:            intentRandomWord,
	btnGameChooseTranslation: intentGameChooseTranslation,
	btnGameFindLetter:        intentGameFindLetter,
	btnGameBuildWord:         intentGameBuildWord,
	btnGameGuessWord:         intentGameGuessWord,
	btnGameRecallTyping:      intentGameRecallTyping,
	btnAddWord:               intentAddWord,
	btnDelWord:               intentDelWord,
	btnMyWords:               intentMyWords,
	btnSetInfo:               intentSetInfo,
	btnDedup:                 intentDedup,
	btnCreateSet:             intentCreateSet,
	btnDeleteSet:             intentDeleteSet,
	btnPickSet:               intentPickSet,
}

func keyboard(rows ...[]string) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{ResizeKeyboard: true}
	teleRows := make([]tele.Row, 0, len(rows))
	for _, row := range rows {
		teleRow := make(tele.Row, 0, len(row))
		for _, label := range row {
			teleRow = append(teleRow, markup.Text(label))
		}
		teleRows = append(teleRows, teleRow)
	}
	markup.Reply(teleRows...)
	return markup
}

func mainMenuMarkup() *tele.ReplyMarkup {
	return keyboard(
		[]string{btnLearn, btnGames},
		[]string{btnTest, btnStats},
		[]string{btnRanking, btnMySet},
	)
}

func gamesMenuMarkup() *tele.ReplyMarkup {
	return keyboard(
		[]string{btnGameChooseTranslation, btnGameFindLetter},
		[]string{btnGameBuildWord, btnGameGuessWord},
		[]string{btnGameRecallTyping},
		[]string{btnMainMenu},
	)
}

func learnMarkup() *tele.ReplyMarkup {
	return keyboard(
		[]string{btnNextWord, btnRandomWord},
		[]string{btnMainMenu},
	)
}

func mySetMarkup() *tele.ReplyMarkup {
	return keyboard(
		[]string{btnAddWord, btnDelWord},
		[]string{btnMyWords, btnSetInfo},
		[]string{btnDedup, btnCreateSet},
		[]string{btnPickSet, btnDeleteSet},
		[]string{btnMainMenu},
	)
}

func confirmMarkup() *tele.ReplyMarkup {
	return keyboard(
		[]string{btnConfirmYes, btnConfirmNo},
	)
}

func backMarkup() *tele.ReplyMarkup {
	return keyboard(
		[]string{btnMainMenu},
	)
}

// optionsMarkup renders quiz options one per row plus the way out
func optionsMarkup(options []string) *tele.ReplyMarkup {
	rows := make([][]string, 0, len(options)+1)
	for _, o := range options {
		rows = append(rows, []string{o})
	}
	rows = append(rows, []string{btnMainMenu})
	return keyboard(rows...)
}
