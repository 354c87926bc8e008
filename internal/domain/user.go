package domain

import "time"

// User represents a bot user
type User struct {
	UserID        int64      `db:"user_id"`
	Name          string     `db:"name"`
	FirstName     string     `db:"first_name"`
	LastName      string     `db:"last_name"`
	Username      string     `db:"username"`
	BestTestScore int        `db:"best_test_score"`
	BestTestTime  *float64   `db:"best_test_time"`
	Muted         bool       `db:"muted"`
	RegisteredAt  time.Time  `db:"registered_at"`
	LastActive    time.Time  `db:"last_active"`
}

// DisplayName picks the most human-friendly name variant we know
func (u User) DisplayName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	case u.Name != "":
		return u.Name
	case u.Username != "":
		return "@" + u.Username
	}
	return ""
}

// UserState represents user's current interaction state
type UserState string

const (
	StateIdle              UserState = "idle"
	StateWaitingName       UserState = "waiting_name"
	StateViewingFlashcard  UserState = "viewing_flashcard"
	StateInGamesMenu       UserState = "in_games_menu"
	StateChooseTranslation UserState = "game_choose_translation"
	StateBuildWord         UserState = "game_build_word"
	StateFindMissingLetter UserState = "game_find_missing_letter"
	StateRecallTyping      UserState = "game_recall_typing"
	StateGuessWord         UserState = "game_guess_word"
	StateInTest            UserState = "in_test"
	StateWaitingAddWord    UserState = "waiting_add_word"
	StateWaitingDelWord    UserState = "waiting_del_word"
	StateWaitingCreateSet  UserState = "waiting_create_confirm"
	StateWaitingDeleteSet  UserState = "waiting_delete_confirm"
	StateWaitingPickSet    UserState = "waiting_pick_set"
)

// StateData holds temporary data for user's current state
type StateData struct {
	State UserState

	// flashcards
	WordIndex int

	// active game round
	GameWord      WordPair
	QuizOptions   []string
	MissingLetter string
	QuestionStart time.Time

	// running knowledge test
	Test *TestSession
}
