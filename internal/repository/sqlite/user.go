package sqlite

import (
	"database/sql"
	"errors"
	"time"

	"lexibot/internal/domain"

	"github.com/jmoiron/sqlx"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sqlx.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sqlx.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create registers a user, keeping the existing row on conflict
func (r *UserRepo) Create(userID int64, name, firstName, lastName, username string) error {
	query := `
		INSERT INTO users (user_id, name, first_name, last_name, username, registered_at, last_active)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			name = excluded.name,
			first_name = excluded.first_name,
			last_name = excluded.last_name,
			username = excluded.username
	`
	now := time.Now()
	_, err := r.db.Exec(query, userID, name, firstName, lastName, username, now, now)
	return err
}

// Get returns a user, or nil when unknown
func (r *UserRepo) Get(userID int64) (*domain.User, error) {
	var u domain.User
	err := r.db.Get(&u, `SELECT * FROM users WHERE user_id = ?`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateLastActive bumps the activity timestamp
func (r *UserRepo) UpdateLastActive(userID int64) error {
	_, err := r.db.Exec(`UPDATE users SET last_active = ? WHERE user_id = ?`, time.Now(), userID)
	return err
}

// SetMuted toggles the mute flag
func (r *UserRepo) SetMuted(userID int64, muted bool) error {
	_, err := r.db.Exec(`UPDATE users SET muted = ? WHERE user_id = ?`, muted, userID)
	return err
}

// Delete removes a user row, reporting whether one existed
func (r *UserRepo) Delete(userID int64) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM users WHERE user_id = ?`, userID)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// All returns every registered user ordered by registration time
func (r *UserRepo) All() ([]domain.User, error) {
	var users []domain.User
	err := r.db.Select(&users, `SELECT * FROM users ORDER BY registered_at`)
	if err != nil {
		return nil, err
	}
	return users, nil
}
