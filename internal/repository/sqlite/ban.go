package sqlite

import (
	"fmt"
	"time"

	"lexibot/internal/domain"

	"github.com/jmoiron/sqlx"
	sqlite3 "github.com/mattn/go-sqlite3"
)

// BanRepo implements repository.BanRepository
type BanRepo struct {
	db *sqlx.DB
}

// NewBanRepo creates a new ban repository
func NewBanRepo(db *sqlx.DB) *BanRepo {
	return &BanRepo{db: db}
}

// Ban adds a user to the banned set, failing on a duplicate entry
func (r *BanRepo) Ban(userID int64) error {
	_, err := r.db.Exec(
		`INSERT INTO banned_users (user_id, created_at) VALUES (?, ?)`,
		userID, time.Now(),
	)
	if sqliteErr, ok := err.(sqlite3.Error); ok && sqliteErr.Code == sqlite3.ErrConstraint {
		return fmt.Errorf("user %d: %w", userID, domain.ErrConflict)
	}
	return err
}

// Unban removes a user from the banned set
func (r *BanRepo) Unban(userID int64) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM banned_users WHERE user_id = ?`, userID)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// IsBanned checks membership in the banned set
func (r *BanRepo) IsBanned(userID int64) (bool, error) {
	var count int
	err := r.db.Get(&count, `SELECT COUNT(*) FROM banned_users WHERE user_id = ?`, userID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// All returns every banned user id
func (r *BanRepo) All() ([]int64, error) {
	var ids []int64
	err := r.db.Select(&ids, `SELECT user_id FROM banned_users ORDER BY user_id`)
	if err != nil {
		return nil, err
	}
	return ids, nil
}
