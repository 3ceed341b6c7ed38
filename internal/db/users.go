package db

import (
	"fmt"
	"time"
)

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  *string   `json:"username,omitempty"`
	Age       *int      `json:"age,omitempty"`
	Weight    *float64  `json:"weight,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateUserInput struct {
	Email        string
	PasswordHash string
	Username     *string
	Age          *int
	Weight       *float64
}

// CreateUser inserts the user together with a default preferences row.
func (db *DB) CreateUser(input CreateUserInput) (*User, error) {
	id := NewID()

	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(`
		INSERT INTO users (id, email, password_hash, username, age, weight)
		VALUES (?, ?, ?, ?, ?, ?)`,
		id, input.Email, input.PasswordHash, input.Username, input.Age, input.Weight)
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}
	_, err = tx.Exec(`INSERT INTO user_preferences (user_id) VALUES (?)`, id)
	if err != nil {
		return nil, fmt.Errorf("creating preferences: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return db.GetUserByID(id)
}

func (db *DB) GetUserByEmail(email string) (*User, string, error) {
	u := &User{}
	var passwordHash string
	err := db.QueryRow(`
		SELECT id, email, password_hash, username, age, weight, created_at
		FROM users WHERE email = ?`, email).Scan(
		&u.ID, &u.Email, &passwordHash, &u.Username, &u.Age, &u.Weight, &u.CreatedAt)
	if err != nil {
		return nil, "", err
	}
	return u, passwordHash, nil
}

func (db *DB) GetUserByID(id string) (*User, error) {
	u := &User{}
	err := db.QueryRow(`
		SELECT id, email, username, age, weight, created_at
		FROM users WHERE id = ?`, id).Scan(
		&u.ID, &u.Email, &u.Username, &u.Age, &u.Weight, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// --- Refresh tokens ---

type RefreshToken struct {
	ID        string
	UserID    string
	TokenHash string
	ExpiresAt time.Time
}

func (db *DB) StoreRefreshToken(userID, tokenHash string, expiresAt time.Time) error {
	_, err := db.Exec(`
		INSERT INTO refresh_tokens (id, user_id, token_hash, expires_at)
		VALUES (?, ?, ?, ?)`, NewID(), userID, tokenHash, expiresAt.UTC())
	if err != nil {
		return fmt.Errorf("storing refresh token: %w", err)
	}
	return nil
}

// ListValidRefreshTokens returns the user's unexpired tokens, newest first.
func (db *DB) ListValidRefreshTokens(userID string) ([]RefreshToken, error) {
	rows, err := db.Query(`
		SELECT id, user_id, token_hash, expires_at
		FROM refresh_tokens
		WHERE user_id = ? AND expires_at > datetime('now')
		ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tokens []RefreshToken
	for rows.Next() {
		var t RefreshToken
		if err := rows.Scan(&t.ID, &t.UserID, &t.TokenHash, &t.ExpiresAt); err != nil {
			return nil, err
		}
		tokens = append(tokens, t)
	}
	return tokens, rows.Err()
}

func (db *DB) DeleteRefreshToken(id string) error {
	_, err := db.Exec(`DELETE FROM refresh_tokens WHERE id = ?`, id)
	return err
}

func (db *DB) DeleteAllRefreshTokens(userID string) error {
	_, err := db.Exec(`DELETE FROM refresh_tokens WHERE user_id = ?`, userID)
	return err
}

func (db *DB) PurgeExpiredRefreshTokens() error {
	_, err := db.Exec(`DELETE FROM refresh_tokens WHERE expires_at <= datetime('now')`)
	return err
}
