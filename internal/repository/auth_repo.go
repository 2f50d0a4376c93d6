package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"wardrobe_catalog/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Authorization interface at compile time.
var _ Authorization = (*UserRepository)(nil)

const (
	selectUserExistsSQL     = `SELECT COUNT(1) FROM users WHERE username = ?`
	insertUserSQL           = `INSERT INTO users (username, password_hash) VALUES (?, ?)`
	insertWardrobeSQL       = `INSERT INTO wardrobes (user_id) VALUES (?)`
	selectUserByUsernameSQL = `SELECT id, username, password_hash FROM users WHERE username = ?`
)

// Create inserts the user and its empty wardrobe in one transaction.
func (r *UserRepository) Create(ctx context.Context, username, passwordHash string) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin create user %q: %w", username, err)
	}
	defer func() { _ = tx.Rollback() }()

	var n int
	if err := tx.QueryRowContext(ctx, selectUserExistsSQL, username).Scan(&n); err != nil {
		return 0, fmt.Errorf("check user %q: %w", username, err)
	}
	if n > 0 {
		return 0, ErrUserExists
	}

	res, err := tx.ExecContext(ctx, insertUserSQL, username, passwordHash)
	if err != nil {
		return 0, fmt.Errorf("insert user %q: %w", username, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for user %q: %w", username, err)
	}
	if _, err := tx.ExecContext(ctx, insertWardrobeSQL, lastID); err != nil {
		return 0, fmt.Errorf("insert wardrobe for user %q: %w", username, err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit user %q: %w", username, err)
	}
	return int(lastID), nil
}

// GetByUsername fetches a user by username. Returns (nil, nil) if not found.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, selectUserByUsernameSQL, username).Scan(&u.ID, &u.Username, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", username, err)
	}
	return &u, nil
}
