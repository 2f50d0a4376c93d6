package repository

import (
	"context"
	"errors"

	"wardrobe_catalog/internal/models"
)

// ErrUserExists is returned by Authorization.Create for a taken username.
var ErrUserExists = errors.New("user already exists")

type Authorization interface {
	// Create stores the user together with an empty wardrobe and returns the
	// assigned id. Ids are sequential starting at 1.
	Create(ctx context.Context, username, passwordHash string) (int, error)
	// GetByUsername returns (nil, nil) when no such user exists.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

type WardrobeRepo interface {
	// Get returns (nil, nil) when the user has no wardrobe record.
	Get(ctx context.Context, userID int) (*models.Wardrobe, error)
	// Save replaces the stored wardrobe for userID.
	Save(ctx context.Context, userID int, w *models.Wardrobe) error
}

type Repository struct {
	Auth     Authorization
	Wardrobe WardrobeRepo
}
