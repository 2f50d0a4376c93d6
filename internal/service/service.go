package service

import (
	"context"
	"time"

	"wardrobe_catalog/internal/models"
	"wardrobe_catalog/internal/repository"
)

type Authorization interface {
	Register(ctx context.Context, username, password string) (models.Identity, string, error)
	Login(ctx context.Context, username, password string) (models.Identity, string, error)
	ParseToken(accessToken string) (models.Identity, error)
}

// Catalog exposes the fixed, process-wide category and season lists.
type Catalog interface {
	PredefinedCategories() []string
	Seasons() []string
}

// Wardrobe exposes per-user categories and clothing items.
type Wardrobe interface {
	Categories(ctx context.Context, userID int) ([]string, error)
	AddCategory(ctx context.Context, userID int, category string) ([]string, error)
	Clothes(ctx context.Context, userID int, category, season string) ([]models.ClothingItem, error)
	AddCloth(ctx context.Context, userID int, in ClothInput) (models.ClothingItem, error)
	UpdateCloth(ctx context.Context, userID int, id int64, in ClothInput) (models.ClothingItem, error)
	DeleteCloth(ctx context.Context, userID int, id int64) error
	Summary(ctx context.Context, userID int) (WardrobeSummary, error)
}

// Service aggregates all sub-services.
type Service struct {
	Authorization
	Catalog
	Wardrobe
}

// Options carries auth tuning and the item id source.
type Options struct {
	SigningKey string
	TokenTTL   time.Duration
	BcryptCost int
	IDs        IDGenerator
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, opts Options) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Auth, opts.SigningKey, opts.TokenTTL, opts.BcryptCost),
		Catalog:       NewCatalogService(),
		Wardrobe:      NewWardrobeService(repos.Wardrobe, opts.IDs),
	}
}
