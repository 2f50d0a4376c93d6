package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wardrobe_catalog/internal/models"
	"wardrobe_catalog/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultTokenTTL   = 24 * time.Hour
	defaultBcryptCost = bcrypt.DefaultCost
)

// AuthService handles registration, login and credential checks.
type AuthService struct {
	authRepo   repository.Authorization
	signingKey []byte
	tokenTTL   time.Duration
	bcryptCost int
}

func NewAuthService(repo repository.Authorization, signingKey string, tokenTTL time.Duration, bcryptCost int) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = defaultBcryptCost
	}
	return &AuthService{
		authRepo:   repo,
		signingKey: []byte(signingKey),
		tokenTTL:   tokenTTL,
		bcryptCost: bcryptCost,
	}
}

// Claims defines JWT claims: the caller's id and username.
type Claims struct {
	jwt.RegisteredClaims
	UserID   int    `json:"id"`
	Username string `json:"username"`
}

// Register creates the user and its empty wardrobe, then issues a token.
func (s *AuthService) Register(ctx context.Context, username, password string) (models.Identity, string, error) {
	if username == "" || password == "" {
		return models.Identity{}, "", fmt.Errorf("%w: username and password required", ErrValidation)
	}

	existing, err := s.authRepo.GetByUsername(ctx, username)
	if err != nil {
		return models.Identity{}, "", err
	}
	if existing != nil {
		return models.Identity{}, "", ErrUserExists
	}

	hash, err := s.hashPassword(password)
	if err != nil {
		return models.Identity{}, "", err
	}

	id, err := s.authRepo.Create(ctx, username, hash)
	if err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return models.Identity{}, "", ErrUserExists
		}
		return models.Identity{}, "", err
	}

	identity := models.Identity{ID: id, Username: username}
	token, err := s.issueToken(identity)
	if err != nil {
		return models.Identity{}, "", err
	}
	return identity, token, nil
}

// Login checks the password and returns a fresh token. Unknown users and
// wrong passwords yield the same ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (models.Identity, string, error) {
	if username == "" || password == "" {
		return models.Identity{}, "", fmt.Errorf("%w: username and password required", ErrValidation)
	}

	u, err := s.authRepo.GetByUsername(ctx, username)
	if err != nil {
		return models.Identity{}, "", err
	}
	if u == nil {
		return models.Identity{}, "", ErrInvalidCredentials
	}
	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return models.Identity{}, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(u.Identity())
	if err != nil {
		return models.Identity{}, "", err
	}
	return u.Identity(), token, nil
}

// ParseToken verifies signature and expiry and returns the embedded identity.
func (s *AuthService) ParseToken(accessToken string) (models.Identity, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return models.Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return models.Identity{}, ErrInvalidToken
	}

	return models.Identity{ID: claims.UserID, Username: claims.Username}, nil
}

func (s *AuthService) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

func (s *AuthService) issueToken(identity models.Identity) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID:   identity.ID,
		Username: identity.Username,
	})
	return token.SignedString(s.signingKey)
}
