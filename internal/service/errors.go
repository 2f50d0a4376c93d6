package service

import "errors"

// Domain errors surfaced to the HTTP layer.
var (
	ErrValidation         = errors.New("validation failed")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrWardrobeNotFound   = errors.New("wardrobe not found")
	ErrClothNotFound      = errors.New("cloth not found")
)
