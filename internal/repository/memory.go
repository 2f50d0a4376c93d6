package repository

import (
	"context"
	"sync"

	"wardrobe_catalog/internal/models"
)

// MemoryStore keeps users and wardrobes in process memory. Nothing survives a
// restart.
type MemoryStore struct {
	mu        sync.RWMutex
	users     []models.User
	wardrobes map[int]*models.Wardrobe
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{wardrobes: map[int]*models.Wardrobe{}}
}

func NewMemoryRepository() *Repository {
	s := NewMemoryStore()
	return &Repository{Auth: s, Wardrobe: s}
}

var (
	_ Authorization = (*MemoryStore)(nil)
	_ WardrobeRepo  = (*MemoryStore)(nil)
)

func (s *MemoryStore) Create(_ context.Context, username, passwordHash string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			return 0, ErrUserExists
		}
	}
	id := len(s.users) + 1
	s.users = append(s.users, models.User{ID: id, Username: username, PasswordHash: passwordHash})
	s.wardrobes[id] = models.NewWardrobe()
	return id, nil
}

func (s *MemoryStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) Get(_ context.Context, userID int) (*models.Wardrobe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.wardrobes[userID].Clone(), nil
}

func (s *MemoryStore) Save(_ context.Context, userID int, w *models.Wardrobe) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wardrobes[userID] = w.Clone()
	return nil
}
