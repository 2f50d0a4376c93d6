package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"wardrobe_catalog/internal/models"

	"github.com/go-redis/redis/v8"
)

const (
	defaultRedisPrefix = "wardrobe:"

	userSeqKey        = "users:seq"
	userKeyPrefix     = "user:"
	wardrobeKeyPrefix = "wardrobe:"

	// pendingUser marks a claimed username whose record is not written yet.
	pendingUser = ""
)

// RedisStore keeps users and wardrobes as JSON values under a key prefix.
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = defaultRedisPrefix
	}
	return &RedisStore{client: client, prefix: prefix}
}

func NewRedisRepository(client *redis.Client, prefix string) *Repository {
	s := NewRedisStore(client, prefix)
	return &Repository{Auth: s, Wardrobe: s}
}

var (
	_ Authorization = (*RedisStore)(nil)
	_ WardrobeRepo  = (*RedisStore)(nil)
)

// userRecord is the stored form of a user; models.User hides the hash from JSON.
type userRecord struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
}

func (s *RedisStore) userKey(username string) string {
	return s.prefix + userKeyPrefix + username
}

func (s *RedisStore) wardrobeKey(userID int) string {
	return s.prefix + wardrobeKeyPrefix + strconv.Itoa(userID)
}

// Create claims the username with SETNX before drawing an id, so a lost race
// never consumes one. The claim holds an empty value until the record is
// written; any later failure releases it.
func (s *RedisStore) Create(ctx context.Context, username, passwordHash string) (int, error) {
	key := s.userKey(username)

	ok, err := s.client.SetNX(ctx, key, pendingUser, 0).Result()
	if err != nil {
		return 0, fmt.Errorf("claim user %q: %w", username, err)
	}
	if !ok {
		return 0, ErrUserExists
	}

	id, err := s.create(ctx, key, username, passwordHash)
	if err != nil {
		if delErr := s.client.Del(ctx, key).Err(); delErr != nil {
			err = errors.Join(err, delErr)
		}
		return 0, err
	}
	return id, nil
}

func (s *RedisStore) create(ctx context.Context, key, username, passwordHash string) (int, error) {
	seq, err := s.client.Incr(ctx, s.prefix+userSeqKey).Result()
	if err != nil {
		return 0, fmt.Errorf("next user id: %w", err)
	}
	id := int(seq)

	if err := s.Save(ctx, id, models.NewWardrobe()); err != nil {
		return 0, err
	}

	data, err := json.Marshal(userRecord{ID: id, Username: username, PasswordHash: passwordHash})
	if err != nil {
		return 0, fmt.Errorf("marshal user %q: %w", username, err)
	}
	if err := s.client.Set(ctx, key, data, 0).Err(); err != nil {
		return 0, fmt.Errorf("insert user %q: %w", username, err)
	}
	return id, nil
}

func (s *RedisStore) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	data, err := s.client.Get(ctx, s.userKey(username)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", username, err)
	}
	if string(data) == pendingUser {
		// registration still in flight
		return nil, nil
	}
	var rec userRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode user %q: %w", username, err)
	}
	return &models.User{ID: rec.ID, Username: rec.Username, PasswordHash: rec.PasswordHash}, nil
}

func (s *RedisStore) Get(ctx context.Context, userID int) (*models.Wardrobe, error) {
	data, err := s.client.Get(ctx, s.wardrobeKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("select wardrobe %d: %w", userID, err)
	}
	w := models.NewWardrobe()
	if err := json.Unmarshal(data, w); err != nil {
		return nil, fmt.Errorf("decode wardrobe %d: %w", userID, err)
	}
	return w, nil
}

func (s *RedisStore) Save(ctx context.Context, userID int, w *models.Wardrobe) error {
	data, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("marshal wardrobe %d: %w", userID, err)
	}
	if err := s.client.Set(ctx, s.wardrobeKey(userID), data, 0).Err(); err != nil {
		return fmt.Errorf("save wardrobe %d: %w", userID, err)
	}
	return nil
}
