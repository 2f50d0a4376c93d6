package repository

import (
	"context"
	"database/sql"
	"fmt"

	"wardrobe_catalog/internal/config"
	"wardrobe_catalog/internal/repository/db"

	"github.com/go-redis/redis/v8"
)

func NewRepository(conn *sql.DB) *Repository {
	return &Repository{
		Auth:     NewUserRepository(conn),
		Wardrobe: NewWardrobeSQLite(conn),
	}
}

// Open builds the repository for the configured driver. The returned close
// function releases the backing connection and is never nil.
func Open(ctx context.Context, cfg config.Store) (*Repository, func() error, error) {
	switch cfg.Driver {
	case config.DriverMemory, "":
		return NewMemoryRepository(), func() error { return nil }, nil

	case config.DriverSQLite:
		conn, err := db.InitDB(cfg.SQLite.Path)
		if err != nil {
			return nil, nil, err
		}
		return NewRepository(conn), conn.Close, nil

	case config.DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("ping redis at %q: %w", cfg.Redis.Addr, err)
		}
		return NewRedisRepository(client, cfg.Redis.Prefix), client.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}
