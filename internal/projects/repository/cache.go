package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/GoSim-25-26J-441/vibe-code-assistant/internal/projects/domain"
)

const projectKeyPrefix = "vca:project:" // vca:project:{id}

// ErrCacheMiss is returned by ProjectCache.Get when the id is not cached.
var ErrCacheMiss = errors.New("project cache miss")

// ProjectCache keeps stored configurations in Redis. Stored configurations are
// never updated, so entries only expire by TTL.
type ProjectCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewProjectCache creates a new ProjectCache
func NewProjectCache(client *redis.Client, ttl time.Duration) *ProjectCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &ProjectCache{client: client, ttl: ttl}
}

func (c *ProjectCache) key(id int64) string {
	return fmt.Sprintf("%s%d", projectKeyPrefix, id)
}

func (c *ProjectCache) Get(ctx context.Context, id int64) (*domain.ProjectConfig, error) {
	data, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err == redis.Nil {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cached project: %w", err)
	}

	var cfg domain.ProjectConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached project: %w", err)
	}
	return &cfg, nil
}

func (c *ProjectCache) Set(ctx context.Context, cfg *domain.ProjectConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal project: %w", err)
	}
	if err := c.client.Set(ctx, c.key(cfg.ID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache project: %w", err)
	}
	return nil
}
