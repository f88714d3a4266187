package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/ports"
	"github.com/redis/go-redis/v9"
)

var _ ports.ReportCache = (*RedisCache)(nil)

// RedisCache caché de reportes sobre Redis, serializado como JSON.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache conecta con Redis y verifica la conexión.
func NewRedisCache(ctx context.Context, addr, password string, db int) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisCache{client: client}, nil
}

// GetSummary lee el resumen cacheado. (nil, false, nil) cuando la clave no existe.
func (c *RedisCache) GetSummary(ctx context.Context, key string) (*dto.SummaryDTO, bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get %s: %w", key, err)
	}
	var out dto.SummaryDTO
	if err := json.Unmarshal(raw, &out); err != nil {
		// entrada corrupta: tratarla como miss y dejar que se reescriba
		return nil, false, nil
	}
	return &out, true, nil
}

// SetSummary escribe el resumen con TTL.
func (c *RedisCache) SetSummary(ctx context.Context, key string, v *dto.SummaryDTO, ttl time.Duration) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Close libera la conexión con Redis.
func (c *RedisCache) Close() error {
	return c.client.Close()
}
