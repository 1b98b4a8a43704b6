package cache

import (
	"context"
	"errors"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/Yhabib05/movie-recommender/internal/logging"
)

// Redis guarda resultados serializados en JSON. Un *Redis nil es un cache vacío:
// GetJSON nunca encuentra nada y SetJSON no hace nada.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(addr, password string, ttl time.Duration) *Redis {
	return &Redis{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       0,
		}),
		ttl: ttl,
	}
}

// Ping verifica la conexión al arrancar.
func (c *Redis) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := c.client.Ping(ctx).Err(); err != nil {
		return err
	}
	logging.Info().Str("addr", c.client.Options().Addr).Msg("redis ok")
	return nil
}

// GetJSON lee una key de Redis, si existe deserializa el JSON en `dest`.
func (c *Redis) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if c == nil {
		return false, nil
	}

	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal(val, dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON serializa `value` a JSON y lo guarda con el TTL configurado.
func (c *Redis) SetJSON(ctx context.Context, key string, value any) error {
	if c == nil {
		return nil
	}

	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, b, c.ttl).Err()
}

func (c *Redis) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
