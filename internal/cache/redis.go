package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Domenick1991/riverbooking/config"
	"github.com/redis/go-redis/v9"
)

// RedisCache keeps the per-travel-date occupied suite set warm between
// availability checks. Entries are dropped whenever a booking or
// cancellation touches the date, so a stale set never masks a conflict.
type RedisCache struct {
	client      *redis.Client
	occupiedTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, occupiedTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:      redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		occupiedTTL: occupiedTTL,
	}
}

// GetOccupied returns the cached occupied suite ids for a travel date,
// or (nil, nil) on a cache miss.
func (c *RedisCache) GetOccupied(ctx context.Context, travelDate string) ([]string, error) {
	data, err := c.client.Get(ctx, occupiedKey(travelDate)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var suiteIDs []string
	if err := json.Unmarshal(data, &suiteIDs); err != nil {
		return nil, err
	}
	return suiteIDs, nil
}

func (c *RedisCache) SetOccupied(ctx context.Context, travelDate string, suiteIDs []string) error {
	if suiteIDs == nil {
		suiteIDs = []string{}
	}
	payload, err := json.Marshal(suiteIDs)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, occupiedKey(travelDate), payload, c.occupiedTTL).Err()
}

func (c *RedisCache) InvalidateDate(ctx context.Context, travelDate string) error {
	return c.client.Del(ctx, occupiedKey(travelDate)).Err()
}

func occupiedKey(travelDate string) string {
	return fmt.Sprintf("cache:occupied:%s", travelDate)
}
