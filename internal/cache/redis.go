package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/kofiantwi/airroutes/config"
	"github.com/kofiantwi/airroutes/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client  *redis.Client
	planTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, planTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:  redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		planTTL: planTTL,
	}
}

// GetPlan returns a previously computed plan for the pair, or nil on a miss.
func (c *RedisCache) GetPlan(ctx context.Context, from, to domain.AirportCode, all bool) (*domain.RoutePlan, error) {
	data, err := c.client.Get(ctx, planKey(from, to, all)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var plan domain.RoutePlan
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (c *RedisCache) SetPlan(ctx context.Context, plan *domain.RoutePlan, all bool) error {
	payload, err := json.Marshal(plan)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, planKey(plan.From, plan.To, all), payload, c.planTTL).Err()
}

func planKey(from, to domain.AirportCode, all bool) string {
	mode := "optimal"
	if all {
		mode = "all"
	}
	return fmt.Sprintf("cache:plan:%s:%s:%s", from, to, mode)
}
