package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/lifecarelabs/lab-portal/internal/domain/schedule"
)

// Cache curto de disponibilidade por data. Invalidação explícita em
// toda escrita que muda o resultado (bloqueio, desbloqueio, reserva);
// o TTL curto cobre o resto.
const availabilityTTL = 30 * time.Second

type AvailabilityCache struct {
	rdb *redis.Client
}

func NewAvailabilityCache(rdb *redis.Client) *AvailabilityCache {
	return &AvailabilityCache{rdb: rdb}
}

func key(date string) string {
	return "availability:" + date
}

func (c *AvailabilityCache) Get(
	ctx context.Context,
	date string,
) (*schedule.Availability, bool) {

	if c == nil || c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, key(date)).Result()
	if err != nil {
		return nil, false
	}

	var av schedule.Availability
	if err := json.Unmarshal([]byte(raw), &av); err != nil {
		return nil, false
	}
	return &av, true
}

func (c *AvailabilityCache) Set(
	ctx context.Context,
	date string,
	av *schedule.Availability,
) {

	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(av)
	if err != nil {
		return
	}

	// cache é melhor-esforço: erro de escrita é ignorado
	c.rdb.Set(ctx, key(date), raw, availabilityTTL)
}

func (c *AvailabilityCache) Invalidate(ctx context.Context, date string) {
	if c == nil || c.rdb == nil {
		return
	}
	c.rdb.Del(ctx, key(date))
}
