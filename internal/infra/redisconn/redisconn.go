package redisconn

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/lifecarelabs/lab-portal/internal/config"
)

// New conecta no redis e valida com um PING. O portal funciona sem
// redis (cache e OTP degradam), então falha vira aviso, não fatal.
func New(cfg *config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("redis unavailable at %s: %v", cfg.RedisAddr, err)
	}

	return client
}
