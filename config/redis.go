package config

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// InitRedis creates a single Redis client and verifies connectivity with Ping.
// An empty redis_addr disables Redis: it returns nil and the user cache and redis log
// become no-ops.
func InitRedis(cfg *Config) *redis.Client {
	if cfg.RedisAddr == "" {
		log.Printf("[redis] disabled (redis_addr empty)")
		return nil
	}
	opts := &redis.Options{
		Addr:         cfg.RedisAddr,
		Password:     cfg.RedisPass,
		DB:           cfg.RedisDB,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	}
	rdb := redis.NewClient(opts)

	// verify connectivity (hard fail if Redis is configured but down)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("[redis] ping failed: %v (addr=%s db=%d)", err, cfg.RedisAddr, cfg.RedisDB)
	}
	log.Printf("[redis] connected: addr=%s db=%d", cfg.RedisAddr, cfg.RedisDB)
	return rdb
}
