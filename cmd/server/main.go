package main

import (
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/veeda241/DAC-website/internal/config"
	"github.com/veeda241/DAC-website/internal/server"
	"github.com/veeda241/DAC-website/pkg/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// A missing DATABASE_URL is not fatal: the gateway runs in offline
	// no-op mode and the seed catalog serves everything.
	db := database.Connect(cfg.DatabaseURL)

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Printf("invalid REDIS_URL, running without redis: %v", err)
		} else {
			redisClient = redis.NewClient(opts)
		}
	}

	srv := server.NewServer(cfg, db, redisClient)

	log.Printf("listening on :%s", cfg.Port)
	if err := srv.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}
