package redis

import (
	"context"
	"net"

	"lodge/config"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

func New(config *config.Config) *redis.Client {
	primary := config.Cache.Redis.Primary

	client := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(primary.Host, primary.Port),
		Password: primary.Password,
		DB:       primary.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Warn().
			Err(err).
			Str("host", primary.Host).
			Str("port", primary.Port).
			Msg("Failed to ping redis, cache reads will miss until it recovers")
	} else {
		log.Info().
			Str("host", primary.Host).
			Str("port", primary.Port).
			Msg("Connected to redis")
	}

	return client
}
