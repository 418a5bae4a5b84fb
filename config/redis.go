package config

import "github.com/redis/go-redis/v9"

// ConnectToRedis dials the session store. Session lookups run on every
// guarded request, so the pool is sized above the client default.
func ConnectToRedis(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:       addr,
		ClientName: Conf.Application.DisplayName,
		PoolSize:   50,
	})
}
