package repository

import (
	"github.com/TaravanaApp/travel-service/internal/repository/postgres"
	"github.com/TaravanaApp/travel-service/internal/repository/redisrepo"
	"github.com/redis/go-redis/v9"
)

type Repository struct {
	Postgres *postgres.PostgresRepository
	Redis    *redisrepo.RedisRepository
}

func New(db postgres.Querier, rdb *redis.Client) *Repository {
	return &Repository{
		Postgres: postgres.New(db),
		Redis:    redisrepo.New(rdb),
	}
}
