package database

import (
	client "shiftlist/internal/database/client"
	fluentdRepo "shiftlist/internal/database/fluentd/repository"
	redisRepo "shiftlist/internal/database/redis/repository"
	"shiftlist/internal/database/store"

	"github.com/google/wire"
)

// ProviderSet 定義所有 client / store / repository 的依賴
var ProviderSet = wire.NewSet(
	client.NewMongoClient,
	client.NewRedisClient,
	client.NewFluentdClient,
	store.ProviderSet,
	redisRepo.ProviderSet,
	fluentdRepo.ProviderSet,
)
