package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shiftlist/internal/core"
	client "shiftlist/internal/database/client"
	"shiftlist/internal/telemetry"

	"github.com/redis/go-redis/v9"
)

type RateLimiterRepository struct {
	trace  *telemetry.Trace
	client *client.RedisClient
}

func NewRateLimiterRepository(trace *telemetry.Trace, client *client.RedisClient) *RateLimiterRepository {
	return &RateLimiterRepository{trace: trace, client: client}
}

var ErrRateLimitExceeded = errors.New("rate limit exceeded")

func (repository *RateLimiterRepository) Enabled() bool {
	return repository.client.Enabled()
}

// Consume 消耗一次配額；第一次呼叫以 SETNX 初始化視窗，之後 DECR。
// 回傳剩餘次數與視窗剩餘秒數；超限時 err 為 ErrRateLimitExceeded。
// Redis 未啟用時永遠放行。
func (repository *RateLimiterRepository) Consume(
	ctx context.Context,
	subject string,
	windowSeconds int64,
	limitCount int,
) (remaining int, ttlSeconds int64, returnedError error) {
	if !repository.Enabled() {
		return limitCount, 0, nil
	}

	ctx, span, endSpan := repository.trace.WithSpan(ctx)
	defer func() { endSpan(returnedError) }()

	meta := core.TraceRateLimitMeta{
		Subject:   subject,
		Limit:     limitCount,
		WindowSec: windowSeconds,
		Op:        "consume",
	}
	defer func() {
		meta.Remaining, meta.TTL = remaining, ttlSeconds
		repository.trace.ApplyTraceAttributes(span, meta)
	}()

	rdb := repository.client.Client()
	key := repository.buildKey(subject)

	wasSet, err := rdb.SetNX(ctx, key, limitCount-1, time.Duration(windowSeconds)*time.Second).Result()
	if err != nil {
		return 0, 0, err
	}
	if wasSet {
		if limitCount-1 < 0 {
			return 0, windowSeconds, ErrRateLimitExceeded
		}
		return limitCount - 1, windowSeconds, nil
	}

	value, err := rdb.Decr(ctx, key).Result()
	if err != nil {
		return 0, 0, err
	}
	if ttl, _ := rdb.TTL(ctx, key).Result(); ttl > 0 {
		ttlSeconds = int64(ttl.Seconds())
	}
	if value < 0 {
		return 0, ttlSeconds, ErrRateLimitExceeded
	}
	return int(value), ttlSeconds, nil
}

// Reset 刪除某 subject 的配額 key（管理用）
func (repository *RateLimiterRepository) Reset(ctx context.Context, subject string) error {
	if !repository.Enabled() {
		return nil
	}
	err := repository.client.Client().Del(ctx, repository.buildKey(subject)).Err()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	return err
}

func (repository *RateLimiterRepository) buildKey(subject string) string {
	return fmt.Sprintf("%s:%s:%s", core.RedisKeyServerName, core.RedisKeyExportRate, subject)
}
