package middleware

import (
	"errors"
	"strconv"

	"shiftlist/config"
	"shiftlist/internal/core"
	"shiftlist/internal/database/redis/repository"
	cErr "shiftlist/internal/pkg/error"
	"shiftlist/internal/pkg/response"
	"shiftlist/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const rateLimitWindowSeconds = 60

// RateLimit 以 client IP 為單位，每分鐘最多 REDIS__EXPORT_PER_MINUTE 次；Redis 未啟用時直接放行
type RateLimit struct {
	logger                *zap.Logger
	trace                 *telemetry.Trace
	metric                *telemetry.Metric
	limit                 int
	rateLimiterRepository *repository.RateLimiterRepository
}

func NewRateLimit(
	logger *zap.Logger,
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	conf *config.Configuration,
	rateLimiterRepository *repository.RateLimiterRepository,
) *RateLimit {
	return &RateLimit{
		logger:                logger,
		trace:                 trace,
		metric:                metric,
		limit:                 conf.Redis.ExportPerMinute,
		rateLimiterRepository: rateLimiterRepository,
	}
}

func (middleware *RateLimit) Guard() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !middleware.rateLimiterRepository.Enabled() || middleware.limit <= 0 {
			c.Next()
			return
		}
		ctx, _, end := middleware.trace.WithSpan(middleware.trace.GetTraceContext(c), string(core.SpanRateLimitMiddleware))

		subject := c.ClientIP()
		remaining, ttl, err := middleware.rateLimiterRepository.Consume(ctx, subject, rateLimitWindowSeconds, middleware.limit)
		switch {
		case errors.Is(err, repository.ErrRateLimitExceeded):
			middleware.metric.IncRateLimited(c.FullPath())
			c.Header("X-RateLimit-Limit", strconv.Itoa(middleware.limit))
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", strconv.FormatInt(ttl, 10))
			appErr := cErr.RateLimitExceeded("too many export requests, retry later")
			end(appErr)
			response.AbortWithError(c, appErr)
			return
		case err != nil:
			// Redis 故障時不阻斷匯出
			middleware.logger.Warn("rate limiter unavailable", zap.String("subject", subject), zap.Error(err))
			end(err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(middleware.limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(ttl, 10))
		end(nil)
		c.Next()
	}
}
