package middleware

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"strings"
	"time"
	"unicode/utf8"

	"shiftlist/config"
	"shiftlist/internal/core"
	"shiftlist/internal/database/fluentd/model"
	"shiftlist/internal/database/fluentd/repository"
	"shiftlist/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxBodyPreview = 2000

type Logger struct {
	logger            *zap.Logger
	trace             *telemetry.Trace
	config            *config.Configuration
	fluentdRepository *repository.LogRepository
}

func NewLogger(
	logger *zap.Logger,
	trace *telemetry.Trace,
	config *config.Configuration,
	fluentdRepository *repository.LogRepository,
) *Logger {
	return &Logger{
		logger:            logger,
		trace:             trace,
		config:            config,
		fluentdRepository: fluentdRepository,
	}
}

// LoggerHandler 記錄每個請求；文字 body 截斷預覽，二進位 body 不讀
func (m *Logger) LoggerHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		endpoint := c.FullPath()
		if skipObservability(endpoint) {
			c.Next()
			return
		}

		ctx, span, end := m.trace.WithSpan(m.trace.GetTraceContext(c), string(core.SpanLoggerMiddleware))

		requestTime := time.Now().UTC()
		if startTime, exists := c.Get(requestStartKey); exists {
			if t, ok := startTime.(time.Time); ok {
				requestTime = t
			}
		}

		mediaType, _, _ := mime.ParseMediaType(c.GetHeader("Content-Type"))
		var bodyRaw string
		switch {
		case isBinaryContent(mediaType):
			bodyRaw = fmt.Sprintf("(binary %s, %d bytes)", mediaType, c.Request.ContentLength)
		case c.Request.Body != nil && c.Request.ContentLength != 0:
			// 讀完後回填，下游仍可綁定
			data, _ := io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewReader(data))
			bodyRaw = toSafePreview(data, maxBodyPreview)
		}

		paramsMap := make(map[string]string, len(c.Params))
		for _, p := range c.Params {
			paramsMap[p.Key] = p.Value
		}

		meta := core.LoggerRequestMeta{
			Method:     c.Request.Method,
			Path:       c.Request.URL.Path,
			FullPath:   endpoint,
			Query:      c.Request.URL.RawQuery,
			Body:       bodyRaw,
			UserAgent:  c.Request.UserAgent(),
			ContentLen: c.Request.ContentLength,
			ClientIP:   c.ClientIP(),
			Params:     paramsMap,
		}
		m.trace.ApplyTraceAttributes(span, meta)

		traceID := span.SpanContext().TraceID()
		spanID := span.SpanContext().SpanID()
		logFields := []zap.Field{
			zap.String("method", meta.Method),
			zap.String("path", meta.Path),
			zap.String("clientIP", meta.ClientIP),
		}
		if meta.Query != "" {
			logFields = append(logFields, zap.String("query", meta.Query))
		}
		if len(paramsMap) > 0 {
			logFields = append(logFields, zap.Any("params", paramsMap))
		}
		if bodyRaw != "" {
			logFields = append(logFields, zap.String("body", bodyRaw))
		}
		logFields = append(logFields,
			zap.String("spanId", spanID.String()),
			zap.String("traceId", traceID.String()),
		)
		m.logger.Info("[Request] logging middleware message", logFields...)

		if err := m.fluentdRepository.LogRequest(ctx, model.RequestLog{
			RequestID:   traceID.String(),
			Method:      meta.Method,
			Path:        meta.Path,
			ProjectName: m.config.App.Name,
			RequestTS:   requestTime.Format("2006-01-02 15:04:05.999999 UTC"),
			Body:        bodyRaw,
			IPHash:      base64.RawStdEncoding.EncodeToString([]byte(meta.ClientIP)),
			UserAgent:   meta.UserAgent,
		}); err != nil {
			m.logger.Warn("post request log to fluentd failed", zap.Error(err))
		}
		end(nil)
		c.Next()
	}
}

// toSafePreview UTF-8 直接截斷；非 UTF-8 以 Base64 表示
func toSafePreview(b []byte, max int) string {
	if len(b) == 0 {
		return ""
	}
	if utf8.Valid(b) {
		if len(b) > max {
			return string(b[:max]) + "…"
		}
		return string(b)
	}
	if len(b) > max {
		b = b[:max]
	}
	return "b64:" + base64.StdEncoding.EncodeToString(b)
}

func isBinaryContent(mediaType string) bool {
	return strings.HasPrefix(mediaType, "multipart/") ||
		strings.HasPrefix(mediaType, "image/") ||
		mediaType == "application/octet-stream" ||
		mediaType == "application/zip"
}
