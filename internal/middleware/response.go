package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"shiftlist/config"
	"shiftlist/internal/core"
	"shiftlist/internal/database/fluentd/model"
	"shiftlist/internal/database/fluentd/repository"
	cErr "shiftlist/internal/pkg/error"
	"shiftlist/internal/pkg/response"
	"shiftlist/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type Response struct {
	logger            *zap.Logger
	trace             *telemetry.Trace
	config            *config.Configuration
	fluentdRepository *repository.LogRepository
}

func NewResponse(
	logger *zap.Logger,
	trace *telemetry.Trace,
	config *config.Configuration,
	fluentdRepository *repository.LogRepository,
) *Response {
	return &Response{
		logger:            logger,
		trace:             trace,
		config:            config,
		fluentdRepository: fluentdRepository,
	}
}

// FormatHandler 把 handler 透過 response.Success/Create 設定的資料包成統一格式。
// 已經直接寫出內容（例如檔案下載）或有錯誤時不處理。
func (middleware *Response) FormatHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if skipObservability(c.FullPath()) {
			c.Next()
			return
		}

		requestTime := time.Now()
		if startTime, exists := c.Get(requestStartKey); exists {
			if t, ok := startTime.(time.Time); ok {
				requestTime = t
			}
		} else {
			c.Set(requestStartKey, requestTime)
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Written() {
			return
		}

		statusCode := http.StatusOK
		if v, ok := c.Get(response.ContextStatusKey); ok {
			if s, ok := v.(int); ok {
				statusCode = s
			}
		} else if c.Writer.Status() >= http.StatusBadRequest {
			// 例如路由不存在
			response.AbortWithError(c, cErr.MapHttpStatusToError(c.Writer.Status(), "request error"))
			return
		}

		ctx, span, end := middleware.trace.WithSpan(middleware.trace.GetTraceContext(c), string(core.SpanResponseMiddleware))
		defer end(nil)

		data, _ := c.Get(response.ContextDataKey)
		if data == nil {
			data = map[string]any{}
		}
		message := "Request Success"
		if v, ok := c.Get(response.ContextMessageKey); ok {
			if s, ok := v.(string); ok && s != "" {
				message = s
			}
		}

		duration := time.Since(requestTime)
		requestID := requestIDFor(span)
		body, err := json.Marshal(response.Response{
			RequestID:   requestID,
			Code:        cErr.SUCCESS,
			Data:        data,
			Message:     "OK",
			Description: message,
		})
		if err != nil {
			response.AbortWithError(c, cErr.InternalServer("marshal response failed"))
			return
		}

		middleware.trace.ApplyTraceAttributes(span, core.TraceResponseMeta{
			Path:       c.Request.URL.Path,
			Method:     c.Request.Method,
			Status:     statusCode,
			Message:    message,
			Code:       cErr.SUCCESS,
			DurationMs: float64(duration.Milliseconds()),
			Data:       preview(body, maxBodyPreview),
		})
		middleware.logger.Info("[Response] "+message,
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.Int("status", statusCode),
			zap.Duration("duration", duration),
			zap.String("requestId", requestID),
		)
		if err := middleware.fluentdRepository.LogResponse(ctx, model.ResponseLog{
			RequestID:   requestID,
			ProjectName: middleware.config.App.Name,
			Code:        cErr.SUCCESS,
			StatusCode:  statusCode,
			Body:        preview(body, maxBodyPreview),
			ResponseTS:  time.Now().UTC().Format("2006-01-02 15:04:05.999999 UTC"),
		}); err != nil {
			middleware.logger.Warn("post response log to fluentd failed", zap.Error(err))
		}

		c.Data(statusCode, "application/json; charset=utf-8", body)
	}
}

func preview(b []byte, max int) string {
	if len(b) > max {
		return string(b[:max]) + "…"
	}
	return string(b)
}

// requestIDFor 有 trace 時沿用 trace id，否則與 Recovery 相同改用 uuid v7
func requestIDFor(span trace.Span) string {
	if sc := span.SpanContext(); sc.HasTraceID() {
		return sc.TraceID().String()
	}
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return id.String()
}
