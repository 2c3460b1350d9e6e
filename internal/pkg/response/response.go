package response

import (
	"errors"
	"net/http"

	cErr "shiftlist/internal/pkg/error"

	"github.com/gin-gonic/gin"
)

const (
	ContextDataKey    = "data"
	ContextMessageKey = "message"
	ContextStatusKey  = "status"
)

// Response 統一回應外層；下載類 API 直接寫檔案串流不經過這裡
type Response struct {
	RequestID   string `json:"requestID"`
	Code        int    `json:"code"`
	Data        any    `json:"data"`
	Message     string `json:"message"`
	Description string `json:"description"`
}

func Create(c *gin.Context, data any) {
	set(c, http.StatusCreated, "Create Success", data)
}

func Success(c *gin.Context, data any) {
	set(c, http.StatusOK, "Request Success", data)
}

func set(c *gin.Context, status int, message string, data any) {
	if msg, ok := data.(gin.H); ok {
		if m, ok := msg["message"].(string); ok && m != "" {
			message = m
			delete(msg, "message")
		}
	}
	c.Set(ContextStatusKey, status)
	c.Set(ContextDataKey, data)
	c.Set(ContextMessageKey, message)
	c.Abort()
}

func AbortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

func Fail(c *gin.Context, requestID string, httpCode int, errorCode int, msg string, desc string) {
	c.JSON(httpCode, Response{
		RequestID:   requestID,
		Code:        errorCode,
		Data:        nil,
		Message:     msg,
		Description: desc,
	})
	c.Abort()
}

func FailByErr(c *gin.Context, requestID string, err error) {
	var v *cErr.Error
	if errors.As(err, &v) {
		Fail(c, requestID, v.HttpCode(), v.ErrorCode(), v.Error(), v.ErrorDesc())
		return
	}
	Fail(c, requestID, http.StatusInternalServerError, cErr.INTERNAL_ERROR, "internal-server-error", err.Error())
}
