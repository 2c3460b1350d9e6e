package error

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	nf := ScheduleNotFound("no schedule data found for selected period 2024-2")
	wrapped := fmt.Errorf("export: %w", nf)

	got := From(wrapped)
	assert.Same(t, nf, got)
	assert.Equal(t, http.StatusNotFound, got.HttpCode())
	assert.Equal(t, SCHEDULE_NOT_FOUND, got.ErrorCode())

	plain := From(errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, plain.HttpCode())
	assert.Equal(t, "boom", plain.ErrorDesc())
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(FileNotFound("x.xlsx")))
	assert.True(t, IsNotFound(fmt.Errorf("wrap: %w", NotFound("x"))))
	assert.False(t, IsNotFound(StorageError("disk full")))
	assert.False(t, IsNotFound(errors.New("plain")))
}

func TestMapHttpStatusToError(t *testing.T) {
	assert.Equal(t, RATE_LIMIT_EXCEEDED, MapHttpStatusToError(http.StatusTooManyRequests, "").ErrorCode())
	assert.Equal(t, BAD_REQUEST_BODY, MapHttpStatusToError(http.StatusBadRequest, "").ErrorCode())
	assert.Equal(t, INTERNAL_ERROR, MapHttpStatusToError(http.StatusTeapot, "").ErrorCode())
}
