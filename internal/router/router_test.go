package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shiftlist/config"
	"shiftlist/internal/database/client"
	fluentdRepo "shiftlist/internal/database/fluentd/repository"
	redisRepo "shiftlist/internal/database/redis/repository"
	"shiftlist/internal/database/store"
	"shiftlist/internal/handler"
	"shiftlist/internal/middleware"
	cErr "shiftlist/internal/pkg/error"
	"shiftlist/internal/service"
	"shiftlist/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	RequestID   string          `json:"requestID"`
	Code        int             `json:"code"`
	Data        json.RawMessage `json:"data"`
	Message     string          `json:"message"`
	Description string          `json:"description"`
}

func newTestRouter(t *testing.T) (*gin.Engine, *store.MemoryStore) {
	t.Helper()
	conf := (&config.Configuration{App: config.App{Env: "test", Version: "test"}}).ApplyDefaults()
	logger := zap.NewNop()

	trace, cleanup, err := telemetry.NewTrace(conf)
	require.NoError(t, err)
	t.Cleanup(cleanup)
	metric := telemetry.NewMetric(conf)

	fluentdClient, closeFluentd, err := client.NewFluentdClient(logger, conf)
	require.NoError(t, err)
	t.Cleanup(closeFluentd)
	redisClient, closeRedis, err := client.NewRedisClient(logger, conf)
	require.NoError(t, err)
	t.Cleanup(closeRedis)
	logRepo := fluentdRepo.NewLogRepository(conf, fluentdClient)
	limiter := redisRepo.NewRateLimiterRepository(trace, redisClient)

	mem := store.NewMemoryStore()
	fs := afero.NewMemMapFs()
	health := service.NewHealthService()
	health.SetReady(true)

	engineers := service.NewEngineerService(trace, logger, mem)
	schedules := service.NewScheduleService(trace, logger, mem)
	exports := service.NewExportService(trace, metric, logger, conf, mem, fs, logRepo)

	r := NewRouter(
		conf,
		middleware.NewTraceEntry(trace, metric, conf),
		middleware.NewRecovery(logger, trace, metric, conf, logRepo),
		middleware.NewCors(trace),
		middleware.NewLogger(logger, trace, conf, logRepo),
		middleware.NewResponse(logger, trace, conf, logRepo),
		NewHealthRouter(handler.NewHealthHandler(conf, health)),
		NewRosterRouter(
			handler.NewEngineerHandler(trace, engineers),
			handler.NewScheduleHandler(trace, schedules),
			handler.NewExportHandler(trace, exports),
			middleware.NewRateLimit(logger, trace, metric, conf, limiter),
		),
	)
	return r, mem
}

func doJSON(t *testing.T, r http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

func TestRouter_EngineerLifecycle(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/engineers", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, string(decode(t, w).Data))

	w = doJSON(t, r, http.MethodPost, "/api/engineers", map[string]any{
		"name":        "Alice",
		"workplaces":  []string{"Nodal"},
		"limitations": map[string][]string{"Nodal": {"Shift 3"}},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"status":"success"}`, string(decode(t, w).Data))

	w = doJSON(t, r, http.MethodGet, "/api/engineers", nil)
	assert.JSONEq(t,
		`[{"name":"Alice","workplaces":["Nodal"],"limitations":{"Nodal":["Shift 3"]}}]`,
		string(decode(t, w).Data))

	w = doJSON(t, r, http.MethodDelete, "/api/engineers/Alice", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/engineers/Nobody", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/engineers", nil)
	assert.JSONEq(t, `[]`, string(decode(t, w).Data))
}

func TestRouter_EngineerValidation(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/engineers", map[string]any{"workplaces": []string{"Nodal"}})
	require.Equal(t, http.StatusBadRequest, w.Code)
	env := decode(t, w)
	assert.Equal(t, cErr.BAD_REQUEST_BODY, env.Code)
	assert.Equal(t, "bad-request/body", env.Message)
	assert.Equal(t, "name is required", env.Description)
	assert.NotEmpty(t, env.RequestID)

	w = doJSON(t, r, http.MethodPost, "/api/engineers", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_SuccessRequestIDWithoutTracing(t *testing.T) {
	r, _ := newTestRouter(t)

	first := decode(t, doJSON(t, r, http.MethodGet, "/api/constants", nil)).RequestID
	second := decode(t, doJSON(t, r, http.MethodGet, "/api/constants", nil)).RequestID

	id, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
	assert.NotEqual(t, first, second)
	assert.NotEqual(t, strings.Repeat("0", 32), first)
}

func TestRouter_EngineerEmptyNameAccepted(t *testing.T) {
	r, mem := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/engineers", `{"name":"","workplaces":[]}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"status":"success"}`, string(decode(t, w).Data))

	engineers := mem.LoadEngineers(context.Background())
	require.Len(t, engineers, 1)
	assert.Equal(t, "", engineers[0].Name)
	assert.Empty(t, engineers[0].Workplaces)
}

func TestRouter_ScheduleZeroPeriodAccepted(t *testing.T) {
	r, mem := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/schedule", `{"year":2024,"month":0,"workplaces":{"Nodal":{"1":{"shift1":"Alice"}}}}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = doJSON(t, r, http.MethodPost, "/api/schedule", `{"year":0,"month":0}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	schedules := mem.LoadSchedules(context.Background())
	assert.Equal(t, "Alice", schedules["2024-0"]["Nodal"]["1"]["shift1"])
	assert.Len(t, schedules["0-0"], 4)

	w = doJSON(t, r, http.MethodPost, "/api/schedule", `{"year":2024}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "month is required", decode(t, w).Description)
}

func TestRouter_ScheduleMergeAndQuery(t *testing.T) {
	r, _ := newTestRouter(t)

	for _, payload := range []string{
		`{"year":2024,"month":2,"workplaces":{"Nodal":{"5":{"shift1":"Alice"}}}}`,
		`{"year":2024,"month":2,"workplaces":{"Nodal":{"6":{"shift2":"Bob"}}}}`,
	} {
		w := doJSON(t, r, http.MethodPost, "/api/schedule", payload)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	w := doJSON(t, r, http.MethodGet, "/api/schedule?year=2024&month=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var schedule map[string]map[string]map[string]string
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &schedule))
	assert.Equal(t, "Alice", schedule["Nodal"]["5"]["shift1"])
	assert.Equal(t, "Bob", schedule["Nodal"]["6"]["shift2"])
	assert.Len(t, schedule, 4)

	w = doJSON(t, r, http.MethodGet, "/api/schedule?year=1999&month=1", nil)
	assert.JSONEq(t, `{}`, string(decode(t, w).Data))

	w = doJSON(t, r, http.MethodGet, "/api/schedule?year=abc", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, cErr.BAD_REQUEST_PARAMS, decode(t, w).Code)
}

func TestRouter_GenerateAndDownload(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/generate_excel", map[string]int{"year": 2024, "month": 2})
	require.Equal(t, http.StatusNotFound, w.Code)
	env := decode(t, w)
	assert.Equal(t, cErr.SCHEDULE_NOT_FOUND, env.Code)
	assert.Contains(t, env.Description, "no schedule data found for selected period")

	w = doJSON(t, r, http.MethodPost, "/api/generate_excel", map[string]int{"year": 2024, "month": 13})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "month must be between 1 and 12", decode(t, w).Description)

	w = doJSON(t, r, http.MethodPost, "/api/schedule", `{"year":2024,"month":2,"workplaces":{"Nodal":{"5":{"shift1":"Alice"}}}}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/generate_excel", map[string]int{"year": 2024, "month": 2})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"status":"success","files":[
		"Studio_Hispan_2024_2.xlsx","Studio_Press_2024_2.xlsx","Nodal_2024_2.xlsx","Engineer_Room_2024_2.xlsx"
	]}`, string(decode(t, w).Data))

	w = doJSON(t, r, http.MethodGet, "/api/download/Nodal_2024_2.xlsx", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, service.XlsxMimeType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "Nodal_2024_2.xlsx")
	// xlsx 是 zip 格式
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("PK")))

	w = doJSON(t, r, http.MethodGet, "/api/download/Nope_2024_2.xlsx", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, cErr.FILE_NOT_FOUND, decode(t, w).Code)

	w = doJSON(t, r, http.MethodGet, "/api/download_bundle?year=2024&month=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/zip", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("PK")))

	w = doJSON(t, r, http.MethodGet, "/api/download_bundle?year=2024", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_StorageFailureIs500(t *testing.T) {
	r, mem := newTestRouter(t)
	mem.SaveErr = assert.AnError

	w := doJSON(t, r, http.MethodPost, "/api/engineers", map[string]any{"name": "Alice", "workplaces": []string{}})
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, cErr.STORAGE_ERROR, decode(t, w).Code)
}

func TestRouter_ConstantsAndOps(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/constants", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"workplaces":["Studio Hispan","Studio Press","Nodal","Engineer Room"],
		"shifts":["Shift 1","Shift 2","Shift 3"]
	}`, string(decode(t, w).Data))

	for _, path := range []string{"/health-check", "/health/liveness", "/health/readiness", "/version", "/metrics"} {
		w := doJSON(t, r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
	assert.Equal(t, "test", doJSON(t, r, http.MethodGet, "/version", nil).Header().Get("X-App-Version"))

	w = doJSON(t, r, http.MethodGet, "/api/unknown", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, cErr.NOT_FOUND, decode(t, w).Code)
}

func TestRouter_CorsPreflight(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/engineers", nil)
	req.Header.Set("Origin", "http://frontend.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
