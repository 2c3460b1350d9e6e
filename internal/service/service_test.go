package service

import (
	"testing"
	"time"

	"shiftlist/config"
	"shiftlist/internal/database/client"
	fluentdRepo "shiftlist/internal/database/fluentd/repository"
	"shiftlist/internal/database/store"
	"shiftlist/internal/telemetry"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	conf      *config.Configuration
	store     *store.MemoryStore
	fs        afero.Fs
	engineers *EngineerService
	schedules *ScheduleService
	exports   *ExportService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	conf := (&config.Configuration{}).ApplyDefaults()
	logger := zap.NewNop()
	trace, cleanup, err := telemetry.NewTrace(conf)
	require.NoError(t, err)
	t.Cleanup(cleanup)
	metric := telemetry.NewMetric(conf)

	fluentdClient, closeFluentd, err := client.NewFluentdClient(logger, conf)
	require.NoError(t, err)
	t.Cleanup(closeFluentd)
	logRepo := fluentdRepo.NewLogRepository(conf, fluentdClient)

	mem := store.NewMemoryStore()
	fs := afero.NewMemMapFs()
	schedules := NewScheduleService(trace, logger, mem)
	schedules.now = func() time.Time { return time.Date(2024, time.February, 14, 9, 0, 0, 0, time.UTC) }

	return &fixture{
		conf:      conf,
		store:     mem,
		fs:        fs,
		engineers: NewEngineerService(trace, logger, mem),
		schedules: schedules,
		exports:   NewExportService(trace, metric, logger, conf, mem, fs, logRepo),
	}
}
