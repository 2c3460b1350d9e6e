package command

import (
	"bytes"
	"context"
	"testing"
	"time"

	"shiftlist/config"
	"shiftlist/internal/database/client"
	fluentdRepo "shiftlist/internal/database/fluentd/repository"
	"shiftlist/internal/database/model"
	"shiftlist/internal/database/store"
	cErr "shiftlist/internal/pkg/error"
	"shiftlist/internal/service"
	"shiftlist/internal/telemetry"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newHandler(t *testing.T) (*ExportHandler, *store.MemoryStore) {
	t.Helper()
	conf := (&config.Configuration{}).ApplyDefaults()
	logger := zap.NewNop()
	trace, cleanup, err := telemetry.NewTrace(conf)
	require.NoError(t, err)
	t.Cleanup(cleanup)
	fluentdClient, closeFluentd, err := client.NewFluentdClient(logger, conf)
	require.NoError(t, err)
	t.Cleanup(closeFluentd)

	mem := store.NewMemoryStore()
	exports := service.NewExportService(
		trace, telemetry.NewMetric(conf), logger, conf, mem, afero.NewMemMapFs(),
		fluentdRepo.NewLogRepository(conf, fluentdClient),
	)
	h := NewExportHandler(logger, exports)
	h.now = func() time.Time { return time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC) }
	return h, mem
}

func TestExportHandler_PrintsFiles(t *testing.T) {
	h, mem := newHandler(t)
	require.NoError(t, mem.SaveSchedules(context.Background(), model.Schedules{"2024-3": {}}))

	var out bytes.Buffer
	cmd := &cobra.Command{Use: "export"}
	cmd.SetOut(&out)

	require.NoError(t, h.Export(cmd, 0, 0))
	assert.Equal(t,
		"Studio_Hispan_2024_3.xlsx\nStudio_Press_2024_3.xlsx\nNodal_2024_3.xlsx\nEngineer_Room_2024_3.xlsx\n",
		out.String())
}

func TestExportHandler_UnknownPeriod(t *testing.T) {
	h, _ := newHandler(t)
	cmd := &cobra.Command{Use: "export"}
	cmd.SetOut(&bytes.Buffer{})

	err := h.Export(cmd, 2020, 1)
	assert.True(t, cErr.IsNotFound(err))
}

func TestExportHandler_ExportPeriod(t *testing.T) {
	h, mem := newHandler(t)
	require.NoError(t, mem.SaveSchedules(context.Background(), model.Schedules{"2023-11": {}}))

	var out bytes.Buffer
	cmd := &cobra.Command{Use: "export"}
	cmd.SetOut(&out)

	require.NoError(t, h.ExportPeriod(cmd, "2023-11"))
	assert.Contains(t, out.String(), "Nodal_2023_11.xlsx\n")

	err := h.ExportPeriod(cmd, "2023/11")
	var appErr *cErr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, cErr.INVALID_PERIOD, appErr.ErrorCode())
}
