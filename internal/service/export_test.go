package service

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"sort"
	"testing"

	"shiftlist/internal/database/model"
	cErr "shiftlist/internal/pkg/error"

	"github.com/klauspost/compress/zip"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportService_UnknownPeriodWritesNothing(t *testing.T) {
	f := newFixture(t)

	files, err := f.exports.GenerateExcel(context.Background(), 2024, 2)
	require.Error(t, err)
	assert.Empty(t, files)
	appErr := cErr.From(err)
	assert.Equal(t, cErr.SCHEDULE_NOT_FOUND, appErr.ErrorCode())
	assert.Contains(t, appErr.ErrorDesc(), "no schedule data found for selected period")

	exists, err := afero.DirExists(f.fs, f.conf.Storage.DataDir)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestExportService_InvalidMonth(t *testing.T) {
	f := newFixture(t)
	_, err := f.exports.GenerateExcel(context.Background(), 2024, 13)
	assert.Equal(t, cErr.INVALID_PERIOD, cErr.From(err).ErrorCode())
}

func TestExportService_GeneratesOneFilePerWorkplace(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.schedules.Save(ctx, 2024, 2, map[string]model.WorkplaceSchedule{
		"Nodal": {"5": {"shift1": "Alice"}},
	}))

	files, err := f.exports.GenerateExcel(ctx, 2024, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Studio_Hispan_2024_2.xlsx",
		"Studio_Press_2024_2.xlsx",
		"Nodal_2024_2.xlsx",
		"Engineer_Room_2024_2.xlsx",
	}, files)

	for _, name := range files {
		ok, err := afero.Exists(f.fs, filepath.Join("data", name))
		require.NoError(t, err)
		assert.True(t, ok, name)
	}

	nodal := openWorkbook(t, f, "Nodal_2024_2.xlsx")
	v, err := nodal.GetCellValue("Nodal Schedule", "B8")
	require.NoError(t, err)
	assert.Equal(t, "Alice", v)
}

func TestExportService_MissingWorkplaceDataIsBlankSheet(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	// 舊資料可能缺少某些工作地點
	require.NoError(t, f.store.SaveSchedules(ctx, model.Schedules{
		"2023-2": {"Nodal": {"1": {"shift1": "Alice"}}},
	}))

	files, err := f.exports.GenerateExcel(ctx, 2023, 2)
	require.NoError(t, err)
	require.Len(t, files, 4)

	wb := openWorkbook(t, f, "Studio_Press_2023_2.xlsx")
	rows, err := wb.GetRows("Studio Press Schedule")
	require.NoError(t, err)
	// 標題、空白列、表頭 + 28 天
	assert.Len(t, rows, 3+28)
	for _, row := range rows[3:] {
		assert.Len(t, row, 1, "shift cells must stay blank")
	}
}

func TestExportService_Open(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.schedules.Save(ctx, 2024, 2, nil))
	_, err := f.exports.GenerateExcel(ctx, 2024, 2)
	require.NoError(t, err)

	file, info, err := f.exports.Open(ctx, "Nodal_2024_2.xlsx")
	require.NoError(t, err)
	defer file.Close()
	assert.Equal(t, "Nodal_2024_2.xlsx", info.Name())
	assert.Positive(t, info.Size())

	for _, name := range []string{"missing.xlsx", "../data/Nodal_2024_2.xlsx", "engineers.json", ""} {
		_, _, err := f.exports.Open(ctx, name)
		assert.True(t, cErr.IsNotFound(err), name)
	}
}

func TestExportService_Bundle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.schedules.Save(ctx, 2024, 2, map[string]model.WorkplaceSchedule{
		"Studio Hispan": {"1": {"shift2": "Bob"}},
	}))

	var buf bytes.Buffer
	require.NoError(t, f.exports.Bundle(ctx, 2024, 2, &buf))

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	names := make([]string, 0, len(zr.File))
	for _, zf := range zr.File {
		names = append(names, zf.Name)
	}
	sort.Strings(names)
	assert.Equal(t, []string{
		"Engineer_Room_2024_2.xlsx",
		"Nodal_2024_2.xlsx",
		"Studio_Hispan_2024_2.xlsx",
		"Studio_Press_2024_2.xlsx",
	}, names)

	assert.Equal(t, "shiftlist_2024_2.zip", BundleName(2024, 2))
}

func TestExportService_BundleUnknownPeriod(t *testing.T) {
	f := newFixture(t)
	var buf bytes.Buffer
	err := f.exports.Bundle(context.Background(), 1999, 1, &buf)
	assert.True(t, cErr.IsNotFound(err))
	assert.Zero(t, buf.Len())
}

func openWorkbook(t *testing.T, f *fixture, name string) *excelize.File {
	t.Helper()
	file, err := f.fs.Open(filepath.Join("data", name))
	require.NoError(t, err)
	defer file.Close()
	data, err := io.ReadAll(file)
	require.NoError(t, err)
	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { _ = wb.Close() })
	return wb
}
