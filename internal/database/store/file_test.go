package store

import (
	"context"
	"path/filepath"
	"testing"

	"shiftlist/internal/database/model"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestFileStore(t *testing.T) (*FileStore, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	s, err := NewFileStore(zap.NewNop(), fs, "data")
	require.NoError(t, err)
	return s, fs
}

func TestNewFileStore_InitializesMissingFiles(t *testing.T) {
	_, fs := newTestFileStore(t)

	engineers, err := afero.ReadFile(fs, filepath.Join("data", EngineersFile))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(engineers))

	schedules, err := afero.ReadFile(fs, filepath.Join("data", SchedulesFile))
	require.NoError(t, err)
	assert.Equal(t, "{}", string(schedules))
}

func TestNewFileStore_KeepsExistingFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("data", 0o755))
	existing := `[{"name":"Alice","workplaces":["Nodal"],"limitations":{}}]`
	require.NoError(t, afero.WriteFile(fs, filepath.Join("data", EngineersFile), []byte(existing), 0o644))

	s, err := NewFileStore(zap.NewNop(), fs, "data")
	require.NoError(t, err)

	engineers := s.LoadEngineers(context.Background())
	require.Len(t, engineers, 1)
	assert.Equal(t, "Alice", engineers[0].Name)
}

func TestFileStore_EngineerRoundTrip(t *testing.T) {
	s, _ := newTestFileStore(t)
	ctx := context.Background()

	in := []model.Engineer{{
		Name:        "Alice",
		Workplaces:  []string{"Nodal", "Studio Press"},
		Limitations: map[string][]string{"Nodal": {"Shift 3"}},
	}}
	require.NoError(t, s.SaveEngineers(ctx, in))

	out := s.LoadEngineers(ctx)
	assert.Equal(t, in, out)
}

func TestFileStore_ScheduleRoundTrip(t *testing.T) {
	s, _ := newTestFileStore(t)
	ctx := context.Background()

	in := model.Schedules{
		"2024-2": model.Schedule{
			"Nodal": model.WorkplaceSchedule{
				"5": model.ShiftAssignment{"shift1": "Alice"},
			},
		},
	}
	require.NoError(t, s.SaveSchedules(ctx, in))
	assert.Equal(t, in, s.LoadSchedules(ctx))
}

func TestFileStore_CorruptFilesFallBackToEmpty(t *testing.T) {
	s, fs := newTestFileStore(t)
	ctx := context.Background()

	require.NoError(t, afero.WriteFile(fs, filepath.Join("data", EngineersFile), []byte("{not json"), 0o644))
	require.NoError(t, afero.WriteFile(fs, filepath.Join("data", SchedulesFile), []byte("[1,2"), 0o644))

	engineers := s.LoadEngineers(ctx)
	assert.NotNil(t, engineers)
	assert.Empty(t, engineers)

	schedules := s.LoadSchedules(ctx)
	assert.NotNil(t, schedules)
	assert.Empty(t, schedules)
}

func TestFileStore_MissingFilesFallBackToEmpty(t *testing.T) {
	s, fs := newTestFileStore(t)
	ctx := context.Background()

	require.NoError(t, fs.Remove(filepath.Join("data", EngineersFile)))
	require.NoError(t, fs.Remove(filepath.Join("data", SchedulesFile)))

	assert.Empty(t, s.LoadEngineers(ctx))
	assert.Empty(t, s.LoadSchedules(ctx))
}

func TestFileStore_NullDocumentsLoadAsEmpty(t *testing.T) {
	s, fs := newTestFileStore(t)
	ctx := context.Background()

	require.NoError(t, afero.WriteFile(fs, filepath.Join("data", EngineersFile), []byte("null"), 0o644))

	engineers := s.LoadEngineers(ctx)
	assert.NotNil(t, engineers)
	assert.Empty(t, engineers)
}

func TestFileStore_SaveNilWritesEmptyDefaults(t *testing.T) {
	s, fs := newTestFileStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveEngineers(ctx, nil))
	require.NoError(t, s.SaveSchedules(ctx, nil))

	engineers, _ := afero.ReadFile(fs, filepath.Join("data", EngineersFile))
	schedules, _ := afero.ReadFile(fs, filepath.Join("data", SchedulesFile))
	assert.Equal(t, "[]", string(engineers))
	assert.Equal(t, "{}", string(schedules))
}
