package service

import (
	"context"
	"testing"

	"shiftlist/internal/core"
	"shiftlist/internal/database/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleService_GetUnknownPeriodIsEmpty(t *testing.T) {
	f := newFixture(t)
	got := f.schedules.Get(context.Background(), 2030, 1)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestScheduleService_GetDefaultsToNow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.schedules.Save(ctx, 2024, 2, map[string]model.WorkplaceSchedule{
		"Nodal": {"1": {"shift1": "Alice"}},
	}))

	got := f.schedules.Get(ctx, 0, 0)
	assert.Equal(t, "Alice", got["Nodal"]["1"]["shift1"])

	// 只帶 year 時 month 取目前月份
	assert.Equal(t, got, f.schedules.Get(ctx, 2024, 0))
	assert.Empty(t, f.schedules.Get(ctx, 2023, 0))
}

func TestScheduleService_SaveMergesByDay(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.schedules.Save(ctx, 2024, 2, map[string]model.WorkplaceSchedule{
		"Nodal": {"5": {"shift1": "Alice"}},
	}))
	require.NoError(t, f.schedules.Save(ctx, 2024, 2, map[string]model.WorkplaceSchedule{
		"Nodal": {"6": {"shift2": "Bob"}},
	}))

	got := f.schedules.Get(ctx, 2024, 2)
	assert.Equal(t, model.ShiftAssignment{"shift1": "Alice"}, got["Nodal"]["5"])
	assert.Equal(t, model.ShiftAssignment{"shift2": "Bob"}, got["Nodal"]["6"])
}

func TestScheduleService_SaveReplacesWholeDay(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.schedules.Save(ctx, 2024, 2, map[string]model.WorkplaceSchedule{
		"Nodal": {"5": {"shift1": "Alice", "shift2": "Bob"}},
	}))
	require.NoError(t, f.schedules.Save(ctx, 2024, 2, map[string]model.WorkplaceSchedule{
		"Nodal": {"5": {"shift3": "Carol"}},
	}))

	got := f.schedules.Get(ctx, 2024, 2)
	assert.Equal(t, model.ShiftAssignment{"shift3": "Carol"}, got["Nodal"]["5"])
}

func TestScheduleService_SaveCreatesAllWorkplacesAndIgnoresUnknown(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.schedules.Save(ctx, 2024, 3, map[string]model.WorkplaceSchedule{
		"Basement": {"1": {"shift1": "Mallory"}},
	}))

	stored := f.store.LoadSchedules(ctx)
	period, ok := stored["2024-3"]
	require.True(t, ok)
	assert.Len(t, period, len(core.Workplaces))
	for _, wp := range core.Workplaces {
		assert.NotNil(t, period[wp], wp)
		assert.Empty(t, period[wp], wp)
	}
	_, ok = period["Basement"]
	assert.False(t, ok)
}

func TestScheduleService_SaveKeepsOtherPeriods(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.schedules.Save(ctx, 2024, 1, map[string]model.WorkplaceSchedule{
		"Studio Hispan": {"2": {"shift1": "Alice"}},
	}))
	require.NoError(t, f.schedules.Save(ctx, 2024, 2, nil))

	stored := f.store.LoadSchedules(ctx)
	assert.Contains(t, stored, "2024-1")
	assert.Contains(t, stored, "2024-2")
	assert.Equal(t, "Alice", stored["2024-1"]["Studio Hispan"]["2"]["shift1"])
}
