package service

import (
	"context"
	"time"

	"shiftlist/internal/core"
	"shiftlist/internal/database/model"
	"shiftlist/internal/database/store"
	cErr "shiftlist/internal/pkg/error"
	"shiftlist/internal/telemetry"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

type ScheduleService struct {
	trace  *telemetry.Trace
	logger *zap.Logger
	store  store.Store
	now    Clock
}

func NewScheduleService(trace *telemetry.Trace, logger *zap.Logger, store store.Store) *ScheduleService {
	return &ScheduleService{trace: trace, logger: logger, store: store, now: time.Now}
}

// Get year 或 month 為 0 時以目前日期補上；期間不存在回傳空 map
func (s *ScheduleService) Get(ctx context.Context, year, month int) model.Schedule {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer end(nil)

	now := s.now()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	key := core.PeriodKey(year, month)
	span.SetAttributes(attribute.String("schedule.period", key))

	schedule, ok := s.store.LoadSchedules(ctx)[key]
	if !ok || schedule == nil {
		return model.Schedule{}
	}
	return schedule
}

// Save 以「日」為單位合併：只覆寫 payload 內出現的日期，其它日期保留。
// 四個工作地點一定會建立；不在清單內的工作地點直接忽略。
func (s *ScheduleService) Save(ctx context.Context, year, month int, workplaces map[string]model.WorkplaceSchedule) (returnedErr error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedErr) }()

	key := core.PeriodKey(year, month)
	span.SetAttributes(attribute.String("schedule.period", key))

	schedules := s.store.LoadSchedules(ctx)
	period, ok := schedules[key]
	if !ok || period == nil {
		period = model.Schedule{}
		schedules[key] = period
	}

	days := 0
	for _, workplace := range core.Workplaces {
		if period[workplace] == nil {
			period[workplace] = model.WorkplaceSchedule{}
		}
		for day, assignment := range workplaces[workplace] {
			period[workplace][day] = assignment
			days++
		}
	}
	for workplace := range workplaces {
		if !core.IsWorkplace(workplace) {
			s.logger.Debug("ignore unknown workplace", zap.String("workplace", workplace), zap.String("period", key))
		}
	}
	span.SetAttributes(attribute.Int("schedule.days_written", days))

	if err := s.store.SaveSchedules(ctx, schedules); err != nil {
		s.logger.Error("save schedules failed", zap.String("period", key), zap.Error(err))
		return cErr.StorageError("save schedules failed")
	}
	return nil
}
