package service

import (
	"context"

	"shiftlist/internal/database/model"
	"shiftlist/internal/database/store"
	cErr "shiftlist/internal/pkg/error"
	"shiftlist/internal/telemetry"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

type EngineerService struct {
	trace  *telemetry.Trace
	logger *zap.Logger
	store  store.Store
}

func NewEngineerService(trace *telemetry.Trace, logger *zap.Logger, store store.Store) *EngineerService {
	return &EngineerService{trace: trace, logger: logger, store: store}
}

// List 回傳目前所有工程師，沒有資料時為空 slice
func (s *EngineerService) List(ctx context.Context) []model.Engineer {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer end(nil)

	engineers := s.store.LoadEngineers(ctx)
	span.SetAttributes(attribute.Int("engineer.count", len(engineers)))
	return engineers
}

// Upsert 依名稱完全比對：存在則覆寫 workplaces/limitations，否則新增到最後
func (s *EngineerService) Upsert(ctx context.Context, engineer model.Engineer) (returnedErr error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedErr) }()
	span.SetAttributes(attribute.String("engineer.name", engineer.Name))

	if engineer.Limitations == nil {
		engineer.Limitations = map[string][]string{}
	}
	if engineer.Workplaces == nil {
		engineer.Workplaces = []string{}
	}

	engineers := s.store.LoadEngineers(ctx)
	updated := false
	for i := range engineers {
		if engineers[i].Name == engineer.Name {
			engineers[i].Workplaces = engineer.Workplaces
			engineers[i].Limitations = engineer.Limitations
			updated = true
			break
		}
	}
	if !updated {
		engineers = append(engineers, engineer)
	}
	span.SetAttributes(attribute.Bool("engineer.updated", updated))

	if err := s.store.SaveEngineers(ctx, engineers); err != nil {
		s.logger.Error("save engineers failed", zap.String("name", engineer.Name), zap.Error(err))
		return cErr.StorageError("save engineers failed")
	}
	return nil
}

// Delete 移除所有同名紀錄；找不到也照常寫回
func (s *EngineerService) Delete(ctx context.Context, name string) (returnedErr error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedErr) }()

	engineers := s.store.LoadEngineers(ctx)
	kept := make([]model.Engineer, 0, len(engineers))
	for _, e := range engineers {
		if e.Name != name {
			kept = append(kept, e)
		}
	}
	span.SetAttributes(
		attribute.String("engineer.name", name),
		attribute.Int("engineer.removed", len(engineers)-len(kept)),
	)

	if err := s.store.SaveEngineers(ctx, kept); err != nil {
		s.logger.Error("save engineers failed", zap.String("name", name), zap.Error(err))
		return cErr.StorageError("save engineers failed")
	}
	return nil
}
