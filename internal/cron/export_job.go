package cron

import (
	"context"
	"time"

	"shiftlist/internal/core"
	cErr "shiftlist/internal/pkg/error"
	"shiftlist/internal/service"

	"go.uber.org/zap"
)

const exportJobTimeout = time.Minute

// ExportJob 匯出當月班表
type ExportJob struct {
	logger        *zap.Logger
	exportService *service.ExportService
	now           service.Clock
}

func NewExportJob(logger *zap.Logger, exportService *service.ExportService) *ExportJob {
	return &ExportJob{logger: logger, exportService: exportService, now: time.Now}
}

func (j *ExportJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), exportJobTimeout)
	defer cancel()
	_, _ = j.export(ctx)
}

func (j *ExportJob) export(ctx context.Context) ([]string, error) {
	now := j.now()
	year, month := now.Year(), int(now.Month())
	files, err := j.exportService.GenerateExcelBy(ctx, core.ExportTriggerCron, year, month)
	switch {
	case cErr.IsNotFound(err):
		// 當月尚未排班不算錯誤
		j.logger.Info("cron export skipped, no schedule", zap.String("period", core.PeriodKey(year, month)))
	case err != nil:
		j.logger.Error("cron export failed", zap.String("period", core.PeriodKey(year, month)), zap.Error(err))
	default:
		j.logger.Info("cron export finished", zap.Strings("files", files))
	}
	return files, err
}
