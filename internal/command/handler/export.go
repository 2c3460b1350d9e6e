package command

import (
	"context"
	"time"

	"shiftlist/internal/core"
	cErr "shiftlist/internal/pkg/error"
	"shiftlist/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type ExportHandler struct {
	logger        *zap.Logger
	exportService *service.ExportService
	now           service.Clock
}

func NewExportHandler(logger *zap.Logger, exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{
		logger:        logger,
		exportService: exportService,
		now:           time.Now,
	}
}

// Export 產生檔案並逐行印出檔名
func (handler *ExportHandler) Export(cmd *cobra.Command, year, month int) error {
	now := handler.now()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	files, err := handler.exportService.GenerateExcelBy(ctx, core.ExportTriggerCLI, year, month)
	if err != nil {
		handler.logger.Error("export failed", zap.String("period", core.PeriodKey(year, month)), zap.Error(err))
		return err
	}
	for _, f := range files {
		cmd.Println(f)
	}
	return nil
}

// ExportPeriod 以 "2024-2" 形式的期間 key 匯出
func (handler *ExportHandler) ExportPeriod(cmd *cobra.Command, key string) error {
	year, month, err := core.ParsePeriodKey(key)
	if err != nil {
		return cErr.InvalidPeriod(err.Error())
	}
	return handler.Export(cmd, year, month)
}
