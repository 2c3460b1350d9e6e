package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"shiftlist/config"
	"shiftlist/internal/core"
	fluentdModel "shiftlist/internal/database/fluentd/model"
	fluentdRepo "shiftlist/internal/database/fluentd/repository"
	"shiftlist/internal/database/model"
	"shiftlist/internal/database/store"
	cErr "shiftlist/internal/pkg/error"
	"shiftlist/internal/service/spreadsheet"
	"shiftlist/internal/telemetry"
	"shiftlist/utils/validate"

	"github.com/klauspost/compress/zip"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const (
	XlsxExt      = ".xlsx"
	XlsxMimeType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ExportService 產生各工作地點的 xlsx 並寫到資料目錄；與 store driver 無關，檔案一律走 afero
type ExportService struct {
	trace   *telemetry.Trace
	metric  *telemetry.Metric
	logger  *zap.Logger
	store   store.Store
	fs      afero.Fs
	dataDir string
	logRepo *fluentdRepo.LogRepository
}

func NewExportService(
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	logger *zap.Logger,
	conf *config.Configuration,
	store store.Store,
	fs afero.Fs,
	logRepo *fluentdRepo.LogRepository,
) *ExportService {
	return &ExportService{
		trace:   trace,
		metric:  metric,
		logger:  logger,
		store:   store,
		fs:      fs,
		dataDir: conf.Storage.DataDir,
		logRepo: logRepo,
	}
}

// GenerateExcel 由 API 觸發的匯出
func (s *ExportService) GenerateExcel(ctx context.Context, year, month int) ([]string, error) {
	return s.GenerateExcelBy(ctx, core.ExportTriggerAPI, year, month)
}

// GenerateExcelBy 依工作地點順序各產生一個檔案，回傳檔名；期間不存在時不寫任何檔案
func (s *ExportService) GenerateExcelBy(ctx context.Context, trigger core.ExportTrigger, year, month int) (files []string, returnedErr error) {
	ctx, span, end := s.trace.WithSpan(ctx, "ExportService.GenerateExcel")
	start := time.Now()
	key := core.PeriodKey(year, month)
	defer func() {
		end(returnedErr)
		s.audit(ctx, trigger, key, files, returnedErr, time.Since(start))
	}()

	if month < 1 || month > 12 {
		s.metric.IncExportFail("invalid_period")
		return nil, cErr.InvalidPeriod(fmt.Sprintf("invalid period %s: %s", key, spreadsheet.ErrInvalidMonth))
	}
	schedule, ok := s.store.LoadSchedules(ctx)[key]
	if !ok {
		s.metric.IncExportFail("not_found")
		return nil, cErr.ScheduleNotFound("no schedule data found for selected period " + key)
	}

	if err := s.fs.MkdirAll(s.dataDir, 0o755); err != nil {
		s.metric.IncExportFail("mkdir")
		return nil, cErr.ExportError("create data dir failed: " + err.Error())
	}

	files = make([]string, 0, len(core.Workplaces))
	for _, workplace := range core.Workplaces {
		name, err := s.writeWorkbook(workplace, year, month, schedule)
		if err != nil {
			s.metric.IncExportFail("write")
			s.logger.Error("generate workbook failed",
				zap.String("workplace", workplace),
				zap.String("period", key),
				zap.Error(err),
			)
			return files, cErr.ExportError(fmt.Sprintf("generate %s failed", workplace))
		}
		s.metric.IncExportFile(workplace)
		s.trace.ApplyTraceAttributes(span, core.TraceExportMeta{
			Period:    key,
			Workplace: workplace,
			File:      name,
			Days:      spreadsheet.DaysIn(year, month),
		})
		files = append(files, name)
	}
	s.logger.Info("roster exported",
		zap.String("period", key),
		zap.String("trigger", string(trigger)),
		zap.Strings("files", files),
	)
	return files, nil
}

func (s *ExportService) writeWorkbook(workplace string, year, month int, schedule model.Schedule) (string, error) {
	wb, err := spreadsheet.Generate(workplace, year, month, schedule[workplace])
	if err != nil {
		return "", err
	}
	defer wb.Close()

	name := spreadsheet.FileName(workplace, year, month)
	f, err := s.fs.Create(filepath.Join(s.dataDir, name))
	if err != nil {
		return "", err
	}
	if _, err := wb.WriteTo(f); err != nil {
		_ = f.Close()
		return "", err
	}
	return name, f.Close()
}

// Open 開啟已產生的檔案；名稱必須是單純的 .xlsx 檔名
func (s *ExportService) Open(ctx context.Context, filename string) (afero.File, os.FileInfo, error) {
	_, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if !validate.IsPlainFileName(filename, XlsxExt) {
		return nil, nil, cErr.FileNotFound("file not found")
	}
	path := filepath.Join(s.dataDir, filename)
	info, err := s.fs.Stat(path)
	if err != nil || info.IsDir() {
		return nil, nil, cErr.FileNotFound("file not found")
	}
	f, err := s.fs.Open(path)
	if err != nil {
		return nil, nil, cErr.FileNotFound("file not found")
	}
	return f, info, nil
}

// BundleName "2024-2" -> "shiftlist_2024_2.zip"
func BundleName(year, month int) string {
	return fmt.Sprintf("shiftlist_%d_%d.zip", year, month)
}

// Bundle 重新產生該期間所有檔案並打包成 zip 寫到 w
func (s *ExportService) Bundle(ctx context.Context, year, month int, w io.Writer) (returnedErr error) {
	files, err := s.GenerateExcel(ctx, year, month)
	if err != nil {
		return err
	}
	_, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedErr) }()

	zw := zip.NewWriter(w)
	for _, name := range files {
		if err := s.addToZip(zw, name); err != nil {
			_ = zw.Close()
			return cErr.ExportError("bundle " + name + " failed")
		}
	}
	if err := zw.Close(); err != nil {
		return cErr.ExportError("close bundle failed")
	}
	return nil
}

func (s *ExportService) addToZip(zw *zip.Writer, name string) error {
	src, err := s.fs.Open(filepath.Join(s.dataDir, name))
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := zw.CreateHeader(&zip.FileHeader{
		Name:     name,
		Method:   zip.Deflate,
		Modified: time.Now(),
	})
	if err != nil {
		return err
	}
	_, err = io.Copy(dst, src)
	return err
}

func (s *ExportService) audit(ctx context.Context, trigger core.ExportTrigger, period string, files []string, err error, took time.Duration) {
	record := fluentdModel.ExportLog{
		Period:     period,
		Trigger:    string(trigger),
		Files:      files,
		DurationMs: took.Milliseconds(),
	}
	if err != nil {
		var appErr *cErr.Error
		if errors.As(err, &appErr) {
			record.Error = appErr.ErrorDesc()
		} else {
			record.Error = err.Error()
		}
	}
	if perr := s.logRepo.LogExport(ctx, record); perr != nil {
		s.logger.Warn("post export log to fluentd failed", zap.Error(perr))
	}
}
