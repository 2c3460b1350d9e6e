package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"shiftlist/internal/dto"
	cErr "shiftlist/internal/pkg/error"
	"shiftlist/internal/pkg/response"
	"shiftlist/internal/service"
	"shiftlist/internal/telemetry"
	"shiftlist/utils/validate"

	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	trace         *telemetry.Trace
	exportService *service.ExportService
}

func NewExportHandler(trace *telemetry.Trace, exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{trace: trace, exportService: exportService}
}

// GenerateExcel 產生各工作地點 xlsx
// @Summary 產生班表 Excel
// @Tags Export
// @Accept json
// @Produce json
// @Param body body dto.GenerateExcelDto true "年月"
// @Success 200 {object} dto.GenerateExcelResponseDto
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 429 {object} response.Response
// @Router /api/generate_excel [post]
func (h *ExportHandler) GenerateExcel(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)

	var req dto.GenerateExcelDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	year, month := req.Period()
	files, err := h.exportService.GenerateExcel(ctx, year, month)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	end(nil)
	response.Success(c, dto.GenerateExcelResponseDto{Status: "success", Files: files})
}

// Download 下載已產生的 xlsx
// @Summary 下載班表檔案
// @Tags Export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param filename path string true "檔名"
// @Success 200 {file} file
// @Failure 404 {object} response.Response
// @Router /api/download/{filename} [get]
func (h *ExportHandler) Download(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)

	filename := c.Param("filename")
	file, info, err := h.exportService.Open(ctx, filename)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	defer file.Close()
	end(nil)

	c.DataFromReader(http.StatusOK, info.Size(), service.XlsxMimeType, file, map[string]string{
		"Content-Disposition": fmt.Sprintf(`attachment; filename="%s"`, filename),
	})
}

// DownloadBundle 重新產生並打包該月份所有 xlsx
// @Summary 下載班表 zip
// @Tags Export
// @Produce application/zip
// @Param year query int true "年份"
// @Param month query int true "月份"
// @Success 200 {file} file
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/download_bundle [get]
func (h *ExportHandler) DownloadBundle(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)

	year, err := validate.GetIntQuery(c, "year", 0)
	if err == nil && year == 0 {
		err = cErr.BadRequestParams("year is required")
	}
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	month, err := validate.GetIntQuery(c, "month", 0)
	if err == nil && (month < 1 || month > 12) {
		err = cErr.BadRequestParams("month must be between 1 and 12")
	}
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}

	// 先寫進 buffer，失敗時仍能回傳 JSON 錯誤
	var buf bytes.Buffer
	if err := h.exportService.Bundle(ctx, year, month, &buf); err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	end(nil)

	c.DataFromReader(http.StatusOK, int64(buf.Len()), "application/zip", &buf, map[string]string{
		"Content-Disposition": fmt.Sprintf(`attachment; filename="%s"`, service.BundleName(year, month)),
	})
}
