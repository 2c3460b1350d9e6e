package handler

import (
	"shiftlist/internal/core"
	"shiftlist/internal/dto"
	"shiftlist/internal/pkg/response"
	"shiftlist/internal/service"
	"shiftlist/internal/telemetry"
	"shiftlist/utils/validate"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	trace           *telemetry.Trace
	scheduleService *service.ScheduleService
}

func NewScheduleHandler(trace *telemetry.Trace, scheduleService *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{trace: trace, scheduleService: scheduleService}
}

// Get 取得某月份班表
// @Summary 取得班表（未帶年月時為當月）
// @Tags Schedule
// @Produce json
// @Param year query int false "年份"
// @Param month query int false "月份"
// @Success 200 {object} map[string]object "workplace -> day -> shift"
// @Failure 400 {object} response.Response
// @Router /api/schedule [get]
func (h *ScheduleHandler) Get(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)

	year, err := validate.GetIntQuery(c, "year", 0)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	month, err := validate.GetIntQuery(c, "month", 0)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	end(nil)
	response.Success(c, h.scheduleService.Get(ctx, year, month))
}

// Save 以日為單位合併寫入班表
// @Summary 儲存班表
// @Tags Schedule
// @Accept json
// @Produce json
// @Param body body dto.SaveScheduleDto true "班表"
// @Success 200 {object} dto.StatusResponseDto
// @Failure 400 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /api/schedule [post]
func (h *ScheduleHandler) Save(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)

	var req dto.SaveScheduleDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	year, month := req.Period()
	if err := h.scheduleService.Save(ctx, year, month, req.Workplaces); err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	end(nil)
	response.Success(c, dto.StatusSuccess())
}

// Constants 前端用的工作地點與班別清單
// @Summary 取得工作地點與班別
// @Tags Schedule
// @Produce json
// @Success 200 {object} dto.ConstantsResponseDto
// @Router /api/constants [get]
func (h *ScheduleHandler) Constants(c *gin.Context) {
	response.Success(c, dto.ConstantsResponseDto{
		Workplaces: core.Workplaces,
		Shifts:     core.Shifts,
	})
}
