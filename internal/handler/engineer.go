package handler

import (
	"shiftlist/internal/dto"
	"shiftlist/internal/pkg/response"
	"shiftlist/internal/service"
	"shiftlist/internal/telemetry"
	"shiftlist/utils/validate"

	"github.com/gin-gonic/gin"
)

type EngineerHandler struct {
	trace           *telemetry.Trace
	engineerService *service.EngineerService
}

func NewEngineerHandler(trace *telemetry.Trace, engineerService *service.EngineerService) *EngineerHandler {
	return &EngineerHandler{trace: trace, engineerService: engineerService}
}

// List 列出所有工程師
// @Summary 取得工程師列表
// @Tags Engineer
// @Produce json
// @Success 200 {array} object "Engineer 列表"
// @Router /api/engineers [get]
func (h *EngineerHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	response.Success(c, h.engineerService.List(ctx))
}

// Upsert 新增或更新工程師
// @Summary 新增或更新工程師（依名稱）
// @Tags Engineer
// @Accept json
// @Produce json
// @Param body body dto.UpsertEngineerDto true "工程師資料"
// @Success 200 {object} dto.StatusResponseDto
// @Failure 400 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /api/engineers [post]
func (h *EngineerHandler) Upsert(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)

	var req dto.UpsertEngineerDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	if err := h.engineerService.Upsert(ctx, req.ToModel()); err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	end(nil)
	response.Success(c, dto.StatusSuccess())
}

// Delete 刪除工程師
// @Summary 刪除工程師（名稱不存在也視為成功）
// @Tags Engineer
// @Produce json
// @Param name path string true "工程師名稱"
// @Success 200 {object} dto.StatusResponseDto
// @Failure 500 {object} response.Response
// @Router /api/engineers/{name} [delete]
func (h *EngineerHandler) Delete(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)

	if err := h.engineerService.Delete(ctx, c.Param("name")); err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	end(nil)
	response.Success(c, dto.StatusSuccess())
}
