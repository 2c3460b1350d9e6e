package dto

import (
	"shiftlist/internal/database/model"
	"shiftlist/internal/pkg/request"
)

// 儲存某月份班表：workplaces -> day -> shiftN -> 工程師名稱
type SaveScheduleDto struct {
	Year       *int                               `json:"year" binding:"required" example:"2024"`
	Month      *int                               `json:"month" binding:"required" example:"2"`
	Workplaces map[string]model.WorkplaceSchedule `json:"workplaces"`
}

func (d *SaveScheduleDto) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"Year.required":  "year is required",
		"Month.required": "month is required",
	}
}

// Period 年月只檢查是否存在，0 或超出範圍照樣寫入
func (d *SaveScheduleDto) Period() (year, month int) {
	return intValue(d.Year), intValue(d.Month)
}

func intValue(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

// 原樣回傳的狀態訊息
type StatusResponseDto struct {
	Status string `json:"status" example:"success"`
}

func StatusSuccess() StatusResponseDto {
	return StatusResponseDto{Status: "success"}
}
