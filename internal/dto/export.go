package dto

import "shiftlist/internal/pkg/request"

type GenerateExcelDto struct {
	Year  *int `json:"year" binding:"required" example:"2024"`
	Month int  `json:"month" binding:"required,min=1,max=12" example:"2"`
}

func (d *GenerateExcelDto) Period() (year, month int) {
	return intValue(d.Year), d.Month
}

func (d *GenerateExcelDto) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"Year.required":  "year is required",
		"Month.required": "month is required",
		"Month.min":      "month must be between 1 and 12",
		"Month.max":      "month must be between 1 and 12",
	}
}

type GenerateExcelResponseDto struct {
	Status string   `json:"status" example:"success"`
	Files  []string `json:"files" example:"Studio_Hispan_2024_2.xlsx,Studio_Press_2024_2.xlsx"`
}

type ConstantsResponseDto struct {
	Workplaces []string `json:"workplaces"`
	Shifts     []string `json:"shifts"`
}
