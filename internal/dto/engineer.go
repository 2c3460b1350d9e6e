package dto

import (
	"shiftlist/internal/database/model"
	"shiftlist/internal/pkg/request"
)

// 新增或更新工程師（依 name 完全比對）；name 必須出現但允許空字串
type UpsertEngineerDto struct {
	Name        *string             `json:"name" binding:"required" example:"Alice"`
	Workplaces  []string            `json:"workplaces" binding:"required" example:"Nodal,Studio Press"`
	Limitations map[string][]string `json:"limitations,omitempty"` // 不可排班的限制，格式由前端決定
}

func (d *UpsertEngineerDto) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"Name.required":       "name is required",
		"Workplaces.required": "workplaces is required",
	}
}

func (d *UpsertEngineerDto) ToModel() model.Engineer {
	limitations := d.Limitations
	if limitations == nil {
		limitations = map[string][]string{}
	}
	name := ""
	if d.Name != nil {
		name = *d.Name
	}
	return model.Engineer{Name: name, Workplaces: d.Workplaces, Limitations: limitations}
}
