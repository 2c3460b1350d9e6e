package model

// Engineer 可排班的工程師，以 Name 為唯一鍵
type Engineer struct {
	Name       string   `json:"name" bson:"name"`
	Workplaces []string `json:"workplaces" bson:"workplaces"`
	// workplace -> 不可排的班別名稱；只儲存，不做檢查
	Limitations map[string][]string `json:"limitations" bson:"limitations"`
}
