package model

// ExportLog 每次產生班表 xlsx 的稽核紀錄
type ExportLog struct {
	ProjectName string   `json:"project_name,omitempty"`
	Period      string   `json:"period"`
	Trigger     string   `json:"trigger"` // api | cron | cli
	Files       []string `json:"files,omitempty"`
	Error       string   `json:"error,omitempty"`
	DurationMs  int64    `json:"duration_ms"`
	Version     string   `json:"version,omitempty"`
	LoggedAt    string   `json:"logged_at"`
}
