package model

type ResponseLog struct {
	RequestID   string `json:"request_id"`
	ProjectName string `json:"project_name,omitempty"`
	Code        int    `json:"code"`
	StatusCode  int    `json:"status_code"`
	Body        string `json:"body,omitempty"`
	Error       string `json:"error,omitempty"`
	Version     string `json:"version,omitempty"`
	ResponseTS  string `json:"response_ts"`
	LoggedAt    string `json:"logged_at"`
}
