package repository

import (
	"context"
	"encoding/json"
	"time"

	"shiftlist/config"
	"shiftlist/internal/core"
	"shiftlist/internal/database/client"
	"shiftlist/internal/database/fluentd/model"
)

const fluentdTimeLayout = "2006-01-02 15:04:05.999999 UTC"

// LogRepository 統一負責發送 Request/Response/Export Log 到 Fluentd
type LogRepository struct {
	fluentdClient *client.FluentdClient
	projectName   string
	version       string
}

func NewLogRepository(config *config.Configuration, client *client.FluentdClient) *LogRepository {
	version := "1.0.0"
	if config.App.Version != "" {
		version = config.App.Version
	}
	return &LogRepository{fluentdClient: client, projectName: config.App.Name, version: version}
}

func (repository *LogRepository) LogRequest(ctx context.Context, req model.RequestLog) error {
	if req.LoggedAt == "" {
		req.LoggedAt = now()
	}
	if req.Version == "" {
		req.Version = repository.version
	}
	return repository.post(ctx, core.FluentdRequest, req)
}

func (repository *LogRepository) LogResponse(ctx context.Context, resp model.ResponseLog) error {
	if resp.LoggedAt == "" {
		resp.LoggedAt = now()
	}
	if resp.Version == "" {
		resp.Version = repository.version
	}
	return repository.post(ctx, core.FluentdResponse, resp)
}

func (repository *LogRepository) LogExport(ctx context.Context, export model.ExportLog) error {
	if export.LoggedAt == "" {
		export.LoggedAt = now()
	}
	if export.Version == "" {
		export.Version = repository.version
	}
	if export.ProjectName == "" {
		export.ProjectName = repository.projectName
	}
	return repository.post(ctx, core.FluentdExport, export)
}

// post 先轉成 map 再送，fluentd 端才看得到 json tag 的欄位名
func (repository *LogRepository) post(ctx context.Context, tag core.FluentdSubTag, record any) error {
	if !repository.fluentdClient.Enabled() {
		return nil
	}
	b, err := json.Marshal(record)
	if err != nil {
		return err
	}
	var fluentdMessage map[string]any
	if err := json.Unmarshal(b, &fluentdMessage); err != nil {
		return err
	}
	return repository.fluentdClient.Post(ctx, string(tag), fluentdMessage)
}

func now() string {
	return time.Now().UTC().Format(fluentdTimeLayout)
}
