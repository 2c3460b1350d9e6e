package client

import (
	"context"
	"shiftlist/config"
	"time"

	"github.com/fluent/fluent-logger-golang/fluent"
	"go.uber.org/zap"
)

// FluentdClient 包裝 fluent-logger-golang；FLUENTD__ENABLED=false 時 client 為 nil，Post 直接略過
type FluentdClient struct {
	client    *fluent.Fluent
	tagPrefix string
	logger    *zap.Logger
}

func NewFluentdClient(logger *zap.Logger, config *config.Configuration) (*FluentdClient, func(), error) {
	prefix := "shiftlist"
	if config.Fluentd.TagPrefix != "" {
		prefix = config.Fluentd.TagPrefix
	}
	if !config.Fluentd.Enabled {
		return &FluentdClient{tagPrefix: prefix, logger: logger}, func() {}, nil
	}

	var timeout time.Duration
	if config.Fluentd.Timeout > 0 {
		timeout = time.Duration(config.Fluentd.Timeout) * time.Millisecond
	}
	f, err := fluent.New(fluent.Config{
		FluentHost: config.Fluentd.Host,
		FluentPort: config.Fluentd.Port,
		Timeout:    timeout,
		TagPrefix:  prefix,
		Async:      true,
	})
	if err != nil {
		logger.Error("failed to connect to Fluentd", zap.Error(err))
		return nil, nil, err
	}
	logger.Info("Connected to Fluentd")

	c := &FluentdClient{client: f, tagPrefix: prefix, logger: logger}
	cleanup := func() {
		logger.Info("closing the Fluentd resources")
		if err := c.Close(); err != nil {
			logger.Error("failed to close Fluentd client", zap.Error(err))
		}
	}
	return c, cleanup, nil
}

func (c *FluentdClient) Enabled() bool {
	return c != nil && c.client != nil
}

func (c *FluentdClient) Close() error {
	if c.Enabled() {
		return c.client.Close()
	}
	return nil
}

// Post 送出一筆紀錄；fluent-logger-golang 不支援 ctx 取消，僅保留參數對稱
func (c *FluentdClient) Post(ctx context.Context, tag string, message any) error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Post(tag, message)
}
