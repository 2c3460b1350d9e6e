package cron

import (
	"context"

	"shiftlist/config"

	"github.com/google/wire"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var ProviderSet = wire.NewSet(NewCron, NewExportJob)

type Cron struct {
	logger    *zap.Logger
	conf      *config.Configuration
	server    *cron.Cron
	exportJob *ExportJob
}

// NewCron .
func NewCron(logger *zap.Logger, conf *config.Configuration, exportJob *ExportJob) *Cron {
	cronLogger := cron.PrintfLogger(zap.NewStdLog(logger.Named("cron")))
	server := cron.New(
		cron.WithSeconds(),
		cron.WithLogger(cronLogger),
		cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
	)

	return &Cron{
		logger:    logger,
		conf:      conf,
		server:    server,
		exportJob: exportJob,
	}
}

// Run CRON__ENABLED=false 時不註冊任何排程
func (c *Cron) Run() error {
	if !c.conf.Cron.Enabled {
		c.logger.Info("cron disabled")
		return nil
	}
	if _, err := c.server.AddJob(c.conf.Cron.ExportSpec, c.exportJob); err != nil {
		return err
	}
	c.logger.Info("cron export job registered", zap.String("spec", c.conf.Cron.ExportSpec))

	c.server.Start()
	return nil
}

// Stop 等待執行中的工作結束或 ctx 逾時
func (c *Cron) Stop(ctx context.Context) error {
	select {
	case <-c.server.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
