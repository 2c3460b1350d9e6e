package service

import (
	"time"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewHealthService,
	NewEngineerService,
	NewScheduleService,
	NewExportService,
)

// Clock 方便測試注入固定時間
type Clock func() time.Time
