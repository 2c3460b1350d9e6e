// Package store 負責 engineers / schedules 兩份文件的讀寫。
//
// 讀取採寬鬆復原策略：檔案不存在、無法讀取或 JSON 損毀時一律回傳空值（[] / {}），
// 只記 warn log，不回傳錯誤；呼叫端無法分辨「尚未初始化」與「讀取失敗」。
// 寫入為整份覆寫，不做 temp+rename、不加鎖，多個請求同時寫入時後寫者勝。
package store

import (
	"context"
	"encoding/json"

	"shiftlist/config"
	"shiftlist/internal/database/client"
	"shiftlist/internal/database/model"

	"github.com/google/wire"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

type Store interface {
	LoadEngineers(ctx context.Context) []model.Engineer
	SaveEngineers(ctx context.Context, engineers []model.Engineer) error
	LoadSchedules(ctx context.Context) model.Schedules
	SaveSchedules(ctx context.Context, schedules model.Schedules) error
}

var ProviderSet = wire.NewSet(NewOsFs, NewStore)

// NewOsFs 正式環境使用的檔案系統；測試改用 afero.NewMemMapFs()
func NewOsFs() afero.Fs {
	return afero.NewOsFs()
}

// NewStore 依 STORAGE__DRIVER 選擇實作
func NewStore(
	conf *config.Configuration,
	logger *zap.Logger,
	fs afero.Fs,
	mongoClient *client.MongoClient,
) (Store, error) {
	switch conf.Storage.Driver {
	case config.StorageDriverMongo:
		return NewMongoStore(logger, mongoClient), nil
	default:
		return NewFileStore(logger, fs, conf.Storage.DataDir)
	}
}

func decodeEngineers(data []byte) ([]model.Engineer, error) {
	var engineers []model.Engineer
	if err := json.Unmarshal(data, &engineers); err != nil {
		return nil, err
	}
	if engineers == nil {
		engineers = []model.Engineer{}
	}
	return engineers, nil
}

func decodeSchedules(data []byte) (model.Schedules, error) {
	var schedules model.Schedules
	if err := json.Unmarshal(data, &schedules); err != nil {
		return nil, err
	}
	if schedules == nil {
		schedules = model.Schedules{}
	}
	return schedules, nil
}

func encodeEngineers(engineers []model.Engineer) ([]byte, error) {
	if engineers == nil {
		engineers = []model.Engineer{}
	}
	return json.Marshal(engineers)
}

func encodeSchedules(schedules model.Schedules) ([]byte, error) {
	if schedules == nil {
		schedules = model.Schedules{}
	}
	return json.Marshal(schedules)
}
