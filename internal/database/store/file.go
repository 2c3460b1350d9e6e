package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"shiftlist/internal/database/model"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const (
	EngineersFile = "engineers.json"
	SchedulesFile = "schedules.json"
)

// FileStore 以兩個 JSON 檔保存資料
type FileStore struct {
	logger  *zap.Logger
	fs      afero.Fs
	dataDir string
}

// NewFileStore 建立資料目錄，並把不存在的檔案初始化為空值
func NewFileStore(logger *zap.Logger, fs afero.Fs, dataDir string) (*FileStore, error) {
	s := &FileStore{logger: logger, fs: fs, dataDir: dataDir}
	if err := fs.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dataDir, err)
	}
	defaults := map[string][]byte{
		EngineersFile: []byte("[]"),
		SchedulesFile: []byte("{}"),
	}
	for name, empty := range defaults {
		path := s.path(name)
		exists, err := afero.Exists(fs, path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		if exists {
			continue
		}
		if err := afero.WriteFile(fs, path, empty, 0o644); err != nil {
			return nil, fmt.Errorf("init %s: %w", path, err)
		}
		logger.Info("initialized data file", zap.String("path", path))
	}
	return s, nil
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dataDir, name)
}

func (s *FileStore) LoadEngineers(ctx context.Context) []model.Engineer {
	data, err := s.read(EngineersFile)
	if err != nil {
		return []model.Engineer{}
	}
	engineers, err := decodeEngineers(data)
	if err != nil {
		s.logger.Warn("engineers file is corrupt, using empty list",
			zap.String("path", s.path(EngineersFile)), zap.Error(err))
		return []model.Engineer{}
	}
	return engineers
}

func (s *FileStore) SaveEngineers(ctx context.Context, engineers []model.Engineer) error {
	data, err := encodeEngineers(engineers)
	if err != nil {
		return err
	}
	return afero.WriteFile(s.fs, s.path(EngineersFile), data, 0o644)
}

func (s *FileStore) LoadSchedules(ctx context.Context) model.Schedules {
	data, err := s.read(SchedulesFile)
	if err != nil {
		return model.Schedules{}
	}
	schedules, err := decodeSchedules(data)
	if err != nil {
		s.logger.Warn("schedules file is corrupt, using empty map",
			zap.String("path", s.path(SchedulesFile)), zap.Error(err))
		return model.Schedules{}
	}
	return schedules
}

func (s *FileStore) SaveSchedules(ctx context.Context, schedules model.Schedules) error {
	data, err := encodeSchedules(schedules)
	if err != nil {
		return err
	}
	return afero.WriteFile(s.fs, s.path(SchedulesFile), data, 0o644)
}

func (s *FileStore) read(name string) ([]byte, error) {
	data, err := afero.ReadFile(s.fs, s.path(name))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn("read data file failed, using empty value",
				zap.String("path", s.path(name)), zap.Error(err))
		}
		return nil, err
	}
	return data, nil
}
