package store

import (
	"context"
	"sync"

	"shiftlist/internal/database/model"
)

// MemoryStore 測試用；以 JSON 來回序列化保存，呼叫端拿到的永遠是副本
type MemoryStore struct {
	mu        sync.Mutex
	engineers []byte
	schedules []byte
	// SaveErr 非 nil 時所有 Save 都回傳它
	SaveErr error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{engineers: []byte("[]"), schedules: []byte("{}")}
}

func (s *MemoryStore) LoadEngineers(ctx context.Context) []model.Engineer {
	s.mu.Lock()
	defer s.mu.Unlock()
	engineers, err := decodeEngineers(s.engineers)
	if err != nil {
		return []model.Engineer{}
	}
	return engineers
}

func (s *MemoryStore) SaveEngineers(ctx context.Context, engineers []model.Engineer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	data, err := encodeEngineers(engineers)
	if err != nil {
		return err
	}
	s.engineers = data
	return nil
}

func (s *MemoryStore) LoadSchedules(ctx context.Context) model.Schedules {
	s.mu.Lock()
	defer s.mu.Unlock()
	schedules, err := decodeSchedules(s.schedules)
	if err != nil {
		return model.Schedules{}
	}
	return schedules
}

func (s *MemoryStore) SaveSchedules(ctx context.Context, schedules model.Schedules) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	data, err := encodeSchedules(schedules)
	if err != nil {
		return err
	}
	s.schedules = data
	return nil
}
