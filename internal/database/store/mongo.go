package store

import (
	"context"
	"errors"

	"shiftlist/internal/core"
	"shiftlist/internal/database/client"
	"shiftlist/internal/database/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// rosterDocument 一份完整 JSON 文件存成一筆 document，payload 與檔案版內容相同
type rosterDocument struct {
	ID      core.RosterDocument `bson:"_id"`
	Payload string              `bson:"payload"`
}

// MongoStore 把 engineers / schedules 兩份文件存在同一個 collection
type MongoStore struct {
	logger     *zap.Logger
	collection *mongo.Collection
}

func NewMongoStore(logger *zap.Logger, mongoClient *client.MongoClient) *MongoStore {
	return &MongoStore{
		logger:     logger,
		collection: mongoClient.Collection(string(core.MongoCollectionRosterDocuments)),
	}
}

func (s *MongoStore) LoadEngineers(ctx context.Context) []model.Engineer {
	payload, err := s.find(ctx, core.RosterDocumentEngineers)
	if err != nil {
		return []model.Engineer{}
	}
	engineers, err := decodeEngineers([]byte(payload))
	if err != nil {
		s.logger.Warn("engineers document is corrupt, using empty list", zap.Error(err))
		return []model.Engineer{}
	}
	return engineers
}

func (s *MongoStore) SaveEngineers(ctx context.Context, engineers []model.Engineer) error {
	data, err := encodeEngineers(engineers)
	if err != nil {
		return err
	}
	return s.replace(ctx, core.RosterDocumentEngineers, string(data))
}

func (s *MongoStore) LoadSchedules(ctx context.Context) model.Schedules {
	payload, err := s.find(ctx, core.RosterDocumentSchedules)
	if err != nil {
		return model.Schedules{}
	}
	schedules, err := decodeSchedules([]byte(payload))
	if err != nil {
		s.logger.Warn("schedules document is corrupt, using empty map", zap.Error(err))
		return model.Schedules{}
	}
	return schedules
}

func (s *MongoStore) SaveSchedules(ctx context.Context, schedules model.Schedules) error {
	data, err := encodeSchedules(schedules)
	if err != nil {
		return err
	}
	return s.replace(ctx, core.RosterDocumentSchedules, string(data))
}

func (s *MongoStore) find(ctx context.Context, id core.RosterDocument) (string, error) {
	var doc rosterDocument
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			s.logger.Warn("load roster document failed, using empty value",
				zap.String("id", string(id)), zap.Error(err))
		}
		return "", err
	}
	return doc.Payload, nil
}

func (s *MongoStore) replace(ctx context.Context, id core.RosterDocument, payload string) error {
	_, err := s.collection.ReplaceOne(ctx,
		bson.M{"_id": id},
		rosterDocument{ID: id, Payload: payload},
		options.Replace().SetUpsert(true),
	)
	return err
}
