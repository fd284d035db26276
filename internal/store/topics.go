package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dcastano/studyroom/internal/model"
)

// GetOrCreateTopic resolves a topic by exact name, creating it if absent.
// The unique index on name guards the read-then-insert against concurrent
// creation; on an insert conflict the winning row is read back.
func (s *Store) GetOrCreateTopic(ctx context.Context, name string) (model.Topic, error) {
	var topic model.Topic

	err := s.db.WithContext(ctx).Where("name = ?", name).First(&topic).Error
	if err == nil {
		return topic, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Topic{}, fmt.Errorf("store: get topic: %w", err)
	}

	topic = model.Topic{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.db.WithContext(ctx).Create(&topic).Error; err != nil {
		// Lost the race against another create. The row exists now.
		var existing model.Topic
		if readErr := s.db.WithContext(ctx).Where("name = ?", name).First(&existing).Error; readErr == nil {
			return existing, nil
		}
		return model.Topic{}, fmt.Errorf("store: create topic: %w", err)
	}

	return topic, nil
}

// ListTopics returns the first limit topics in creation order. A limit of 0
// returns all topics.
func (s *Store) ListTopics(ctx context.Context, limit int) ([]model.Topic, error) {
	var topics []model.Topic
	q := s.db.WithContext(ctx).Order("created_at")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&topics).Error; err != nil {
		return nil, fmt.Errorf("store: list topics: %w", err)
	}
	return topics, nil
}

// SearchTopics returns topics whose name contains the query, case
// insensitively. An empty query matches everything.
func (s *Store) SearchTopics(ctx context.Context, query string) ([]model.Topic, error) {
	var topics []model.Topic
	err := s.db.WithContext(ctx).
		Where(`LOWER(name) LIKE ? ESCAPE '\'`, containsPattern(query)).
		Order("created_at").
		Find(&topics).Error
	if err != nil {
		return nil, fmt.Errorf("store: search topics: %w", err)
	}
	return topics, nil
}
