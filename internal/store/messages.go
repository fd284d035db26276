package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dcastano/studyroom/internal/model"
)

// PostMessage creates a message and adds its author to the room's
// participant set in one transaction. Re-adding an existing participant is a
// no-op.
func (s *Store) PostMessage(ctx context.Context, msg *model.Message) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(msg).Error; err != nil {
			return err
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&model.RoomParticipant{
				RoomID:    msg.RoomID,
				UserID:    msg.UserID,
				CreatedAt: time.Now().UTC(),
			}).Error
	})
	if err != nil {
		return fmt.Errorf("store: post message: %w", err)
	}
	return nil
}

// GetMessage looks a message up by id with its room and author.
func (s *Store) GetMessage(ctx context.Context, id uuid.UUID) (model.Message, error) {
	var msg model.Message
	err := s.db.WithContext(ctx).
		Preload("Room").
		Preload("User").
		First(&msg, "id = ?", id).Error
	if err != nil {
		return model.Message{}, fmt.Errorf("store: get message: %w", wrapNotFound(err))
	}
	return msg, nil
}

// DeleteMessage removes a message.
func (s *Store) DeleteMessage(ctx context.Context, id uuid.UUID) error {
	if err := s.db.WithContext(ctx).Delete(&model.Message{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("store: delete message: %w", err)
	}
	return nil
}

// ListRoomMessages returns a room's messages, newest first.
func (s *Store) ListRoomMessages(ctx context.Context, roomID uuid.UUID) ([]model.Message, error) {
	var msgs []model.Message
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("room_id = ?", roomID).
		Order("created_at DESC").
		Find(&msgs).Error
	if err != nil {
		return nil, fmt.Errorf("store: list room messages: %w", err)
	}
	return msgs, nil
}

// ListMessagesByAuthor returns a user's messages across all rooms, newest
// first.
func (s *Store) ListMessagesByAuthor(ctx context.Context, userID uuid.UUID) ([]model.Message, error) {
	var msgs []model.Message
	err := s.db.WithContext(ctx).
		Preload("User").
		Preload("Room").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&msgs).Error
	if err != nil {
		return nil, fmt.Errorf("store: list messages by author: %w", err)
	}
	return msgs, nil
}

// ListAllMessages returns every message in the system, newest first.
func (s *Store) ListAllMessages(ctx context.Context) ([]model.Message, error) {
	var msgs []model.Message
	err := s.db.WithContext(ctx).
		Preload("User").
		Preload("Room").
		Order("created_at DESC").
		Find(&msgs).Error
	if err != nil {
		return nil, fmt.Errorf("store: list all messages: %w", err)
	}
	return msgs, nil
}

// SearchMessagesByTopic returns messages in rooms whose topic name contains
// the query, case insensitively, newest first.
func (s *Store) SearchMessagesByTopic(ctx context.Context, query string) ([]model.Message, error) {
	var msgs []model.Message
	err := s.db.WithContext(ctx).
		Preload("User").
		Preload("Room").
		Joins("JOIN rooms ON rooms.id = messages.room_id").
		Joins("JOIN topics ON topics.id = rooms.topic_id").
		Where(`LOWER(topics.name) LIKE ? ESCAPE '\'`, containsPattern(query)).
		Order("messages.created_at DESC").
		Find(&msgs).Error
	if err != nil {
		return nil, fmt.Errorf("store: search messages by topic: %w", err)
	}
	return msgs, nil
}
