package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dcastano/studyroom/internal/model"
)

// containsPattern turns a free-text query into a case-insensitive LIKE
// pattern. LIKE metacharacters in the query are escaped so they match
// literally.
func containsPattern(query string) string {
	q := strings.ToLower(query)
	q = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(q)
	return "%" + q + "%"
}

// CreateRoom persists a new room. The host is fixed at creation.
func (s *Store) CreateRoom(ctx context.Context, room *model.Room) error {
	if err := s.db.WithContext(ctx).Create(room).Error; err != nil {
		return fmt.Errorf("store: create room: %w", err)
	}
	return nil
}

// GetRoom loads a room with its topic, host and participant set.
func (s *Store) GetRoom(ctx context.Context, id uuid.UUID) (model.Room, error) {
	var room model.Room
	err := s.db.WithContext(ctx).
		Preload("Topic").
		Preload("Host").
		Preload("Participants").
		First(&room, "id = ?", id).Error
	if err != nil {
		return model.Room{}, fmt.Errorf("store: get room: %w", wrapNotFound(err))
	}
	return room, nil
}

// UpdateRoom persists room edits. The host column is never written.
func (s *Store) UpdateRoom(ctx context.Context, room *model.Room) error {
	err := s.db.WithContext(ctx).
		Model(room).
		Select("Name", "Description", "TopicID", "UpdatedAt").
		Updates(room).Error
	if err != nil {
		return fmt.Errorf("store: update room: %w", err)
	}
	return nil
}

// DeleteRoom removes a room together with its messages and participant rows.
func (s *Store) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("room_id = ?", id).Delete(&model.Message{}).Error; err != nil {
			return err
		}
		if err := tx.Where("room_id = ?", id).Delete(&model.RoomParticipant{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Room{}, "id = ?", id).Error
	})
	if err != nil {
		return fmt.Errorf("store: delete room: %w", err)
	}
	return nil
}

// SearchRooms returns rooms whose name, description or topic name contains
// the query, case insensitively, newest first. An empty query matches all
// rooms.
func (s *Store) SearchRooms(ctx context.Context, query string) ([]model.Room, error) {
	pattern := containsPattern(query)

	var rooms []model.Room
	err := s.db.WithContext(ctx).
		Joins("Topic").
		Preload("Host").
		Where(`LOWER(rooms.name) LIKE ? ESCAPE '\'`+
			` OR LOWER(rooms.description) LIKE ? ESCAPE '\'`+
			` OR LOWER("Topic".name) LIKE ? ESCAPE '\'`,
			pattern, pattern, pattern).
		Order("rooms.created_at DESC").
		Find(&rooms).Error
	if err != nil {
		return nil, fmt.Errorf("store: search rooms: %w", err)
	}
	return rooms, nil
}

// ListRoomsByHost returns the rooms hosted by a user, newest first.
func (s *Store) ListRoomsByHost(ctx context.Context, hostID uuid.UUID) ([]model.Room, error) {
	var rooms []model.Room
	err := s.db.WithContext(ctx).
		Joins("Topic").
		Where("rooms.host_id = ?", hostID).
		Order("rooms.created_at DESC").
		Find(&rooms).Error
	if err != nil {
		return nil, fmt.Errorf("store: list rooms by host: %w", err)
	}
	return rooms, nil
}
