package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dcastano/studyroom/internal/model"
)

// CreateUser persists a new user together with their password hash in one
// transaction.
func (s *Store) CreateUser(ctx context.Context, user *model.User, hashedPassword string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return tx.Create(&model.Password{
			UserID:         user.ID,
			HashedPassword: hashedPassword,
			CreatedAt:      time.Now().UTC(),
		}).Error
	})
	if err != nil {
		return fmt.Errorf("store: create user: %w", err)
	}
	return nil
}

// GetUserByID looks a user up by primary key.
func (s *Store) GetUserByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	var user model.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return model.User{}, fmt.Errorf("store: get user: %w", wrapNotFound(err))
	}
	return user, nil
}

// GetUserByLogin looks a user up by username or email. The identifier is
// expected to be lowercased by the caller.
func (s *Store) GetUserByLogin(ctx context.Context, identifier string) (model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).
		Where("username = ? OR email = ?", identifier, identifier).
		First(&user).Error
	if err != nil {
		return model.User{}, fmt.Errorf("store: get user by login: %w", wrapNotFound(err))
	}
	return user, nil
}

// GetPassword returns the stored password hash for a user.
func (s *Store) GetPassword(ctx context.Context, userID uuid.UUID) (model.Password, error) {
	var pw model.Password
	if err := s.db.WithContext(ctx).First(&pw, "user_id = ?", userID).Error; err != nil {
		return model.Password{}, fmt.Errorf("store: get password: %w", wrapNotFound(err))
	}
	return pw, nil
}

// UpdateUser persists profile edits. Only the editable fields are written.
func (s *Store) UpdateUser(ctx context.Context, user *model.User) error {
	err := s.db.WithContext(ctx).
		Model(user).
		Select("Username", "Email", "Name", "Bio", "UpdatedAt").
		Updates(user).Error
	if err != nil {
		return fmt.Errorf("store: update user: %w", err)
	}
	return nil
}
