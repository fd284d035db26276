package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dcastano/studyroom/internal/model"
)

// CreateRefreshToken persists a new login session token.
func (s *Store) CreateRefreshToken(ctx context.Context, token *model.RefreshToken) error {
	if err := s.db.WithContext(ctx).Create(token).Error; err != nil {
		return fmt.Errorf("store: create refresh token: %w", err)
	}
	return nil
}

// GetRefreshToken returns a refresh token that is neither revoked nor
// expired.
func (s *Store) GetRefreshToken(ctx context.Context, token string) (model.RefreshToken, error) {
	var tok model.RefreshToken
	err := s.db.WithContext(ctx).
		Where("token = ? AND revoked_at IS NULL AND expires_at > ?", token, time.Now().UTC()).
		First(&tok).Error
	if err != nil {
		return model.RefreshToken{}, fmt.Errorf("store: get refresh token: %w", wrapNotFound(err))
	}
	return tok, nil
}

// GetUserFromRefreshToken resolves a live refresh token to its user id.
func (s *Store) GetUserFromRefreshToken(ctx context.Context, token string) (uuid.UUID, error) {
	tok, err := s.GetRefreshToken(ctx, token)
	if err != nil {
		return uuid.UUID{}, err
	}
	return tok.UserID, nil
}

// RevokeRefreshToken marks a refresh token revoked. Revoking an unknown
// token is a no-op.
func (s *Store) RevokeRefreshToken(ctx context.Context, token string) error {
	now := time.Now().UTC()
	err := s.db.WithContext(ctx).
		Model(&model.RefreshToken{}).
		Where("token = ? AND revoked_at IS NULL", token).
		Update("revoked_at", &now).Error
	if err != nil {
		return fmt.Errorf("store: revoke refresh token: %w", err)
	}
	return nil
}
