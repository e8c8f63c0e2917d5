package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	model "task-tracker.com/task-tracker/internal/models"
)

type RefreshTokenRepository struct {
	db *gorm.DB
}

func NewRefreshTokenRepository(db *gorm.DB) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

func (r *RefreshTokenRepository) Create(ctx context.Context, token *model.RefreshToken) error {
	return r.db.WithContext(ctx).Create(token).Error
}

// FindByToken returns (nil, nil) when no row matches the opaque value.
func (r *RefreshTokenRepository) FindByToken(ctx context.Context, tokenValue string) (*model.RefreshToken, error) {
	var token model.RefreshToken
	err := r.db.WithContext(ctx).First(&token, "token = ?", tokenValue).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &token, nil
}

// Revoke marks the token revoked. Revocation is monotonic; re-revoking an
// already revoked token is a no-op that still succeeds.
func (r *RefreshTokenRepository) Revoke(ctx context.Context, token *model.RefreshToken) error {
	token.IsRevoked = true
	return r.db.WithContext(ctx).Model(token).Update("is_revoked", true).Error
}
