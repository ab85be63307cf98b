package repository

import (
	"gorm.io/gorm"

	"github.com/teamtrack/project-management-api/internal/models"
)

// GormTokenRepository is a GORM implementation of TokenRepository
type GormTokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository creates a new TokenRepository
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &GormTokenRepository{db: db}
}

// Blacklist stores a revoked token until its expiry
func (r *GormTokenRepository) Blacklist(token *models.BlacklistToken) error {
	return r.db.Create(token).Error
}

// IsBlacklisted reports whether a token has been revoked
func (r *GormTokenRepository) IsBlacklisted(token string) (bool, error) {
	var count int64
	err := r.db.Model(&models.BlacklistToken{}).
		Where("token = ?", token).
		Count(&count).Error
	return count > 0, err
}
