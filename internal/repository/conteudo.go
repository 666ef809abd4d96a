package repository

import (
	"errors"
	"time"

	"direito-hub-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ConteudoRepository handles database operations for cached AI content
type ConteudoRepository struct {
	db *gorm.DB
}

// NewConteudoRepository creates a new AI-content repository
func NewConteudoRepository(db *gorm.DB) *ConteudoRepository {
	return &ConteudoRepository{db: db}
}

// GetAtualizadoDesde returns the cached content for chave if it was
// refreshed at or after cutoff. Returns nil on a miss or stale row.
func (r *ConteudoRepository) GetAtualizadoDesde(chave string, cutoff time.Time) (*models.ConteudoIA, error) {
	var conteudo models.ConteudoIA
	err := r.db.
		Where("chave = ? AND updated_at >= ?", chave, cutoff).
		Order("updated_at DESC").
		First(&conteudo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &conteudo, nil
}

// Upsert writes the generated content, keyed on chave.
func (r *ConteudoRepository) Upsert(conteudo *models.ConteudoIA) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "chave"}},
		UpdateAll: true,
	}).Create(conteudo).Error
}
