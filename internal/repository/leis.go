package repository

import (
	"time"

	"direito-hub-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LeisRepository handles database operations for cached recent laws
type LeisRepository struct {
	db *gorm.DB
}

// NewLeisRepository creates a new recent-laws repository
func NewLeisRepository(db *gorm.DB) *LeisRepository {
	return &LeisRepository{db: db}
}

// GetAtualizadasDesde returns the cached laws refreshed at or after cutoff,
// newest publication first. An empty slice means the cache is stale.
func (r *LeisRepository) GetAtualizadasDesde(cutoff time.Time) ([]models.LeiRecente, error) {
	var leis []models.LeiRecente
	err := r.db.
		Where("updated_at >= ?", cutoff).
		Order("data_publicacao DESC, updated_at DESC").
		Find(&leis).Error
	if err != nil {
		return nil, err
	}
	return leis, nil
}

// UpsertAll writes the refreshed laws, keyed on id_norma. Re-running with
// identical upstream data leaves exactly one row per norm.
func (r *LeisRepository) UpsertAll(leis []models.LeiRecente) error {
	if len(leis) == 0 {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id_norma"}},
		UpdateAll: true,
	}).Create(&leis).Error
}
