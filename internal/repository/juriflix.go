package repository

import (
	"errors"

	"direito-hub-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// JuriflixRepository handles database operations for enriched catalog titles
type JuriflixRepository struct {
	db *gorm.DB
}

// NewJuriflixRepository creates a new catalog-title repository
func NewJuriflixRepository(db *gorm.DB) *JuriflixRepository {
	return &JuriflixRepository{db: db}
}

// GetByJuriflixID returns the cached title, or nil when never enriched.
// Freshness is the caller's decision (the handler honors a force flag).
func (r *JuriflixRepository) GetByJuriflixID(juriflixID string) (*models.TituloJuriflix, error) {
	var titulo models.TituloJuriflix
	err := r.db.First(&titulo, "juriflix_id = ?", juriflixID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &titulo, nil
}

// Upsert writes the enriched title, keyed on juriflix_id.
func (r *JuriflixRepository) Upsert(titulo *models.TituloJuriflix) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "juriflix_id"}},
		UpdateAll: true,
	}).Create(titulo).Error
}
