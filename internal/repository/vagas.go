package repository

import (
	"errors"
	"time"

	"direito-hub-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VagasRepository handles database operations for cached job searches
type VagasRepository struct {
	db *gorm.DB
}

// NewVagasRepository creates a new jobs-search repository
func NewVagasRepository(db *gorm.DB) *VagasRepository {
	return &VagasRepository{db: db}
}

// GetValida returns the cached search for chave if it has not expired yet
// (push-based expiry: valid while now <= expira_em). Returns nil on a miss.
func (r *VagasRepository) GetValida(chave string, now time.Time) (*models.ConsultaVagas, error) {
	var consulta models.ConsultaVagas
	err := r.db.
		Where("chave_consulta = ? AND expira_em >= ?", chave, now).
		Order("updated_at DESC").
		First(&consulta).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &consulta, nil
}

// Upsert writes the refreshed search result, keyed on chave_consulta.
func (r *VagasRepository) Upsert(consulta *models.ConsultaVagas) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "chave_consulta"}},
		UpdateAll: true,
	}).Create(consulta).Error
}
