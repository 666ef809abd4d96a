package repository

import (
	"time"

	"direito-hub-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RankingRepository handles database operations for cached legislator rankings
type RankingRepository struct {
	db *gorm.DB
}

// NewRankingRepository creates a new ranking repository
func NewRankingRepository(db *gorm.DB) *RankingRepository {
	return &RankingRepository{db: db}
}

// GetPorPeriodo returns the cached ranking rows for (tipo, ano, mes) that
// were refreshed at or after cutoff, ordered by position.
func (r *RankingRepository) GetPorPeriodo(tipo string, ano, mes int, cutoff time.Time) ([]models.RankingDeputado, error) {
	var rows []models.RankingDeputado
	err := r.db.
		Where("tipo = ? AND ano = ? AND mes = ? AND updated_at >= ?", tipo, ano, mes, cutoff).
		Order("posicao ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// UpsertAll writes the refreshed ranking rows, keyed on the composite
// (deputado_id, tipo, ano, mes).
func (r *RankingRepository) UpsertAll(rows []models.RankingDeputado) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "deputado_id"}, {Name: "tipo"}, {Name: "ano"}, {Name: "mes"},
		},
		UpdateAll: true,
	}).Create(&rows).Error
}
