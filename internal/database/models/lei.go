package models

import "time"

// LeiRecente is a cache row for one recently published norm, keyed by the
// LexML norm identifier. Rows are fully replaced on refresh, never versioned.
type LeiRecente struct {
	IDNorma        string    `json:"id_norma" gorm:"primaryKey;size:180"`
	Tipo           string    `json:"tipo" gorm:"size:60"`
	Titulo         string    `json:"titulo" gorm:"size:300;not null"`
	Ementa         string    `json:"ementa" gorm:"type:text"`
	URL            string    `json:"url" gorm:"size:500"`
	DataPublicacao time.Time `json:"data_publicacao"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"index"`
}

// TableName returns the table name for LeiRecente
func (LeiRecente) TableName() string {
	return "leis_recentes"
}
