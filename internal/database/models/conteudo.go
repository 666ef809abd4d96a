package models

import "time"

// ConteudoIA is a cache row for one AI-enriched piece of study content,
// keyed by a hash of (tipo, nome, conteudo_original) so identical inputs
// never hit the model twice within the TTL.
type ConteudoIA struct {
	Chave             string    `json:"chave" gorm:"primaryKey;size:64"`
	Tipo              string    `json:"tipo" gorm:"size:60;not null"`
	Nome              string    `json:"nome" gorm:"size:300;not null"`
	ConteudoOriginal  string    `json:"conteudo_original" gorm:"type:text"`
	ConteudoMelhorado string    `json:"conteudo_melhorado" gorm:"type:text"`
	Modelo            string    `json:"modelo" gorm:"size:80"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" gorm:"index"`
}

// TableName returns the table name for ConteudoIA
func (ConteudoIA) TableName() string {
	return "conteudos_ia"
}
