package models

import (
	"time"

	"gorm.io/datatypes"
)

// ConsultaVagas is a cache row for one jobs-board search. The natural key is
// a hash of the normalized search parameters; the transformed job list is
// stored as an opaque JSON payload. Expiry is push-based: the row carries an
// explicit expira_em and is valid while now <= expira_em.
type ConsultaVagas struct {
	ChaveConsulta string         `json:"chave_consulta" gorm:"primaryKey;size:64"`
	Keywords      string         `json:"keywords" gorm:"size:200"`
	Localizacao   string         `json:"localizacao" gorm:"size:200"`
	Payload       datatypes.JSON `json:"payload"`
	Total         int            `json:"total"`
	PaginaAtual   int            `json:"pagina_atual"`
	TotalPaginas  int            `json:"total_paginas"`
	SalarioMedio  float64        `json:"salario_medio"`
	ExpiraEm      time.Time      `json:"expira_em" gorm:"index"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// TableName returns the table name for ConsultaVagas
func (ConsultaVagas) TableName() string {
	return "consultas_vagas"
}
