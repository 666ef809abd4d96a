package models

import "time"

// Ranking types accepted by the ranking endpoint.
const (
	RankingTipoGastos      = "gastos"
	RankingTipoProposicoes = "proposicoes"
)

// RankingDeputado is a cache row for one legislator's aggregated total in a
// given ranking period. The composite primary key is the natural key
// (deputado, tipo, ano, mes); concurrent refreshes race harmlessly because
// the upsert replaces the whole row.
type RankingDeputado struct {
	DeputadoID     int       `json:"deputado_id" gorm:"primaryKey"`
	Tipo           string    `json:"tipo" gorm:"primaryKey;size:20"`
	Ano            int       `json:"ano" gorm:"primaryKey"`
	Mes            int       `json:"mes" gorm:"primaryKey"`
	Nome           string    `json:"nome" gorm:"size:200;not null"`
	Partido        string    `json:"partido" gorm:"size:20"`
	UF             string    `json:"uf" gorm:"size:2"`
	FotoURL        string    `json:"foto_url" gorm:"size:500"`
	ValorTotal     float64   `json:"valor_total"`
	ValorFormatado string    `json:"valor_formatado" gorm:"size:60"`
	Posicao        int       `json:"posicao"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"index"`
}

// TableName returns the table name for RankingDeputado
func (RankingDeputado) TableName() string {
	return "ranking_deputados"
}
