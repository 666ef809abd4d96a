package models

import "time"

// TituloJuriflix is a cache row for one catalog item enriched with TMDB
// metadata, keyed by the catalog's own identifier.
type TituloJuriflix struct {
	JuriflixID  string    `json:"juriflix_id" gorm:"primaryKey;size:80"`
	TMDBID      int       `json:"tmdb_id" gorm:"index"`
	Titulo      string    `json:"titulo" gorm:"size:300;not null"`
	TituloOrig  string    `json:"titulo_original" gorm:"size:300"`
	Sinopse     string    `json:"sinopse" gorm:"type:text"`
	PosterURL   string    `json:"poster_url" gorm:"size:500"`
	BackdropURL string    `json:"backdrop_url" gorm:"size:500"`
	Avaliacao   float64   `json:"avaliacao"`
	Ano         int       `json:"ano"`
	DuracaoMin  int       `json:"duracao_min"`
	Plataforma  string    `json:"plataforma" gorm:"size:40"`
	HomepageURL string    `json:"homepage_url" gorm:"size:500"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"index"`
}

// TableName returns the table name for TituloJuriflix
func (TituloJuriflix) TableName() string {
	return "titulos_juriflix"
}
