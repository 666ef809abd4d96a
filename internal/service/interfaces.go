package service

import (
	"context"
	"time"

	"direito-hub-backend/internal/client"
	"direito-hub-backend/internal/database/models"
)

// Repository interfaces consumed by the services. Declared here so tests can
// substitute fakes without a database.

type LeisRepositoryInterface interface {
	GetAtualizadasDesde(cutoff time.Time) ([]models.LeiRecente, error)
	UpsertAll(leis []models.LeiRecente) error
}

type RankingRepositoryInterface interface {
	GetPorPeriodo(tipo string, ano, mes int, cutoff time.Time) ([]models.RankingDeputado, error)
	UpsertAll(rows []models.RankingDeputado) error
}

type VagasRepositoryInterface interface {
	GetValida(chave string, now time.Time) (*models.ConsultaVagas, error)
	Upsert(consulta *models.ConsultaVagas) error
}

type JuriflixRepositoryInterface interface {
	GetByJuriflixID(juriflixID string) (*models.TituloJuriflix, error)
	Upsert(titulo *models.TituloJuriflix) error
}

type ConteudoRepositoryInterface interface {
	GetAtualizadoDesde(chave string, cutoff time.Time) (*models.ConteudoIA, error)
	Upsert(conteudo *models.ConteudoIA) error
}

// Upstream client interfaces consumed by the services.

type LexMLClientInterface interface {
	BuscarNormasRecentes(ctx context.Context, max int) ([]client.Norma, error)
}

type CamaraClientInterface interface {
	ListarDeputados(ctx context.Context) ([]client.Deputado, error)
	TotalDespesas(ctx context.Context, deputadoID, ano, mes int) (float64, error)
	ContarProposicoes(ctx context.Context, deputadoID, ano int) (int, error)
}

type JobsClientInterface interface {
	Search(ctx context.Context, p client.JobsSearchParams) (*client.JobsSearchResponse, error)
}

type TMDBClientInterface interface {
	SearchMovie(ctx context.Context, query string, year int) (*client.TMDBSearchResponse, error)
	MovieDetails(ctx context.Context, movieID int) (*client.TMDBMovieDetails, error)
}

type GenAIClientInterface interface {
	GerarTitulo(ctx context.Context, tipo, ementa string) (string, error)
	MelhorarConteudo(ctx context.Context, tipo, nome, conteudo, contexto string) (string, error)
}

// Service interfaces consumed by the HTTP handlers.

type LeisServiceInterface interface {
	GetLeisRecentes(ctx context.Context) (*LeisRecentesResponse, error)
}

type RankingServiceInterface interface {
	GetRanking(ctx context.Context, req *RankingRequest) (*RankingResponse, error)
}

type VagasServiceInterface interface {
	BuscarVagas(ctx context.Context, req *BuscaVagasRequest) (*BuscaVagasResponse, error)
}

type JuriflixServiceInterface interface {
	EnriquecerTitulo(ctx context.Context, req *EnriquecerTituloRequest) (*EnriquecerTituloResponse, error)
}

type ConteudoServiceInterface interface {
	MelhorarConteudo(ctx context.Context, req *MelhorarConteudoRequest) (*MelhorarConteudoResponse, error)
}
