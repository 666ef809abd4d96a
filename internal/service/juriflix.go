package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"direito-hub-backend/internal/cache"
	"direito-hub-backend/internal/classify"
	"direito-hub-backend/internal/client"
	"direito-hub-backend/internal/database/models"
	apperrors "direito-hub-backend/internal/errors"

	"github.com/sirupsen/logrus"
)

// JuriflixService enriches catalog titles (movies and series about the legal
// world) with TMDB metadata, cached for 30 days per title. A force flag
// bypasses the freshness gate but still upserts the result.
type JuriflixService struct {
	repo  JuriflixRepositoryInterface
	tmdb  TMDBClientInterface
	ttl   cache.TTLConfig
	log   logrus.FieldLogger
	agora func() time.Time
}

// NewJuriflixService creates a new catalog-enrichment service
func NewJuriflixService(
	repo JuriflixRepositoryInterface,
	tmdb TMDBClientInterface,
	ttl cache.TTLConfig,
	log logrus.FieldLogger,
) *JuriflixService {
	return &JuriflixService{
		repo:  repo,
		tmdb:  tmdb,
		ttl:   ttl,
		log:   log,
		agora: time.Now,
	}
}

// SetClock overrides the service clock (tests).
func (s *JuriflixService) SetClock(now func() time.Time) {
	s.agora = now
}

// EnriquecerTituloRequest is the catalog-enrichment endpoint input
type EnriquecerTituloRequest struct {
	JuriflixID string `json:"juriflix_id"`
	Titulo     string `json:"titulo"`
	Ano        int    `json:"ano"`
	Force      bool   `json:"force"`
}

// EnriquecerTituloResponse is the catalog-enrichment endpoint payload.
// A TMDB miss is reported as success=false with a message, not as an error.
type EnriquecerTituloResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Data    *models.TituloJuriflix `json:"data,omitempty"`
	Fonte   string                 `json:"fonte,omitempty"`
}

// EnriquecerTitulo returns the enriched title, refreshing from TMDB when the
// cache row is stale, missing or force-bypassed.
func (s *JuriflixService) EnriquecerTitulo(ctx context.Context, req *EnriquecerTituloRequest) (*EnriquecerTituloResponse, error) {
	if req.JuriflixID == "" {
		return nil, apperrors.ErrMissingJuriflixID
	}

	now := s.agora()

	titulo, fonte, err := cache.Refresh(
		"enriquecer-titulo",
		s.log,
		cache.PersistBestEffort,
		func() (*models.TituloJuriflix, bool, error) {
			row, err := s.repo.GetByJuriflixID(req.JuriflixID)
			if err != nil || row == nil {
				return nil, false, err
			}
			fresh := !req.Force && now.Sub(row.UpdatedAt) <= s.ttl.TituloJuriflix
			// Carry the cached title forward so a forced refresh without an
			// explicit titulo can still search.
			if req.Titulo == "" {
				req.Titulo = row.Titulo
			}
			return row, fresh, nil
		},
		func() (*models.TituloJuriflix, error) {
			return s.buscarNoTMDB(ctx, req)
		},
		s.repo.Upsert,
	)
	if err != nil {
		if errors.Is(err, apperrors.ErrTituloNotFound) {
			return &EnriquecerTituloResponse{
				Success: false,
				Message: "título não encontrado no TMDB",
			}, nil
		}
		return nil, err
	}

	return &EnriquecerTituloResponse{
		Success: true,
		Message: "título enriquecido",
		Data:    titulo,
		Fonte:   string(fonte),
	}, nil
}

func (s *JuriflixService) buscarNoTMDB(ctx context.Context, req *EnriquecerTituloRequest) (*models.TituloJuriflix, error) {
	if req.Titulo == "" {
		return nil, apperrors.ErrMissingTituloForSearch
	}

	busca, err := s.tmdb.SearchMovie(ctx, req.Titulo, req.Ano)
	if err != nil {
		return nil, err
	}
	if len(busca.Results) == 0 {
		return nil, apperrors.ErrTituloNotFound
	}
	melhor := busca.Results[0]

	row := &models.TituloJuriflix{
		JuriflixID:  req.JuriflixID,
		TMDBID:      melhor.ID,
		Titulo:      melhor.Title,
		TituloOrig:  melhor.OriginalTitle,
		Sinopse:     melhor.Overview,
		PosterURL:   client.ImageURL(melhor.PosterPath),
		BackdropURL: client.ImageURL(melhor.BackdropPath),
		Avaliacao:   melhor.VoteAverage,
		Ano:         anoDe(melhor.ReleaseDate),
	}

	// The details call adds runtime, homepage and the inferred platform;
	// losing it degrades the row instead of failing the request.
	detalhes, err := s.tmdb.MovieDetails(ctx, melhor.ID)
	if err != nil {
		s.log.WithError(err).WithField("tmdb_id", melhor.ID).Warn("TMDB details failed, keeping search fields only")
		return row, nil
	}

	if detalhes.Overview != "" {
		row.Sinopse = detalhes.Overview
	}
	row.DuracaoMin = detalhes.Runtime
	row.HomepageURL = detalhes.Homepage
	row.Plataforma = classify.Plataforma(detalhes.Homepage)
	return row, nil
}

func anoDe(releaseDate string) int {
	if len(releaseDate) < 4 {
		return 0
	}
	ano, err := strconv.Atoi(releaseDate[:4])
	if err != nil {
		return 0
	}
	return ano
}
