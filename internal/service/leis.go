package service

import (
	"context"
	"encoding/json"
	"time"

	"direito-hub-backend/internal/cache"
	"direito-hub-backend/internal/client"
	"direito-hub-backend/internal/database/models"
	"direito-hub-backend/internal/format"

	"github.com/sirupsen/logrus"
)

// maxLeisRecentes bounds how many norms one refresh pulls from the feed.
const maxLeisRecentes = 10

// tituloFallbackRunes is the ementa truncation length used when the AI
// headline is unavailable.
const tituloFallbackRunes = 120

// LeisService serves the recent-laws endpoint: LexML feed behind a 6-hour
// Postgres cache, with a best-effort AI headline per norm and an in-process
// hot layer for repeat requests.
type LeisService struct {
	repo    LeisRepositoryInterface
	lexml   LexMLClientInterface
	genai   GenAIClientInterface
	memoria cache.Store
	ttl     cache.TTLConfig
	log     logrus.FieldLogger
	agora   func() time.Time
}

// NewLeisService creates a new recent-laws service. genai may be nil when the
// AI credentials are not configured; headlines then fall back to the ementa.
func NewLeisService(
	repo LeisRepositoryInterface,
	lexml LexMLClientInterface,
	genai GenAIClientInterface,
	memoria cache.Store,
	ttl cache.TTLConfig,
	log logrus.FieldLogger,
) *LeisService {
	return &LeisService{
		repo:    repo,
		lexml:   lexml,
		genai:   genai,
		memoria: memoria,
		ttl:     ttl,
		log:     log,
		agora:   time.Now,
	}
}

// SetClock overrides the service clock (tests).
func (s *LeisService) SetClock(now func() time.Time) {
	s.agora = now
}

// LeiResponse is one normalized law in the API payload
type LeiResponse struct {
	IDNorma        string `json:"id_norma"`
	Tipo           string `json:"tipo"`
	Titulo         string `json:"titulo"`
	Ementa         string `json:"ementa"`
	URL            string `json:"url"`
	DataPublicacao string `json:"data_publicacao"`
	PublicadaHa    string `json:"publicada_ha"`
}

// LeisRecentesResponse is the recent-laws endpoint payload
type LeisRecentesResponse struct {
	Leis  []LeiResponse `json:"leis"`
	Fonte string        `json:"fonte"`
}

// GetLeisRecentes returns the most recent norms, from cache when fresh.
func (s *LeisService) GetLeisRecentes(ctx context.Context) (*LeisRecentesResponse, error) {
	memKey := cache.BuildKey(cache.KeyPrefixLeisRecentes)
	if data, err := s.memoria.Get(memKey); err == nil {
		var resp LeisRecentesResponse
		if json.Unmarshal(data, &resp) == nil {
			resp.Fonte = string(cache.FonteCache)
			return &resp, nil
		}
	}

	now := s.agora()
	cutoff := now.Add(-s.ttl.LeisRecentes)

	leis, fonte, err := cache.Refresh(
		"leis-recentes",
		s.log,
		cache.PersistBestEffort,
		func() ([]models.LeiRecente, bool, error) {
			rows, err := s.repo.GetAtualizadasDesde(cutoff)
			return rows, len(rows) > 0, err
		},
		func() ([]models.LeiRecente, error) {
			return s.buscarETransformar(ctx)
		},
		s.repo.UpsertAll,
	)
	if err != nil {
		return nil, err
	}

	resp := s.montarResposta(leis, fonte, now)
	if data, err := json.Marshal(resp); err == nil {
		_ = s.memoria.Set(memKey, data, s.ttl.MemoriaResposta)
	}
	return resp, nil
}

// buscarETransformar pulls the feed and normalizes each norm into a cache
// row, attaching the best-effort headline.
func (s *LeisService) buscarETransformar(ctx context.Context) ([]models.LeiRecente, error) {
	normas, err := s.lexml.BuscarNormasRecentes(ctx, maxLeisRecentes)
	if err != nil {
		return nil, err
	}

	leis := make([]models.LeiRecente, 0, len(normas))
	for _, norma := range normas {
		leis = append(leis, models.LeiRecente{
			IDNorma:        norma.URN,
			Tipo:           norma.Tipo,
			Titulo:         s.tituloPara(ctx, norma),
			Ementa:         norma.Ementa,
			URL:            norma.URL,
			DataPublicacao: norma.DataPublicacao,
		})
	}
	return leis, nil
}

// tituloPara asks the AI for a headline; failure degrades to the feed title
// or a truncated ementa, never to a request failure.
func (s *LeisService) tituloPara(ctx context.Context, norma client.Norma) string {
	if s.genai != nil {
		titulo, err := s.genai.GerarTitulo(ctx, norma.Tipo, norma.Ementa)
		if err == nil && titulo != "" {
			return titulo
		}
		if err != nil {
			s.log.WithError(err).WithField("id_norma", norma.URN).Warn("AI headline failed, using fallback")
		}
	}
	if norma.Titulo != "" {
		return norma.Titulo
	}
	return format.Truncar(norma.Ementa, tituloFallbackRunes)
}

func (s *LeisService) montarResposta(leis []models.LeiRecente, fonte cache.Fonte, now time.Time) *LeisRecentesResponse {
	out := make([]LeiResponse, 0, len(leis))
	for _, lei := range leis {
		item := LeiResponse{
			IDNorma: lei.IDNorma,
			Tipo:    lei.Tipo,
			Titulo:  lei.Titulo,
			Ementa:  lei.Ementa,
			URL:     lei.URL,
		}
		if !lei.DataPublicacao.IsZero() {
			item.DataPublicacao = lei.DataPublicacao.Format("2006-01-02")
			item.PublicadaHa = format.TempoRelativo(lei.DataPublicacao, now)
		}
		out = append(out, item)
	}
	return &LeisRecentesResponse{Leis: out, Fonte: string(fonte)}
}
