package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"direito-hub-backend/internal/cache"
	"direito-hub-backend/internal/database/models"
	apperrors "direito-hub-backend/internal/errors"
	"direito-hub-backend/internal/format"

	"github.com/sirupsen/logrus"
)

const (
	rankingLimiteDefault = 10
	rankingLimiteMax     = 100
)

// RankingService serves the legislator-ranking endpoint: the full house list
// plus one follow-up request per legislator, aggregated, sorted and cached
// per (tipo, ano, mes) for 24 hours.
//
// The per-legislator fan-out is uncapped; the open-data API absorbs the
// burst, and cached periods make it rare.
type RankingService struct {
	repo   RankingRepositoryInterface
	camara CamaraClientInterface
	ttl    cache.TTLConfig
	log    logrus.FieldLogger
	agora  func() time.Time
}

// NewRankingService creates a new ranking service
func NewRankingService(
	repo RankingRepositoryInterface,
	camara CamaraClientInterface,
	ttl cache.TTLConfig,
	log logrus.FieldLogger,
) *RankingService {
	return &RankingService{
		repo:   repo,
		camara: camara,
		ttl:    ttl,
		log:    log,
		agora:  time.Now,
	}
}

// SetClock overrides the service clock (tests).
func (s *RankingService) SetClock(now func() time.Time) {
	s.agora = now
}

// RankingRequest is the ranking endpoint input
type RankingRequest struct {
	Tipo   string `json:"tipo"`
	Limite int    `json:"limite"`
	Ano    int    `json:"ano"`
	Mes    int    `json:"mes"`
}

// DeputadoRanking is one ranked legislator in the API payload
type DeputadoRanking struct {
	DeputadoID     int     `json:"deputado_id"`
	Posicao        int     `json:"posicao"`
	Nome           string  `json:"nome"`
	Partido        string  `json:"partido"`
	UF             string  `json:"uf"`
	FotoURL        string  `json:"foto_url"`
	ValorTotal     float64 `json:"valor_total"`
	ValorFormatado string  `json:"valor_formatado"`
}

// RankingResponse is the ranking endpoint payload
type RankingResponse struct {
	Ranking []DeputadoRanking `json:"ranking"`
	Periodo string            `json:"periodo"`
	Fonte   string            `json:"fonte"`
}

// normalizar fills defaults and validates the request in place.
func (s *RankingService) normalizar(req *RankingRequest, now time.Time) error {
	if req.Tipo == "" {
		req.Tipo = models.RankingTipoGastos
	}
	if req.Tipo != models.RankingTipoGastos && req.Tipo != models.RankingTipoProposicoes {
		return apperrors.ErrInvalidTipoRanking
	}

	if req.Limite <= 0 {
		req.Limite = rankingLimiteDefault
	}
	if req.Limite > rankingLimiteMax {
		req.Limite = rankingLimiteMax
	}

	// Default period: the previous month, which is the newest one the
	// expenses data is complete for.
	if req.Ano == 0 && req.Mes == 0 {
		prev := now.AddDate(0, -1, 0)
		req.Ano = prev.Year()
		req.Mes = int(prev.Month())
	}
	if req.Ano < 2000 || req.Ano > now.Year() || req.Mes < 1 || req.Mes > 12 {
		return apperrors.ErrInvalidPeriodo
	}
	return nil
}

// GetRanking returns the ranked legislators for a period, from cache when fresh.
func (s *RankingService) GetRanking(ctx context.Context, req *RankingRequest) (*RankingResponse, error) {
	now := s.agora()
	if err := s.normalizar(req, now); err != nil {
		return nil, err
	}
	cutoff := now.Add(-s.ttl.RankingPeriodo)

	rows, fonte, err := cache.Refresh(
		"ranking-deputados",
		s.log,
		cache.PersistBestEffort,
		func() ([]models.RankingDeputado, bool, error) {
			cached, err := s.repo.GetPorPeriodo(req.Tipo, req.Ano, req.Mes, cutoff)
			return cached, len(cached) > 0, err
		},
		func() ([]models.RankingDeputado, error) {
			return s.montarRanking(ctx, req)
		},
		s.repo.UpsertAll,
	)
	if err != nil {
		return nil, err
	}

	if len(rows) > req.Limite {
		rows = rows[:req.Limite]
	}

	ranking := make([]DeputadoRanking, 0, len(rows))
	for _, row := range rows {
		ranking = append(ranking, DeputadoRanking{
			DeputadoID:     row.DeputadoID,
			Posicao:        row.Posicao,
			Nome:           row.Nome,
			Partido:        row.Partido,
			UF:             row.UF,
			FotoURL:        row.FotoURL,
			ValorTotal:     row.ValorTotal,
			ValorFormatado: row.ValorFormatado,
		})
	}

	return &RankingResponse{
		Ranking: ranking,
		Periodo: format.Periodo(req.Ano, req.Mes),
		Fonte:   string(fonte),
	}, nil
}

// montarRanking fetches the house list, fans out one request per legislator,
// aggregates and sorts. Individual legislator failures are logged and
// skipped; only a fully failed fan-out fails the request.
func (s *RankingService) montarRanking(ctx context.Context, req *RankingRequest) ([]models.RankingDeputado, error) {
	deputados, err := s.camara.ListarDeputados(ctx)
	if err != nil {
		return nil, err
	}
	if len(deputados) == 0 {
		return nil, apperrors.ErrDeputadoNotFound
	}

	type resultado struct {
		idx   int
		valor float64
		err   error
	}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	resultados := make([]resultado, 0, len(deputados))

	for i := range deputados {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			dep := deputados[idx]

			var valor float64
			var err error
			switch req.Tipo {
			case models.RankingTipoProposicoes:
				var n int
				n, err = s.camara.ContarProposicoes(ctx, dep.ID, req.Ano)
				valor = float64(n)
			default:
				valor, err = s.camara.TotalDespesas(ctx, dep.ID, req.Ano, req.Mes)
			}

			mu.Lock()
			resultados = append(resultados, resultado{idx: idx, valor: valor, err: err})
			mu.Unlock()
		}(i)
	}
	wg.Wait()

	rows := make([]models.RankingDeputado, 0, len(resultados))
	for _, r := range resultados {
		if r.err != nil {
			s.log.WithError(r.err).WithField("deputado_id", deputados[r.idx].ID).Warn("per-legislator fetch failed, skipping")
			continue
		}
		dep := deputados[r.idx]
		row := models.RankingDeputado{
			DeputadoID: dep.ID,
			Tipo:       req.Tipo,
			Ano:        req.Ano,
			Mes:        req.Mes,
			Nome:       dep.Nome,
			Partido:    dep.SiglaPartido,
			UF:         dep.SiglaUF,
			FotoURL:    dep.URLFoto,
			ValorTotal: r.valor,
		}
		if req.Tipo == models.RankingTipoGastos {
			row.ValorFormatado = format.Moeda(r.valor)
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, apperrors.NewUpstreamError("Câmara", 0, "all per-legislator requests failed")
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].ValorTotal > rows[j].ValorTotal })
	for i := range rows {
		rows[i].Posicao = i + 1
	}

	return rows, nil
}
