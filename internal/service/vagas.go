package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"direito-hub-backend/internal/cache"
	"direito-hub-backend/internal/classify"
	"direito-hub-backend/internal/database/models"
	apperrors "direito-hub-backend/internal/errors"
	"direito-hub-backend/internal/format"

	"direito-hub-backend/internal/client"

	"github.com/sirupsen/logrus"
)

const (
	vagasPorPaginaDefault = 20
	vagasPorPaginaMax     = 50
)

// VagasService serves the jobs-search endpoint. Each distinct search is one
// cache row keyed by a hash of the normalized parameters, valid for one hour
// via an explicit expira_em column (push-based expiry).
type VagasService struct {
	repo  VagasRepositoryInterface
	jobs  JobsClientInterface
	ttl   cache.TTLConfig
	log   logrus.FieldLogger
	agora func() time.Time
}

// NewVagasService creates a new jobs-search service
func NewVagasService(
	repo VagasRepositoryInterface,
	jobs JobsClientInterface,
	ttl cache.TTLConfig,
	log logrus.FieldLogger,
) *VagasService {
	return &VagasService{
		repo:  repo,
		jobs:  jobs,
		ttl:   ttl,
		log:   log,
		agora: time.Now,
	}
}

// SetClock overrides the service clock (tests).
func (s *VagasService) SetClock(now func() time.Time) {
	s.agora = now
}

// BuscaVagasRequest is the jobs-search endpoint input
type BuscaVagasRequest struct {
	Keywords       string  `json:"keywords"`
	Location       string  `json:"location"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	Page           int     `json:"page"`
	ResultsPerPage int     `json:"resultsPerPage"`
}

// VagaResponse is one normalized job posting
type VagaResponse struct {
	ID                string  `json:"id"`
	Titulo            string  `json:"titulo"`
	Empresa           string  `json:"empresa"`
	Localizacao       string  `json:"localizacao"`
	Tipo              string  `json:"tipo"`
	SalarioMin        float64 `json:"salario_min"`
	SalarioMax        float64 `json:"salario_max"`
	SalarioFormatado  string  `json:"salario_formatado"`
	PublicadaEm       string  `json:"publicada_em"`
	PublicadaRelativa string  `json:"publicada_relativa"`
	URL               string  `json:"url"`
}

// BuscaVagasResponse is the jobs-search endpoint payload
type BuscaVagasResponse struct {
	Vagas        []VagaResponse `json:"vagas"`
	Total        int            `json:"total"`
	PaginaAtual  int            `json:"pagina_atual"`
	TotalPaginas int            `json:"total_paginas"`
	SalarioMedio float64        `json:"salario_medio"`
	Fonte        string         `json:"fonte"`
}

// chaveConsulta hashes the normalized search parameters into the natural key.
func chaveConsulta(req *BuscaVagasRequest) string {
	canonical := fmt.Sprintf("%s|%s|%.4f|%.4f|%d|%d",
		cache.NormalizeKeyPart(req.Keywords),
		cache.NormalizeKeyPart(req.Location),
		req.Latitude, req.Longitude,
		req.Page, req.ResultsPerPage,
	)
	sum := sha256.Sum256([]byte(canonical))
	return hex.EncodeToString(sum[:])
}

// BuscarVagas runs one search, serving from cache while the row is valid.
func (s *VagasService) BuscarVagas(ctx context.Context, req *BuscaVagasRequest) (*BuscaVagasResponse, error) {
	if req.Keywords == "" {
		return nil, apperrors.ErrMissingKeywords
	}
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.ResultsPerPage <= 0 {
		req.ResultsPerPage = vagasPorPaginaDefault
	}
	if req.ResultsPerPage > vagasPorPaginaMax {
		req.ResultsPerPage = vagasPorPaginaMax
	}

	now := s.agora()
	chave := chaveConsulta(req)

	consulta, fonte, err := cache.Refresh(
		"buscar-vagas",
		s.log,
		cache.PersistBestEffort,
		func() (*models.ConsultaVagas, bool, error) {
			row, err := s.repo.GetValida(chave, now)
			return row, row != nil, err
		},
		func() (*models.ConsultaVagas, error) {
			return s.buscarETransformar(ctx, req, chave, now)
		},
		s.repo.Upsert,
	)
	if err != nil {
		return nil, err
	}

	var vagas []VagaResponse
	if err := json.Unmarshal(consulta.Payload, &vagas); err != nil {
		return nil, apperrors.NewParseError("cache de vagas", err)
	}

	return &BuscaVagasResponse{
		Vagas:        vagas,
		Total:        consulta.Total,
		PaginaAtual:  consulta.PaginaAtual,
		TotalPaginas: consulta.TotalPaginas,
		SalarioMedio: consulta.SalarioMedio,
		Fonte:        string(fonte),
	}, nil
}

func (s *VagasService) buscarETransformar(ctx context.Context, req *BuscaVagasRequest, chave string, now time.Time) (*models.ConsultaVagas, error) {
	upstream, err := s.jobs.Search(ctx, client.JobsSearchParams{
		Keywords:       req.Keywords,
		Location:       req.Location,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		Page:           req.Page,
		ResultsPerPage: req.ResultsPerPage,
	})
	if err != nil {
		return nil, err
	}

	vagas := make([]VagaResponse, 0, len(upstream.Results))
	var somaSalarios float64
	var comSalario int
	for _, job := range upstream.Results {
		vaga := VagaResponse{
			ID:               job.ID,
			Titulo:           job.Title,
			Empresa:          job.Company.DisplayName,
			Localizacao:      job.Location.DisplayName,
			Tipo:             classify.TipoVaga(job.Title, job.Description),
			SalarioMin:       job.SalaryMin,
			SalarioMax:       job.SalaryMax,
			SalarioFormatado: format.FaixaSalarial(job.SalaryMin, job.SalaryMax),
			URL:              job.RedirectURL,
		}
		if t, err := time.Parse(time.RFC3339, job.Created); err == nil {
			vaga.PublicadaEm = t.Format("2006-01-02")
			vaga.PublicadaRelativa = format.TempoRelativo(t, now)
		}
		vagas = append(vagas, vaga)

		if media := salarioMedioVaga(job.SalaryMin, job.SalaryMax); media > 0 {
			somaSalarios += media
			comSalario++
		}
	}

	var salarioMedio float64
	if comSalario > 0 {
		salarioMedio = somaSalarios / float64(comSalario)
	}

	totalPaginas := 0
	if upstream.Count > 0 {
		totalPaginas = (upstream.Count + req.ResultsPerPage - 1) / req.ResultsPerPage
	}

	payload, err := json.Marshal(vagas)
	if err != nil {
		return nil, fmt.Errorf("marshal vagas payload: %w", err)
	}

	return &models.ConsultaVagas{
		ChaveConsulta: chave,
		Keywords:      req.Keywords,
		Localizacao:   req.Location,
		Payload:       payload,
		Total:         upstream.Count,
		PaginaAtual:   req.Page,
		TotalPaginas:  totalPaginas,
		SalarioMedio:  salarioMedio,
		ExpiraEm:      now.Add(s.ttl.BuscaVagas),
	}, nil
}

func salarioMedioVaga(min, max float64) float64 {
	switch {
	case min > 0 && max > 0:
		return (min + max) / 2
	case min > 0:
		return min
	case max > 0:
		return max
	default:
		return 0
	}
}
