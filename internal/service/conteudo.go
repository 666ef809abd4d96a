package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"direito-hub-backend/internal/cache"
	"direito-hub-backend/internal/database/models"
	apperrors "direito-hub-backend/internal/errors"

	"github.com/sirupsen/logrus"
)

// ConteudoService serves the AI content-enrichment endpoint. Generated
// content is cached for seven days keyed by a hash of the inputs, so the
// model is only consulted once per distinct (tipo, nome, conteúdo).
type ConteudoService struct {
	repo  ConteudoRepositoryInterface
	genai GenAIClientInterface
	ttl   cache.TTLConfig
	log   logrus.FieldLogger
	agora func() time.Time
}

// NewConteudoService creates a new AI-content service. genai is required
// here, unlike the recent-laws headline: this endpoint's whole output is the
// model's, so a missing credential is a configuration error.
func NewConteudoService(
	repo ConteudoRepositoryInterface,
	genai GenAIClientInterface,
	ttl cache.TTLConfig,
	log logrus.FieldLogger,
) *ConteudoService {
	return &ConteudoService{
		repo:  repo,
		genai: genai,
		ttl:   ttl,
		log:   log,
		agora: time.Now,
	}
}

// SetClock overrides the service clock (tests).
func (s *ConteudoService) SetClock(now func() time.Time) {
	s.agora = now
}

// MelhorarConteudoRequest is the AI-enrichment endpoint input
type MelhorarConteudoRequest struct {
	Tipo             string `json:"tipo"`
	Nome             string `json:"nome"`
	ConteudoOriginal string `json:"conteudo_original"`
	Contexto         string `json:"contexto"`
}

// MelhorarConteudoResponse is the AI-enrichment endpoint payload
type MelhorarConteudoResponse struct {
	Success           bool   `json:"success"`
	ConteudoMelhorado string `json:"conteudo_melhorado"`
	Fonte             string `json:"fonte"`
}

func chaveConteudo(req *MelhorarConteudoRequest) string {
	canonical := strings.Join([]string{req.Tipo, req.Nome, req.ConteudoOriginal}, "|")
	sum := sha256.Sum256([]byte(canonical))
	return hex.EncodeToString(sum[:])
}

// MelhorarConteudo returns the enriched content, generating it only when no
// fresh cached copy exists.
func (s *ConteudoService) MelhorarConteudo(ctx context.Context, req *MelhorarConteudoRequest) (*MelhorarConteudoResponse, error) {
	switch {
	case req.Tipo == "":
		return nil, apperrors.ErrMissingTipo
	case req.Nome == "":
		return nil, apperrors.ErrMissingNome
	case req.ConteudoOriginal == "":
		return nil, apperrors.ErrMissingConteudoOriginal
	}
	if s.genai == nil {
		return nil, apperrors.ErrGenAICredentialsMissing
	}

	now := s.agora()
	chave := chaveConteudo(req)
	cutoff := now.Add(-s.ttl.ConteudoIA)

	conteudo, fonte, err := cache.Refresh(
		"melhorar-conteudo",
		s.log,
		cache.PersistBestEffort,
		func() (*models.ConteudoIA, bool, error) {
			row, err := s.repo.GetAtualizadoDesde(chave, cutoff)
			return row, row != nil, err
		},
		func() (*models.ConteudoIA, error) {
			melhorado, err := s.genai.MelhorarConteudo(ctx, req.Tipo, req.Nome, req.ConteudoOriginal, req.Contexto)
			if err != nil {
				return nil, err
			}
			return &models.ConteudoIA{
				Chave:             chave,
				Tipo:              req.Tipo,
				Nome:              req.Nome,
				ConteudoOriginal:  req.ConteudoOriginal,
				ConteudoMelhorado: melhorado,
			}, nil
		},
		s.repo.Upsert,
	)
	if err != nil {
		return nil, err
	}

	return &MelhorarConteudoResponse{
		Success:           true,
		ConteudoMelhorado: conteudo.ConteudoMelhorado,
		Fonte:             string(fonte),
	}, nil
}
