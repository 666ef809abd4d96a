package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"direito-hub-backend/internal/cache"
	"direito-hub-backend/internal/client"
	"direito-hub-backend/internal/database/models"
	apperrors "direito-hub-backend/internal/errors"
	"direito-hub-backend/internal/mocks"
	"direito-hub-backend/internal/service"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RankingServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	repo    *mocks.MockRankingRepositoryInterface
	camara  *mocks.MockCamaraClientInterface
	service *service.RankingService
}

func (suite *RankingServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.repo = mocks.NewMockRankingRepositoryInterface(suite.ctrl)
	suite.camara = mocks.NewMockCamaraClientInterface(suite.ctrl)

	suite.service = service.NewRankingService(
		suite.repo,
		suite.camara,
		cache.DefaultTTLConfig(),
		discardLogger(),
	)
	suite.service.SetClock(func() time.Time { return testNow })
}

func (suite *RankingServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RankingServiceTestSuite) deputados() []client.Deputado {
	return []client.Deputado{
		{ID: 1, Nome: "Ana Souza", SiglaPartido: "XX", SiglaUF: "SP", URLFoto: "https://example.com/1.jpg"},
		{ID: 2, Nome: "Bruno Lima", SiglaPartido: "YY", SiglaUF: "RJ", URLFoto: "https://example.com/2.jpg"},
		{ID: 3, Nome: "Carla Dias", SiglaPartido: "ZZ", SiglaUF: "MG", URLFoto: "https://example.com/3.jpg"},
	}
}

func (suite *RankingServiceTestSuite) TestDefaultsToPreviousMonthAndGastos() {
	// testNow is 2025-06-15, so the default period is May 2025.
	suite.repo.EXPECT().GetPorPeriodo(models.RankingTipoGastos, 2025, 5, gomock.Any()).
		Return([]models.RankingDeputado{
			{DeputadoID: 1, Posicao: 1, Nome: "Ana Souza", ValorTotal: 5000, ValorFormatado: "R$ 5.000"},
		}, nil)

	resp, err := suite.service.GetRanking(context.Background(), &service.RankingRequest{})
	suite.Require().NoError(err)

	suite.Equal("05/2025", resp.Periodo)
	suite.Equal("cache", resp.Fonte)
	suite.Require().Len(resp.Ranking, 1)
	suite.Equal("R$ 5.000", resp.Ranking[0].ValorFormatado)
}

func (suite *RankingServiceTestSuite) TestInvalidTipoRejected() {
	_, err := suite.service.GetRanking(context.Background(), &service.RankingRequest{Tipo: "votos"})
	suite.ErrorIs(err, apperrors.ErrInvalidTipoRanking)
}

func (suite *RankingServiceTestSuite) TestInvalidPeriodoRejected() {
	_, err := suite.service.GetRanking(context.Background(), &service.RankingRequest{Ano: 1999, Mes: 1})
	suite.ErrorIs(err, apperrors.ErrInvalidPeriodo)

	_, err = suite.service.GetRanking(context.Background(), &service.RankingRequest{Ano: 2025, Mes: 13})
	suite.ErrorIs(err, apperrors.ErrInvalidPeriodo)
}

func (suite *RankingServiceTestSuite) TestGastosRankingSortedAndPositioned() {
	req := &service.RankingRequest{Tipo: models.RankingTipoGastos, Ano: 2025, Mes: 3, Limite: 10}

	suite.repo.EXPECT().GetPorPeriodo(models.RankingTipoGastos, 2025, 3, gomock.Any()).Return(nil, nil)
	suite.camara.EXPECT().ListarDeputados(gomock.Any()).Return(suite.deputados(), nil)
	suite.camara.EXPECT().TotalDespesas(gomock.Any(), 1, 2025, 3).Return(1000.0, nil)
	suite.camara.EXPECT().TotalDespesas(gomock.Any(), 2, 2025, 3).Return(9000.0, nil)
	suite.camara.EXPECT().TotalDespesas(gomock.Any(), 3, 2025, 3).Return(5000.0, nil)
	suite.repo.EXPECT().UpsertAll(gomock.Any()).Return(nil)

	resp, err := suite.service.GetRanking(context.Background(), req)
	suite.Require().NoError(err)

	suite.Equal("api", resp.Fonte)
	suite.Require().Len(resp.Ranking, 3)

	suite.Equal("Bruno Lima", resp.Ranking[0].Nome)
	suite.Equal(1, resp.Ranking[0].Posicao)
	suite.Equal("R$ 9.000", resp.Ranking[0].ValorFormatado)

	suite.Equal("Carla Dias", resp.Ranking[1].Nome)
	suite.Equal(2, resp.Ranking[1].Posicao)

	suite.Equal("Ana Souza", resp.Ranking[2].Nome)
	suite.Equal(3, resp.Ranking[2].Posicao)
}

func (suite *RankingServiceTestSuite) TestProposicoesRankingCountsBills() {
	req := &service.RankingRequest{Tipo: models.RankingTipoProposicoes, Ano: 2025, Mes: 3, Limite: 10}

	suite.repo.EXPECT().GetPorPeriodo(models.RankingTipoProposicoes, 2025, 3, gomock.Any()).Return(nil, nil)
	suite.camara.EXPECT().ListarDeputados(gomock.Any()).Return(suite.deputados()[:2], nil)
	suite.camara.EXPECT().ContarProposicoes(gomock.Any(), 1, 2025).Return(7, nil)
	suite.camara.EXPECT().ContarProposicoes(gomock.Any(), 2, 2025).Return(12, nil)
	suite.repo.EXPECT().UpsertAll(gomock.Any()).Return(nil)

	resp, err := suite.service.GetRanking(context.Background(), req)
	suite.Require().NoError(err)

	suite.Require().Len(resp.Ranking, 2)
	suite.Equal("Bruno Lima", resp.Ranking[0].Nome)
	suite.Equal(12.0, resp.Ranking[0].ValorTotal)
	// Bill counts are not currency formatted
	suite.Empty(resp.Ranking[0].ValorFormatado)
}

func (suite *RankingServiceTestSuite) TestIndividualFailuresSkipped() {
	req := &service.RankingRequest{Tipo: models.RankingTipoGastos, Ano: 2025, Mes: 3, Limite: 10}

	suite.repo.EXPECT().GetPorPeriodo(gomock.Any(), 2025, 3, gomock.Any()).Return(nil, nil)
	suite.camara.EXPECT().ListarDeputados(gomock.Any()).Return(suite.deputados(), nil)
	suite.camara.EXPECT().TotalDespesas(gomock.Any(), 1, 2025, 3).Return(1000.0, nil)
	suite.camara.EXPECT().TotalDespesas(gomock.Any(), 2, 2025, 3).Return(0.0, errors.New("timeout"))
	suite.camara.EXPECT().TotalDespesas(gomock.Any(), 3, 2025, 3).Return(5000.0, nil)
	suite.repo.EXPECT().UpsertAll(gomock.Any()).Return(nil)

	resp, err := suite.service.GetRanking(context.Background(), req)
	suite.Require().NoError(err)
	suite.Len(resp.Ranking, 2)
}

func (suite *RankingServiceTestSuite) TestAllFailuresFailTheRequest() {
	req := &service.RankingRequest{Tipo: models.RankingTipoGastos, Ano: 2025, Mes: 3, Limite: 10}

	suite.repo.EXPECT().GetPorPeriodo(gomock.Any(), 2025, 3, gomock.Any()).Return(nil, nil)
	suite.camara.EXPECT().ListarDeputados(gomock.Any()).Return(suite.deputados()[:1], nil)
	suite.camara.EXPECT().TotalDespesas(gomock.Any(), 1, 2025, 3).Return(0.0, errors.New("timeout"))

	_, err := suite.service.GetRanking(context.Background(), req)
	suite.Require().Error(err)
	suite.True(apperrors.IsUpstream(err))
}

func (suite *RankingServiceTestSuite) TestLimiteTruncatesCachedRows() {
	rows := []models.RankingDeputado{
		{DeputadoID: 1, Posicao: 1, ValorTotal: 300},
		{DeputadoID: 2, Posicao: 2, ValorTotal: 200},
		{DeputadoID: 3, Posicao: 3, ValorTotal: 100},
	}
	suite.repo.EXPECT().GetPorPeriodo(models.RankingTipoGastos, 2025, 3, gomock.Any()).Return(rows, nil)

	resp, err := suite.service.GetRanking(context.Background(), &service.RankingRequest{
		Tipo: models.RankingTipoGastos, Ano: 2025, Mes: 3, Limite: 2,
	})
	suite.Require().NoError(err)
	suite.Len(resp.Ranking, 2)
}

func TestRankingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RankingServiceTestSuite))
}
