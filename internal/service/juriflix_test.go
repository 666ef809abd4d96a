package service_test

import (
	"context"
	"encoding/json"
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

type JuriflixServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	repo    *mocks.MockJuriflixRepositoryInterface
	tmdb    *mocks.MockTMDBClientInterface
	service *service.JuriflixService
}

func (suite *JuriflixServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.repo = mocks.NewMockJuriflixRepositoryInterface(suite.ctrl)
	suite.tmdb = mocks.NewMockTMDBClientInterface(suite.ctrl)

	suite.service = service.NewJuriflixService(
		suite.repo,
		suite.tmdb,
		cache.DefaultTTLConfig(),
		discardLogger(),
	)
	suite.service.SetClock(func() time.Time { return testNow })
}

func (suite *JuriflixServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *JuriflixServiceTestSuite) searchResult() *client.TMDBSearchResponse {
	var resp client.TMDBSearchResponse
	err := json.Unmarshal([]byte(`{"page":1,"total_results":1,"results":[
		{"id":556984,"title":"O Julgamento","original_title":"The Trial",
		 "overview":"Drama de tribunal.","poster_path":"/poster.jpg",
		 "release_date":"2019-10-11","vote_average":7.8}
	]}`), &resp)
	suite.Require().NoError(err)
	return &resp
}

func (suite *JuriflixServiceTestSuite) TestMissingIDRejected() {
	_, err := suite.service.EnriquecerTitulo(context.Background(), &service.EnriquecerTituloRequest{})
	suite.ErrorIs(err, apperrors.ErrMissingJuriflixID)
}

func (suite *JuriflixServiceTestSuite) TestFreshRowServedFromCache() {
	suite.repo.EXPECT().GetByJuriflixID("jf-1").Return(&models.TituloJuriflix{
		JuriflixID: "jf-1",
		Titulo:     "O Julgamento",
		UpdatedAt:  testNow.Add(-24 * time.Hour),
	}, nil)

	resp, err := suite.service.EnriquecerTitulo(context.Background(), &service.EnriquecerTituloRequest{JuriflixID: "jf-1"})
	suite.Require().NoError(err)

	suite.True(resp.Success)
	suite.Equal("cache", resp.Fonte)
	suite.Equal("O Julgamento", resp.Data.Titulo)
}

func (suite *JuriflixServiceTestSuite) TestStaleRowRefreshesFromTMDB() {
	suite.repo.EXPECT().GetByJuriflixID("jf-1").Return(&models.TituloJuriflix{
		JuriflixID: "jf-1",
		Titulo:     "O Julgamento",
		UpdatedAt:  testNow.Add(-31 * 24 * time.Hour),
	}, nil)
	// The cached title feeds the search even though the request omitted it.
	suite.tmdb.EXPECT().SearchMovie(gomock.Any(), "O Julgamento", 0).Return(suite.searchResult(), nil)
	suite.tmdb.EXPECT().MovieDetails(gomock.Any(), 556984).Return(&client.TMDBMovieDetails{
		ID:       556984,
		Runtime:  127,
		Homepage: "https://www.netflix.com/title/81234",
	}, nil)
	suite.repo.EXPECT().Upsert(gomock.Any()).Return(nil)

	resp, err := suite.service.EnriquecerTitulo(context.Background(), &service.EnriquecerTituloRequest{JuriflixID: "jf-1"})
	suite.Require().NoError(err)

	suite.True(resp.Success)
	suite.Equal("api", resp.Fonte)
	suite.Equal(127, resp.Data.DuracaoMin)
	suite.Equal("Netflix", resp.Data.Plataforma)
	suite.Equal(2019, resp.Data.Ano)
	suite.Equal("https://image.tmdb.org/t/p/w500/poster.jpg", resp.Data.PosterURL)
}

func (suite *JuriflixServiceTestSuite) TestForceBypassesFreshRow() {
	suite.repo.EXPECT().GetByJuriflixID("jf-1").Return(&models.TituloJuriflix{
		JuriflixID: "jf-1",
		Titulo:     "O Julgamento",
		UpdatedAt:  testNow.Add(-time.Hour),
	}, nil)
	suite.tmdb.EXPECT().SearchMovie(gomock.Any(), "O Julgamento", 0).Return(suite.searchResult(), nil)
	suite.tmdb.EXPECT().MovieDetails(gomock.Any(), 556984).Return(&client.TMDBMovieDetails{ID: 556984}, nil)
	suite.repo.EXPECT().Upsert(gomock.Any()).Return(nil)

	resp, err := suite.service.EnriquecerTitulo(context.Background(), &service.EnriquecerTituloRequest{
		JuriflixID: "jf-1",
		Force:      true,
	})
	suite.Require().NoError(err)
	suite.Equal("api", resp.Fonte)
}

func (suite *JuriflixServiceTestSuite) TestTMDBMissIsNotAnError() {
	suite.repo.EXPECT().GetByJuriflixID("jf-1").Return(nil, nil)
	suite.tmdb.EXPECT().SearchMovie(gomock.Any(), "Filme Inexistente", 0).
		Return(&client.TMDBSearchResponse{}, nil)

	resp, err := suite.service.EnriquecerTitulo(context.Background(), &service.EnriquecerTituloRequest{
		JuriflixID: "jf-1",
		Titulo:     "Filme Inexistente",
	})
	suite.Require().NoError(err)

	suite.False(resp.Success)
	suite.Equal("título não encontrado no TMDB", resp.Message)
	suite.Nil(resp.Data)
}

func (suite *JuriflixServiceTestSuite) TestNoCachedRowAndNoTituloRejected() {
	suite.repo.EXPECT().GetByJuriflixID("jf-1").Return(nil, nil)

	_, err := suite.service.EnriquecerTitulo(context.Background(), &service.EnriquecerTituloRequest{JuriflixID: "jf-1"})
	suite.ErrorIs(err, apperrors.ErrMissingTituloForSearch)
}

func (suite *JuriflixServiceTestSuite) TestDetailsFailureDegradesRow() {
	suite.repo.EXPECT().GetByJuriflixID("jf-1").Return(nil, nil)
	suite.tmdb.EXPECT().SearchMovie(gomock.Any(), "O Julgamento", 0).Return(suite.searchResult(), nil)
	suite.tmdb.EXPECT().MovieDetails(gomock.Any(), 556984).Return(nil, errors.New("timeout"))
	suite.repo.EXPECT().Upsert(gomock.Any()).Return(nil)

	resp, err := suite.service.EnriquecerTitulo(context.Background(), &service.EnriquecerTituloRequest{
		JuriflixID: "jf-1",
		Titulo:     "O Julgamento",
	})
	suite.Require().NoError(err)

	suite.True(resp.Success)
	suite.Equal("O Julgamento", resp.Data.Titulo)
	suite.Zero(resp.Data.DuracaoMin)
	suite.Empty(resp.Data.Plataforma)
}

func TestJuriflixServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JuriflixServiceTestSuite))
}
