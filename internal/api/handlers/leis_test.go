package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"direito-hub-backend/internal/api/handlers"
	"direito-hub-backend/internal/mocks"
	"direito-hub-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LeisHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	leisService *mocks.MockLeisServiceInterface
	router      *gin.Engine
}

func (suite *LeisHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.ctrl = gomock.NewController(suite.T())
	suite.leisService = mocks.NewMockLeisServiceInterface(suite.ctrl)
	handler := handlers.NewLeisHandler(suite.leisService)

	suite.router = gin.New()
	suite.router.POST("/api/leis-recentes", handler.GetLeisRecentes)
	suite.router.GET("/api/leis-recentes", handler.GetLeisRecentes)
}

func (suite *LeisHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *LeisHandlerTestSuite) TestGetLeisRecentes_Success() {
	expected := &service.LeisRecentesResponse{
		Leis: []service.LeiResponse{
			{IDNorma: "urn:a", Titulo: "Nova lei protege dados", DataPublicacao: "2025-06-10"},
		},
		Fonte: "cache",
	}
	suite.leisService.EXPECT().GetLeisRecentes(gomock.Any()).Return(expected, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/leis-recentes", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp service.LeisRecentesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("cache", resp.Fonte)
	suite.Require().Len(resp.Leis, 1)
	suite.Equal("Nova lei protege dados", resp.Leis[0].Titulo)
}

func (suite *LeisHandlerTestSuite) TestGetLeisRecentes_GETAlsoServed() {
	suite.leisService.EXPECT().GetLeisRecentes(gomock.Any()).
		Return(&service.LeisRecentesResponse{Fonte: "api"}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/leis-recentes", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *LeisHandlerTestSuite) TestGetLeisRecentes_ServiceError() {
	suite.leisService.EXPECT().GetLeisRecentes(gomock.Any()).
		Return(nil, errors.New("SRU indisponível"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/leis-recentes", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusInternalServerError, w.Code)

	var body map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("SRU indisponível", body["error"])
}

func TestLeisHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LeisHandlerTestSuite))
}
