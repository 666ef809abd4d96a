package handlers_test

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"direito-hub-backend/internal/api/handlers"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type HealthHandlerTestSuite struct {
	suite.Suite
	db    *gorm.DB
	sqlDB *sql.DB
	mock  sqlmock.Sqlmock
}

func (suite *HealthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	var err error
	suite.sqlDB, suite.mock, err = sqlmock.New(sqlmock.MonitorPingsOption(true))
	suite.Require().NoError(err)

	// GORM pings once during Open
	suite.mock.ExpectPing()

	suite.db, err = gorm.Open(postgres.New(postgres.Config{
		Conn:       suite.sqlDB,
		DriverName: "postgres",
	}), &gorm.Config{})
	suite.Require().NoError(err)
}

func (suite *HealthHandlerTestSuite) TearDownTest() {
	if suite.sqlDB != nil {
		suite.sqlDB.Close()
	}
}

func (suite *HealthHandlerTestSuite) serve() *httptest.ResponseRecorder {
	router := gin.New()
	router.GET("/health", handlers.NewHealthHandler(suite.db).Health)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)
	return w
}

func (suite *HealthHandlerTestSuite) TestHealth_DatabaseReachable() {
	suite.mock.ExpectPing()

	w := suite.serve()
	suite.Equal(http.StatusOK, w.Code)

	var body map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("ok", body["status"])
	suite.Equal("ok", body["database"])
}

func (suite *HealthHandlerTestSuite) TestHealth_DatabaseUnreachable() {
	suite.mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	w := suite.serve()
	suite.Equal(http.StatusServiceUnavailable, w.Code)

	var body map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("unreachable", body["database"])
}

func TestHealthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HealthHandlerTestSuite))
}
