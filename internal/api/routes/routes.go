package routes

import (
	"direito-hub-backend/internal/api/handlers"
	"direito-hub-backend/internal/api/middleware"
	"direito-hub-backend/internal/cache"
	"direito-hub-backend/internal/client"
	"direito-hub-backend/internal/config"
	"direito-hub-backend/internal/repository"
	"direito-hub-backend/internal/service"

	_ "direito-hub-backend/docs"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, log *logrus.Logger) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	// In-process hot layer and freshness windows
	memoria := cache.NewInMemoryStore(cache.DefaultStoreConfig())
	ttl := cache.DefaultTTLConfig()

	// Repositories
	leisRepo := repository.NewLeisRepository(db)
	rankingRepo := repository.NewRankingRepository(db)
	vagasRepo := repository.NewVagasRepository(db)
	juriflixRepo := repository.NewJuriflixRepository(db)
	conteudoRepo := repository.NewConteudoRepository(db)

	// Upstream clients
	lexmlClient := client.NewLexMLClient(cfg.LexMLBaseURL)
	camaraClient := client.NewCamaraClient(cfg.CamaraBaseURL)
	jobsClient := client.NewJobsClient(cfg.JobsBaseURL, cfg.JobsAppID, cfg.JobsAppKey)
	tmdbClient := client.NewTMDBClient(cfg.TMDBBaseURL, cfg.TMDBAPIKey)

	// The AI client is optional: without credentials the laws endpoint
	// degrades to fallback headlines and the content endpoint fails closed.
	var genaiClient service.GenAIClientInterface
	if creds, err := cfg.GenAICredentials(); err == nil {
		genaiClient = client.NewGenAIClient(creds)
	} else {
		log.WithError(err).Warn("generative-AI credentials unavailable, AI enrichment disabled")
	}

	// Services
	leisService := service.NewLeisService(leisRepo, lexmlClient, genaiClient, memoria, ttl, log)
	rankingService := service.NewRankingService(rankingRepo, camaraClient, ttl, log)
	vagasService := service.NewVagasService(vagasRepo, jobsClient, ttl, log)
	juriflixService := service.NewJuriflixService(juriflixRepo, tmdbClient, ttl, log)
	conteudoService := service.NewConteudoService(conteudoRepo, genaiClient, ttl, log)

	// Handlers
	leisHandler := handlers.NewLeisHandler(leisService)
	rankingHandler := handlers.NewRankingHandler(rankingService)
	vagasHandler := handlers.NewVagasHandler(vagasService)
	juriflixHandler := handlers.NewJuriflixHandler(juriflixService)
	conteudoHandler := handlers.NewConteudoHandler(conteudoService)
	healthHandler := handlers.NewHealthHandler(db)

	router.GET("/health", healthHandler.Health)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		api.POST("/leis-recentes", leisHandler.GetLeisRecentes)
		api.GET("/leis-recentes", leisHandler.GetLeisRecentes)
		api.POST("/ranking-deputados", rankingHandler.GetRanking)
		api.POST("/buscar-vagas", vagasHandler.BuscarVagas)
		api.POST("/enriquecer-titulo", juriflixHandler.EnriquecerTitulo)
		api.POST("/melhorar-conteudo", conteudoHandler.MelhorarConteudo)
	}

	return router
}
