package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"direito-hub-backend/internal/api/routes"
	"direito-hub-backend/internal/config"
	"direito-hub-backend/internal/database"
)

const shutdownTimeout = 15 * time.Second

// @title DireitoHub Backend API
// @version 1.0
// @description Cache-backed proxy API for the DireitoHub legal-study platform.
// @BasePath /
func main() {
	// .env is optional; real deployments inject environment variables directly.
	_ = godotenv.Load()

	log := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	if cfg.GinMode == gin.ReleaseMode {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	gin.SetMode(cfg.GinMode)

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize database")
	}

	router := routes.SetupRoutes(db, cfg, log)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("forced shutdown")
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Info("server stopped")
}
