package database

import (
	"fmt"
	"log"
	"time"

	"direito-hub-backend/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	AutoMigrate     bool
}

// Initialize opens a Postgres connection and creates the cache tables from
// the GORM models.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	log.Print("Initializing database...")
	// Defaults
	if opts == nil {
		opts = &Options{AutoMigrate: true}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(opts.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	if opts.AutoMigrate {
		all := []interface{}{
			&models.LeiRecente{},
			&models.RankingDeputado{},
			&models.ConsultaVagas{},
			&models.TituloJuriflix{},
			&models.ConteudoIA{},
		}
		if err := db.AutoMigrate(all...); err != nil {
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	if err := CreateIndexes(db); err != nil {
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}

	log.Print("Initializing database done.")
	return db, nil
}

// CreateIndexes adds the lookup indexes the freshness queries rely on.
// Primary keys already enforce one row per natural key; these only speed up
// the period/expiry scans.
func CreateIndexes(db *gorm.DB) error {
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS ranking_deputados_periodo ON ranking_deputados (tipo, ano, mes)`).Error; err != nil {
		return fmt.Errorf("create index ranking_deputados.periodo: %w", err)
	}
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS consultas_vagas_expira_em ON consultas_vagas (expira_em)`).Error; err != nil {
		return fmt.Errorf("create index consultas_vagas.expira_em: %w", err)
	}
	return nil
}
