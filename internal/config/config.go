package config

import (
	"encoding/json"
	"fmt"
	"os"

	apperrors "direito-hub-backend/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

var validate = validator.New()

// Config holds all runtime configuration for the service. Upstream
// credentials are validated lazily, per request: a missing key only breaks
// the handler that needs it.
type Config struct {
	Port    string `mapstructure:"PORT"`
	GinMode string `mapstructure:"GIN_MODE"`

	DatabaseURL string `mapstructure:"DATABASE_URL"`

	LexMLBaseURL  string `mapstructure:"LEXML_BASE_URL"`
	CamaraBaseURL string `mapstructure:"CAMARA_BASE_URL"`
	JobsBaseURL   string `mapstructure:"JOBS_BASE_URL"`
	TMDBBaseURL   string `mapstructure:"TMDB_BASE_URL"`

	JobsAppID  string `mapstructure:"JOBS_APP_ID"`
	JobsAppKey string `mapstructure:"JOBS_APP_KEY"`
	TMDBAPIKey string `mapstructure:"TMDB_API_KEY"`

	// GenAICredentialsJSON is the raw GENAI_CREDENTIALS blob; parse it with
	// GenAICredentials() at the point of use.
	GenAICredentialsJSON string `mapstructure:"GENAI_CREDENTIALS"`

	CORSAllowedOrigins string `mapstructure:"CORS_ALLOWED_ORIGINS"`
}

// GenAICredentials holds the OAuth2 client-credentials for the generative-AI
// endpoint, provided as a single JSON environment variable.
type GenAICredentials struct {
	ClientID     string `json:"client_id" validate:"required"`
	ClientSecret string `json:"client_secret" validate:"required"`
	OAuthURL     string `json:"oauth_url" validate:"required,url"`
	APIURL       string `json:"api_url" validate:"required,url"`
	Model        string `json:"model"`
}

// Load reads configuration from the environment with sensible defaults.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)
	v.AutomaticEnv()

	// AutomaticEnv alone does not populate Unmarshal targets; bind each key
	// explicitly so env vars flow into the struct.
	for _, key := range []string{
		"PORT", "GIN_MODE", "DATABASE_URL",
		"LEXML_BASE_URL", "CAMARA_BASE_URL", "JOBS_BASE_URL", "TMDB_BASE_URL",
		"JOBS_APP_ID", "JOBS_APP_KEY", "TMDB_API_KEY", "GENAI_CREDENTIALS",
		"CORS_ALLOWED_ORIGINS",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Secrets always win from the raw environment, even if a config layer
	// left them empty.
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		cfg.DatabaseURL = dsn
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("LEXML_BASE_URL", "https://www.lexml.gov.br/busca/SRU")
	v.SetDefault("CAMARA_BASE_URL", "https://dadosabertos.camara.leg.br/api/v2")
	v.SetDefault("JOBS_BASE_URL", "https://api.adzuna.com/v1/api/jobs/br")
	v.SetDefault("TMDB_BASE_URL", "https://api.themoviedb.org/3")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
}

// Validate checks the configuration needed to boot the process. Upstream
// credentials are checked lazily by the clients that need them.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return apperrors.ErrDatabaseURLMissing
	}
	return nil
}

// GenAICredentials parses the GENAI_CREDENTIALS JSON blob.
func (c *Config) GenAICredentials() (*GenAICredentials, error) {
	if c.GenAICredentialsJSON == "" {
		return nil, apperrors.ErrGenAICredentialsMissing
	}
	var creds GenAICredentials
	if err := json.Unmarshal([]byte(c.GenAICredentialsJSON), &creds); err != nil {
		return nil, apperrors.ErrGenAICredentialsInvalid
	}
	if err := validate.Struct(&creds); err != nil {
		return nil, apperrors.ErrGenAICredentialsInvalid
	}
	if creds.Model == "" {
		creds.Model = "gemini-1.5-flash"
	}
	return &creds, nil
}
