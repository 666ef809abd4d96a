package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a request validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ConfigurationError represents a missing or invalid credential/configuration.
// A configuration error is fatal for the handler that hit it and must be
// raised before any external call is made.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// UpstreamError represents a non-2xx or transport-level failure from a
// third-party API. No retry is attempted anywhere; the invocation fails.
type UpstreamError struct {
	Source     string
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s API error (status %d): %s", e.Source, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s API error: %s", e.Source, e.Message)
}

// ParseError represents a malformed XML/JSON payload from an upstream.
// It is classified separately from UpstreamError so adapter boundaries can
// convert decode failures explicitly instead of surfacing type mismatches.
type ParseError struct {
	Source  string
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s response: %s", e.Source, e.Message)
}

// Entity Not Found Errors
var (
	ErrLeiNotFound      = &NotFoundError{Entity: "lei"}
	ErrDeputadoNotFound = &NotFoundError{Entity: "deputado"}
	ErrTituloNotFound   = &NotFoundError{Entity: "título"}
	ErrConteudoNotFound = &NotFoundError{Entity: "conteúdo"}
)

// Configuration Errors
var (
	ErrDatabaseURLMissing      = &ConfigurationError{Message: "DATABASE_URL environment variable not set"}
	ErrJobsCredentialsMissing  = &ConfigurationError{Message: "JOBS_APP_ID or JOBS_APP_KEY environment variable not set"}
	ErrTMDBKeyMissing          = &ConfigurationError{Message: "TMDB_API_KEY environment variable not set"}
	ErrGenAICredentialsMissing = &ConfigurationError{Message: "GENAI_CREDENTIALS environment variable not set"}
	ErrGenAICredentialsInvalid = &ConfigurationError{Message: "failed to parse GENAI_CREDENTIALS"}
	ErrDatabaseConnection      = &ConfigurationError{Message: "database connection failed"}
	ErrLexMLBaseURLMissing     = &ConfigurationError{Message: "LEXML_BASE_URL is not configured"}
	ErrCamaraBaseURLMissing    = &ConfigurationError{Message: "CAMARA_BASE_URL is not configured"}
)

// Validation Errors
var (
	ErrMissingKeywords         = &ValidationError{Field: "keywords", Message: "keywords is required"}
	ErrMissingJuriflixID       = &ValidationError{Field: "juriflix_id", Message: "juriflix_id is required"}
	ErrMissingTituloForSearch  = &ValidationError{Field: "titulo", Message: "titulo is required when no cached entry exists"}
	ErrMissingTipo             = &ValidationError{Field: "tipo", Message: "tipo is required"}
	ErrMissingNome             = &ValidationError{Field: "nome", Message: "nome is required"}
	ErrMissingConteudoOriginal = &ValidationError{Field: "conteudo_original", Message: "conteudo_original is required"}
	ErrInvalidTipoRanking      = &ValidationError{Field: "tipo", Message: "tipo must be 'gastos' or 'proposicoes'"}
	ErrInvalidPeriodo          = &ValidationError{Message: "invalid ano/mes period"}
	ErrInvalidJSON             = errors.New("invalid JSON")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsUpstream checks if an error is an UpstreamError
func IsUpstream(err error) bool {
	var upstreamErr *UpstreamError
	return errors.As(err, &upstreamErr)
}

// IsParse checks if an error is a ParseError
func IsParse(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// NewUpstreamError creates an UpstreamError for a named source
func NewUpstreamError(source string, statusCode int, message string) error {
	return &UpstreamError{Source: source, StatusCode: statusCode, Message: message}
}

// NewParseError creates a ParseError for a named source
func NewParseError(source string, err error) error {
	return &ParseError{Source: source, Message: err.Error()}
}

// NewMissingQueryParam creates a ValidationError for a missing parameter
func NewMissingQueryParam(param string) error {
	return &ValidationError{Field: param, Message: fmt.Sprintf("missing required parameter: %s", param)}
}
