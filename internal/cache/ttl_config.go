package cache

import (
	"strings"
	"time"
)

// TTLConfig defines the cache TTL per cached domain. Each value was a
// hard-coded literal in its own handler before; they live together here so
// freshness windows are visible in one place.
type TTLConfig struct {
	LeisRecentes    time.Duration
	RankingPeriodo  time.Duration
	BuscaVagas      time.Duration
	TituloJuriflix  time.Duration
	ConteudoIA      time.Duration
	MemoriaResposta time.Duration

	// Default TTL for unspecified endpoints
	Default time.Duration
}

// DefaultTTLConfig returns the default freshness windows.
func DefaultTTLConfig() TTLConfig {
	return TTLConfig{
		LeisRecentes:   6 * time.Hour,
		RankingPeriodo: 24 * time.Hour,
		BuscaVagas:     1 * time.Hour,
		TituloJuriflix: 30 * 24 * time.Hour,
		ConteudoIA:     7 * 24 * time.Hour,

		// Hot in-process layer, much shorter than any row TTL
		MemoriaResposta: 5 * time.Minute,

		Default: 6 * time.Hour,
	}
}

// KeyPrefix defines prefixes for in-memory cache keys
type KeyPrefix string

const (
	KeyPrefixLeisRecentes KeyPrefix = "leis:recentes"
	KeyPrefixRanking      KeyPrefix = "ranking:deputados"
	KeyPrefixVagas        KeyPrefix = "vagas:busca"
	KeyPrefixConteudoIA   KeyPrefix = "conteudo:ia"
)

// BuildKey constructs a cache key from prefix and identifiers
func BuildKey(prefix KeyPrefix, parts ...string) string {
	key := string(prefix)
	for _, part := range parts {
		key += ":" + part
	}
	return key
}

// NormalizeKeyPart lowercases and trims a free-text key component so
// equivalent searches share a cache row.
func NormalizeKeyPart(part string) string {
	return strings.ToLower(strings.TrimSpace(part))
}
