package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInMemoryStore(t *testing.T) {
	store := NewInMemoryStore(DefaultStoreConfig())
	assert.NotNil(t, store)
	assert.NotNil(t, store.cache)
}

func TestInMemoryStore_SetAndGet(t *testing.T) {
	store := NewInMemoryStore(DefaultStoreConfig())

	key := "leis:recentes"
	value := []byte(`{"leis":[]}`)

	err := store.Set(key, value, 1*time.Minute)
	require.NoError(t, err)

	retrieved, err := store.Get(key)
	require.NoError(t, err)
	assert.Equal(t, value, retrieved)
}

func TestInMemoryStore_GetMiss(t *testing.T) {
	store := NewInMemoryStore(DefaultStoreConfig())

	_, err := store.Get("non:existent")
	assert.Equal(t, ErrCacheMiss, err)
}

func TestInMemoryStore_Expiration(t *testing.T) {
	store := NewInMemoryStore(DefaultStoreConfig())

	err := store.Set("short:lived", []byte("v"), 20*time.Millisecond)
	require.NoError(t, err)

	_, err = store.Get("short:lived")
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)

	_, err = store.Get("short:lived")
	assert.Equal(t, ErrCacheMiss, err)
}

func TestInMemoryStore_ZeroTTLUsesDefault(t *testing.T) {
	store := NewInMemoryStore(DefaultStoreConfig())

	err := store.Set("key", []byte("v"), 0)
	require.NoError(t, err)

	retrieved, err := store.Get("key")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), retrieved)
}

func TestInMemoryStore_Delete(t *testing.T) {
	store := NewInMemoryStore(DefaultStoreConfig())

	require.NoError(t, store.Set("key", []byte("v"), time.Minute))
	require.NoError(t, store.Delete("key"))

	_, err := store.Get("key")
	assert.Equal(t, ErrCacheMiss, err)
}

func TestInMemoryStore_Clear(t *testing.T) {
	store := NewInMemoryStore(DefaultStoreConfig())

	require.NoError(t, store.Set("a", []byte("1"), time.Minute))
	require.NoError(t, store.Set("b", []byte("2"), time.Minute))

	store.Clear()

	_, err := store.Get("a")
	assert.Equal(t, ErrCacheMiss, err)
	_, err = store.Get("b")
	assert.Equal(t, ErrCacheMiss, err)
}

func TestInMemoryStore_Disabled(t *testing.T) {
	store := NewInMemoryStore(StoreConfig{Enabled: false})

	err := store.Set("key", []byte("v"), time.Minute)
	require.NoError(t, err)

	_, err = store.Get("key")
	assert.Equal(t, ErrCacheDisabled, err)
}

func TestNoOpStore(t *testing.T) {
	store := NewNoOpStore()

	require.NoError(t, store.Set("key", []byte("v"), time.Minute))

	_, err := store.Get("key")
	assert.Equal(t, ErrCacheDisabled, err)

	require.NoError(t, store.Delete("key"))
	store.Clear()
}

func TestBuildKey(t *testing.T) {
	assert.Equal(t, "leis:recentes", BuildKey(KeyPrefixLeisRecentes))
	assert.Equal(t, "ranking:deputados:gastos:2025:3", BuildKey(KeyPrefixRanking, "gastos", "2025", "3"))
}

func TestNormalizeKeyPart(t *testing.T) {
	assert.Equal(t, "direito tributário", NormalizeKeyPart("  Direito Tributário "))
	assert.Equal(t, "", NormalizeKeyPart("   "))
}

func TestDefaultTTLConfig(t *testing.T) {
	ttl := DefaultTTLConfig()

	assert.Equal(t, 6*time.Hour, ttl.LeisRecentes)
	assert.Equal(t, 24*time.Hour, ttl.RankingPeriodo)
	assert.Equal(t, 1*time.Hour, ttl.BuscaVagas)
	assert.Equal(t, 30*24*time.Hour, ttl.TituloJuriflix)
	assert.Equal(t, 7*24*time.Hour, ttl.ConteudoIA)
	assert.Equal(t, 5*time.Minute, ttl.MemoriaResposta)
}
