package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "direito-hub-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lexmlSampleXML = `<?xml version="1.0" encoding="UTF-8"?>
<srw:searchRetrieveResponse xmlns:srw="http://www.loc.gov/zing/srw/">
  <srw:version>1.1</srw:version>
  <srw:numberOfRecords>2</srw:numberOfRecords>
  <srw:records>
    <srw:record>
      <srw:recordData>
        <srw_dc:dc xmlns:srw_dc="info:srw/schema/1/dc-schema">
          <urn>urn:lex:br:federal:lei:2025-03-10;15123</urn>
          <tipoDocumento>Lei</tipoDocumento>
          <title>Lei nº 15.123, de 10 de março de 2025</title>
          <description>Dispõe sobre a proteção de dados em processos judiciais.</description>
          <date>2025-03-10</date>
        </srw_dc:dc>
      </srw:recordData>
    </srw:record>
    <srw:record>
      <srw:recordData>
        <srw_dc:dc xmlns:srw_dc="info:srw/schema/1/dc-schema">
          <urn>urn:lex:br:federal:lei:2025-02;15100</urn>
          <tipoDocumento>Lei</tipoDocumento>
          <title>Lei nº 15.100, de fevereiro de 2025</title>
          <description>Altera o Código de Processo Civil.</description>
          <date>2025-02</date>
        </srw_dc:dc>
      </srw:recordData>
    </srw:record>
  </srw:records>
</srw:searchRetrieveResponse>`

func TestLexMLClient_BuscarNormasRecentes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "searchRetrieve", r.URL.Query().Get("operation"))
		assert.Equal(t, "10", r.URL.Query().Get("maximumRecords"))

		w.Header().Set("Content-Type", "application/xml")
		w.Write([]byte(lexmlSampleXML))
	}))
	defer server.Close()

	c := NewLexMLClient(server.URL)
	normas, err := c.BuscarNormasRecentes(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, normas, 2)

	assert.Equal(t, "urn:lex:br:federal:lei:2025-03-10;15123", normas[0].URN)
	assert.Equal(t, "Lei", normas[0].Tipo)
	assert.Equal(t, "Lei nº 15.123, de 10 de março de 2025", normas[0].Titulo)
	assert.Equal(t, "Dispõe sobre a proteção de dados em processos judiciais.", normas[0].Ementa)
	assert.Equal(t, "https://www.lexml.gov.br/urn/urn:lex:br:federal:lei:2025-03-10;15123", normas[0].URL)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), normas[0].DataPublicacao)

	// Year-month date shape still parses
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), normas[1].DataPublicacao)
}

func TestLexMLClient_SkipsRecordsWithoutURN(t *testing.T) {
	const payload = `<?xml version="1.0"?>
<searchRetrieveResponse>
  <numberOfRecords>1</numberOfRecords>
  <records>
    <record><recordData><dc><title>sem urn</title></dc></recordData></record>
  </records>
</searchRetrieveResponse>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payload))
	}))
	defer server.Close()

	c := NewLexMLClient(server.URL)
	normas, err := c.BuscarNormasRecentes(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, normas)
}

func TestLexMLClient_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "SRU indisponível", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	c := NewLexMLClient(server.URL)
	_, err := c.BuscarNormasRecentes(context.Background(), 10)
	require.Error(t, err)
	assert.True(t, apperrors.IsUpstream(err))
}

func TestLexMLClient_ParseError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<<<not xml"))
	}))
	defer server.Close()

	c := NewLexMLClient(server.URL)
	_, err := c.BuscarNormasRecentes(context.Background(), 10)
	require.Error(t, err)
	assert.True(t, apperrors.IsParse(err))
}

func TestParseLexMLDate(t *testing.T) {
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), parseLexMLDate("2025-03-10"))
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), parseLexMLDate("2025-03"))
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), parseLexMLDate("2025"))
	assert.True(t, parseLexMLDate("10/03/2025").IsZero())
	assert.True(t, parseLexMLDate("").IsZero())
}
