package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const camaraSource = "Câmara"

// despesasTimeout guards the per-deputy expenses endpoint, which has a
// history of multi-minute stalls. The reduced page size exists for the same
// reason. No other adapter carries a local timeout; they rely on the
// server-level request deadline.
const despesasTimeout = 30 * time.Second
const despesasPageSize = 50

// CamaraClient talks to the Câmara dos Deputados open-data API. The API is
// keyless; only the base URL is configurable.
type CamaraClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewCamaraClient creates a new Câmara open-data client
func NewCamaraClient(baseURL string) *CamaraClient {
	return &CamaraClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Deputado is one legislator as returned by /deputados
type Deputado struct {
	ID           int    `json:"id"`
	Nome         string `json:"nome"`
	SiglaPartido string `json:"siglaPartido"`
	SiglaUF      string `json:"siglaUf"`
	URLFoto      string `json:"urlFoto"`
}

type deputadosResponse struct {
	Dados []Deputado `json:"dados"`
}

type despesasResponse struct {
	Dados []struct {
		ValorLiquido float64 `json:"valorLiquido"`
	} `json:"dados"`
}

type proposicoesResponse struct {
	Dados []struct {
		ID int `json:"id"`
	} `json:"dados"`
}

// ListarDeputados returns all current legislators.
func (c *CamaraClient) ListarDeputados(ctx context.Context) ([]Deputado, error) {
	u := fmt.Sprintf("%s/deputados?ordem=ASC&ordenarPor=nome", c.BaseURL)

	var resp deputadosResponse
	if err := getJSON(ctx, c.HTTPClient, camaraSource, u, &resp); err != nil {
		return nil, err
	}
	return resp.Dados, nil
}

// TotalDespesas sums the declared expenses of one legislator for a period.
func (c *CamaraClient) TotalDespesas(ctx context.Context, deputadoID, ano, mes int) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, despesasTimeout)
	defer cancel()

	params := url.Values{}
	params.Set("ano", fmt.Sprintf("%d", ano))
	params.Set("mes", fmt.Sprintf("%d", mes))
	params.Set("itens", fmt.Sprintf("%d", despesasPageSize))
	u := fmt.Sprintf("%s/deputados/%d/despesas?%s", c.BaseURL, deputadoID, params.Encode())

	var resp despesasResponse
	if err := getJSON(ctx, c.HTTPClient, camaraSource, u, &resp); err != nil {
		return 0, err
	}

	var total float64
	for _, d := range resp.Dados {
		total += d.ValorLiquido
	}
	return total, nil
}

// ContarProposicoes counts the bills authored by one legislator in a year.
func (c *CamaraClient) ContarProposicoes(ctx context.Context, deputadoID, ano int) (int, error) {
	params := url.Values{}
	params.Set("idDeputadoAutor", fmt.Sprintf("%d", deputadoID))
	params.Set("ano", fmt.Sprintf("%d", ano))
	params.Set("itens", "100")
	u := fmt.Sprintf("%s/proposicoes?%s", c.BaseURL, params.Encode())

	var resp proposicoesResponse
	if err := getJSON(ctx, c.HTTPClient, camaraSource, u, &resp); err != nil {
		return 0, err
	}
	return len(resp.Dados), nil
}
