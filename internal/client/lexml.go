package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const lexmlSource = "LexML"

// LexMLClient talks to the LexML SRU search endpoint (XML payloads).
type LexMLClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewLexMLClient creates a new LexML client
func NewLexMLClient(baseURL string) *LexMLClient {
	return &LexMLClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Norma is one normalized norm from the LexML feed
type Norma struct {
	URN            string
	Tipo           string
	Titulo         string
	Ementa         string
	URL            string
	DataPublicacao time.Time
}

// sruResponse mirrors the SRU searchRetrieveResponse envelope. Element names
// match by local part, so the srw/dc namespace prefixes are irrelevant here.
type sruResponse struct {
	NumberOfRecords int         `xml:"numberOfRecords"`
	Records         []sruRecord `xml:"records>record"`
}

type sruRecord struct {
	Data sruRecordData `xml:"recordData>dc"`
}

type sruRecordData struct {
	URN           string `xml:"urn"`
	TipoDocumento string `xml:"tipoDocumento"`
	Title         string `xml:"title"`
	Description   string `xml:"description"`
	Date          string `xml:"date"`
}

// BuscarNormasRecentes returns the most recently published federal norms,
// newest first, up to max records.
func (c *LexMLClient) BuscarNormasRecentes(ctx context.Context, max int) ([]Norma, error) {
	if max <= 0 {
		max = 10
	}

	params := url.Values{}
	params.Set("operation", "searchRetrieve")
	params.Set("version", "1.1")
	params.Set("query", `tipoDocumento = "Lei" sortBy date/descending`)
	params.Set("maximumRecords", fmt.Sprintf("%d", max))
	u := fmt.Sprintf("%s?%s", c.BaseURL, params.Encode())

	var resp sruResponse
	if err := getXML(ctx, c.HTTPClient, lexmlSource, u, &resp); err != nil {
		return nil, err
	}

	normas := make([]Norma, 0, len(resp.Records))
	for _, rec := range resp.Records {
		if rec.Data.URN == "" {
			continue
		}
		normas = append(normas, Norma{
			URN:            rec.Data.URN,
			Tipo:           rec.Data.TipoDocumento,
			Titulo:         rec.Data.Title,
			Ementa:         rec.Data.Description,
			URL:            "https://www.lexml.gov.br/urn/" + rec.Data.URN,
			DataPublicacao: parseLexMLDate(rec.Data.Date),
		})
	}
	return normas, nil
}

// parseLexMLDate accepts the date shapes observed in the feed; an
// unparseable date yields the zero time rather than an error, since the
// field is presentational.
func parseLexMLDate(s string) time.Time {
	for _, layout := range []string{"2006-01-02", "2006-01", "2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
