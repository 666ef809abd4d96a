package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "direito-hub-backend/internal/errors"
)

const jobsSource = "Jobs"

// JobsClient talks to the jobs-board search API (Adzuna-style: app_id plus
// app_key credentials, page number in the path).
type JobsClient struct {
	BaseURL    string
	AppID      string
	AppKey     string
	HTTPClient *http.Client
}

// NewJobsClient creates a new jobs-board client
func NewJobsClient(baseURL, appID, appKey string) *JobsClient {
	return &JobsClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		AppID:   appID,
		AppKey:  appKey,
		HTTPClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// JobsSearchParams describes one search against the jobs board
type JobsSearchParams struct {
	Keywords       string
	Location       string
	Latitude       float64
	Longitude      float64
	Page           int
	ResultsPerPage int
}

// JobsSearchResponse is the upstream search payload
type JobsSearchResponse struct {
	Count   int         `json:"count"`
	Results []JobResult `json:"results"`
}

// JobResult is one raw posting from the jobs board
type JobResult struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	SalaryMin   float64 `json:"salary_min"`
	SalaryMax   float64 `json:"salary_max"`
	RedirectURL string  `json:"redirect_url"`
	Created     string  `json:"created"`
	Company     struct {
		DisplayName string `json:"display_name"`
	} `json:"company"`
	Location struct {
		DisplayName string `json:"display_name"`
	} `json:"location"`
}

// Search runs one search. A missing credential fails closed before any
// network traffic.
func (c *JobsClient) Search(ctx context.Context, p JobsSearchParams) (*JobsSearchResponse, error) {
	if c.AppID == "" || c.AppKey == "" {
		return nil, apperrors.ErrJobsCredentialsMissing
	}

	page := p.Page
	if page < 1 {
		page = 1
	}

	params := url.Values{}
	params.Set("app_id", c.AppID)
	params.Set("app_key", c.AppKey)
	params.Set("what", p.Keywords)
	params.Set("content-type", "application/json")
	if p.Location != "" {
		params.Set("where", p.Location)
	}
	if p.Latitude != 0 || p.Longitude != 0 {
		params.Set("latitude", fmt.Sprintf("%f", p.Latitude))
		params.Set("longitude", fmt.Sprintf("%f", p.Longitude))
	}
	if p.ResultsPerPage > 0 {
		params.Set("results_per_page", fmt.Sprintf("%d", p.ResultsPerPage))
	}

	u := fmt.Sprintf("%s/search/%d?%s", c.BaseURL, page, params.Encode())

	var resp JobsSearchResponse
	if err := getJSON(ctx, c.HTTPClient, jobsSource, u, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
