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

const tmdbSource = "TMDB"

const tmdbImageBaseURL = "https://image.tmdb.org/t/p/w500"

// TMDBClient talks to the movie-metadata API.
type TMDBClient struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// NewTMDBClient creates a new TMDB client
func NewTMDBClient(baseURL, apiKey string) *TMDBClient {
	return &TMDBClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		APIKey:  apiKey,
		HTTPClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// TMDBSearchResponse is the upstream search payload
type TMDBSearchResponse struct {
	Page    int `json:"page"`
	Results []struct {
		ID            int     `json:"id"`
		Title         string  `json:"title"`
		OriginalTitle string  `json:"original_title"`
		Overview      string  `json:"overview"`
		PosterPath    string  `json:"poster_path"`
		BackdropPath  string  `json:"backdrop_path"`
		ReleaseDate   string  `json:"release_date"`
		VoteAverage   float64 `json:"vote_average"`
		VoteCount     int     `json:"vote_count"`
	} `json:"results"`
	TotalPages   int `json:"total_pages"`
	TotalResults int `json:"total_results"`
}

// TMDBMovieDetails is the upstream movie-details payload
type TMDBMovieDetails struct {
	ID            int     `json:"id"`
	Title         string  `json:"title"`
	OriginalTitle string  `json:"original_title"`
	Overview      string  `json:"overview"`
	PosterPath    string  `json:"poster_path"`
	BackdropPath  string  `json:"backdrop_path"`
	ReleaseDate   string  `json:"release_date"`
	Runtime       int     `json:"runtime"`
	VoteAverage   float64 `json:"vote_average"`
	Homepage      string  `json:"homepage"`
}

// SearchMovie searches by title, optionally narrowed by release year.
// A missing API key fails closed before any network traffic.
func (c *TMDBClient) SearchMovie(ctx context.Context, query string, year int) (*TMDBSearchResponse, error) {
	if c.APIKey == "" {
		return nil, apperrors.ErrTMDBKeyMissing
	}

	params := url.Values{}
	params.Set("api_key", c.APIKey)
	params.Set("query", query)
	params.Set("language", "pt-BR")
	if year > 0 {
		params.Set("year", fmt.Sprintf("%d", year))
	}
	u := fmt.Sprintf("%s/search/movie?%s", c.BaseURL, params.Encode())

	var resp TMDBSearchResponse
	if err := getJSON(ctx, c.HTTPClient, tmdbSource, u, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// MovieDetails fetches the full record for one movie.
func (c *TMDBClient) MovieDetails(ctx context.Context, movieID int) (*TMDBMovieDetails, error) {
	if c.APIKey == "" {
		return nil, apperrors.ErrTMDBKeyMissing
	}

	params := url.Values{}
	params.Set("api_key", c.APIKey)
	params.Set("language", "pt-BR")
	u := fmt.Sprintf("%s/movie/%d?%s", c.BaseURL, movieID, params.Encode())

	var details TMDBMovieDetails
	if err := getJSON(ctx, c.HTTPClient, tmdbSource, u, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// ImageURL resolves a TMDB image path to a full CDN URL; empty paths stay empty.
func ImageURL(path string) string {
	if path == "" {
		return ""
	}
	return tmdbImageBaseURL + path
}
