package client

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"

	apperrors "direito-hub-backend/internal/errors"
)

const defaultUserAgent = "direito-hub-backend/1.0"

// getJSON issues a GET against url and decodes the JSON body into v.
// Non-2xx statuses become UpstreamError; decode failures become ParseError.
func getJSON(ctx context.Context, hc *http.Client, source, url string, v interface{}) error {
	body, err := doGet(ctx, hc, source, url, "application/json")
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return apperrors.NewParseError(source, err)
	}
	return nil
}

// getXML is getJSON's counterpart for XML upstreams.
func getXML(ctx context.Context, hc *http.Client, source, url string, v interface{}) error {
	body, err := doGet(ctx, hc, source, url, "application/xml")
	if err != nil {
		return err
	}
	if err := xml.Unmarshal(body, v); err != nil {
		return apperrors.NewParseError(source, err)
	}
	return nil
}

func doGet(ctx context.Context, hc *http.Client, source, url, accept string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", source, err)
	}
	req.Header.Set("Accept", accept)
	req.Header.Set("User-Agent", defaultUserAgent)

	resp, err := hc.Do(req)
	if err != nil {
		return nil, apperrors.NewUpstreamError(source, 0, err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewUpstreamError(source, resp.StatusCode, err.Error())
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperrors.NewUpstreamError(source, resp.StatusCode, truncateBody(body))
	}
	return body, nil
}

// truncateBody keeps upstream error payloads readable in logs
func truncateBody(body []byte) string {
	const max = 200
	if len(body) > max {
		return string(body[:max]) + "..."
	}
	return string(body)
}
