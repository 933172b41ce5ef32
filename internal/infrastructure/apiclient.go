package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ExtractorClient calls the media extraction API that backs the Facebook,
// Instagram, TikTok and YouTube-download endpoints. All endpoints share one
// base URL and authenticate with an apikey query parameter.
type ExtractorClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewExtractorClient creates a client for the extraction API
func NewExtractorClient(baseURL, apiKey string, timeout time.Duration) *ExtractorClient {
	return &ExtractorClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		http: &http.Client{
			Timeout: timeout,
		},
	}
}

// GetJSON performs GET {base}/{endpoint}?{params}&apikey={key} and decodes
// the JSON response into out. Non-2xx statuses are errors. The caller's
// params are left untouched.
func (c *ExtractorClient) GetJSON(ctx context.Context, endpoint string, params url.Values, out interface{}) error {
	query := url.Values{}
	for key, values := range params {
		query[key] = values
	}
	query.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("extractor status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode extractor response: %w", err)
	}
	return nil
}
