package geocoder

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const suggestionLimit = 5

// Client wraps the Geoapify address autocomplete API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Autocomplete returns up to five address suggestions for a free-text query.
func (c *Client) Autocomplete(ctx context.Context, query string) ([]Suggestion, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}

	params := url.Values{}
	params.Set("text", query)
	params.Set("apiKey", c.apiKey)
	params.Set("limit", fmt.Sprintf("%d", suggestionLimit))

	endpoint := fmt.Sprintf("%s/autocomplete?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var payload autocompleteResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	suggestions := make([]Suggestion, 0, len(payload.Features))
	for _, feature := range payload.Features {
		suggestions = append(suggestions, Suggestion{
			Value: feature.Properties.PlaceID,
			Label: feature.Properties.Formatted,
		})
	}

	return suggestions, nil
}
