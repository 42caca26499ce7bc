package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// API Docs: https://wiki.openstreetmap.org/wiki/Overpass_API
// Sample request: https://overpass-api.de/api/interpreter?data=[out:json];node[amenity=cafe](around:1200,37.7749,-122.4194);out center 20;
const (
	DefaultEndpoint = "https://overpass-api.de/api/interpreter"
	defaultTimeout  = 15 * time.Second
)

type Client struct {
	httpClient *http.Client
	userAgent  string
}

func NewClient(userAgent string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  userAgent,
	}
}

// Interpret executes a fully built interpreter request URL and decodes the
// element collection.
func (c *Client) Interpret(ctx context.Context, requestURL string) (*InterpreterAPIResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp InterpreterAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	// The interpreter reports runtime failures such as timeouts in a remark
	// on an otherwise successful response.
	if strings.Contains(apiResp.Remark, "error") {
		return nil, fmt.Errorf("interpreter reported: %s", apiResp.Remark)
	}

	return &apiResp, nil
}
