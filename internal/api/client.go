package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/AbdulWasayUl/go-covid-map/internal/logger"
)

// FetchError is the only failure the fetch path reports: a transport error or a non-2xx reply.
type FetchError struct {
	URL        string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("GET %s: status %d: %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("GET %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

type Client struct {
	httpClient *http.Client
}

// NewClient returns a client with the given timeout. Zero means no timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Do issues a single GET and returns the body. There is no retry.
func (c *Client) Do(ctx context.Context, url string, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Err: fmt.Errorf("failed to create request: %w", err)}
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	logger.Debug("Making request to %s", url)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		logger.Debug("API returned status code %d. Body: %s", resp.StatusCode, string(body))
		return nil, &FetchError{URL: url, StatusCode: resp.StatusCode, Err: fmt.Errorf("non-OK status: %s", resp.Status)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: url, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read body: %w", err)}
	}
	return body, nil
}
