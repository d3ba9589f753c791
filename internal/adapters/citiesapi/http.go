package citiesapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const maxErrorBody = 4096

// statusError is a backend response with a 4xx or 5xx code.
type statusError struct {
	Code int
	Body string
}

func (e *statusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("cities api status %d", e.Code)
	}
	return fmt.Sprintf("cities api status %d: %s", e.Code, e.Body)
}

// get issues one GET and maps error statuses to *statusError. The caller
// closes the body of a successful response.
func (c *Client) get(ctx context.Context, endpoint string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.session.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		defer resp.Body.Close()
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &statusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}
	return resp, nil
}
