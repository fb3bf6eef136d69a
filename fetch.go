package resumefmt

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

const defaultFetchLimit = 4 << 20

// FetchRequest configures Fetch.
type FetchRequest struct {
	URL    string
	Client *http.Client
	// MaxBytes caps the body size; zero uses 4 MiB.
	MaxBytes int64
}

// Fetch downloads resume text over HTTP(S) and validates it.
func Fetch(ctx context.Context, req FetchRequest) (string, error) {
	if req.URL == "" {
		return "", fmt.Errorf("fetch: URL is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	client := req.Client
	if client == nil {
		client = http.DefaultClient
	}
	limit := req.MaxBytes
	if limit <= 0 {
		limit = defaultFetchLimit
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return "", fmt.Errorf("fetch: build request: %w", err)
	}
	if httpReq.URL.Scheme != "http" && httpReq.URL.Scheme != "https" {
		return "", fmt.Errorf("fetch: unsupported scheme %q", httpReq.URL.Scheme)
	}
	resp, err := client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("fetch: request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("fetch: status %s", resp.Status)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return "", fmt.Errorf("fetch: read: %w", err)
	}
	if int64(len(body)) > limit {
		return "", fmt.Errorf("fetch: body exceeds %d bytes", limit)
	}
	if err := ValidateInput(body); err != nil {
		return "", fmt.Errorf("fetch: %w", err)
	}
	return string(body), nil
}
