package httpclient

import (
	"context"
	"exrates/internal/adapters"
	"exrates/internal/domain"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
)

const maxPayloadBytes = 64 << 20

type SourceClient struct {
	http     *http.Client
	cache    adapters.PayloadCache
	maxBytes int64
}

// Fetch returns the payload behind sourceURL. Both http(s) and file URLs are supported.
// Any transport or I/O failure is reported as domain.ErrSourceUnavailable.
func (c *SourceClient) Fetch(ctx context.Context, sourceURL string) ([]byte, error) {
	if c.cache != nil {
		if payload, ok := c.cache.Get(sourceURL); ok {
			return payload, nil
		}
	}

	u, err := url.Parse(sourceURL)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse source URL %q: %w", domain.ErrSourceUnavailable, sourceURL, err)
	}

	var payload []byte
	switch u.Scheme {
	case "file":
		payload, err = os.ReadFile(u.Path)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read %q: %w", domain.ErrSourceUnavailable, u.Path, err)
		}
	case "http", "https":
		payload, err = c.get(ctx, u.String())
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: unsupported scheme %q", domain.ErrSourceUnavailable, u.Scheme)
	}

	if c.cache != nil {
		c.cache.Set(sourceURL, payload)
	}
	return payload, nil
}

func (c *SourceClient) get(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request for %q: %w", domain.ErrSourceUnavailable, target, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request for %q: %w", domain.ErrSourceUnavailable, target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: unexpected status code %d for %q: %s", domain.ErrSourceUnavailable, resp.StatusCode, target, resp.Status)
	}

	payload, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response for %q: %w", domain.ErrSourceUnavailable, target, err)
	}
	if int64(len(payload)) > c.maxBytes {
		return nil, fmt.Errorf("%w: response for %q exceeds %d bytes", domain.ErrSourceUnavailable, target, c.maxBytes)
	}
	return payload, nil
}

func NewSourceClient(httpClient *http.Client, cache adapters.PayloadCache) *SourceClient {
	return &SourceClient{http: httpClient, cache: cache, maxBytes: maxPayloadBytes}
}
