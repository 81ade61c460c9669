package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/matzehuels/spanforge/pkg/cache"
)

// maxBodySize caps downloaded response bodies. Point-set inputs are text
// files of a few megabytes at most, so 64 MiB is generous.
const maxBodySize = 64 << 20

// Fetcher downloads URLs with retry and caches response bodies, so repeated
// runs over the same remote input never hit the network twice within the
// cache TTL.
//
// A nil store disables caching; every Fetch goes to the network.
type Fetcher struct {
	client *http.Client
	store  cache.Cache
	keyer  cache.Keyer
	ttl    time.Duration
}

// NewFetcher creates a Fetcher that caches response bodies in store under
// keys built by keyer, expiring after ttl. Pass a nil store to disable
// caching.
func NewFetcher(store cache.Cache, keyer cache.Keyer, ttl time.Duration) *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: 30 * time.Second},
		store:  store,
		keyer:  keyer,
		ttl:    ttl,
	}
}

// Fetch returns the response body for url, from cache when possible.
//
// Transient failures (network errors, 5xx responses, 429 rate limits) are
// retried with exponential backoff. Other non-2xx statuses fail immediately.
// Cache write failures are ignored; the fetched body is still returned.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	var key string
	if f.store != nil {
		key = f.keyer.HTTPKey(url)
		if data, ok, err := f.store.Get(ctx, key); err == nil && ok {
			return data, nil
		}
	}

	var body []byte
	err := RetryWithBackoff(ctx, func() error {
		var err error
		body, err = f.fetchOnce(ctx, url)
		return err
	})
	if err != nil {
		return nil, err
	}

	if f.store != nil {
		_ = f.store.Set(ctx, key, body, f.ttl)
	}
	return body, nil
}

func (f *Fetcher) fetchOnce(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &RetryableError{Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 500, resp.StatusCode == http.StatusTooManyRequests:
		return nil, &RetryableError{Err: fmt.Errorf("GET %s: %s", url, resp.Status)}
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("GET %s: %s", url, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return nil, &RetryableError{Err: fmt.Errorf("read %s: %w", url, err)}
	}
	if len(body) > maxBodySize {
		return nil, fmt.Errorf("GET %s: response exceeds %d bytes", url, maxBodySize)
	}
	return body, nil
}
