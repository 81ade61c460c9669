// Package httputil provides HTTP utilities for fetching remote point sets.
//
// # Overview
//
// This package provides the transport infrastructure behind --from-url and
// the API's remote-input support:
//
//   - [Fetcher]: HTTP downloads with response-body caching
//   - [Retry]: Automatic retry with exponential backoff
//
// # Fetching
//
// [Fetcher] downloads a URL and stores the response body in a
// [github.com/matzehuels/spanforge/pkg/cache.Cache], so repeated runs over
// the same remote input skip the network entirely:
//
//	f := httputil.NewFetcher(store, keyer, 24*time.Hour)
//	body, err := f.Fetch(ctx, "https://example.com/points.txt")
//
// # Retry
//
// [Retry] wraps operations with automatic retry for transient failures:
//
//   - Network errors
//   - 5xx server errors
//   - 429 rate limit responses
//
// It uses exponential backoff to avoid hammering a struggling server:
//
//	err := httputil.RetryWithBackoff(ctx, func() error {
//	    return doRequest()
//	})
//
// # Configuration
//
// Default settings are suitable for most use cases:
//
//   - Max retries: 3
//   - Base backoff: 1 second
//   - Max response size: 64 MiB
package httputil
