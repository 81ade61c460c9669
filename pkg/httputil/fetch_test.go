package httputil

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/matzehuels/spanforge/pkg/cache"
)

func newTestFetcher(t *testing.T) *Fetcher {
	t.Helper()
	store, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() failed: %v", err)
	}
	f := NewFetcher(store, cache.NewDefaultKeyer(), time.Hour)
	f.client = &http.Client{Timeout: time.Second}
	return f
}

func TestFetcher_CachesBody(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("1,2,3\n4,5,6\n"))
	}))
	defer srv.Close()

	f := newTestFetcher(t)
	ctx := context.Background()

	body, err := f.Fetch(ctx, srv.URL)
	if err != nil {
		t.Fatalf("Fetch() failed: %v", err)
	}
	if !strings.HasPrefix(string(body), "1,2,3") {
		t.Errorf("unexpected body %q", body)
	}

	// Second fetch must come from cache.
	if _, err := f.Fetch(ctx, srv.URL); err != nil {
		t.Fatalf("second Fetch() failed: %v", err)
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("server handled %d requests, want 1", got)
	}
}

func TestFetcher_RetriesServerErrors(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte("0,0,0\n"))
	}))
	defer srv.Close()

	f := NewFetcher(nil, nil, 0)
	f.client = srv.Client()

	// Shrink the backoff so the retry is quick.
	var body []byte
	err := Retry(context.Background(), 3, time.Millisecond, func() error {
		var err error
		body, err = f.fetchOnce(context.Background(), srv.URL)
		return err
	})
	if err != nil {
		t.Fatalf("retried fetch failed: %v", err)
	}
	if string(body) != "0,0,0\n" {
		t.Errorf("unexpected body %q", body)
	}
	if got := hits.Load(); got != 2 {
		t.Errorf("server handled %d requests, want 2", got)
	}
}

func TestFetcher_NotFoundFailsImmediately(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.NotFound(w, r)
	}))
	defer srv.Close()

	f := NewFetcher(nil, nil, 0)
	f.client = srv.Client()

	_, err := f.Fetch(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("Fetch() succeeded on 404")
	}
	if isRetryable(err) {
		t.Errorf("404 should not be retryable: %v", err)
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("server handled %d requests, want 1 (no retries)", got)
	}
}

func TestFetcher_NilStoreSkipsCache(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	f := NewFetcher(nil, nil, 0)
	f.client = srv.Client()

	ctx := context.Background()
	for range 2 {
		if _, err := f.Fetch(ctx, srv.URL); err != nil {
			t.Fatalf("Fetch() failed: %v", err)
		}
	}
	if got := hits.Load(); got != 2 {
		t.Errorf("server handled %d requests, want 2", got)
	}
}

func TestRetry_StopsOnNonRetryable(t *testing.T) {
	calls := 0
	permanent := errors.New("bad input")
	err := Retry(context.Background(), 5, time.Millisecond, func() error {
		calls++
		return permanent
	})
	if !errors.Is(err, permanent) {
		t.Fatalf("got error %v, want %v", err, permanent)
	}
	if calls != 1 {
		t.Errorf("fn called %d times, want 1", calls)
	}
}

func TestRetry_ExhaustsAttempts(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), 3, time.Millisecond, func() error {
		calls++
		return &RetryableError{Err: errors.New("flaky")}
	})
	if err == nil {
		t.Fatal("Retry() succeeded, want failure")
	}
	if calls != 3 {
		t.Errorf("fn called %d times, want 3", calls)
	}
}

func TestRetry_RespectsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Retry(ctx, 3, time.Hour, func() error {
		return &RetryableError{Err: errors.New("flaky")}
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got error %v, want context.Canceled", err)
	}
}
