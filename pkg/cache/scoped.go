package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation.
// Shared backends (Redis, Mongo) serving several deployments keep their
// keys apart this way.
//
// Example usage:
//
//	// Per-environment keys on a shared Redis
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "staging:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// HTTPKey generates a prefixed key for HTTP response caching.
func (k *ScopedKeyer) HTTPKey(url string) string {
	return k.prefix + k.inner.HTTPKey(url)
}

// ResultKey generates a prefixed key for construction results.
func (k *ScopedKeyer) ResultKey(pointsHash string, opts ResultKeyOpts) string {
	return k.prefix + k.inner.ResultKey(pointsHash, opts)
}
