package client

import (
	"net/http"

	"github.com/gregjones/httpcache"
	"github.com/gregjones/httpcache/diskcache"
)

// NewCachingHTTPClient creates an HTTP client that honours Cache-Control on
// responses, such as the identity provider's JWKS document.
func NewCachingHTTPClient(cacheDir string) *http.Client {
	if cacheDir == "" {
		return NewInMemoryCachingHTTPClient()
	}

	// Use disk-based cache for persistence across restarts
	return &http.Client{
		Transport: httpcache.NewTransport(diskcache.New(cacheDir)),
	}
}

// NewInMemoryCachingHTTPClient creates an HTTP client with in-memory caching only.
func NewInMemoryCachingHTTPClient() *http.Client {
	return &http.Client{
		Transport: httpcache.NewTransport(httpcache.NewMemoryCache()),
	}
}
