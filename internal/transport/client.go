package transport

import (
	"net/http"
	"time"

	"github.com/gregjones/httpcache"
	"github.com/gregjones/httpcache/diskcache"

	"github.com/recipehub/recipectl/internal/clock"
	"github.com/recipehub/recipectl/internal/session"
)

// NewHTTPClient creates the client for RecipeHub API calls. Cacheable GET
// responses are served from cache (disk-backed when cacheDir is set,
// in-memory otherwise); every request then passes through the bearer
// augmenter.
func NewHTTPClient(state *session.State, clk clock.Clock, cacheDir string, timeout time.Duration) *http.Client {
	var cache httpcache.Cache
	if cacheDir == "" {
		cache = httpcache.NewMemoryCache()
	} else {
		cache = diskcache.New(cacheDir)
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: NewAugmenter(state, clk, httpcache.NewTransport(cache)),
	}
}
