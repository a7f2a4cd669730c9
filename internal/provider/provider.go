// Package provider holds the thin I/O clients for the external market, news
// and social collaborators. Providers return raw rows or opaque text; all
// shape translation happens in the normalizer.
package provider

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"FolioSentry/internal/model"
)

// MarketProvider fetches raw time-stamped price records for one asset. The
// returned rows keep the provider's own field names; the normalizer is the
// only component that understands them.
type MarketProvider interface {
	FetchHistory(ctx context.Context, asset string, days int) ([]map[string]any, error)
	Name() string
}

// NewsProvider returns recent headlines for an asset, newest first.
type NewsProvider interface {
	FetchHeadlines(ctx context.Context, asset string, class model.AssetClass, limit int) ([]model.Headline, error)
}

// SocialProvider returns community posts for an asset, ranked by score.
type SocialProvider interface {
	FetchPosts(ctx context.Context, asset string, limit int) ([]model.SocialPost, error)
}

// newHTTPClient builds the shared HTTP client with optional proxy support.
func newHTTPClient(proxyURL string) *http.Client {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &http.Client{
		Timeout:   30 * time.Second,
		Transport: transport,
	}
}
