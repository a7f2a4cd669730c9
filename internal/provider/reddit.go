package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"

	"FolioSentry/internal/model"
)

// RedditProvider fetches hot posts from r/<asset> via the public JSON
// endpoint. Reddit blocks default user agents, so a custom one is required.
type RedditProvider struct {
	UserAgent string
	Client    *http.Client
}

// NewRedditProvider creates a Reddit provider with optional proxy support.
func NewRedditProvider(userAgent, proxyURL string) *RedditProvider {
	return &RedditProvider{UserAgent: userAgent, Client: newHTTPClient(proxyURL)}
}

type redditListing struct {
	Data struct {
		Children []struct {
			Data struct {
				Title     string `json:"title"`
				Score     int    `json:"score"`
				Subreddit string `json:"subreddit"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// FetchPosts returns up to limit hot posts for the asset's subreddit,
// highest score first.
func (p *RedditProvider) FetchPosts(ctx context.Context, asset string, limit int) ([]model.SocialPost, error) {
	u := fmt.Sprintf("https://www.reddit.com/r/%s/hot.json?limit=%d", url.PathEscape(asset), limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", p.UserAgent)

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reddit fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reddit read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("reddit: status %d for r/%s", resp.StatusCode, asset)
	}

	var listing redditListing
	if err := json.Unmarshal(body, &listing); err != nil {
		return nil, fmt.Errorf("reddit decode: %w", err)
	}

	out := make([]model.SocialPost, 0, len(listing.Data.Children))
	for _, c := range listing.Data.Children {
		out = append(out, model.SocialPost{
			Title:     c.Data.Title,
			Score:     c.Data.Score,
			Subreddit: c.Data.Subreddit,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out, nil
}
