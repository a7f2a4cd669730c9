package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"FolioSentry/internal/model"
)

// NewsAPIProvider fetches recent headlines from newsapi.org.
type NewsAPIProvider struct {
	APIKey string
	Client *http.Client
}

// NewNewsAPIProvider creates a NewsAPI provider. An empty API key is
// allowed: fetches then return no headlines instead of failing the pipeline.
func NewNewsAPIProvider(apiKey, proxyURL string) *NewsAPIProvider {
	return &NewsAPIProvider{APIKey: apiKey, Client: newHTTPClient(proxyURL)}
}

type newsAPIResponse struct {
	Status   string `json:"status"`
	Articles []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		PublishedAt string `json:"publishedAt"`
	} `json:"articles"`
}

// FetchHeadlines queries "<asset> stock" or "<asset> crypto" depending on
// class, newest first.
func (p *NewsAPIProvider) FetchHeadlines(ctx context.Context, asset string, class model.AssetClass, limit int) ([]model.Headline, error) {
	if p.APIKey == "" {
		return nil, nil
	}

	kind := "stock"
	if class == model.ClassCrypto {
		kind = "crypto"
	}
	q := url.Values{}
	q.Set("q", fmt.Sprintf("%s %s", asset, kind))
	q.Set("sortBy", "publishedAt")
	q.Set("language", "en")
	q.Set("pageSize", fmt.Sprintf("%d", limit))
	q.Set("apiKey", p.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		"https://newsapi.org/v2/everything?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("newsapi fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("newsapi read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("newsapi: status %d, body: %s", resp.StatusCode, string(body))
	}

	var parsed newsAPIResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("newsapi decode: %w", err)
	}

	out := make([]model.Headline, 0, len(parsed.Articles))
	for _, a := range parsed.Articles {
		out = append(out, model.Headline{
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			PublishedAt: a.PublishedAt,
		})
	}
	return out, nil
}
