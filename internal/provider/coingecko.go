package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// CoinGeckoProvider fetches crypto history from the CoinGecko market_chart
// API. Assets are CoinGecko coin ids (e.g. "bitcoin").
type CoinGeckoProvider struct {
	Client *http.Client
}

// NewCoinGeckoProvider creates a CoinGecko provider with optional proxy
// support.
func NewCoinGeckoProvider(proxyURL string) *CoinGeckoProvider {
	return &CoinGeckoProvider{Client: newHTTPClient(proxyURL)}
}

func (p *CoinGeckoProvider) Name() string { return "coingecko" }

type geckoChart struct {
	Prices       [][2]float64 `json:"prices"`
	TotalVolumes [][2]float64 `json:"total_volumes"`
	MarketCaps   [][2]float64 `json:"market_caps"`
}

// FetchHistory returns up to `days` price points as raw rows keyed by
// CoinGecko's field names (datetime, price, volume, market_cap).
func (p *CoinGeckoProvider) FetchHistory(ctx context.Context, asset string, days int) ([]map[string]any, error) {
	u := fmt.Sprintf("https://api.coingecko.com/api/v3/coins/%s/market_chart?vs_currency=usd&days=%d",
		url.PathEscape(asset), days)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("coingecko fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("coingecko read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("coingecko: status %d, body: %s", resp.StatusCode, string(body))
	}

	var chart geckoChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("coingecko decode: %w", err)
	}
	if len(chart.Prices) == 0 {
		return nil, fmt.Errorf("coingecko: no data returned for %s", asset)
	}

	rows := make([]map[string]any, 0, len(chart.Prices))
	for i, pt := range chart.Prices {
		row := map[string]any{
			"datetime": time.UnixMilli(int64(pt[0])).UTC(),
			"price":    pt[1],
		}
		// volumes/caps are index-aligned with prices but not guaranteed same length
		if i < len(chart.TotalVolumes) {
			row["volume"] = chart.TotalVolumes[i][1]
		}
		if i < len(chart.MarketCaps) {
			row["market_cap"] = chart.MarketCaps[i][1]
		}
		rows = append(rows, row)
	}
	return rows, nil
}
