package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"FolioSentry/internal/model"
)

// AssetLists groups the configured symbols of one list by asset class.
type AssetLists struct {
	Stocks []string `yaml:"stocks"`
	ETFs   []string `yaml:"etfs"`
	Crypto []string `yaml:"crypto"`
}

// Asset is one configured symbol with its class and source resolved up
// front, so nothing downstream re-derives class via list membership.
type Asset struct {
	Symbol string
	Class  model.AssetClass
	Source model.Source
}

// Config holds all application configuration. It is constructed once at
// process start and passed into each component constructor.
type Config struct {
	Portfolio AssetLists `yaml:"portfolio"`
	Watchlist AssetLists `yaml:"watchlist"`
	Telegram  struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	News struct {
		APIKey string `yaml:"api_key"`
		Limit  int    `yaml:"limit"`
	} `yaml:"news"`
	Reddit struct {
		UserAgent string `yaml:"user_agent"`
		Limit     int    `yaml:"limit"`
	} `yaml:"reddit"`
	Gemini struct {
		APIKey          string  `yaml:"api_key"`
		Model           string  `yaml:"model"`
		DailyMaxTokens  int     `yaml:"daily_max_tokens"`
		WeeklyMaxTokens int     `yaml:"weekly_max_tokens"`
		Temperature     float64 `yaml:"temperature"`
	} `yaml:"gemini"`
	Schedule struct {
		DailyCron  string `yaml:"daily_cron"`
		WeeklyCron string `yaml:"weekly_cron"`
	} `yaml:"schedule"`
	Store struct {
		SummariesCSV string `yaml:"summaries_csv"`
		SQLitePath   string `yaml:"sqlite_path"`
	} `yaml:"store"`
	Analysis struct {
		LookbackDays int `yaml:"lookback_days"`
		HistoryDays  int `yaml:"history_days"`
	} `yaml:"analysis"`
	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("NEWSAPI_KEY"); v != "" {
		cfg.News.APIKey = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.Gemini.APIKey = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("CRON_DAILY"); v != "" {
		cfg.Schedule.DailyCron = v
	}
	if v := os.Getenv("CRON_WEEKLY"); v != "" {
		cfg.Schedule.WeeklyCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Store.SQLitePath = v
	}
	if v := os.Getenv("LOOKBACK_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Analysis.LookbackDays = n
		}
	}

	// Defaults
	if cfg.News.Limit == 0 {
		cfg.News.Limit = 20
	}
	if cfg.Reddit.Limit == 0 {
		cfg.Reddit.Limit = 20
	}
	if cfg.Reddit.UserAgent == "" {
		cfg.Reddit.UserAgent = "FolioSentry/1.0"
	}
	if cfg.Gemini.Model == "" {
		cfg.Gemini.Model = "gemini-2.5-flash"
	}
	if cfg.Gemini.DailyMaxTokens == 0 {
		cfg.Gemini.DailyMaxTokens = 1200
	}
	if cfg.Gemini.WeeklyMaxTokens == 0 {
		cfg.Gemini.WeeklyMaxTokens = 2000
	}
	if cfg.Gemini.Temperature == 0 {
		cfg.Gemini.Temperature = 0.7
	}
	if cfg.Schedule.DailyCron == "" {
		cfg.Schedule.DailyCron = "0 0 22 * * 1-5"
	}
	if cfg.Schedule.WeeklyCron == "" {
		cfg.Schedule.WeeklyCron = "0 0 8 * * 1"
	}
	if cfg.Store.SummariesCSV == "" {
		cfg.Store.SummariesCSV = "data/daily_summaries.csv"
	}
	if cfg.Analysis.LookbackDays == 0 {
		cfg.Analysis.LookbackDays = 30
	}
	if cfg.Analysis.HistoryDays == 0 {
		cfg.Analysis.HistoryDays = 365
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}

	return cfg, nil
}

// Validate checks that the configuration can drive at least one pipeline run.
func (c *Config) Validate() error {
	if len(c.Assets()) == 0 {
		return fmt.Errorf("no assets configured in portfolio or watchlist")
	}
	if c.Analysis.LookbackDays <= 0 {
		return fmt.Errorf("analysis.lookback_days must be positive")
	}
	if c.Gemini.APIKey == "" {
		return fmt.Errorf("gemini.api_key is required (or set GEMINI_API_KEY)")
	}
	return nil
}

// Assets flattens both lists into tagged assets, portfolio first.
func (c *Config) Assets() []Asset {
	var out []Asset
	add := func(symbols []string, class model.AssetClass, source model.Source) {
		for _, sym := range symbols {
			out = append(out, Asset{Symbol: sym, Class: class, Source: source})
		}
	}
	add(c.Portfolio.Stocks, model.ClassEquity, model.SourcePortfolio)
	add(c.Portfolio.ETFs, model.ClassEquity, model.SourcePortfolio)
	add(c.Portfolio.Crypto, model.ClassCrypto, model.SourcePortfolio)
	add(c.Watchlist.Stocks, model.ClassEquity, model.SourceWatchlist)
	add(c.Watchlist.ETFs, model.ClassEquity, model.SourceWatchlist)
	add(c.Watchlist.Crypto, model.ClassCrypto, model.SourceWatchlist)
	return out
}
