package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"FolioSentry/internal/config"
	"FolioSentry/internal/narrative"
	"FolioSentry/internal/notifier"
	"FolioSentry/internal/pipeline"
	"FolioSentry/internal/provider"
	"FolioSentry/internal/recorder"
	"FolioSentry/internal/scheduler"
	"FolioSentry/internal/store"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	log.Info().Msg("FolioSentry starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config validation")
	}
	if level, err := zerolog.ParseLevel(cfg.Logging.Level); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Providers
	equity := provider.NewYahooProvider(cfg.Proxy)
	crypto := provider.NewCoinGeckoProvider(cfg.Proxy)
	news := provider.NewNewsAPIProvider(cfg.News.APIKey, cfg.Proxy)
	social := provider.NewRedditProvider(cfg.Reddit.UserAgent, cfg.Proxy)
	log.Info().Str("equity", equity.Name()).Str("crypto", crypto.Name()).Msg("market providers ready")

	// Narrator
	narrator, err := narrative.NewGeminiNarrator(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.Temperature)
	if err != nil {
		log.Fatal().Err(err).Msg("init narrator")
	}

	// Notifier
	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
	if !tn.Configured() {
		log.Warn().Msg("telegram credentials missing, summaries will not be delivered")
	}

	// Stores
	st := store.NewCSVStore(cfg.Store.SummariesCSV)
	var rec recorder.Recorder
	if cfg.Store.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Store.SQLitePath)
		if err != nil {
			log.Warn().Err(err).Msg("init sqlite recorder failed, using noop")
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Pipeline + scheduler
	p := pipeline.New(cfg, equity, crypto, news, social, narrator, tn, st, rec)
	sched := scheduler.NewScheduler(ctx, p, cfg)
	if err := sched.RegisterAll(cfg.Schedule.DailyCron, cfg.Schedule.WeeklyCron); err != nil {
		log.Fatal().Err(err).Msg("register cron tasks")
	}
	sched.Start()
	defer sched.Stop()

	// Telegram command polling
	if tn.Configured() {
		go tn.StartPolling(ctx, sched.HandleCommand)
		log.Info().Msg("telegram polling started")
	}

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Info().Msg("RUN_ON_START enabled, executing daily task now")
		go sched.RunDailyNow()
	}

	log.Info().Msg("FolioSentry is running. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("shutdown signal received, stopping...")
	cancel()
	log.Info().Msg("FolioSentry stopped")
}
