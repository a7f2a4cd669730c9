// Package pipeline wires the providers, normalizer, indicator engine,
// narrator, notifier and stores into the daily and weekly jobs.
package pipeline

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"FolioSentry/internal/config"
	"FolioSentry/internal/indicator"
	"FolioSentry/internal/model"
	"FolioSentry/internal/narrative"
	"FolioSentry/internal/normalize"
	"FolioSentry/internal/notifier"
	"FolioSentry/internal/provider"
	"FolioSentry/internal/recorder"
	"FolioSentry/internal/store"
)

// noDataSummary is the sentinel rendered when an asset has no usable series.
const noDataSummary = "No data available."

const sendRetries = 3

// Pipeline runs the per-asset daily analysis and the weekly synthesis.
type Pipeline struct {
	cfg      *config.Config
	equity   provider.MarketProvider
	crypto   provider.MarketProvider
	news     provider.NewsProvider
	social   provider.SocialProvider
	narrator narrative.Narrator
	notifier *notifier.TelegramNotifier
	store    *store.CSVStore
	rec      recorder.Recorder
	now      func() time.Time
}

// New assembles a pipeline from its collaborators.
func New(cfg *config.Config, equity, crypto provider.MarketProvider, news provider.NewsProvider,
	social provider.SocialProvider, narrator narrative.Narrator, tn *notifier.TelegramNotifier,
	st *store.CSVStore, rec recorder.Recorder) *Pipeline {
	return &Pipeline{
		cfg:      cfg,
		equity:   equity,
		crypto:   crypto,
		news:     news,
		social:   social,
		narrator: narrator,
		notifier: tn,
		store:    st,
		rec:      rec,
		now:      time.Now,
	}
}

// RunDaily processes every configured asset in turn. A failing asset is
// logged and skipped; it never aborts the rest of the batch.
func (p *Pipeline) RunDaily(ctx context.Context) {
	assets := p.cfg.Assets()
	log.Info().Int("assets", len(assets)).Msg("daily run starting")
	for _, asset := range assets {
		if err := p.runAsset(ctx, asset); err != nil {
			log.Error().Err(err).Str("asset", asset.Symbol).Msg("asset pipeline failed")
			continue
		}
		log.Info().Str("asset", asset.Symbol).Msg("asset pipeline completed")
	}
	log.Info().Msg("daily run complete")
}

func (p *Pipeline) runAsset(ctx context.Context, asset config.Asset) error {
	mp := p.equity
	if asset.Class == model.ClassCrypto {
		mp = p.crypto
	}

	rows, err := mp.FetchHistory(ctx, asset.Symbol, p.cfg.Analysis.HistoryDays)
	if err != nil {
		return err
	}

	summary, snapshot, err := p.analyze(ctx, asset, rows)
	if err != nil {
		return err
	}

	if p.notifier.Configured() {
		if err := p.notifier.SendWithRetry(ctx, summary, sendRetries); err != nil {
			log.Error().Err(err).Str("asset", asset.Symbol).Msg("send daily summary")
		}
	} else {
		log.Warn().Msg("telegram not configured, skipping delivery")
	}

	rec := model.DailySummaryRecord{
		Date:    p.now().Format(model.DateLayout),
		Asset:   asset.Symbol,
		Source:  asset.Source,
		Summary: summary,
	}
	if err := p.store.Append(rec); err != nil {
		return err
	}

	snapshot.Date = rec.Date
	snapshot.Summary = summary
	if err := p.rec.RecordDailyRun(snapshot); err != nil {
		log.Error().Err(err).Str("asset", asset.Symbol).Msg("record daily run")
	}
	return nil
}

// analyze normalizes the raw rows, computes the indicator battery and asks
// the narrator for an action summary. An empty series yields the no-data
// sentinel instead of an error, so the record still lands in the store.
func (p *Pipeline) analyze(ctx context.Context, asset config.Asset, rows []map[string]any) (string, *recorder.DailyRun, error) {
	snapshot := &recorder.DailyRun{Asset: asset.Symbol, Source: string(asset.Source)}

	series, err := normalize.Normalize(asset.Symbol, asset.Class, rows)
	if err != nil {
		if errors.Is(err, model.ErrNoData) {
			return noDataSummary, snapshot, nil
		}
		return "", nil, err
	}

	set, err := indicator.Compute(series)
	if err != nil {
		if errors.Is(err, model.ErrNoData) {
			return noDataSummary, snapshot, nil
		}
		return "", nil, err
	}

	headlines, err := p.news.FetchHeadlines(ctx, asset.Symbol, asset.Class, p.cfg.News.Limit)
	if err != nil {
		log.Warn().Err(err).Str("asset", asset.Symbol).Msg("news fetch failed")
	}
	posts, err := p.social.FetchPosts(ctx, asset.Symbol, p.cfg.Reddit.Limit)
	if err != nil {
		log.Warn().Err(err).Str("asset", asset.Symbol).Msg("social fetch failed")
	}

	lookback := p.cfg.Analysis.LookbackDays
	pct, hasPct := indicator.PercentChange(recentCloses(series, lookback))

	in := narrative.DailyInput{
		Asset:        asset.Symbol,
		Source:       asset.Source,
		Indicators:   set,
		PctChange:    pct,
		HasPctChange: hasPct,
		LookbackDays: lookback,
		Headlines:    headlines,
		Posts:        posts,
	}
	summary, err := p.narrator.Generate(ctx, narrative.DailySystem, narrative.BuildDailyPrompt(in), p.cfg.Gemini.DailyMaxTokens)
	if err != nil {
		return "", nil, err
	}

	closes := series.Closes()
	snapshot.Close = closes[len(closes)-1]
	if v, ok := set.Latest(indicator.ColRSI); ok {
		snapshot.RSI = v
	}
	if v, ok := set.Latest(indicator.ColMACDLine); ok {
		snapshot.MACDLine = v
	}
	if v, ok := set.Latest(indicator.ColMACDSignal); ok {
		snapshot.MACDSignal = v
	}
	if hasPct {
		snapshot.PctChange = pct
	}
	return summary, snapshot, nil
}

// recentCloses returns the closes of the trailing lookback window, measured
// from the last point's timestamp.
func recentCloses(s *model.TimeSeries, lookbackDays int) []float64 {
	if s.Len() == 0 {
		return nil
	}
	cutoff := s.Points[s.Len()-1].Time.AddDate(0, 0, -lookbackDays)
	var out []float64
	for _, pt := range s.Points {
		if pt.Time.Before(cutoff) {
			continue
		}
		out = append(out, pt.Fields[model.FieldClose])
	}
	return out
}
