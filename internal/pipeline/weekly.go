package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"FolioSentry/internal/aggregate"
	"FolioSentry/internal/model"
	"FolioSentry/internal/narrative"
	"FolioSentry/internal/recorder"
)

// RunWeekly windows the daily record store over the trailing week and
// synthesizes a strategic overview. A store failure is fatal for this
// operation only; an empty window just reports that nothing happened.
func (p *Pipeline) RunWeekly(ctx context.Context) error {
	records, err := p.store.LoadAll()
	if err != nil {
		return fmt.Errorf("load daily summaries: %w", err)
	}

	win, err := aggregate.WindowRecords(records, p.now(), aggregate.DefaultLookbackDays)
	if errors.Is(err, model.ErrNoData) {
		log.Info().Msg("no recent summaries to analyze")
		p.deliver(ctx, "No recent summaries to analyze.")
		return nil
	}
	if err != nil {
		return err
	}

	overview, err := p.narrator.Generate(ctx, narrative.WeeklySystem, narrative.BuildWeeklyPrompt(win), p.cfg.Gemini.WeeklyMaxTokens)
	if err != nil {
		return fmt.Errorf("generate weekly overview: %w", err)
	}

	p.deliver(ctx, overview)

	if err := p.rec.RecordWeeklyOverview(&recorder.WeeklyOverview{
		PortfolioCount: len(win.Portfolio),
		WatchlistCount: len(win.Watchlist),
		Overview:       overview,
	}); err != nil {
		log.Error().Err(err).Msg("record weekly overview")
	}
	return nil
}

func (p *Pipeline) deliver(ctx context.Context, text string) {
	if !p.notifier.Configured() {
		log.Warn().Msg("telegram not configured, skipping delivery")
		return
	}
	if err := p.notifier.SendWithRetry(ctx, text, sendRetries); err != nil {
		log.Error().Err(err).Msg("send weekly overview")
	}
}
