// Package scheduler drives the daily and weekly pipeline jobs on cron
// cadences and serves manual Telegram commands.
package scheduler

import (
	"context"
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"FolioSentry/internal/config"
	"FolioSentry/internal/pipeline"
)

// Scheduler manages all cron tasks.
type Scheduler struct {
	Cron     *cron.Cron
	Pipeline *pipeline.Pipeline
	Cfg      *config.Config
	Ctx      context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, p *pipeline.Pipeline, cfg *config.Config) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Pipeline: p,
		Cfg:      cfg,
		Ctx:      ctx,
	}
}

// RegisterAll registers the daily and weekly jobs.
func (s *Scheduler) RegisterAll(dailyCron, weeklyCron string) error {
	if _, err := s.Cron.AddFunc(dailyCron, s.dailyTask); err != nil {
		return fmt.Errorf("register daily task: %w", err)
	}
	if _, err := s.Cron.AddFunc(weeklyCron, s.weeklyTask); err != nil {
		return fmt.Errorf("register weekly task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Info().Msg("scheduler stopped")
}

// RunDailyNow executes the daily job immediately (manual trigger or
// RUN_ON_START).
func (s *Scheduler) RunDailyNow() {
	s.dailyTask()
}

func (s *Scheduler) dailyTask() {
	log.Info().Msg("running daily task")
	s.Pipeline.RunDaily(s.Ctx)
}

func (s *Scheduler) weeklyTask() {
	log.Info().Msg("running weekly task")
	if err := s.Pipeline.RunWeekly(s.Ctx); err != nil {
		log.Error().Err(err).Msg("weekly task failed")
	}
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch command {
	case "/daily":
		go s.dailyTask()
		return "Daily analysis started."
	case "/weekly":
		go s.weeklyTask()
		return "Weekly overview started."
	case "/assets":
		var b strings.Builder
		b.WriteString("Configured assets:\n")
		for _, a := range s.Cfg.Assets() {
			fmt.Fprintf(&b, "• %s (%s, %s)\n", a.Symbol, a.Class, a.Source)
		}
		return b.String()
	default:
		return "Available commands:\n• /daily\n• /weekly\n• /assets"
	}
}
