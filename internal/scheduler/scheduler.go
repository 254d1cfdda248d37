package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/kouassidev/ferme/internal/config"
	"github.com/kouassidev/ferme/internal/domain/models"
	"github.com/kouassidev/ferme/internal/repository/mongodb"
	"github.com/kouassidev/ferme/internal/repository/sheets"
	"github.com/kouassidev/ferme/internal/service/dashboard"
	"github.com/kouassidev/ferme/pkg/clients/notify"
)

// DigestBuilder assembles the daily digest the scheduler distributes.
type DigestBuilder interface {
	BuildDigest(ctx context.Context) (models.Digest, error)
}

// Scheduler runs the daily digest job. Each delivery sink (webhook, sheets,
// MongoDB archive) is optional; a nil sink is skipped.
type Scheduler struct {
	cron     *cron.Cron
	builder  DigestBuilder
	notifier notify.Client
	sheets   sheets.Repository
	archive  mongodb.Repository
	cfg      config.DigestConfig
	logger   *zap.Logger
}

// NewScheduler creates a new scheduler instance. The cron runs in the
// configured timezone so "0 20 * * *" means 20:00 farm time.
func NewScheduler(cfg config.DigestConfig, builder DigestBuilder, notifier notify.Client, sheetsRepo sheets.Repository, archive mongodb.Repository, logger *zap.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %s: %w", cfg.Timezone, err)
	}

	return &Scheduler{
		cron:     cron.New(cron.WithLocation(location)),
		builder:  builder,
		notifier: notifier,
		sheets:   sheetsRepo,
		archive:  archive,
		cfg:      cfg,
		logger:   logger,
	}, nil
}

// Start registers the digest job and starts the cron loop.
func (s *Scheduler) Start() error {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.CronSchedule))

	if _, err := s.cron.AddFunc(s.cfg.CronSchedule, s.runDigest); err != nil {
		return fmt.Errorf("schedule digest job: %w", err)
	}

	s.cron.Start()
	return nil
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

// runDigest builds today's digest and fans it out to every configured sink.
// A failing sink is logged and does not block the others.
func (s *Scheduler) runDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	s.logger.Info("generating daily digest")
	digest, err := s.builder.BuildDigest(ctx)
	if err != nil {
		s.logger.Error("failed to build daily digest", zap.Error(err))
		return
	}

	if s.notifier != nil {
		if err := s.notifier.SendDigest(ctx, digest); err != nil {
			s.logger.Error("failed to send digest webhook", zap.Error(err))
		}
	}

	if s.sheets != nil {
		if err := s.sheets.AppendDigestRow(ctx, digest); err != nil {
			s.logger.Error("failed to append digest to sheet", zap.Error(err))
		}
	}

	if s.archive != nil {
		snapshot := dashboard.SnapshotFromDigest(digest, time.Now().UTC())
		if err := s.archive.SaveSnapshot(ctx, snapshot); err != nil {
			s.logger.Error("failed to archive daily snapshot", zap.Error(err))
		}
	}

	s.logger.Info("daily digest distributed",
		zap.String("date", digest.Date),
		zap.Int("alerts", len(digest.Alerts)))
}
