package scheduler

import (
	"BalaghAPI/internal/config"
	"BalaghAPI/internal/scheduler/job"
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

type Scheduler struct {
	cfg     *config.AppConfig
	cron    *cron.Cron
	storage job.MediaStorage
	refs    []job.MediaReferences
	users   job.UnconfirmedUsers
}

// New builds the scheduler. Media referenced by any of refs survives cleanup.
func New(cfg *config.AppConfig, storage job.MediaStorage, users job.UnconfirmedUsers, refs ...job.MediaReferences) *Scheduler {
	return &Scheduler{
		cfg:     cfg,
		cron:    cron.New(),
		storage: storage,
		refs:    refs,
		users:   users,
	}
}

func (s *Scheduler) Start() {
	slog.Info("Starting Scheduler...")

	s.registerJobs()

	s.cron.Start()
	slog.Info("Scheduler started successfully")
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	slog.Info("Scheduler stopped")
}

func (s *Scheduler) register(name, schedule string, run func(ctx context.Context) error) {
	_, err := s.cron.AddFunc(schedule, func() {
		slog.Info("Starting job", "job", name)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
		defer cancel()

		if err := run(ctx); err != nil {
			slog.Error("Job failed", "job", name, "error", err)
		} else {
			slog.Info("Job completed", "job", name)
		}
	})
	if err != nil {
		slog.Error("Failed to register job", "job", name, "error", err)
	} else {
		slog.Info("Registered job", "job", name, "schedule", schedule)
	}
}

func (s *Scheduler) registerJobs() {
	s.register("media_cleanup", s.cfg.MediaCleanupCron, func(ctx context.Context) error {
		_, err := job.RunMediaCleanup(ctx, s.storage, s.refs, s.cfg.S3MediaPrefix, s.cfg.MediaRetentionDays, time.Now())
		return err
	})

	s.register("unconfirmed_user_cleanup", s.cfg.UnconfirmedUserCleanupCron, func(ctx context.Context) error {
		_, err := job.RunUnconfirmedUserCleanup(ctx, s.users, s.cfg.UnconfirmedUserRetentionDays, time.Now())
		return err
	})
}
