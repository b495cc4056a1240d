// Package scheduler runs periodic maintenance jobs on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

const (
	DefaultRetentionSchedule = "0 3 * * *"
	defaultJobTimeout        = 5 * time.Minute
)

// Pruner deletes activity entries older than retention.
type Pruner interface {
	Prune(ctx context.Context, retention time.Duration) (int64, error)
}

// RetentionJob prunes the activity log on a cron schedule.
type RetentionJob struct {
	cron      *cron.Cron
	pruner    Pruner
	retention time.Duration
	log       zerolog.Logger
}

// NewRetentionJob creates a job keeping retentionDays of activity. Zero or a
// negative value disables pruning.
func NewRetentionJob(pruner Pruner, retentionDays int, log zerolog.Logger) *RetentionJob {
	log = log.With().Str("component", "activity_retention").Logger()
	cl := cronLogger{log: log}
	return &RetentionJob{
		cron:      cron.New(cron.WithLogger(cl), cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl))),
		pruner:    pruner,
		retention: time.Duration(retentionDays) * 24 * time.Hour,
		log:       log,
	}
}

// Start registers the job under schedule and starts the cron loop.
func (j *RetentionJob) Start(schedule string) error {
	if j.retention <= 0 {
		j.log.Info().Msg("activity retention disabled")
		return nil
	}
	if schedule == "" {
		schedule = DefaultRetentionSchedule
	}
	if _, err := j.cron.AddFunc(schedule, j.RunOnce); err != nil {
		return fmt.Errorf("schedule %q: %w", schedule, err)
	}
	j.cron.Start()
	j.log.Info().Str("schedule", schedule).Dur("retention", j.retention).Msg("activity retention scheduled")
	return nil
}

// Stop halts the scheduler. The returned context is done once a running job
// has finished.
func (j *RetentionJob) Stop() context.Context {
	return j.cron.Stop()
}

// RunOnce performs a single pruning pass.
func (j *RetentionJob) RunOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), defaultJobTimeout)
	defer cancel()

	if _, err := j.pruner.Prune(ctx, j.retention); err != nil {
		j.log.Error().Err(err).Msg("activity retention failed")
	}
}

// cronLogger adapts zerolog to cron.Logger.
type cronLogger struct {
	log zerolog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
