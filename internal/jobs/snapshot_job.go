package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Snapshotter persists the current state of the organization.
type Snapshotter interface {
	Snapshot(ctx context.Context) error
}

// SnapshotJob saves the organization on a cron schedule.
type SnapshotJob struct {
	schedule    string
	timeout     time.Duration
	snapshotter Snapshotter
	cron        *cron.Cron
	logger      *slog.Logger
}

// NewSnapshotJob creates a job that calls snapshotter on schedule, a six-field
// cron expression with seconds ("0 */5 * * * *" saves every five minutes).
// Each run is bounded by timeout.
func NewSnapshotJob(schedule string, timeout time.Duration, snapshotter Snapshotter, logger *slog.Logger) *SnapshotJob {
	return &SnapshotJob{
		schedule:    schedule,
		timeout:     timeout,
		snapshotter: snapshotter,
		cron:        cron.New(cron.WithSeconds()),
		logger:      logger.With("component", "snapshot_job"),
	}
}

// Name identifies the job in logs and errors.
func (j *SnapshotJob) Name() string {
	return "snapshot"
}

// Start schedules the job.
func (j *SnapshotJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return fmt.Errorf("schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Snapshot job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running snapshot to finish and stops the schedule.
func (j *SnapshotJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Snapshot job stopped")
}

func (j *SnapshotJob) run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	started := time.Now()
	if err := j.snapshotter.Snapshot(ctx); err != nil {
		j.logger.ErrorContext(ctx, "Snapshot job failed", "error", err)
		return
	}
	j.logger.DebugContext(ctx, "Snapshot saved", "duration", time.Since(started))
}
