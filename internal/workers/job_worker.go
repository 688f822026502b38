package workers

import (
	"context"
	"time"

	"servicehub_backend/internal/logger"
	"servicehub_backend/internal/repositories"
)

// JobWorker runs the background maintenance tasks for jobs.
type JobWorker struct {
	jobs *repositories.JobRepository
}

func NewJobWorker(jobs *repositories.JobRepository) *JobWorker {
	return &JobWorker{jobs: jobs}
}

func (w *JobWorker) Start(ctx context.Context) {
	go w.cancelExpiredJobs(ctx)
}

// cancelExpiredJobs cancels open jobs whose deadline has passed. Runs
// hourly.
func (w *JobWorker) cancelExpiredJobs(ctx context.Context) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Job worker stopped")
			return
		case <-ticker.C:
			cancelled, err := w.jobs.CancelExpired(ctx)
			logger.WorkerLog("job_worker", "cancel_expired", err)
			if err == nil && cancelled > 0 {
				logger.Info("Cancelled expired jobs", "count", cancelled)
			}
		}
	}
}
