package workers

import (
	"context"
	"time"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/logger"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/repositories"

	"gorm.io/gorm"
)

// JobExpiryWorker periodically deactivates postings whose expires_at
// has passed, so they drop out of search without being deleted.
type JobExpiryWorker struct {
	db       *gorm.DB
	jobRepo  repositories.JobRepository
	interval time.Duration
}

func NewJobExpiryWorker(db *gorm.DB, jobRepo repositories.JobRepository, interval time.Duration) *JobExpiryWorker {
	if interval <= 0 {
		interval = time.Hour
	}
	return &JobExpiryWorker{
		db:       db,
		jobRepo:  jobRepo,
		interval: interval,
	}
}

// Start launches the loop. It returns immediately; cancel the context
// to stop the worker.
func (w *JobExpiryWorker) Start(ctx context.Context) {
	go w.loop(ctx)
}

func (w *JobExpiryWorker) loop(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// One pass right away so a restart does not leave expired jobs
	// visible for a full interval.
	w.runOnce()

	for {
		select {
		case <-ctx.Done():
			logger.Info("job expiry worker stopped")
			return
		case <-ticker.C:
			w.runOnce()
		}
	}
}

func (w *JobExpiryWorker) runOnce() {
	count, err := w.jobRepo.DeactivateExpired(w.db, time.Now())
	if err != nil {
		logger.WorkerLog("job_expiry", "deactivate_expired", err)
		return
	}
	if count > 0 {
		logger.GetLogger().Info("deactivated expired jobs", "count", count)
	}
}
