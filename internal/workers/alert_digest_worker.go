package workers

import (
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/logger"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/models"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/services"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// AlertDigestWorker drives the daily and weekly job-alert digests on
// cron schedules.
type AlertDigestWorker struct {
	db           *gorm.DB
	alertService services.JobAlertService
	cron         *cron.Cron

	dailySpec  string
	weeklySpec string
}

func NewAlertDigestWorker(db *gorm.DB, alertService services.JobAlertService, dailySpec, weeklySpec string) *AlertDigestWorker {
	return &AlertDigestWorker{
		db:           db,
		alertService: alertService,
		cron:         cron.New(),
		dailySpec:    dailySpec,
		weeklySpec:   weeklySpec,
	}
}

// Start registers both digest jobs and starts the scheduler. An
// invalid spec fails the whole start.
func (w *AlertDigestWorker) Start() error {
	if _, err := w.cron.AddFunc(w.dailySpec, func() {
		w.runDigest(models.AlertFrequencyDaily)
	}); err != nil {
		logger.WorkerLog("alert_digest", "schedule_daily", err)
		return err
	}

	if _, err := w.cron.AddFunc(w.weeklySpec, func() {
		w.runDigest(models.AlertFrequencyWeekly)
	}); err != nil {
		logger.WorkerLog("alert_digest", "schedule_weekly", err)
		return err
	}

	w.cron.Start()
	logger.Info("alert digest scheduler started",
		"daily_spec", w.dailySpec, "weekly_spec", w.weeklySpec)
	return nil
}

// Stop halts the scheduler. Running digests finish on their own.
func (w *AlertDigestWorker) Stop() {
	w.cron.Stop()
	logger.Info("alert digest scheduler stopped")
}

func (w *AlertDigestWorker) runDigest(frequency models.AlertFrequency) {
	if err := w.alertService.RunDigests(w.db, frequency); err != nil {
		logger.WorkerLog("alert_digest", "run_"+string(frequency), err)
		return
	}
	logger.WorkerLog("alert_digest", "run_"+string(frequency), nil)
}
