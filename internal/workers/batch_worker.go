package workers

import (
	"context"
	"time"

	"joonbee_backend/internal/logger"
	"joonbee_backend/internal/metrics"
	"joonbee_backend/internal/models"

	"gorm.io/gorm"
)

// Job is one batch run. The worker records success or failure per run.
type Job func(ctx context.Context) error

// BatchWorker runs a job once at startup and then on a fixed interval until
// its context is cancelled.
type BatchWorker struct {
	interval  time.Duration
	job       Job
	collector *metrics.Collector
}

func NewBatchWorker(interval time.Duration, job Job, collector *metrics.Collector) *BatchWorker {
	return &BatchWorker{
		interval:  interval,
		job:       job,
		collector: collector,
	}
}

// Start blocks until ctx is cancelled.
func (w *BatchWorker) Start(ctx context.Context) {
	w.runOnce(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("batch worker stopped")
			return
		case <-ticker.C:
			w.runOnce(ctx)
		}
	}
}

func (w *BatchWorker) runOnce(ctx context.Context) {
	start := time.Now()
	if err := w.job(ctx); err != nil {
		w.collector.RecordBatchFailure()
		logger.CtxWithError(ctx, "batch job failed", err)
		return
	}
	w.collector.RecordBatchRun()
	logger.Info("batch job executed", "duration", time.Since(start))
}

// ContentStatsJob is the scheduled job: it logs platform totals so the
// operators see growth without querying the database by hand.
func ContentStatsJob(db *gorm.DB) Job {
	return func(ctx context.Context) error {
		var memberCount, interviewCount, questionCount int64
		if err := db.WithContext(ctx).Model(&models.Member{}).Count(&memberCount).Error; err != nil {
			return err
		}
		if err := db.WithContext(ctx).Model(&models.Interview{}).Count(&interviewCount).Error; err != nil {
			return err
		}
		if err := db.WithContext(ctx).Model(&models.Question{}).Count(&questionCount).Error; err != nil {
			return err
		}
		logger.Info("platform totals",
			"members", memberCount,
			"interviews", interviewCount,
			"questions", questionCount,
		)
		return nil
	}
}
