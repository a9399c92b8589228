package employee

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	domain "github.com/rafaelmp/employee-import/internal/domain/employee"
)

type importWorkerJobRepo interface {
	ClaimNext(ctx context.Context, leaseDuration time.Duration) (*domain.ImportJob, error)
	Heartbeat(ctx context.Context, jobID string, leaseDuration time.Duration) error
	Complete(ctx context.Context, jobID string, summary domain.ImportSummary) error
	Requeue(ctx context.Context, jobID string, reason string) error
	Fail(ctx context.Context, jobID string, reason string) error
}

type batchRunner interface {
	Run(ctx context.Context, job domain.ImportJob) (domain.ImportReport, error)
}

type ImportWorkerConfig struct {
	Workers           int
	PollInterval      time.Duration
	LeaseDuration     time.Duration
	HeartbeatInterval time.Duration
	JobTimeout        time.Duration
}

// ImportWorker claims queued import jobs and runs them through the batch
// executor, applying the retry policy and dispatching outcome
// notifications.
type ImportWorker struct {
	repo     importWorkerJobRepo
	batch    batchRunner
	notifier domain.Notifier
	cfg      ImportWorkerConfig

	once sync.Once
}

func NewImportWorker(repo importWorkerJobRepo, batch batchRunner, notifier domain.Notifier, cfg ImportWorkerConfig) *ImportWorker {
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 500 * time.Millisecond
	}
	if cfg.LeaseDuration <= 0 {
		cfg.LeaseDuration = 60 * time.Second
	}
	if cfg.HeartbeatInterval <= 0 {
		cfg.HeartbeatInterval = cfg.LeaseDuration / 2
	}
	if cfg.JobTimeout <= 0 {
		cfg.JobTimeout = 10 * time.Minute
	}

	return &ImportWorker{
		repo:     repo,
		batch:    batch,
		notifier: notifier,
		cfg:      cfg,
	}
}

func (w *ImportWorker) Start(ctx context.Context) {
	w.once.Do(func() {
		for i := 0; i < w.cfg.Workers; i++ {
			go w.workerLoop(ctx)
		}
	})
}

func (w *ImportWorker) workerLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		job, err := w.repo.ClaimNext(ctx, w.cfg.LeaseDuration)
		if err != nil {
			slog.Error("claim next import job failed", "error", err)
			if !sleepWithContext(ctx, w.cfg.PollInterval) {
				return
			}
			continue
		}

		if job == nil {
			if !sleepWithContext(ctx, w.cfg.PollInterval) {
				return
			}
			continue
		}

		if err := w.ProcessJob(ctx, *job); err != nil {
			slog.Error("process import job failed", "job_id", job.ID, "error", err)
		}
	}
}

// ProcessJob runs one claimed job under the wall-clock timeout. A run that
// produced a report is a success regardless of how many rows failed; only
// batch-level errors reach the retry policy.
func (w *ImportWorker) ProcessJob(ctx context.Context, job domain.ImportJob) error {
	logger := slog.With("job_id", job.ID, "manager_id", job.ManagerID)
	logger.Info("starting import", "file", job.SourcePath, "attempt", job.Attempts)

	runCtx, cancel := context.WithTimeout(ctx, w.cfg.JobTimeout)
	defer cancel()

	stopHeartbeat := w.keepAlive(runCtx, job.ID)
	report, runErr := w.batch.Run(runCtx, job)
	stopHeartbeat()

	// Bookkeeping and notification must not be cut short by the job
	// timeout that may have just fired.
	tail := context.WithoutCancel(ctx)

	if runErr != nil {
		return w.onProcessingError(tail, job, runErr)
	}

	if err := w.repo.Complete(tail, job.ID, domain.ImportSummary{
		TotalLines: report.TotalLines,
		Processed:  report.Processed,
		Errors:     report.Errors,
	}); err != nil {
		return w.onProcessingError(tail, job, fmt.Errorf("complete job: %w", err))
	}

	if err := w.notifier.SendSuccess(tail, job.ManagerID, report); err != nil {
		// Notification failures never fail a job that imported its data.
		logger.Error("success notification failed", "error", err)
	}

	logger.Info("import finished",
		"total_lines", report.TotalLines,
		"processed", report.Processed,
		"errors", report.Errors)
	return nil
}

// keepAlive renews the job lease until the returned stop function runs.
func (w *ImportWorker) keepAlive(ctx context.Context, jobID string) func() {
	done := make(chan struct{})
	var stopOnce sync.Once

	go func() {
		ticker := time.NewTicker(w.cfg.HeartbeatInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := w.repo.Heartbeat(ctx, jobID, w.cfg.LeaseDuration); err != nil {
					slog.Error("import job heartbeat failed", "job_id", jobID, "error", err)
				}
			}
		}
	}()

	return func() { stopOnce.Do(func() { close(done) }) }
}

func (w *ImportWorker) onProcessingError(ctx context.Context, job domain.ImportJob, err error) error {
	reason := truncateReason(err.Error())

	// Conditions that cannot change on a re-run with the same file path
	// skip the remaining attempts.
	if domain.IsRetryableImportError(err) && job.Attempts < job.MaxAttempts {
		if requeueErr := w.repo.Requeue(ctx, job.ID, reason); requeueErr != nil {
			return fmt.Errorf("%v; requeue failed: %w", err, requeueErr)
		}
		return err
	}

	if failErr := w.repo.Fail(ctx, job.ID, reason); failErr != nil {
		return fmt.Errorf("%v; fail update failed: %w", err, failErr)
	}

	if notifyErr := w.notifier.SendFailure(ctx, job.ManagerID, err); notifyErr != nil {
		slog.Error("failure notification failed", "job_id", job.ID, "error", notifyErr)
	}
	return err
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func truncateReason(reason string) string {
	const maxLen = 1000
	reason = strings.TrimSpace(reason)
	if len(reason) <= maxLen {
		return reason
	}
	return reason[:maxLen]
}
