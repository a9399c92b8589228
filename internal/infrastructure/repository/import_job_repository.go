package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	domain "github.com/rafaelmp/employee-import/internal/domain/employee"
	"github.com/rafaelmp/employee-import/internal/infrastructure/db/models"
	"gorm.io/gorm"
)

type ImportJobRepository struct {
	db          *gorm.DB
	maxAttempts int
}

func NewImportJobRepository(db *gorm.DB) *ImportJobRepository {
	return &ImportJobRepository{db: db, maxAttempts: 3}
}

func (r *ImportJobRepository) Enqueue(ctx context.Context, managerID int64, sourcePath string) (string, error) {
	job := models.ImportJob{
		ID:          uuid.NewString(),
		ManagerID:   managerID,
		SourcePath:  sourcePath,
		Status:      domain.JobStatusQueued,
		MaxAttempts: r.maxAttempts,
	}

	if err := r.db.WithContext(ctx).Create(&job).Error; err != nil {
		return "", fmt.Errorf("create import job: %w", err)
	}

	return job.ID, nil
}

// ClaimNext leases the oldest queued job, or a running job whose lease has
// expired, for leaseDuration. Returns nil when nothing is claimable.
func (r *ImportJobRepository) ClaimNext(ctx context.Context, leaseDuration time.Duration) (*domain.ImportJob, error) {
	var row models.ImportJob

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Raw(`
SELECT * FROM import_jobs
WHERE status = ? OR (status = ? AND lease_expires_at < NOW())
ORDER BY created_at
LIMIT 1
FOR UPDATE SKIP LOCKED
`, domain.JobStatusQueued, domain.JobStatusRunning).Scan(&row).Error
		if err != nil {
			return err
		}
		if row.ID == "" {
			return nil
		}

		now := time.Now().UTC()
		return tx.Model(&models.ImportJob{}).
			Where("id = ?", row.ID).
			Updates(map[string]any{
				"status":           domain.JobStatusRunning,
				"attempts":         gorm.Expr("attempts + 1"),
				"started_at":       now,
				"heartbeat_at":     now,
				"lease_expires_at": now.Add(leaseDuration),
			}).Error
	})
	if err != nil {
		return nil, fmt.Errorf("claim import job: %w", err)
	}
	if row.ID == "" {
		return nil, nil
	}

	return &domain.ImportJob{
		ID:          row.ID,
		ManagerID:   row.ManagerID,
		SourcePath:  row.SourcePath,
		Status:      domain.JobStatusRunning,
		Attempts:    row.Attempts + 1,
		MaxAttempts: row.MaxAttempts,
	}, nil
}

func (r *ImportJobRepository) Heartbeat(ctx context.Context, jobID string, leaseDuration time.Duration) error {
	now := time.Now().UTC()
	err := r.db.WithContext(ctx).Model(&models.ImportJob{}).
		Where("id = ?", jobID).
		Updates(map[string]any{
			"heartbeat_at":     now,
			"lease_expires_at": now.Add(leaseDuration),
		}).Error
	if err != nil {
		return fmt.Errorf("heartbeat import job: %w", err)
	}
	return nil
}

func (r *ImportJobRepository) Complete(ctx context.Context, jobID string, summary domain.ImportSummary) error {
	err := r.db.WithContext(ctx).Model(&models.ImportJob{}).
		Where("id = ?", jobID).
		Updates(map[string]any{
			"status":          domain.JobStatusSucceeded,
			"total_lines":     summary.TotalLines,
			"processed_count": summary.Processed,
			"error_count":     summary.Errors,
			"finished_at":     time.Now().UTC(),
		}).Error
	if err != nil {
		return fmt.Errorf("complete import job: %w", err)
	}
	return nil
}

func (r *ImportJobRepository) Requeue(ctx context.Context, jobID string, reason string) error {
	err := r.db.WithContext(ctx).Model(&models.ImportJob{}).
		Where("id = ?", jobID).
		Updates(map[string]any{
			"status":           domain.JobStatusQueued,
			"error_message":    reason,
			"lease_expires_at": nil,
		}).Error
	if err != nil {
		return fmt.Errorf("requeue import job: %w", err)
	}
	return nil
}

func (r *ImportJobRepository) Fail(ctx context.Context, jobID string, reason string) error {
	err := r.db.WithContext(ctx).Model(&models.ImportJob{}).
		Where("id = ?", jobID).
		Updates(map[string]any{
			"status":        domain.JobStatusFailed,
			"error_message": reason,
			"finished_at":   time.Now().UTC(),
		}).Error
	if err != nil {
		return fmt.Errorf("fail import job: %w", err)
	}
	return nil
}
