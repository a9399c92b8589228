package employee

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	domain "github.com/rafaelmp/employee-import/internal/domain/employee"
	"github.com/rafaelmp/employee-import/internal/infrastructure/csvfile"
)

// expectedColumns are the header names every import file must carry.
var expectedColumns = []string{"name", "email", "cpf", "city", "state"}

// ImportSource reads and disposes of stored upload files.
type ImportSource interface {
	ReadAll(ctx context.Context, sourcePath string) ([]byte, error)
	Remove(ctx context.Context, sourcePath string) error
}

// BatchImport runs one import end to end: header verification, a strictly
// sequential per-row fold with continue-on-error semantics, report
// assembly, and guaranteed removal of the source file.
type BatchImport struct {
	source ImportSource
	repo   domain.ImportRepository
}

func NewBatchImport(source ImportSource, repo domain.ImportRepository) *BatchImport {
	return &BatchImport{source: source, repo: repo}
}

// Run executes the import for one claimed job. Any returned error is a
// batch-level condition that aborted the run; row-level failures never
// surface here, they are counted and detailed inside the report. The
// source file is removed on every exit path.
func (b *BatchImport) Run(ctx context.Context, job domain.ImportJob) (domain.ImportReport, error) {
	defer func() {
		// Cleanup must survive cancellation and timeouts.
		cleanupCtx := context.WithoutCancel(ctx)
		if err := b.source.Remove(cleanupCtx, job.SourcePath); err != nil {
			slog.Error("import file cleanup failed", "job_id", job.ID, "error", err)
		}
	}()

	data, err := b.source.ReadAll(ctx, job.SourcePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.ImportReport{}, domain.ErrImportFileNotFound
		}
		return domain.ImportReport{}, err
	}

	reader, err := csvfile.NewReader(data)
	if err != nil {
		if errors.Is(err, csvfile.ErrNoHeader) {
			return domain.ImportReport{}, domain.ErrEmptyImport
		}
		return domain.ImportReport{}, errors.Join(domain.ErrUnreadableImport, err)
	}

	if missing := reader.MissingColumns(expectedColumns); len(missing) > 0 {
		return domain.ImportReport{}, &domain.MissingColumnsError{Columns: missing}
	}

	var (
		total      int
		processed  int
		errorCount int
		details    []domain.ErrorDetail
	)
	checker := newBatchChecker(b.repo)

	for {
		if err := ctx.Err(); err != nil {
			return domain.ImportReport{}, err
		}

		row, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		total++

		if err != nil {
			errorCount++
			details = appendDetail(details, domain.ErrorDetail{
				Line:    row.Line,
				Data:    row.Fields,
				Message: err.Error(),
			})
			continue
		}

		rec := domain.FromRow(row.Fields)

		outcome, err := domain.Validate(ctx, rec, checker)
		if err != nil {
			// A lookup fault fails this row only; the batch keeps going.
			slog.Warn("row validation fault", "job_id", job.ID, "line", row.Line, "error", err)
			errorCount++
			details = appendDetail(details, domain.ErrorDetail{
				Line:    row.Line,
				Data:    row.Fields,
				Message: err.Error(),
			})
			continue
		}

		if !outcome.Valid() {
			errorCount++
			details = appendDetail(details, domain.ErrorDetail{
				Line:   row.Line,
				Data:   row.Fields,
				Errors: outcome.FieldErrors,
			})
			continue
		}

		if _, err := b.repo.Create(ctx, job.ManagerID, rec); err != nil {
			// A concurrent import may win the constraint race after the
			// advisory pre-check passed; that is an ordinary row error.
			errorCount++
			if field, message, ok := domain.DuplicateFieldError(err); ok {
				details = appendDetail(details, domain.ErrorDetail{
					Line:   row.Line,
					Data:   row.Fields,
					Errors: domain.FieldErrors{field: {message}},
				})
			} else {
				slog.Warn("row persistence fault", "job_id", job.ID, "line", row.Line, "error", err)
				details = appendDetail(details, domain.ErrorDetail{
					Line:    row.Line,
					Data:    row.Fields,
					Message: err.Error(),
				})
			}
			continue
		}

		checker.commit(rec)
		processed++
	}

	if total == 0 {
		return domain.ImportReport{}, domain.ErrEmptyImport
	}

	return domain.NewImportReport(total, processed, errorCount, details), nil
}

func appendDetail(details []domain.ErrorDetail, detail domain.ErrorDetail) []domain.ErrorDetail {
	if len(details) >= domain.MaxStoredErrorDetails {
		return details
	}
	return append(details, detail)
}

// batchChecker layers the rows already committed in this run over the
// repository predicates, so a duplicate inside one file is rejected on its
// second occurrence.
type batchChecker struct {
	repo   domain.UniquenessChecker
	emails map[string]struct{}
	cpfs   map[string]struct{}
}

func newBatchChecker(repo domain.UniquenessChecker) *batchChecker {
	return &batchChecker{
		repo:   repo,
		emails: make(map[string]struct{}),
		cpfs:   make(map[string]struct{}),
	}
}

func (c *batchChecker) EmailExists(ctx context.Context, email string) (bool, error) {
	if _, ok := c.emails[email]; ok {
		return true, nil
	}
	return c.repo.EmailExists(ctx, email)
}

func (c *batchChecker) CPFExists(ctx context.Context, digits string) (bool, error) {
	if _, ok := c.cpfs[digits]; ok {
		return true, nil
	}
	return c.repo.CPFExists(ctx, digits)
}

func (c *batchChecker) commit(rec domain.Record) {
	c.emails[rec.Email] = struct{}{}
	c.cpfs[rec.CPF] = struct{}{}
}
