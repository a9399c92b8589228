package employee

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

type StartImportInput struct {
	ManagerID  int64
	SourcePath string
}

type StartImportOutput struct {
	JobID  string `json:"job_id"`
	Status string `json:"status"`
}

// StartImport enqueues a stored CSV upload for asynchronous processing.
type StartImport interface {
	Execute(ctx context.Context, in StartImportInput) (StartImportOutput, error)
}

type importJobEnqueuer interface {
	Enqueue(ctx context.Context, managerID int64, sourcePath string) (string, error)
}

type startImport struct {
	importJobRepo importJobEnqueuer
}

func NewStartImport(importJobRepo importJobEnqueuer) StartImport {
	return &startImport{importJobRepo: importJobRepo}
}

func (uc *startImport) Execute(ctx context.Context, in StartImportInput) (StartImportOutput, error) {
	sourcePath := strings.TrimSpace(in.SourcePath)
	ext := strings.ToLower(filepath.Ext(sourcePath))
	if sourcePath == "" || in.ManagerID <= 0 || (ext != ".csv" && ext != ".txt") {
		return StartImportOutput{}, ErrInvalidImportSource
	}

	jobID, err := uc.importJobRepo.Enqueue(ctx, in.ManagerID, sourcePath)
	if err != nil {
		return StartImportOutput{}, fmt.Errorf("%w: %v", ErrEnqueueImportJob, err)
	}

	return StartImportOutput{
		JobID:  jobID,
		Status: "queued",
	}, nil
}
