package employee

import "context"

// ImportRepository is the persistence collaborator used by the import run.
// Create returns ErrDuplicateEmail or ErrDuplicateCPF when the database
// constraint rejects the row; the constraint is the source of truth, the
// existence predicates are advisory pre-checks.
type ImportRepository interface {
	UniquenessChecker
	Create(ctx context.Context, managerID int64, rec Record) (Employee, error)
}

// Notifier delivers the outcome of a finished run to the owning manager.
type Notifier interface {
	SendSuccess(ctx context.Context, managerID int64, report ImportReport) error
	SendFailure(ctx context.Context, managerID int64, runErr error) error
}
