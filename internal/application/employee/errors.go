package employee

import (
	"errors"

	domain "github.com/rafaelmp/employee-import/internal/domain/employee"
)

var (
	ErrInvalidImportSource = errors.New("invalid import source")
	ErrEnqueueImportJob    = errors.New("failed to enqueue import job")
	ErrInvalidEmployeeID   = errors.New("invalid employee id")
	ErrEmployeeNotFound    = errors.New("employee not found")
)

// ValidationError carries the aggregated field failures of a rejected
// employee payload.
type ValidationError struct {
	FieldErrors domain.FieldErrors
}

func (e *ValidationError) Error() string {
	return "employee validation failed"
}
