package employee

import (
	"errors"
	"strings"
)

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrDuplicateEmail   = errors.New("email already exists")
	ErrDuplicateCPF     = errors.New("cpf already exists")
)

// Fatal import conditions. These abort the whole run before any further
// row is processed, as opposed to per-row errors which never do.
var (
	ErrImportFileNotFound = errors.New("import file not found")
	ErrEmptyImport        = errors.New("import file has no data rows")
	ErrUnreadableImport   = errors.New("import file could not be decoded")
)

// MissingColumnsError is raised when the header row lacks required columns.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return "columns not found: " + strings.Join(e.Columns, ", ")
}

// IsFatalImportError reports whether err belongs to the batch-level class.
func IsFatalImportError(err error) bool {
	var missing *MissingColumnsError
	return errors.Is(err, ErrImportFileNotFound) ||
		errors.Is(err, ErrEmptyImport) ||
		errors.Is(err, ErrUnreadableImport) ||
		errors.As(err, &missing)
}

// IsRetryableImportError reports whether re-running the job could change
// the outcome. A missing file, missing columns, or an empty file will not
// self-heal on retry.
func IsRetryableImportError(err error) bool {
	var missing *MissingColumnsError
	if errors.Is(err, ErrImportFileNotFound) ||
		errors.Is(err, ErrEmptyImport) ||
		errors.As(err, &missing) {
		return false
	}
	return true
}

// DuplicateFieldError converts a persistence-layer duplicate rejection into
// the per-field message used in row error details.
func DuplicateFieldError(err error) (field, message string, ok bool) {
	switch {
	case errors.Is(err, ErrDuplicateEmail):
		return "email", "the email has already been taken", true
	case errors.Is(err, ErrDuplicateCPF):
		return "cpf", "the cpf has already been taken", true
	}
	return "", "", false
}
