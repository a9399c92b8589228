package employee

import "time"

// MaxStoredErrorDetails bounds the detail list in an ImportReport. Rows past
// the cap are still counted, just not retained.
const MaxStoredErrorDetails = 100

// ErrorDetail records one failed row with enough context for the manager to
// correct and resubmit it. Exactly one of Errors and Message is set: Errors
// for field validation failures, Message for a runtime fault.
type ErrorDetail struct {
	Line    int               `json:"line"`
	Data    map[string]string `json:"data"`
	Errors  FieldErrors       `json:"errors,omitempty"`
	Message string            `json:"error,omitempty"`
}

// ImportReport is the sole externally observed artifact of an import run.
type ImportReport struct {
	TotalLines   int           `json:"total_lines"`
	Processed    int           `json:"processed"`
	Errors       int           `json:"errors"`
	ErrorDetails []ErrorDetail `json:"error_details"`
	FinishedAt   string        `json:"finished_at"`
}

// NewImportReport stamps the finish time, truncating the detail list to the
// retained prefix.
func NewImportReport(totalLines, processed, errorCount int, details []ErrorDetail) ImportReport {
	if len(details) > MaxStoredErrorDetails {
		details = details[:MaxStoredErrorDetails]
	}
	return ImportReport{
		TotalLines:   totalLines,
		Processed:    processed,
		Errors:       errorCount,
		ErrorDetails: details,
		FinishedAt:   time.Now().UTC().Format(time.RFC3339),
	}
}
