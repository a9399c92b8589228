package employee

// Import job statuses.
const (
	JobStatusQueued    = "queued"
	JobStatusRunning   = "running"
	JobStatusSucceeded = "succeeded"
	JobStatusFailed    = "failed"
)

type ImportJob struct {
	ID          string
	ManagerID   int64
	SourcePath  string
	Status      string
	Attempts    int
	MaxAttempts int
}

// ImportSummary is the queue-facing digest of a finished run, persisted on
// the job row.
type ImportSummary struct {
	TotalLines int
	Processed  int
	Errors     int
}
