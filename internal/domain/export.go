package domain

import (
	"time"

	"github.com/google/uuid"
)

// Export statuses.
const (
	ExportSucceeded = "succeeded"
	ExportFailed    = "failed"
)

// ExportJob records a single PDF export attempt.
type ExportJob struct {
	ID         uuid.UUID `json:"id"`
	Language   string    `json:"language"`
	Status     string    `json:"status"`
	Filename   string    `json:"filename"`
	Bytes      int       `json:"bytes"`
	DurationMS int64     `json:"duration_ms"`
	Error      string    `json:"error,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewExportJob starts a job record for lang.
func NewExportJob(lang string, now time.Time) *ExportJob {
	return &ExportJob{ID: uuid.New(), Language: lang, CreatedAt: now}
}
