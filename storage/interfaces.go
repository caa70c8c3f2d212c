package storage

import (
	"github.com/google/uuid"

	"listing-view/models"
)

// SummaryWriter is the interface any file-like backend must satisfy.
type SummaryWriter interface {
	Write(summaries []*models.Summary) error
	Close() error
}

// RunStore persists the summaries of one render run under its id and reads
// them back.
type RunStore interface {
	WriteRun(runID uuid.UUID, summaries []*models.Summary) error
	FetchRun(runID uuid.UUID) ([]*models.Summary, error)
	Close() error
}

var (
	_ SummaryWriter = (*CSVWriter)(nil)
	_ RunStore      = (*PostgresWriter)(nil)
)
