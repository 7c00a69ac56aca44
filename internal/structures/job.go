package structures

import (
	"context"
	"fitheat/internal/models"
)

// JobRequest carries everything a pipeline needs for one (kind, year) run.
// Credential is nil in offline mode. Records are loaded once by the run and
// shared by every pipeline.
type JobRequest struct {
	Kind       models.LogKind
	Year       int
	Ranges     []models.DateRange
	Credential *models.BearerCredential
	Records    []models.RawLogRecord
}

// JobOutput is produced by a pipeline and written only after every pipeline
// of the run has succeeded.
type JobOutput interface {
	Write() error
}

type JobHandler interface {
	Name() string
	Build(ctx context.Context, req *JobRequest) (JobOutput, error)
}
