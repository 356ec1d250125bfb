package advisor

import "time"

type JobStatus string

const (
	JobQueued    JobStatus = "queued"
	JobRunning   JobStatus = "running"
	JobSucceeded JobStatus = "succeeded"
	JobFailed    JobStatus = "failed"
)

// Job is one queued advice request, resolved by the worker off the HTTP
// path. The rendered results land on the row as JSON for polling clients.
type Job struct {
	ID string `gorm:"primaryKey;size:26"` // ULID

	FromArea string `gorm:"type:varchar(255);not null"`
	ToArea   string `gorm:"type:varchar(255);not null"`

	Status JobStatus `gorm:"type:varchar(16);index;not null"`

	// Filled when succeeded: the resolver's result list, JSON-encoded.
	ResultJSON *string `gorm:"type:text"`

	// Filled when failed
	Error *string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Job) TableName() string { return "advice_jobs" }
