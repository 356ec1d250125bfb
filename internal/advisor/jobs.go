package advisor

import (
	"context"

	"gorm.io/gorm"
)

// Jobs is the persistence layer for queued advice requests.
type Jobs struct {
	db *gorm.DB
}

func NewJobs(db *gorm.DB) *Jobs {
	return &Jobs{db: db}
}

func (j *Jobs) Create(ctx context.Context, job *Job) error {
	return j.db.WithContext(ctx).Create(job).Error
}

func (j *Jobs) Get(ctx context.Context, id string) (*Job, error) {
	var job Job
	if err := j.db.WithContext(ctx).First(&job, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

func (j *Jobs) MarkRunning(ctx context.Context, id string) error {
	return j.db.WithContext(ctx).Model(&Job{}).
		Where("id = ? AND status = ?", id, JobQueued).
		Update("status", JobRunning).Error
}

func (j *Jobs) MarkSucceeded(ctx context.Context, id string, resultJSON string) error {
	return j.db.WithContext(ctx).Model(&Job{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":      JobSucceeded,
			"result_json": resultJSON,
			"error":       nil,
		}).Error
}

func (j *Jobs) MarkFailed(ctx context.Context, id string, errMsg string) error {
	return j.db.WithContext(ctx).Model(&Job{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":      JobFailed,
			"error":       errMsg,
			"result_json": nil,
		}).Error
}
