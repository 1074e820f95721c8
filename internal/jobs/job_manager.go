package jobs

import (
	"context"
	"fmt"
	"log/slog"
)

// Job is a scheduled task the JobManager can start and stop.
type Job interface {
	Name() string
	Start() error
	Stop()
}

// JobManager starts and stops a fixed set of jobs together.
type JobManager struct {
	jobs    []Job
	started []Job
	logger  *slog.Logger
}

func NewJobManager(logger *slog.Logger, jobs ...Job) *JobManager {
	return &JobManager{
		jobs:   jobs,
		logger: logger.With("component", "job_manager"),
	}
}

// StartAll starts the jobs in order. If one fails, the jobs started before it
// are stopped and the error is returned.
func (jm *JobManager) StartAll() error {
	for _, job := range jm.jobs {
		if err := job.Start(); err != nil {
			jm.StopAll()
			return fmt.Errorf("failed to start %s job: %w", job.Name(), err)
		}
		jm.started = append(jm.started, job)
	}

	jm.logger.InfoContext(context.Background(), "Jobs started", "count", len(jm.started))
	return nil
}

// StopAll stops started jobs in reverse order. Calling it twice is safe.
func (jm *JobManager) StopAll() {
	for i := len(jm.started) - 1; i >= 0; i-- {
		jm.started[i].Stop()
	}
	jm.started = nil
}
