// File: jobs.go
// Title: Background Job Tracking
// Description: Tracks pipelines started in the background. Each job gets
//              a unique ID and is reaped by a goroutine that records its
//              final status.

package executor

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	ionlog "github.com/amw-zero/ion/core/log"
)

// JobState describes the lifecycle of a background job
type JobState int

const (
	JobRunning JobState = iota
	JobDone
)

// String returns the state name
func (s JobState) String() string {
	switch s {
	case JobRunning:
		return "running"
	case JobDone:
		return "done"
	default:
		return "unknown"
	}
}

// Job is one background pipeline
type Job struct {
	ID      string
	Command string
	State   JobState
	Status  int
}

// jobTable tracks background jobs for a session
type jobTable struct {
	mu     sync.Mutex
	jobs   map[string]*Job
	logger *ionlog.Logger
}

func newJobTable(logger *ionlog.Logger) *jobTable {
	return &jobTable{
		jobs:   make(map[string]*Job),
		logger: logger,
	}
}

// add registers a new running job and returns its ID
func (t *jobTable) add(command string) string {
	id := uuid.NewString()

	t.mu.Lock()
	t.jobs[id] = &Job{ID: id, Command: command, State: JobRunning}
	t.mu.Unlock()

	t.logger.Debug("background job started",
		ionlog.String("job", id), ionlog.String("command", command))
	return id
}

// finish records a job's final status
func (t *jobTable) finish(id string, status int) {
	t.mu.Lock()
	if job, ok := t.jobs[id]; ok {
		job.State = JobDone
		job.Status = status
	}
	t.mu.Unlock()

	t.logger.Debug("background job finished",
		ionlog.String("job", id), ionlog.Int("status", status))
}

// list returns all known jobs ordered by ID
func (t *jobTable) list() []*Job {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]*Job, 0, len(t.jobs))
	for _, job := range t.jobs {
		copied := *job
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
