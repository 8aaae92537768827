package entities

import (
	"time"

	"github.com/google/uuid"

	"github.com/alexdo83/Generate-videos-with-Veo-3/internal/domain/valueobjects"
)

type JobID string

type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusRunning   JobStatus = "running"
	JobStatusSucceeded JobStatus = "succeeded"
	JobStatusFailed    JobStatus = "failed"
)

// GenerationJob tracks one submitted generation from the API's point of view.
// Jobs live in memory only; nothing survives a restart, mirroring the
// request lifecycle of the product. All mutation happens under the job
// repository's lock.
type GenerationJob struct {
	id        JobID
	requestID GenerationRequestID

	status   JobStatus
	progress int

	failureKind    valueobjects.FailureKind
	failureMessage string

	result   *GenerationResult
	filename string

	createdAt time.Time
	updatedAt time.Time
}

func NewGenerationJob(requestID GenerationRequestID) *GenerationJob {
	now := time.Now()
	return &GenerationJob{
		id:        JobID(uuid.NewString()),
		requestID: requestID,
		status:    JobStatusPending,
		createdAt: now,
		updatedAt: now,
	}
}

func (j *GenerationJob) ID() JobID {
	return j.id
}

func (j *GenerationJob) RequestID() GenerationRequestID {
	return j.requestID
}

func (j *GenerationJob) Status() JobStatus {
	return j.status
}

func (j *GenerationJob) Progress() int {
	return j.progress
}

func (j *GenerationJob) FailureKind() valueobjects.FailureKind {
	return j.failureKind
}

func (j *GenerationJob) FailureMessage() string {
	return j.failureMessage
}

func (j *GenerationJob) Result() *GenerationResult {
	return j.result
}

func (j *GenerationJob) Filename() string {
	return j.filename
}

func (j *GenerationJob) CreatedAt() time.Time {
	return j.createdAt
}

func (j *GenerationJob) UpdatedAt() time.Time {
	return j.updatedAt
}

func (j *GenerationJob) IsTerminal() bool {
	return j.status == JobStatusSucceeded || j.status == JobStatusFailed
}

func (j *GenerationJob) MarkRunning() {
	j.status = JobStatusRunning
	j.touch()
}

// SetProgress raises the reported progress. Decreases are ignored so the
// stream stays monotonic, and values are clamped to 0-100.
func (j *GenerationJob) SetProgress(percent int) {
	if percent > 100 {
		percent = 100
	}
	if percent <= j.progress {
		return
	}
	j.progress = percent
	j.touch()
}

func (j *GenerationJob) MarkSucceeded(result *GenerationResult, filename string) {
	j.status = JobStatusSucceeded
	j.result = result
	j.filename = filename
	j.progress = 100
	j.touch()
}

func (j *GenerationJob) MarkFailed(kind valueobjects.FailureKind, message string) {
	j.status = JobStatusFailed
	j.failureKind = kind
	j.failureMessage = message
	j.touch()
}

// Clone returns a snapshot safe to hand out across goroutines.
func (j *GenerationJob) Clone() *GenerationJob {
	copied := *j
	return &copied
}

func (j *GenerationJob) touch() {
	j.updatedAt = time.Now()
}
