package repositories

import (
	"context"

	"github.com/alexdo83/Generate-videos-with-Veo-3/internal/domain/entities"
)

// JobRepository tracks generation jobs. FindByID returns a snapshot; Update
// applies the mutation under the repository's lock.
type JobRepository interface {
	Save(ctx context.Context, job *entities.GenerationJob) error

	FindByID(ctx context.Context, id entities.JobID) (*entities.GenerationJob, error)

	Update(ctx context.Context, id entities.JobID, mutate func(job *entities.GenerationJob)) error
}

// ProgressNotifier pushes job progress to whatever renders it. Implementations
// must not block the generation goroutine.
type ProgressNotifier interface {
	NotifyProgress(jobID entities.JobID, percent int)

	NotifyDone(jobID entities.JobID, status entities.JobStatus)
}
