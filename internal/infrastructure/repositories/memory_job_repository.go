package repositories

import (
	"context"
	"fmt"
	"sync"

	"github.com/alexdo83/Generate-videos-with-Veo-3/internal/domain/entities"
	domainrepos "github.com/alexdo83/Generate-videos-with-Veo-3/internal/domain/repositories"
)

type MemoryJobRepository struct {
	jobs map[entities.JobID]*entities.GenerationJob
	mu   sync.RWMutex
}

func NewMemoryJobRepository() domainrepos.JobRepository {
	return &MemoryJobRepository{
		jobs: make(map[entities.JobID]*entities.GenerationJob),
	}
}

func (r *MemoryJobRepository) Save(ctx context.Context, job *entities.GenerationJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.jobs[job.ID()] = job
	return nil
}

func (r *MemoryJobRepository) FindByID(ctx context.Context, id entities.JobID) (*entities.GenerationJob, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	job, exists := r.jobs[id]
	if !exists {
		return nil, fmt.Errorf("job not found: %s", id)
	}

	return job.Clone(), nil
}

func (r *MemoryJobRepository) Update(ctx context.Context, id entities.JobID, mutate func(job *entities.GenerationJob)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, exists := r.jobs[id]
	if !exists {
		return fmt.Errorf("job not found: %s", id)
	}

	mutate(job)
	return nil
}
