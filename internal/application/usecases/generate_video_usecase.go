package usecases

import (
	"context"
	"errors"
	"log/slog"
	"time"

	appservices "github.com/alexdo83/Generate-videos-with-Veo-3/internal/application/services"
	"github.com/alexdo83/Generate-videos-with-Veo-3/internal/domain/entities"
	"github.com/alexdo83/Generate-videos-with-Veo-3/internal/domain/repositories"
	"github.com/alexdo83/Generate-videos-with-Veo-3/internal/domain/services"
	"github.com/alexdo83/Generate-videos-with-Veo-3/internal/domain/valueobjects"
)

type GenerateVideoUseCase struct {
	generationService *services.GenerationDomainService
	credentials       repositories.CredentialStore
	jobs              repositories.JobRepository
	notifier          repositories.ProgressNotifier
	parameterService  *appservices.ParameterService
}

func NewGenerateVideoUseCase(
	generationService *services.GenerationDomainService,
	credentials repositories.CredentialStore,
	jobs repositories.JobRepository,
	notifier repositories.ProgressNotifier,
	parameterService *appservices.ParameterService,
) *GenerateVideoUseCase {
	return &GenerateVideoUseCase{
		generationService: generationService,
		credentials:       credentials,
		jobs:              jobs,
		notifier:          notifier,
		parameterService:  parameterService,
	}
}

type GenerateInput struct {
	Prompt string

	// Optional reference image.
	ImageData     []byte
	ImageMimeType string

	Parameters *valueobjects.GenerationParameters
	Model      string
}

type GenerateOutput struct {
	JobID entities.JobID
}

// Execute validates the input, registers a job and runs the generation
// lifecycle in the background. The job carries all further state; at most
// one poll loop runs per submitted request.
func (uc *GenerateVideoUseCase) Execute(ctx context.Context, input GenerateInput) (*GenerateOutput, error) {
	var referenceImage *valueobjects.ImageData
	if len(input.ImageData) > 0 {
		var err error
		referenceImage, err = valueobjects.NewImageData(input.ImageData, input.ImageMimeType)
		if err != nil {
			return nil, err
		}
	}

	request, err := entities.NewGenerationRequest(input.Prompt, referenceImage, input.Parameters, input.Model)
	if err != nil {
		return nil, err
	}

	job := entities.NewGenerationJob(request.ID())
	if err := uc.jobs.Save(ctx, job); err != nil {
		return nil, err
	}

	slog.Info("Execute Video Generation",
		"jobID", job.ID(),
		"model", request.Model(),
		"hasImage", request.HasReferenceImage(),
		"aspectRatio", request.Parameters().AspectRatio(),
		"durationSeconds", request.Parameters().DurationSeconds(),
	)

	// The request outlives the HTTP call that submitted it.
	go uc.run(context.WithoutCancel(ctx), job.ID(), request)

	return &GenerateOutput{JobID: job.ID()}, nil
}

func (uc *GenerateVideoUseCase) run(ctx context.Context, jobID entities.JobID, request *entities.GenerationRequest) {
	apiKey, err := uc.credentials.Load(ctx)
	if err != nil {
		slog.Error("Credential lookup failed", "jobID", jobID, "error", err)
		apiKey = ""
	}

	if updateErr := uc.jobs.Update(ctx, jobID, func(job *entities.GenerationJob) {
		job.MarkRunning()
	}); updateErr != nil {
		slog.Error("Failed to mark job running", "jobID", jobID, "error", updateErr)
		return
	}

	onProgress := func(percent int) {
		_ = uc.jobs.Update(ctx, jobID, func(job *entities.GenerationJob) {
			job.SetProgress(percent)
		})
		if uc.notifier != nil {
			uc.notifier.NotifyProgress(jobID, percent)
		}
	}

	result, err := uc.generationService.ProcessGeneration(ctx, request, apiKey, onProgress)
	if err != nil {
		uc.failJob(ctx, jobID, err)
		return
	}

	filename := uc.parameterService.SuggestedFilename(request.Prompt(), request.Parameters().AspectRatio(), time.Now())

	_ = uc.jobs.Update(ctx, jobID, func(job *entities.GenerationJob) {
		job.MarkSucceeded(result, filename)
	})
	if uc.notifier != nil {
		uc.notifier.NotifyProgress(jobID, 100)
		uc.notifier.NotifyDone(jobID, entities.JobStatusSucceeded)
	}

	slog.Info("Successfully generated video", "jobID", jobID, "bytes", result.Video().Size(), "filename", filename)
}

func (uc *GenerateVideoUseCase) failJob(ctx context.Context, jobID entities.JobID, err error) {
	var failure *valueobjects.Failure
	if !errors.As(err, &failure) {
		failure = valueobjects.ClassifyError(err)
	}

	slog.Error("Video generation failed", "jobID", jobID, "kind", failure.Kind(), "error", err)

	_ = uc.jobs.Update(ctx, jobID, func(job *entities.GenerationJob) {
		job.MarkFailed(failure.Kind(), failure.UserMessage())
	})
	if uc.notifier != nil {
		uc.notifier.NotifyDone(jobID, entities.JobStatusFailed)
	}
}
