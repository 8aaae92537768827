package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/alexdo83/Generate-videos-with-Veo-3/internal/domain/entities"
	"github.com/alexdo83/Generate-videos-with-Veo-3/internal/domain/repositories"
	"github.com/alexdo83/Generate-videos-with-Veo-3/internal/domain/valueobjects"
)

// ProgressFunc receives the progress percentage after each status poll.
type ProgressFunc func(percent int)

// PollPolicy configures the fixed-interval poll loop: how long to wait
// between status fetches and how many fetches to attempt before giving up.
// Sleep is injectable so tests run without a real clock.
type PollPolicy struct {
	Interval time.Duration
	MaxPolls int
	Sleep    func(ctx context.Context, d time.Duration) error
}

func DefaultPollPolicy() PollPolicy {
	return PollPolicy{
		Interval: 10 * time.Second,
		MaxPolls: 20,
	}
}

// ProgressAt maps poll number i to min(100, round(i/MaxPolls*100)).
func (p PollPolicy) ProgressAt(poll int) int {
	if p.MaxPolls <= 0 {
		return 100
	}
	percent := int(math.Round(float64(poll) / float64(p.MaxPolls) * 100))
	if percent > 100 {
		percent = 100
	}
	return percent
}

func (p PollPolicy) wait(ctx context.Context) error {
	if p.Sleep != nil {
		return p.Sleep(ctx, p.Interval)
	}
	return sleepContext(ctx, p.Interval)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// GenerationDomainService owns the request/poll/result lifecycle: submit the
// payload, poll the operation at a fixed interval until done or the ceiling
// is hit, then fetch the first generated video's bytes. It mutates no shared
// state; progress and results flow out through the callback and return value.
type GenerationDomainService struct {
	videoAIService repositories.VideoAIService
	policy         PollPolicy
}

func NewGenerationDomainService(videoAIService repositories.VideoAIService, policy PollPolicy) *GenerationDomainService {
	return &GenerationDomainService{
		videoAIService: videoAIService,
		policy:         policy,
	}
}

func (s *GenerationDomainService) ProcessGeneration(
	ctx context.Context,
	request *entities.GenerationRequest,
	apiKey string,
	onProgress ProgressFunc,
) (*entities.GenerationResult, error) {
	if request == nil {
		return nil, fmt.Errorf("request is required")
	}

	if strings.TrimSpace(request.Prompt()) == "" {
		return nil, fmt.Errorf("prompt is required")
	}

	// Short-circuit before any network call.
	if apiKey == "" {
		return nil, valueobjects.NewFailure(valueobjects.FailureMissingCredential, "no API key configured")
	}

	operation, err := s.videoAIService.SubmitGeneration(ctx, apiKey, request)
	if err != nil {
		return nil, valueobjects.ClassifyError(err)
	}

	polls := 0
	for !operation.Done() {
		if polls >= s.policy.MaxPolls {
			return nil, valueobjects.NewFailure(
				valueobjects.FailureTimeout,
				fmt.Sprintf("operation not done after %d polls", s.policy.MaxPolls),
			)
		}

		if err := s.policy.wait(ctx); err != nil {
			return nil, valueobjects.WrapFailure(valueobjects.FailurePollError, err)
		}

		polls++
		slog.Info("Waiting for video generation to complete", "poll", polls, "maxPolls", s.policy.MaxPolls)

		operation, err = s.videoAIService.PollOperation(ctx, apiKey, operation)
		if err != nil {
			return nil, s.classifyPollError(err)
		}

		if onProgress != nil {
			onProgress(s.policy.ProgressAt(polls))
		}
	}

	if !operation.HasVideos() {
		return nil, valueobjects.NewFailure(valueobjects.FailureNoOutput, "generation finished with no videos")
	}

	// videoCount is always 1, so the first descriptor is the result.
	video := operation.Videos()[0]

	videoData, err := s.videoAIService.FetchVideo(ctx, apiKey, video)
	if err != nil {
		return nil, valueobjects.ClassifyError(err)
	}

	return entities.NewGenerationResult(request.ID(), videoData), nil
}

// Credential and access errors keep their classification even when they
// surface mid-poll; only otherwise-unclassified transport errors become
// PollError.
func (s *GenerationDomainService) classifyPollError(err error) *valueobjects.Failure {
	f := valueobjects.ClassifyError(err)
	if f.Kind() == valueobjects.FailureUnclassified {
		return valueobjects.WrapFailure(valueobjects.FailurePollError, err)
	}
	return f
}
