package repositories

import (
	"context"

	"github.com/alexdo83/Generate-videos-with-Veo-3/internal/domain/entities"
	"github.com/alexdo83/Generate-videos-with-Veo-3/internal/domain/valueobjects"
)

// Video generation service. Submission, status polling and content fetch are
// separate calls so the domain service owns the poll loop.
type VideoAIService interface {
	SubmitGeneration(ctx context.Context, apiKey string, request *entities.GenerationRequest) (*entities.GenerationOperation, error)

	PollOperation(ctx context.Context, apiKey string, operation *entities.GenerationOperation) (*entities.GenerationOperation, error)

	FetchVideo(ctx context.Context, apiKey string, video *entities.GeneratedVideo) (*valueobjects.VideoData, error)

	Close() error
}

// Text generation service used for prompt critique.
type TextAIService interface {
	GenerateText(ctx context.Context, apiKey string, request *entities.AnalysisRequest) (*entities.AnalysisResult, error)

	Close() error
}
