package external

import (
	"context"
	"fmt"
	"log/slog"

	genai_std "google.golang.org/genai"

	"github.com/alexdo83/Generate-videos-with-Veo-3/internal/domain/entities"
	"github.com/alexdo83/Generate-videos-with-Veo-3/internal/domain/repositories"
)

type GeminiAIService struct {
	clientPool repositories.GenAIClientPool
}

func NewGeminiAIService(clientPool repositories.GenAIClientPool) repositories.TextAIService {
	return &GeminiAIService{
		clientPool: clientPool,
	}
}

func (s *GeminiAIService) GenerateText(
	ctx context.Context,
	apiKey string,
	request *entities.AnalysisRequest,
) (*entities.AnalysisResult, error) {
	client, err := s.clientPool.GetGenAIClient(ctx, apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get GenAI client: %w", err)
	}

	resp, err := client.Models.GenerateContent(ctx,
		request.Model(),
		genai_std.Text(request.Prompt()),
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	respText := resp.Text()

	slog.Info("GenerateText", "model", request.Model(), "responseLength", len(respText))

	return entities.NewAnalysisResult(respText), nil
}

func (s *GeminiAIService) Close() error {
	return s.clientPool.Close()
}
