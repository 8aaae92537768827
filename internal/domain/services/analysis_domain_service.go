package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexdo83/Generate-videos-with-Veo-3/internal/domain/entities"
	"github.com/alexdo83/Generate-videos-with-Veo-3/internal/domain/repositories"
	"github.com/alexdo83/Generate-videos-with-Veo-3/internal/domain/valueobjects"
)

const DefaultAnalysisModel = "gemini-2.5-flash"

// AnalysisDomainService sends the user's prompt to a text model for critique.
// Single round trip, no polling, no retry.
type AnalysisDomainService struct {
	textAIService repositories.TextAIService
}

func NewAnalysisDomainService(textAIService repositories.TextAIService) *AnalysisDomainService {
	return &AnalysisDomainService{
		textAIService: textAIService,
	}
}

func (s *AnalysisDomainService) ProcessAnalysis(
	ctx context.Context,
	request *entities.AnalysisRequest,
	apiKey string,
) (*entities.AnalysisResult, error) {
	if request == nil {
		return nil, fmt.Errorf("request is required")
	}

	if apiKey == "" {
		return nil, valueobjects.NewFailure(valueobjects.FailureMissingCredential, "no API key configured")
	}

	model := request.Model()
	if model == "" {
		model = DefaultAnalysisModel
	}

	wrapped, err := entities.NewAnalysisRequest(buildCritiquePrompt(request.Prompt()), model)
	if err != nil {
		return nil, fmt.Errorf("failed to build critique request: %w", err)
	}

	result, err := s.textAIService.GenerateText(ctx, apiKey, wrapped)
	if err != nil {
		return nil, valueobjects.ClassifyError(err)
	}

	return result, nil
}

func buildCritiquePrompt(inputPrompt string) string {
	var sb strings.Builder

	sb.WriteString("You are an expert prompt engineer for text-to-video generation models. Critique the following video generation prompt.\n")
	sb.WriteString("Respond in short Markdown with exactly these sections:\n")
	sb.WriteString("1. **Strengths**: what the prompt already does well.\n")
	sb.WriteString("2. **Weaknesses**: missing visual detail, ambiguity, or elements video models handle poorly.\n")
	sb.WriteString("3. **Improved prompt**: a single rewritten prompt incorporating your suggestions.\n")
	sb.WriteString("Do not add any other sections, preamble, or commentary.\n")

	sb.WriteString("Prompt to critique:\n")
	sb.WriteString(inputPrompt)

	return sb.String()
}
