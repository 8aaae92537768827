package usecases

import (
	"context"
	"log/slog"

	"github.com/alexdo83/Generate-videos-with-Veo-3/internal/domain/entities"
	"github.com/alexdo83/Generate-videos-with-Veo-3/internal/domain/repositories"
	"github.com/alexdo83/Generate-videos-with-Veo-3/internal/domain/services"
)

type AnalyzePromptUseCase struct {
	analysisService *services.AnalysisDomainService
	credentials     repositories.CredentialStore
}

func NewAnalyzePromptUseCase(
	analysisService *services.AnalysisDomainService,
	credentials repositories.CredentialStore,
) *AnalyzePromptUseCase {
	return &AnalyzePromptUseCase{
		analysisService: analysisService,
		credentials:     credentials,
	}
}

type AnalyzeInput struct {
	Prompt string
	Model  string
}

type AnalyzeOutput struct {
	Analysis string
}

func (uc *AnalyzePromptUseCase) Execute(ctx context.Context, input AnalyzeInput) (*AnalyzeOutput, error) {
	request, err := entities.NewAnalysisRequest(input.Prompt, input.Model)
	if err != nil {
		return nil, err
	}

	apiKey, err := uc.credentials.Load(ctx)
	if err != nil {
		slog.Error("Credential lookup failed", "error", err)
		apiKey = ""
	}

	result, err := uc.analysisService.ProcessAnalysis(ctx, request, apiKey)
	if err != nil {
		return nil, err
	}

	slog.Info("Successfully analyzed prompt", "responseLength", len(result.Text()))

	return &AnalyzeOutput{Analysis: result.Text()}, nil
}
