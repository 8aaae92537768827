package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/alexdo83/Generate-videos-with-Veo-3/internal/domain/entities"
	"github.com/alexdo83/Generate-videos-with-Veo-3/internal/domain/valueobjects"
)

type mockTextAIService struct {
	result *entities.AnalysisResult
	err    error

	calls      int
	lastPrompt string
	lastModel  string
}

func (m *mockTextAIService) GenerateText(ctx context.Context, apiKey string, request *entities.AnalysisRequest) (*entities.AnalysisResult, error) {
	m.calls++
	m.lastPrompt = request.Prompt()
	m.lastModel = request.Model()
	return m.result, m.err
}

func (m *mockTextAIService) Close() error { return nil }

func TestAnalysisDomainService_ProcessAnalysis(t *testing.T) {
	newRequest := func(t *testing.T, model string) *entities.AnalysisRequest {
		t.Helper()
		request, err := entities.NewAnalysisRequest("a cat playing piano", model)
		if err != nil {
			t.Fatalf("Failed to create request: %v", err)
		}
		return request
	}

	t.Run("wraps the prompt in the critique template", func(t *testing.T) {
		mockText := &mockTextAIService{
			result: entities.NewAnalysisResult("**Strengths**: clear subject."),
		}
		service := NewAnalysisDomainService(mockText)

		result, err := service.ProcessAnalysis(context.Background(), newRequest(t, ""), "key")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if result.Text() == "" {
			t.Error("expected analysis text")
		}
		if !strings.Contains(mockText.lastPrompt, "a cat playing piano") {
			t.Error("wrapped prompt should contain the user prompt")
		}
		if mockText.lastPrompt == "a cat playing piano" {
			t.Error("prompt should be wrapped in the instructional template")
		}
		if mockText.lastModel != DefaultAnalysisModel {
			t.Errorf("model = %s, want default %s", mockText.lastModel, DefaultAnalysisModel)
		}
	})

	t.Run("explicit model is kept", func(t *testing.T) {
		mockText := &mockTextAIService{result: entities.NewAnalysisResult("ok")}
		service := NewAnalysisDomainService(mockText)

		if _, err := service.ProcessAnalysis(context.Background(), newRequest(t, "gemini-2.5-pro"), "key"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if mockText.lastModel != "gemini-2.5-pro" {
			t.Errorf("model = %s, want gemini-2.5-pro", mockText.lastModel)
		}
	})

	t.Run("missing credential short-circuits", func(t *testing.T) {
		mockText := &mockTextAIService{}
		service := NewAnalysisDomainService(mockText)

		_, err := service.ProcessAnalysis(context.Background(), newRequest(t, ""), "")

		var failure *valueobjects.Failure
		if !errors.As(err, &failure) || failure.Kind() != valueobjects.FailureMissingCredential {
			t.Errorf("expected MissingCredential failure, got %v", err)
		}
		if mockText.calls != 0 {
			t.Errorf("GenerateText was called %d times, want 0", mockText.calls)
		}
	})

	t.Run("remote error is classified", func(t *testing.T) {
		mockText := &mockTextAIService{
			err: errors.New("API key not valid. Please pass a valid API key."),
		}
		service := NewAnalysisDomainService(mockText)

		_, err := service.ProcessAnalysis(context.Background(), newRequest(t, ""), "key")

		var failure *valueobjects.Failure
		if !errors.As(err, &failure) || failure.Kind() != valueobjects.FailureInvalidCredential {
			t.Errorf("expected InvalidCredential failure, got %v", err)
		}
	})
}
