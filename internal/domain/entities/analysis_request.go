package entities

import "fmt"

type AnalysisRequest struct {
	prompt string

	// Text model the critique is requested from.
	model string
}

func NewAnalysisRequest(prompt string, model string) (*AnalysisRequest, error) {
	if prompt == "" {
		return nil, fmt.Errorf("prompt is required")
	}

	return &AnalysisRequest{
		prompt: prompt,
		model:  model,
	}, nil
}

func (r *AnalysisRequest) Prompt() string {
	return r.prompt
}

func (r *AnalysisRequest) Model() string {
	return r.model
}
