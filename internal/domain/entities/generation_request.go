package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexdo83/Generate-videos-with-Veo-3/internal/domain/valueobjects"
)

type GenerationRequestID string

// GenerationRequest is the immutable input of one video generation run.
// videoCount is fixed at 1; the API supports more but the product only ever
// renders a single result.
type GenerationRequest struct {
	id GenerationRequestID

	prompt string

	// Optional initial image the video starts from.
	referenceImage *valueobjects.ImageData

	parameters *valueobjects.GenerationParameters

	model      string
	videoCount int
	createdAt  time.Time
}

func NewGenerationRequest(
	prompt string,
	referenceImage *valueobjects.ImageData,
	parameters *valueobjects.GenerationParameters,
	model string,
) (*GenerationRequest, error) {
	if prompt == "" {
		return nil, fmt.Errorf("prompt is required")
	}

	if model == "" {
		return nil, fmt.Errorf("model is required")
	}

	if parameters == nil {
		parameters = valueobjects.DefaultGenerationParameters()
	}

	return &GenerationRequest{
		id:             GenerationRequestID(uuid.NewString()),
		prompt:         prompt,
		referenceImage: referenceImage,
		parameters:     parameters,
		model:          model,
		videoCount:     1,
		createdAt:      time.Now(),
	}, nil
}

func (r *GenerationRequest) ID() GenerationRequestID {
	return r.id
}

func (r *GenerationRequest) Prompt() string {
	return r.prompt
}

func (r *GenerationRequest) ReferenceImage() *valueobjects.ImageData {
	return r.referenceImage
}

func (r *GenerationRequest) HasReferenceImage() bool {
	return r.referenceImage != nil
}

func (r *GenerationRequest) Parameters() *valueobjects.GenerationParameters {
	return r.parameters
}

func (r *GenerationRequest) Model() string {
	return r.model
}

func (r *GenerationRequest) VideoCount() int {
	return r.videoCount
}

func (r *GenerationRequest) CreatedAt() time.Time {
	return r.createdAt
}
