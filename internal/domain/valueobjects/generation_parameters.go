package valueobjects

import (
	"fmt"
	"strings"
)

type AspectRatio string
type Resolution string

const (
	AspectRatio16x9 AspectRatio = "16:9"
	AspectRatio9x16 AspectRatio = "9:16"
)

const (
	Resolution720p  Resolution = "720p"
	Resolution1080p Resolution = "1080p"
)

// GenerationParameters constrains the output video's dimensions and length.
// Values are passed through to the API uninterpreted; only membership in the
// supported enums and duration positivity are checked locally.
type GenerationParameters struct {
	aspectRatio     AspectRatio
	resolution      Resolution
	durationSeconds int
}

func NewGenerationParameters(
	aspectRatio AspectRatio,
	resolution Resolution,
	durationSeconds int,
) (*GenerationParameters, error) {
	switch aspectRatio {
	case AspectRatio16x9, AspectRatio9x16:
	default:
		return nil, fmt.Errorf("unsupported aspect ratio: %s", aspectRatio)
	}

	switch resolution {
	case Resolution720p, Resolution1080p:
	default:
		return nil, fmt.Errorf("unsupported resolution: %s", resolution)
	}

	if durationSeconds <= 0 {
		return nil, fmt.Errorf("durationSeconds must be positive, got %d", durationSeconds)
	}

	return &GenerationParameters{
		aspectRatio:     aspectRatio,
		resolution:      resolution,
		durationSeconds: durationSeconds,
	}, nil
}

func DefaultGenerationParameters() *GenerationParameters {
	params, _ := NewGenerationParameters(AspectRatio16x9, Resolution720p, 8)
	return params
}

func (p *GenerationParameters) AspectRatio() AspectRatio {
	return p.aspectRatio
}

func (p *GenerationParameters) Resolution() Resolution {
	return p.resolution
}

func (p *GenerationParameters) DurationSeconds() int {
	return p.durationSeconds
}

// Token returns the ratio in a filename-safe form, e.g. "16:9" -> "16x9".
func (a AspectRatio) Token() string {
	return strings.ReplaceAll(string(a), ":", "x")
}
