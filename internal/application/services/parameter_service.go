package services

import (
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/alexdo83/Generate-videos-with-Veo-3/internal/domain/valueobjects"
)

const DefaultVideoModel = "veo-3.0-generate-001"

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]+`)

type ParameterService struct{}

func NewParameterService() *ParameterService {
	return &ParameterService{}
}

// ParseGenerationParameters reads the form fields with defaults applied;
// enum and bounds errors come from the value object constructor.
func (s *ParameterService) ParseGenerationParameters(r *http.Request) (*valueobjects.GenerationParameters, error) {
	aspectRatio := s.getString(r, "aspectRatio", string(valueobjects.AspectRatio16x9))
	resolution := s.getString(r, "resolution", string(valueobjects.Resolution720p))
	duration := s.getInt(r, "durationSeconds", 8)

	return valueobjects.NewGenerationParameters(
		valueobjects.AspectRatio(aspectRatio),
		valueobjects.Resolution(resolution),
		duration,
	)
}

func (s *ParameterService) VideoModel(r *http.Request) string {
	return s.getString(r, "model", DefaultVideoModel)
}

// SuggestedFilename derives a download name from the first five words of the
// prompt (non-alphanumerics stripped), the aspect-ratio token and a timestamp.
func (s *ParameterService) SuggestedFilename(prompt string, ratio valueobjects.AspectRatio, now time.Time) string {
	words := strings.Fields(prompt)
	if len(words) > 5 {
		words = words[:5]
	}

	var kept []string
	for _, word := range words {
		cleaned := nonAlphanumeric.ReplaceAllString(word, "")
		if cleaned != "" {
			kept = append(kept, strings.ToLower(cleaned))
		}
	}

	stem := strings.Join(kept, "_")
	if stem == "" {
		stem = "video"
	}

	return fmt.Sprintf("%s_%s_%s.mp4", stem, ratio.Token(), now.Format("20060102-150405"))
}

func (s *ParameterService) getInt(r *http.Request, key string, defaultValue int) int {
	value := r.FormValue(key)
	if value == "" {
		return defaultValue
	}

	intVal, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return intVal
}

func (s *ParameterService) getString(r *http.Request, key, defaultValue string) string {
	value := r.FormValue(key)
	if value == "" {
		return defaultValue
	}
	return value
}
