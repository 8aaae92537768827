package services

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/alexdo83/Generate-videos-with-Veo-3/internal/domain/valueobjects"
)

func TestParameterService_SuggestedFilename(t *testing.T) {
	service := NewParameterService()
	now := time.Date(2026, 8, 24, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		name   string
		prompt string
		ratio  valueobjects.AspectRatio
		want   string
	}{
		{
			name:   "first five words",
			prompt: "a cat playing piano on the moon",
			ratio:  valueobjects.AspectRatio16x9,
			want:   "a_cat_playing_piano_on_16x9_20260824-150405.mp4",
		},
		{
			name:   "punctuation stripped",
			prompt: "hello, world! (wide shot)",
			ratio:  valueobjects.AspectRatio9x16,
			want:   "hello_world_wide_shot_9x16_20260824-150405.mp4",
		},
		{
			name:   "short prompt",
			prompt: "sunset",
			ratio:  valueobjects.AspectRatio16x9,
			want:   "sunset_16x9_20260824-150405.mp4",
		},
		{
			name:   "symbols only falls back",
			prompt: "!!! ???",
			ratio:  valueobjects.AspectRatio16x9,
			want:   "video_16x9_20260824-150405.mp4",
		},
		{
			name:   "uppercase lowered",
			prompt: "A Cat In SPACE",
			ratio:  valueobjects.AspectRatio16x9,
			want:   "a_cat_in_space_16x9_20260824-150405.mp4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.SuggestedFilename(tt.prompt, tt.ratio, now)
			if got != tt.want {
				t.Errorf("SuggestedFilename() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParameterService_ParseGenerationParameters(t *testing.T) {
	service := NewParameterService()

	t.Run("defaults applied", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/api/generate", strings.NewReader(""))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		params, err := service.ParseGenerationParameters(r)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if params.AspectRatio() != valueobjects.AspectRatio16x9 {
			t.Errorf("default ratio = %s, want 16:9", params.AspectRatio())
		}
		if params.Resolution() != valueobjects.Resolution720p {
			t.Errorf("default resolution = %s, want 720p", params.Resolution())
		}
		if params.DurationSeconds() != 8 {
			t.Errorf("default duration = %d, want 8", params.DurationSeconds())
		}
	})

	t.Run("explicit values", func(t *testing.T) {
		form := url.Values{}
		form.Set("aspectRatio", "9:16")
		form.Set("resolution", "1080p")
		form.Set("durationSeconds", "5")

		r := httptest.NewRequest("POST", "/api/generate", strings.NewReader(form.Encode()))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		params, err := service.ParseGenerationParameters(r)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if params.AspectRatio() != valueobjects.AspectRatio9x16 {
			t.Errorf("ratio = %s, want 9:16", params.AspectRatio())
		}
		if params.Resolution() != valueobjects.Resolution1080p {
			t.Errorf("resolution = %s, want 1080p", params.Resolution())
		}
		if params.DurationSeconds() != 5 {
			t.Errorf("duration = %d, want 5", params.DurationSeconds())
		}
	})

	t.Run("unsupported ratio is rejected", func(t *testing.T) {
		form := url.Values{}
		form.Set("aspectRatio", "4:3")

		r := httptest.NewRequest("POST", "/api/generate", strings.NewReader(form.Encode()))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		if _, err := service.ParseGenerationParameters(r); err == nil {
			t.Error("expected error for unsupported ratio")
		}
	})
}
