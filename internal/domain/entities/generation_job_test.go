package entities

import (
	"testing"

	"github.com/alexdo83/Generate-videos-with-Veo-3/internal/domain/valueobjects"
)

func TestGenerationJob_Transitions(t *testing.T) {
	job := NewGenerationJob("req-1")

	if job.Status() != JobStatusPending {
		t.Errorf("new job status = %s, want %s", job.Status(), JobStatusPending)
	}
	if job.IsTerminal() {
		t.Error("pending job should not be terminal")
	}

	job.MarkRunning()
	if job.Status() != JobStatusRunning {
		t.Errorf("status = %s, want %s", job.Status(), JobStatusRunning)
	}

	result := NewGenerationResult("req-1", valueobjects.NewVideoData([]byte("video-bytes"), "video/mp4"))
	job.MarkSucceeded(result, "a_cat_16x9_20260101-000000.mp4")

	if job.Status() != JobStatusSucceeded {
		t.Errorf("status = %s, want %s", job.Status(), JobStatusSucceeded)
	}
	if !job.IsTerminal() {
		t.Error("succeeded job should be terminal")
	}
	if job.Progress() != 100 {
		t.Errorf("progress after success = %d, want 100", job.Progress())
	}
	if job.Filename() == "" {
		t.Error("expected filename to be recorded")
	}
}

func TestGenerationJob_MarkFailed(t *testing.T) {
	job := NewGenerationJob("req-1")
	job.MarkRunning()
	job.MarkFailed(valueobjects.FailureTimeout, "Video generation timed out.")

	if job.Status() != JobStatusFailed {
		t.Errorf("status = %s, want %s", job.Status(), JobStatusFailed)
	}
	if job.FailureKind() != valueobjects.FailureTimeout {
		t.Errorf("failure kind = %s, want %s", job.FailureKind(), valueobjects.FailureTimeout)
	}
	if job.FailureMessage() == "" {
		t.Error("expected failure message")
	}
}

func TestGenerationJob_SetProgress(t *testing.T) {
	job := NewGenerationJob("req-1")

	job.SetProgress(15)
	if job.Progress() != 15 {
		t.Errorf("progress = %d, want 15", job.Progress())
	}

	// Decreases are ignored to keep the stream monotonic.
	job.SetProgress(10)
	if job.Progress() != 15 {
		t.Errorf("progress after decrease = %d, want 15", job.Progress())
	}

	job.SetProgress(250)
	if job.Progress() != 100 {
		t.Errorf("progress should be clamped to 100, got %d", job.Progress())
	}
}

func TestGenerationJob_Clone(t *testing.T) {
	job := NewGenerationJob("req-1")
	job.SetProgress(40)

	snapshot := job.Clone()
	job.SetProgress(80)

	if snapshot.Progress() != 40 {
		t.Errorf("snapshot progress changed to %d, want 40", snapshot.Progress())
	}
}
