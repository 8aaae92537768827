package external

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	genai_std "google.golang.org/genai"

	"github.com/alexdo83/Generate-videos-with-Veo-3/internal/domain/entities"
	infraservices "github.com/alexdo83/Generate-videos-with-Veo-3/internal/infrastructure/services"
)

func TestVeoAIService_FetchVideo(t *testing.T) {
	t.Run("appends the key and returns the bytes", func(t *testing.T) {
		var gotKey string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotKey = r.URL.Query().Get("key")
			w.Write([]byte("mp4-bytes"))
		}))
		defer server.Close()

		service := NewVeoAIService(infraservices.NewGenAIClientPool())
		video := entities.NewGeneratedVideo(server.URL+"/v1beta/files/abc:download?alt=media", "video/mp4")

		data, err := service.FetchVideo(context.Background(), "secret-key", video)
		if err != nil {
			t.Fatalf("FetchVideo() error = %v", err)
		}

		if gotKey != "secret-key" {
			t.Errorf("key query parameter = %q, want secret-key", gotKey)
		}
		if !bytes.Equal(data.Data(), []byte("mp4-bytes")) {
			t.Errorf("unexpected video bytes: %q", data.Data())
		}
		if data.MimeType() != "video/mp4" {
			t.Errorf("mime type = %s, want video/mp4", data.MimeType())
		}
	})

	t.Run("non-200 response is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "permission denied", http.StatusForbidden)
		}))
		defer server.Close()

		service := NewVeoAIService(infraservices.NewGenAIClientPool())
		video := entities.NewGeneratedVideo(server.URL+"/v1beta/files/abc", "video/mp4")

		if _, err := service.FetchVideo(context.Background(), "secret-key", video); err == nil {
			t.Error("expected error for 403 response")
		}
	})

	t.Run("invalid uri is an error", func(t *testing.T) {
		service := NewVeoAIService(infraservices.NewGenAIClientPool())
		video := entities.NewGeneratedVideo("://bad-uri", "video/mp4")

		if _, err := service.FetchVideo(context.Background(), "secret-key", video); err == nil {
			t.Error("expected error for invalid URI")
		}
	})
}

func TestToGenerationOperation(t *testing.T) {
	t.Run("pending operation", func(t *testing.T) {
		op := toGenerationOperation(&genai_std.GenerateVideosOperation{Done: false})

		if op.Done() {
			t.Error("expected pending operation")
		}
		if op.HasVideos() {
			t.Error("expected no videos")
		}
	})

	t.Run("completed operation maps video descriptors", func(t *testing.T) {
		raw := &genai_std.GenerateVideosOperation{
			Done: true,
			Response: &genai_std.GenerateVideosResponse{
				GeneratedVideos: []*genai_std.GeneratedVideo{
					{Video: &genai_std.Video{URI: "https://files.example/v0", MIMEType: "video/mp4"}},
					{Video: nil},
					{Video: &genai_std.Video{URI: "https://files.example/v1", MIMEType: "video/mp4"}},
				},
			},
		}

		op := toGenerationOperation(raw)

		if !op.Done() {
			t.Error("expected done operation")
		}
		if len(op.Videos()) != 2 {
			t.Fatalf("videos = %d, want 2 (nil entries skipped)", len(op.Videos()))
		}
		if op.Videos()[0].URI() != "https://files.example/v0" {
			t.Errorf("first video URI = %s", op.Videos()[0].URI())
		}
		if op.Handle() != raw {
			t.Error("expected the raw operation as the handle")
		}
	})
}
