package external

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	genai_std "google.golang.org/genai"

	"github.com/alexdo83/Generate-videos-with-Veo-3/internal/domain/entities"
	"github.com/alexdo83/Generate-videos-with-Veo-3/internal/domain/repositories"
	"github.com/alexdo83/Generate-videos-with-Veo-3/internal/domain/valueobjects"
)

type VeoAIService struct {
	clientPool repositories.GenAIClientPool
	httpClient *http.Client
}

func NewVeoAIService(clientPool repositories.GenAIClientPool) repositories.VideoAIService {
	return &VeoAIService{
		clientPool: clientPool,
		httpClient: &http.Client{Timeout: 2 * time.Minute},
	}
}

func (s *VeoAIService) SubmitGeneration(
	ctx context.Context,
	apiKey string,
	request *entities.GenerationRequest,
) (*entities.GenerationOperation, error) {
	client, err := s.clientPool.GetGenAIClient(ctx, apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get GenAI client: %w", err)
	}

	// The image field is omitted entirely when no reference image was given.
	var image *genai_std.Image
	if request.HasReferenceImage() {
		image = &genai_std.Image{
			ImageBytes: request.ReferenceImage().Data(),
			MIMEType:   request.ReferenceImage().MimeType(),
		}
	}

	params := request.Parameters()
	config := &genai_std.GenerateVideosConfig{
		NumberOfVideos:  int32(request.VideoCount()),
		AspectRatio:     string(params.AspectRatio()),
		Resolution:      string(params.Resolution()),
		DurationSeconds: genai_std.Ptr(int32(params.DurationSeconds())),
	}

	operation, err := client.Models.GenerateVideos(
		ctx,
		request.Model(),
		request.Prompt(),
		image,
		config,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to submit video generation: %w", err)
	}

	return toGenerationOperation(operation), nil
}

func (s *VeoAIService) PollOperation(
	ctx context.Context,
	apiKey string,
	operation *entities.GenerationOperation,
) (*entities.GenerationOperation, error) {
	client, err := s.clientPool.GetGenAIClient(ctx, apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get GenAI client: %w", err)
	}

	handle, ok := operation.Handle().(*genai_std.GenerateVideosOperation)
	if !ok {
		return nil, fmt.Errorf("unexpected operation handle type %T", operation.Handle())
	}

	polled, err := client.Operations.GetVideosOperation(ctx, handle, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to poll operation: %w", err)
	}

	return toGenerationOperation(polled), nil
}

// FetchVideo downloads the generated bytes directly. The file endpoint
// authorizes via the same API key, appended as a query parameter.
func (s *VeoAIService) FetchVideo(
	ctx context.Context,
	apiKey string,
	video *entities.GeneratedVideo,
) (*valueobjects.VideoData, error) {
	u, err := url.Parse(video.URI())
	if err != nil {
		return nil, fmt.Errorf("invalid video URI: %w", err)
	}

	query := u.Query()
	query.Set("key", apiKey)
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build video fetch request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch video: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("video fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read video body: %w", err)
	}

	return valueobjects.NewVideoData(data, video.MimeType()), nil
}

func (s *VeoAIService) Close() error {
	return s.clientPool.Close()
}

func toGenerationOperation(operation *genai_std.GenerateVideosOperation) *entities.GenerationOperation {
	var videos []*entities.GeneratedVideo

	if operation.Response != nil {
		for _, generated := range operation.Response.GeneratedVideos {
			if generated.Video == nil {
				continue
			}
			videos = append(videos, entities.NewGeneratedVideo(generated.Video.URI, generated.Video.MIMEType))
		}
	}

	return entities.NewGenerationOperation(operation, operation.Done, videos)
}
