package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	appservices "github.com/alexdo83/Generate-videos-with-Veo-3/internal/application/services"
	"github.com/alexdo83/Generate-videos-with-Veo-3/internal/domain/entities"
	domainservices "github.com/alexdo83/Generate-videos-with-Veo-3/internal/domain/services"
	"github.com/alexdo83/Generate-videos-with-Veo-3/internal/domain/valueobjects"
	"github.com/alexdo83/Generate-videos-with-Veo-3/internal/infrastructure/external"
	"github.com/alexdo83/Generate-videos-with-Veo-3/internal/infrastructure/repositories"
	infraservices "github.com/alexdo83/Generate-videos-with-Veo-3/internal/infrastructure/services"
)

// One-shot generation from the command line. The API key comes from
// GEMINI_API_KEY or GOOGLE_API_KEY (optionally via .env).
func main() {
	prompt := flag.String("prompt", "", "Video generation prompt (required)")
	imagePath := flag.String("image", "", "Optional reference image path")
	ratio := flag.String("ratio", string(valueobjects.AspectRatio16x9), "Aspect ratio: 16:9 or 9:16")
	resolution := flag.String("resolution", string(valueobjects.Resolution720p), "Resolution: 720p or 1080p")
	duration := flag.Int("duration", 8, "Duration in seconds")
	model := flag.String("model", appservices.DefaultVideoModel, "Veo model identifier")
	outDir := flag.String("out", ".", "Output directory")
	flag.Parse()

	if *prompt == "" {
		log.Fatal("-prompt is required")
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	ctx := context.Background()

	apiKey, err := repositories.NewEnvCredentialStore().Load(ctx)
	if err != nil || apiKey == "" {
		log.Fatal("No API key found. Set GEMINI_API_KEY or GOOGLE_API_KEY.")
	}

	var referenceImage *valueobjects.ImageData
	if *imagePath != "" {
		data, err := os.ReadFile(*imagePath)
		if err != nil {
			log.Fatalf("Failed to read image: %v", err)
		}
		referenceImage, err = valueobjects.NewImageData(data, "")
		if err != nil {
			log.Fatalf("Invalid image: %v", err)
		}
	}

	parameters, err := valueobjects.NewGenerationParameters(
		valueobjects.AspectRatio(*ratio),
		valueobjects.Resolution(*resolution),
		*duration,
	)
	if err != nil {
		log.Fatalf("Invalid parameters: %v", err)
	}

	request, err := entities.NewGenerationRequest(*prompt, referenceImage, parameters, *model)
	if err != nil {
		log.Fatalf("Invalid request: %v", err)
	}

	clientPool := infraservices.NewGenAIClientPool()
	veoAIService := external.NewVeoAIService(clientPool)
	defer veoAIService.Close()

	generationService := domainservices.NewGenerationDomainService(veoAIService, domainservices.DefaultPollPolicy())

	log.Printf("Generating video with %s...", *model)

	result, err := generationService.ProcessGeneration(ctx, request, apiKey, func(percent int) {
		log.Printf("Progress: %d%%", percent)
	})
	if err != nil {
		failure := valueobjects.ClassifyError(err)
		log.Fatalf("Generation failed: %s", failure.UserMessage())
	}

	filename := appservices.NewParameterService().SuggestedFilename(*prompt, parameters.AspectRatio(), time.Now())
	outPath := filepath.Join(*outDir, filename)

	if err := os.WriteFile(outPath, result.Video().Data(), 0644); err != nil {
		log.Fatalf("Failed to write video: %v", err)
	}

	log.Printf("Generated video saved to %s (%d bytes)", outPath, result.Video().Size())
}
