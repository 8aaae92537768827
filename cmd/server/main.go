package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	appservices "github.com/alexdo83/Generate-videos-with-Veo-3/internal/application/services"
	"github.com/alexdo83/Generate-videos-with-Veo-3/internal/application/usecases"
	domainrepos "github.com/alexdo83/Generate-videos-with-Veo-3/internal/domain/repositories"
	domainservices "github.com/alexdo83/Generate-videos-with-Veo-3/internal/domain/services"
	"github.com/alexdo83/Generate-videos-with-Veo-3/internal/infrastructure/api"
	"github.com/alexdo83/Generate-videos-with-Veo-3/internal/infrastructure/external"
	"github.com/alexdo83/Generate-videos-with-Veo-3/internal/infrastructure/repositories"
	infraservices "github.com/alexdo83/Generate-videos-with-Veo-3/internal/infrastructure/services"
	"github.com/alexdo83/Generate-videos-with-Veo-3/internal/infrastructure/ws"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	pollPolicy := domainservices.DefaultPollPolicy()
	pollPolicy.Interval = time.Duration(getEnvInt("POLL_INTERVAL_SECONDS", 10)) * time.Second
	pollPolicy.MaxPolls = getEnvInt("POLL_MAX_ATTEMPTS", 20)

	log.Printf("[boot] Poll policy: interval=%s maxPolls=%d", pollPolicy.Interval, pollPolicy.MaxPolls)

	// Credential store: Redis when configured, otherwise process memory,
	// with the environment variables as the final fallback.
	var primaryStore domainrepos.CredentialStore
	if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
		if client := repositories.ConnectRedis(redisAddr, os.Getenv("REDIS_PASSWORD")); client != nil {
			primaryStore = repositories.NewRedisCredentialStore(client)
			log.Printf("[boot] Credential store: redis (%s)", redisAddr)
		}
	}
	if primaryStore == nil {
		primaryStore = repositories.NewMemoryCredentialStore()
		log.Printf("[boot] Credential store: in-memory")
	}
	credentials := repositories.NewChainCredentialStore(primaryStore, repositories.NewEnvCredentialStore())

	// Initialize infrastructure layer
	clientPool := infraservices.NewGenAIClientPool()
	veoAIService := external.NewVeoAIService(clientPool)
	defer veoAIService.Close()
	geminiAIService := external.NewGeminiAIService(clientPool)

	jobRepository := repositories.NewMemoryJobRepository()
	progressHub := ws.NewHub()

	// Initialize domain layer
	generationService := domainservices.NewGenerationDomainService(veoAIService, pollPolicy)
	analysisService := domainservices.NewAnalysisDomainService(geminiAIService)

	// Initialize application layer
	parameterService := appservices.NewParameterService()
	generateUseCase := usecases.NewGenerateVideoUseCase(generationService, credentials, jobRepository, progressHub, parameterService)
	analyzeUseCase := usecases.NewAnalyzePromptUseCase(analysisService, credentials)

	// Initialize API layer
	handler := api.NewHandler(generateUseCase, analyzeUseCase, parameterService, credentials, jobRepository)

	// Setup routes
	r := mux.NewRouter()
	r.HandleFunc("/", handler.HandleIndex).Methods("GET")
	r.HandleFunc("/healthz", handler.HandleHealth).Methods("GET")
	r.HandleFunc("/api/generate", handler.HandleGenerate).Methods("POST")
	r.HandleFunc("/api/jobs/{id}", handler.HandleJobStatus).Methods("GET")
	r.HandleFunc("/api/analyze", handler.HandleAnalyze).Methods("POST")
	r.HandleFunc("/api/key", handler.HandleSaveKey).Methods("POST")
	r.HandleFunc("/api/key", handler.HandleKeyStatus).Methods("GET")
	r.HandleFunc("/ws/jobs/{id}", progressHub.HandleJobSocket).Methods("GET")

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting server on port %s", port)

	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	intVal, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("[boot] Invalid %s=%q, using default %d", key, value, defaultValue)
		return defaultValue
	}

	return intVal
}
