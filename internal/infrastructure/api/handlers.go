package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	appservices "github.com/alexdo83/Generate-videos-with-Veo-3/internal/application/services"
	"github.com/alexdo83/Generate-videos-with-Veo-3/internal/application/usecases"
	"github.com/alexdo83/Generate-videos-with-Veo-3/internal/domain/repositories"
	"github.com/alexdo83/Generate-videos-with-Veo-3/internal/domain/valueobjects"
)

// Upload cap for reference images.
const maxFileSize = 10 * 1024 * 1024

type Handler struct {
	generateUseCase  *usecases.GenerateVideoUseCase
	analyzeUseCase   *usecases.AnalyzePromptUseCase
	parameterService *appservices.ParameterService
	credentials      repositories.CredentialStore
	jobs             repositories.JobRepository
	validate         *validator.Validate
}

func NewHandler(
	generateUseCase *usecases.GenerateVideoUseCase,
	analyzeUseCase *usecases.AnalyzePromptUseCase,
	parameterService *appservices.ParameterService,
	credentials repositories.CredentialStore,
	jobs repositories.JobRepository,
) *Handler {
	return &Handler{
		generateUseCase:  generateUseCase,
		analyzeUseCase:   analyzeUseCase,
		parameterService: parameterService,
		credentials:      credentials,
		jobs:             jobs,
		validate:         validator.New(),
	}
}

func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.sendJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type saveKeyRequest struct {
	APIKey string `json:"apiKey" validate:"required"`
}

// HandleSaveKey persists the credential under its fixed store key.
func (h *Handler) HandleSaveKey(w http.ResponseWriter, r *http.Request) {
	var req saveKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		h.sendError(w, "apiKey is required", http.StatusBadRequest)
		return
	}

	if err := h.credentials.Save(r.Context(), req.APIKey); err != nil {
		h.sendError(w, "failed to save API key", http.StatusInternalServerError)
		return
	}

	h.sendJSON(w, http.StatusOK, map[string]any{"success": true})
}

// HandleKeyStatus reports whether a credential is configured. The key itself
// is never echoed back.
func (h *Handler) HandleKeyStatus(w http.ResponseWriter, r *http.Request) {
	apiKey, err := h.credentials.Load(r.Context())
	if err != nil {
		h.sendError(w, "failed to read credential store", http.StatusInternalServerError)
		return
	}

	h.sendJSON(w, http.StatusOK, map[string]any{"configured": apiKey != ""})
}

func (h *Handler) sendJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store, max-age=0")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func (h *Handler) sendError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]any{"success": false, "error": message})
}

// sendFailure maps a classified failure to its user message and HTTP status.
func (h *Handler) sendFailure(w http.ResponseWriter, err error) {
	var failure *valueobjects.Failure
	if !errors.As(err, &failure) {
		failure = valueobjects.ClassifyError(err)
	}

	h.sendError(w, failure.UserMessage(), statusForFailure(failure.Kind()))
}

func statusForFailure(kind valueobjects.FailureKind) int {
	switch kind {
	case valueobjects.FailureMissingCredential:
		return http.StatusBadRequest
	case valueobjects.FailureInvalidCredential:
		return http.StatusUnauthorized
	case valueobjects.FailurePermissionDenied:
		return http.StatusForbidden
	case valueobjects.FailureModelNotFound:
		return http.StatusNotFound
	case valueobjects.FailureTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
