package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/alexdo83/Generate-videos-with-Veo-3/internal/application/usecases"
)

type analyzeRequest struct {
	Prompt string `json:"prompt" validate:"required"`
	Model  string `json:"model"`
}

// HandleAnalyze runs the one-shot prompt critique.
func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		h.sendError(w, "prompt is required", http.StatusBadRequest)
		return
	}

	output, err := h.analyzeUseCase.Execute(r.Context(), usecases.AnalyzeInput{
		Prompt: req.Prompt,
		Model:  req.Model,
	})
	if err != nil {
		log.Printf("Prompt analysis failed: %v", err)
		h.sendFailure(w, err)
		return
	}

	h.sendJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"analysis": output.Analysis,
	})
}
