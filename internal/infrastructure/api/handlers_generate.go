package api

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/alexdo83/Generate-videos-with-Veo-3/internal/application/usecases"
	"github.com/alexdo83/Generate-videos-with-Veo-3/internal/domain/entities"
)

// HandleGenerate accepts the generation form, registers a job and returns
// its id. Progress and the final video are read from the job endpoint or
// the websocket stream.
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFileSize)
	if err := r.ParseMultipartForm(maxFileSize); err != nil {
		// Plain form posts (no image) are fine too.
		if !errors.Is(err, http.ErrNotMultipart) {
			h.sendError(w, "image too large (10MB max)", http.StatusRequestEntityTooLarge)
			return
		}
		if err := r.ParseForm(); err != nil {
			h.sendError(w, "invalid form data", http.StatusBadRequest)
			return
		}
	}

	prompt := r.FormValue("prompt")
	if prompt == "" {
		h.sendError(w, "prompt is required", http.StatusBadRequest)
		return
	}

	parameters, err := h.parameterService.ParseGenerationParameters(r)
	if err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var imageData []byte
	var imageMimeType string

	imageFile, imageFileHeader, err := r.FormFile("image")
	if err == nil {
		defer imageFile.Close()
		imageMimeType = imageFileHeader.Header.Get("Content-Type")

		imageData, err = io.ReadAll(imageFile)
		if err != nil {
			h.sendError(w, "failed to read image", http.StatusInternalServerError)
			return
		}
	}

	input := usecases.GenerateInput{
		Prompt:        prompt,
		ImageData:     imageData,
		ImageMimeType: imageMimeType,
		Parameters:    parameters,
		Model:         h.parameterService.VideoModel(r),
	}

	output, err := h.generateUseCase.Execute(r.Context(), input)
	if err != nil {
		log.Printf("Failed to start video generation: %v", err)
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.sendJSON(w, http.StatusAccepted, map[string]any{
		"success": true,
		"jobId":   output.JobID,
	})
}

// HandleJobStatus returns the job snapshot: progress while running, the
// classified failure message on error, the base64 video once done.
func (h *Handler) HandleJobStatus(w http.ResponseWriter, r *http.Request) {
	jobID := entities.JobID(mux.Vars(r)["id"])

	job, err := h.jobs.FindByID(r.Context(), jobID)
	if err != nil {
		h.sendError(w, "job not found", http.StatusNotFound)
		return
	}

	response := map[string]any{
		"jobId":    job.ID(),
		"status":   job.Status(),
		"progress": job.Progress(),
	}

	switch job.Status() {
	case entities.JobStatusFailed:
		response["error"] = job.FailureMessage()
		response["errorKind"] = job.FailureKind()
	case entities.JobStatusSucceeded:
		result := job.Result()
		if result == nil || !result.HasVideo() {
			h.sendError(w, "job finished without video data", http.StatusInternalServerError)
			return
		}
		response["video"] = map[string]string{
			"data": result.Video().ToBase64(),
			"type": result.Video().MimeType(),
		}
		response["filename"] = job.Filename()
	}

	h.sendJSON(w, http.StatusOK, response)
}
