package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tahqeeq/outreach/internal/usecase"
)

type GenerateHandler struct {
	Batch *usecase.BatchGenerateUseCase
}

func NewGenerateHandler(batch *usecase.BatchGenerateUseCase) *GenerateHandler {
	return &GenerateHandler{Batch: batch}
}

// Start queues a batch generation job and returns it immediately; clients
// poll Job for progress.
func (h *GenerateHandler) Start(w http.ResponseWriter, r *http.Request) {
	var input usecase.StartBatchInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		badRequest(w, "invalid JSON")
		return
	}

	job, err := h.Batch.Start(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, job)
}

type jobResponse struct {
	ID        string  `json:"id"`
	Status    string  `json:"status"`
	Total     int     `json:"total"`
	Generated int     `json:"generated"`
	Progress  float64 `json:"progress"`
	Error     string  `json:"error,omitempty"`
}

func (h *GenerateHandler) Job(w http.ResponseWriter, r *http.Request) {
	job, err := h.Batch.Status(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, jobResponse{
		ID:        job.ID,
		Status:    string(job.Status),
		Total:     job.Total,
		Generated: job.Generated,
		Progress:  job.Progress(),
		Error:     job.Error,
	})
}
