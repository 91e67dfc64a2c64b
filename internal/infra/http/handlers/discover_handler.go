package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/tahqeeq/outreach/internal/infra/http/middleware"
	"github.com/tahqeeq/outreach/internal/usecase"
)

type DiscoverHandler struct {
	Discover *usecase.DiscoverUseCase
	Triggers usecase.TriggerRepositoryInterface
}

func NewDiscoverHandler(discover *usecase.DiscoverUseCase, triggers usecase.TriggerRepositoryInterface) *DiscoverHandler {
	return &DiscoverHandler{Discover: discover, Triggers: triggers}
}

// Search runs a discovery query against the signal feed.
func (h *DiscoverHandler) Search(w http.ResponseWriter, r *http.Request) {
	var query usecase.SignalQuery
	if err := json.NewDecoder(r.Body).Decode(&query); err != nil {
		badRequest(w, "invalid JSON")
		return
	}

	triggers, err := h.Discover.Search(r.Context(), query)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordSignalsDiscovered(len(triggers))
	writeJSON(w, http.StatusOK, triggers)
}

// List returns the results of the last discovery run.
func (h *DiscoverHandler) List(w http.ResponseWriter, r *http.Request) {
	triggers, err := h.Triggers.GetAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, triggers)
}

type convertRequest struct {
	TriggerIDs []string `json:"triggerIds"`
}

func (h *DiscoverHandler) Convert(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON")
		return
	}

	leads, err := h.Discover.ConvertToLeads(r.Context(), req.TriggerIDs)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, leads)
}
