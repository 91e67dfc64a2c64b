package handlers

import (
	"net/http"

	"github.com/tahqeeq/outreach/internal/usecase"
)

// StatsHandler recomputes the derived views from the current lead snapshot
// on every request; nothing is cached.
type StatsHandler struct {
	Leads     usecase.LeadRepositoryInterface
	Templates usecase.TemplateRepositoryInterface
}

func NewStatsHandler(leads usecase.LeadRepositoryInterface, templates usecase.TemplateRepositoryInterface) *StatsHandler {
	return &StatsHandler{Leads: leads, Templates: templates}
}

func (h *StatsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	leads, err := h.Leads.GetAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	templates, err := h.Templates.GetAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, usecase.Dashboard(leads, templates))
}

func (h *StatsHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	leads, err := h.Leads.GetAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, usecase.Analytics(leads))
}
