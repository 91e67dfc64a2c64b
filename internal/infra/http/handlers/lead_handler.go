package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tahqeeq/outreach/internal/entity"
	"github.com/tahqeeq/outreach/internal/infra/http/middleware"
	"github.com/tahqeeq/outreach/internal/usecase"
)

type LeadHandler struct {
	Leads     usecase.LeadRepositoryInterface
	SendDraft *usecase.SendDraftUseCase
}

func NewLeadHandler(leads usecase.LeadRepositoryInterface, sendDraft *usecase.SendDraftUseCase) *LeadHandler {
	return &LeadHandler{Leads: leads, SendDraft: sendDraft}
}

func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	leads, err := h.Leads.GetAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, leads)
}

type createLeadRequest struct {
	Company      string `json:"company"`
	ContactName  string `json:"contactName"`
	Email        string `json:"email"`
	Sector       string `json:"sector"`
	PainQuestion string `json:"painQuestion"`
	ContextHook  string `json:"contextHook"`
}

func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON")
		return
	}

	lead, err := entity.NewLead(req.Company, req.ContactName, req.Email, req.Sector, req.PainQuestion, req.ContextHook)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	if err := h.Leads.Add(r.Context(), lead); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, lead)
}

// Update merges a partial patch into the lead. An unknown id is a silent
// no-op on the collection, reported as 204 either way.
func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var patch entity.LeadPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		badRequest(w, "invalid JSON")
		return
	}
	if patch.Phase != nil && !patch.Phase.Valid() {
		badRequest(w, "unknown phase: "+string(*patch.Phase))
		return
	}

	if err := h.Leads.UpdateByID(r.Context(), id, patch); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *LeadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Leads.DeleteByID(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Clear deletes every lead and draft, the settings-screen reset.
func (h *LeadHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.Leads.Clear(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *LeadHandler) Send(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.SendDraft.Execute(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordDraftSent()
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
