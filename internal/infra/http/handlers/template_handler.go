package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tahqeeq/outreach/internal/entity"
	"github.com/tahqeeq/outreach/internal/usecase"
)

type TemplateHandler struct {
	Templates usecase.TemplateRepositoryInterface
}

func NewTemplateHandler(templates usecase.TemplateRepositoryInterface) *TemplateHandler {
	return &TemplateHandler{Templates: templates}
}

func (h *TemplateHandler) List(w http.ResponseWriter, r *http.Request) {
	templates, err := h.Templates.GetAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, templates)
}

type createTemplateRequest struct {
	Name  string       `json:"name"`
	Phase entity.Phase `json:"phase"`
	Body  string       `json:"body"`
}

func (h *TemplateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON")
		return
	}

	template, err := entity.NewTemplate(req.Name, req.Phase, req.Body)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	if err := h.Templates.Add(r.Context(), template); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, template)
}

func (h *TemplateHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch entity.TemplatePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		badRequest(w, "invalid JSON")
		return
	}
	if patch.Phase != nil && !patch.Phase.Valid() {
		badRequest(w, "unknown phase: "+string(*patch.Phase))
		return
	}

	if err := h.Templates.UpdateByID(r.Context(), chi.URLParam(r, "id"), patch); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *TemplateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Templates.DeleteByID(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
