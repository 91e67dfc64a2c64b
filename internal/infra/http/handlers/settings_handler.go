package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/tahqeeq/outreach/internal/entity"
	"github.com/tahqeeq/outreach/internal/infra/database"
)

type SettingsHandler struct {
	APIKeys *database.APIKeyRepository
}

func NewSettingsHandler(apiKeys *database.APIKeyRepository) *SettingsHandler {
	return &SettingsHandler{APIKeys: apiKeys}
}

func (h *SettingsHandler) GetAPIKeys(w http.ResponseWriter, r *http.Request) {
	keys, err := h.APIKeys.Get(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, keys)
}

// PutAPIKeys replaces the whole provider→key map.
func (h *SettingsHandler) PutAPIKeys(w http.ResponseWriter, r *http.Request) {
	var keys entity.APIKeys
	if err := json.NewDecoder(r.Body).Decode(&keys); err != nil {
		badRequest(w, "invalid JSON")
		return
	}

	if err := h.APIKeys.Save(r.Context(), keys); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
