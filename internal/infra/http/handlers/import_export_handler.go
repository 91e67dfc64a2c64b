package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tahqeeq/outreach/internal/infra/http/middleware"
	"github.com/tahqeeq/outreach/internal/usecase"
)

type ImportHandler struct {
	Import *usecase.ImportLeadsUseCase
}

func NewImportHandler(imp *usecase.ImportLeadsUseCase) *ImportHandler {
	return &ImportHandler{Import: imp}
}

// Upload accepts the raw CSV text as the request body.
func (h *ImportHandler) Upload(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		badRequest(w, "could not read body")
		return
	}

	count, err := h.Import.Execute(r.Context(), string(body))
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordLeadsImported(count)
	writeJSON(w, http.StatusCreated, map[string]int{"imported": count})
}

type ExportHandler struct {
	Export *usecase.ExportUseCase
}

func NewExportHandler(export *usecase.ExportUseCase) *ExportHandler {
	return &ExportHandler{Export: export}
}

type exportRequest struct {
	LeadIDs []string `json:"leadIds"`
}

// Download renders the selected leads in the path format and serves the
// result as a file download.
func (h *ExportHandler) Download(w http.ResponseWriter, r *http.Request) {
	format := usecase.ExportFormat(chi.URLParam(r, "format"))

	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON")
		return
	}

	file, err := h.Export.Execute(r.Context(), format, req.LeadIDs)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", file.MIMEType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+file.Filename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(file.Content))
}
