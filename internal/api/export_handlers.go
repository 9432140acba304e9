package api

import (
	"net/http"

	"github.com/medialogapp/medialog-server/internal/http/response"
	"github.com/medialogapp/medialog-server/internal/store"
)

// ExportEmailRequest represents the request body for scheduling an
// export email.
type ExportEmailRequest struct {
	UserID int64 `json:"user_id"`
}

// handleExportItems streams a user's catalog as a CSV download.
func (s *Server) handleExportItems(w http.ResponseWriter, r *http.Request) {
	userID, err := queryInt64(r, "user_id")
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	if userID == 0 {
		response.HandleError(w, store.ErrInvalidInput.WithMessage("user_id query parameter is required"), s.logger)
		return
	}

	csvBytes, err := s.exportService.ItemsCSV(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="medialog-export.csv"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(csvBytes); err != nil {
		s.logger.Error("Failed to write CSV response", "error", err)
	}
}

// handleExportItemsEmail schedules background delivery of a user's
// catalog export. The response only acknowledges that the job was
// accepted; delivery is best-effort.
func (s *Server) handleExportItemsEmail(w http.ResponseWriter, r *http.Request) {
	var req ExportEmailRequest
	if err := s.decodeJSON(r, &req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	receipt, err := s.exportService.DispatchEmail(r.Context(), req.UserID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Accepted(w, "Export email scheduled", receipt, s.logger)
}
