package handler

import (
	"context"
	"net/http"

	"github.com/austral/caixa/internal/adapter/http/dto"
	"github.com/austral/caixa/internal/infrastructure/metrics"
)

// ReportService defines the behavior needed by ReportHandler.
type ReportService interface {
	BuildReport(ctx context.Context) (string, error)
	ExportReport(ctx context.Context) (string, error)
}

// ReportHandler handles report-related HTTP requests.
type ReportHandler struct {
	reportUC ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportUC ReportService) *ReportHandler {
	return &ReportHandler{reportUC: reportUC}
}

// Get renders the detailed per-seller report as plain text.
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	content, err := h.reportUC.BuildReport(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to build report", err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(content))
}

// Export writes the report to a timestamped text file and returns its name.
func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request) {
	filename, err := h.reportUC.ExportReport(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to export report", err.Error())
		return
	}

	metrics.RecordReportExported()
	writeJSON(w, http.StatusOK, dto.ExportReportResponse{Filename: filename})
}
