package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/pedro-h-dias/c3s-project/internal/adapter/http/dto"
	"github.com/pedro-h-dias/c3s-project/internal/domain"
	"github.com/pedro-h-dias/c3s-project/internal/infrastructure/metrics"
)

// ReportService defines the behavior needed by ReportHandler.
type ReportService interface {
	Generate(ctx context.Context, day, period int) (*domain.Report, error)
	Render(ctx context.Context, day, period int) (string, error)
}

// ReportHandler handles cash-flow report HTTP requests.
type ReportHandler struct {
	reportUC ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportUC ReportService) *ReportHandler {
	return &ReportHandler{reportUC: reportUC}
}

// Get generates a cash-flow report as JSON.
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	day := parseIntQuery(r, "day", 0)
	period := parseIntQuery(r, "period", 0)

	start := time.Now()
	report, err := h.reportUC.Generate(r.Context(), day, period)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to generate report", err.Error())

		return
	}
	metrics.ReportDuration.Observe(time.Since(start).Seconds())
	metrics.ReportsGenerated.WithLabelValues("json").Inc()

	writeJSON(w, http.StatusOK, dto.ReportFromDomain(report, day, period))
}

// GetText generates a cash-flow report rendered as plain text.
func (h *ReportHandler) GetText(w http.ResponseWriter, r *http.Request) {
	day := parseIntQuery(r, "day", 0)
	period := parseIntQuery(r, "period", 0)

	start := time.Now()
	text, err := h.reportUC.Render(r.Context(), day, period)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to generate report", err.Error())

		return
	}
	metrics.ReportDuration.Observe(time.Since(start).Seconds())
	metrics.ReportsGenerated.WithLabelValues("text").Inc()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(text))
}
