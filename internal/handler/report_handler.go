package handler

import (
	"log/slog"
	"net/http"

	"github.com/Rohithsilent/P-o-P/internal/model"

	"github.com/gin-gonic/gin"
)

type ReportStore interface {
	GetReports(limit, offset int) ([]model.AnalysisReport, error)
	GetReportTotal() (int, error)
	GetLatestReport() (*model.AnalysisReport, error)
}

// ReportHandler serves the report archive. A nil store means the archive
// is not configured and every route answers 503.
type ReportHandler struct {
	repository ReportStore
}

func NewReportHandler(repository ReportStore) *ReportHandler {
	return &ReportHandler{repository: repository}
}

func (h *ReportHandler) GetReports(c *gin.Context) {
	if !h.enabled(c) {
		return
	}

	limit := getQueryLimit(c)
	offset := getQueryOffset(c)

	reports, err := h.repository.GetReports(limit, offset)
	if err != nil {
		slog.Error("error fetching reports", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	total, err := h.repository.GetReportTotal()
	if err != nil {
		slog.Error("error fetching report total", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	res := ReportsResponse{
		Reports: make([]ReportResponse, 0, len(reports)),
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	}
	for _, r := range reports {
		res.Reports = append(res.Reports, toReportResponse(r))
	}

	c.JSON(http.StatusOK, res)
}

func (h *ReportHandler) GetLatestReport(c *gin.Context) {
	if !h.enabled(c) {
		return
	}

	report, err := h.repository.GetLatestReport()
	if err != nil {
		slog.Error("error fetching latest report", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if report == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No report available"})
		return
	}

	c.JSON(http.StatusOK, toReportResponse(*report))
}

func (h *ReportHandler) enabled(c *gin.Context) bool {
	if h.repository == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Report archive is not configured"})
		return false
	}
	return true
}
