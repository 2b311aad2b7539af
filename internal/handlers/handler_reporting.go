package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/finbooks/accounting_backend/internal/apperrors"
	"github.com/finbooks/accounting_backend/internal/core/domain"
	portssvc "github.com/finbooks/accounting_backend/internal/core/ports/services"
	"github.com/finbooks/accounting_backend/internal/dto"
	"github.com/finbooks/accounting_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to financial reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/:kind", h.getReport)
	}
}

// reportKindFromPath maps URL path segments to report kinds.
var reportKindFromPath = map[string]domain.ReportKind{
	"profit-and-loss": domain.ReportProfitAndLoss,
	"balance-sheet":   domain.ReportBalanceSheet,
	"trial-balance":   domain.ReportTrialBalance,
	"tax":             domain.ReportTax,
}

// getReport generates one of the financial reports for a date range. The
// report contract is permissive: bad dates degrade the figures to zero; only
// an unknown report kind is a client error.
func (h *reportingHandler) getReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	kindParam := strings.ToLower(c.Param("kind"))
	kind, ok := reportKindFromPath[kindParam]
	if !ok {
		logger.Warn("Unknown report kind requested", slog.String("kind", kindParam))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown report kind"})
		return
	}

	req := dto.ReportRequest{
		Kind:      kind,
		StartDate: c.Query("from"),
		EndDate:   c.Query("to"),
	}

	logger.Info("Received request to generate report",
		slog.String("kind", string(kind)),
		slog.String("from", req.StartDate),
		slog.String("to", req.EndDate))

	report, err := h.reportingService.GenerateReport(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to generate report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
		return
	}

	c.JSON(http.StatusOK, report)
}
