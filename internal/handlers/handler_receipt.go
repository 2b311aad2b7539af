package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/finbooks/accounting_backend/internal/core/ports/services"
	"github.com/finbooks/accounting_backend/internal/dto"
	"github.com/finbooks/accounting_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// receiptHandler handles HTTP requests related to receipt removal
type receiptHandler struct {
	reconciliationService portssvc.ReconciliationSvcFacade
}

// newReceiptHandler creates a new receiptHandler
func newReceiptHandler(rs portssvc.ReconciliationSvcFacade) *receiptHandler {
	return &receiptHandler{
		reconciliationService: rs,
	}
}

// registerReceiptRoutes registers routes related to receipts
func registerReceiptRoutes(rg *gin.RouterGroup, reconciliationService portssvc.ReconciliationSvcFacade) {
	h := newReceiptHandler(reconciliationService)

	receiptGroup := rg.Group("/receipts")
	{
		receiptGroup.DELETE("", h.deleteReceipts)
	}
}

// deleteReceipts soft-deletes the requested receipts and reconciles the
// invoices and journals they touched. An empty id list is accepted as a no-op.
func (h *receiptHandler) deleteReceipts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.DeleteReceiptsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid receipt deletion request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	// Identity comes from the upstream gateway when present; reconciliation
	// only needs it for audit columns.
	actor := c.GetHeader("X-User-ID")
	if actor == "" {
		actor = "system"
	}

	logger.Info("Received request to delete receipts",
		slog.Int("receipt_count", len(req.ReceiptIDs)),
		slog.String("actor", actor))

	if err := h.reconciliationService.DeleteReceipts(c.Request.Context(), req.ReceiptIDs, actor); err != nil {
		logger.Error("Failed to delete receipts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete receipts"})
		return
	}

	c.Status(http.StatusNoContent)
}
