package handlers

import (
	portssvc "github.com/finbooks/accounting_backend/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	v1 := r.Group("/api/v1")

	registerReportingRoutes(v1, services.Reporting)
	registerReceiptRoutes(v1, services.Reconciliation)
}
