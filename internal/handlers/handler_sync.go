package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/cylinder_holdings/internal/core/domain"
	portssvc "github.com/SscSPs/cylinder_holdings/internal/core/ports/services"
	"github.com/SscSPs/cylinder_holdings/internal/dto"
	"github.com/SscSPs/cylinder_holdings/internal/middleware"
)

// syncHandler exposes the billing reconciliation operations.
type syncHandler struct {
	syncService portssvc.SyncSvcFacade
}

// registerSyncRoutes registers the admin-only sync routes.
func registerSyncRoutes(rg *gin.RouterGroup, ss portssvc.SyncSvcFacade) {
	h := &syncHandler{syncService: ss}

	sync := rg.Group("/sync", middleware.RequireAdmin())
	{
		sync.POST("/customers/:accountNumber", h.syncCustomer)
		sync.GET("/movements", h.checkMovements)
		sync.PUT("/documents/:documentNumber/status", h.setSyncStatus)
	}
}

// syncCustomer godoc
// @Summary Sync a customer from billing
// @Description Creates or refreshes a customer from the billing system's master data. Admin only.
// @Tags sync
// @Produce json
// @Param accountNumber path string true "Six digit account number"
// @Success 200 {object} dto.SyncCustomerResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Unknown in billing"
// @Failure 503 {object} ErrorResponse "Billing integration not configured"
// @Security BearerAuth
// @Router /sync/customers/{accountNumber} [post]
func (h *syncHandler) syncCustomer(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	customer, created, err := h.syncService.SyncCustomer(c.Request.Context(), c.Param("accountNumber"), actor)
	if err != nil {
		respondError(c, err, "Failed to sync customer")
		return
	}
	c.JSON(http.StatusOK, dto.SyncCustomerResponse{Customer: dto.ToCustomerResponse(customer), Created: created})
}

// checkMovements godoc
// @Summary Unrecorded billing movements
// @Description Lists cylinder lines on billing invoices in the range whose invoice is not yet recorded. Admin only.
// @Tags sync
// @Produce json
// @Param startDate query string true "Start date (YYYY-MM-DD)"
// @Param endDate query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.PotentialMovementsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /sync/movements [get]
func (h *syncHandler) checkMovements(c *gin.Context) {
	var params dto.CheckMovementsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	start, err := dto.ParseDate("startDate", params.StartDate)
	if err != nil {
		respondError(c, err, "Failed to check movements")
		return
	}
	end, err := dto.ParseDate("endDate", params.EndDate)
	if err != nil {
		respondError(c, err, "Failed to check movements")
		return
	}

	movements, err := h.syncService.CheckCylinderMovements(c.Request.Context(), start, end)
	if err != nil {
		respondError(c, err, "Failed to check movements")
		return
	}
	c.JSON(http.StatusOK, dto.PotentialMovementsResponse{Movements: movements})
}

// setSyncStatus godoc
// @Summary Set a document's sync status
// @Description Moves a document between ACTIVE, PENDING_SYNC and SYNCED. Admin only.
// @Tags sync
// @Accept json
// @Produce json
// @Param documentNumber path string true "Document number"
// @Param status body dto.SetSyncStatusRequest true "Target status"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Transition not allowed"
// @Security BearerAuth
// @Router /sync/documents/{documentNumber}/status [put]
func (h *syncHandler) setSyncStatus(c *gin.Context) {
	var req dto.SetSyncStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	doc, err := h.syncService.SetSyncStatus(c.Request.Context(), c.Param("documentNumber"), domain.DocumentStatus(req.Status), actor)
	if err != nil {
		respondError(c, err, "Failed to set sync status")
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
}
