package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/cylinder_holdings/internal/core/ports/services"
	"github.com/SscSPs/cylinder_holdings/internal/dto"
	"github.com/SscSPs/cylinder_holdings/internal/middleware"
)

// customerHandler handles HTTP requests related to customers.
type customerHandler struct {
	customerService portssvc.CustomerSvcFacade
	documentService portssvc.DocumentSvcFacade
}

// newCustomerHandler creates a new customerHandler.
func newCustomerHandler(cs portssvc.CustomerSvcFacade, ds portssvc.DocumentSvcFacade) *customerHandler {
	return &customerHandler{customerService: cs, documentService: ds}
}

// registerCustomerRoutes registers routes related to customers.
func registerCustomerRoutes(rg *gin.RouterGroup, cs portssvc.CustomerSvcFacade, ds portssvc.DocumentSvcFacade) {
	h := newCustomerHandler(cs, ds)

	customers := rg.Group("/customers")
	{
		customers.GET("", h.listCustomers)
		customers.POST("", h.createCustomer)
		customers.GET("/:accountNumber", h.getCustomer)
		customers.GET("/:accountNumber/details", h.getCustomerDetails)
		customers.GET("/:accountNumber/documents", h.listCustomerDocuments)
		customers.DELETE("/:accountNumber", middleware.RequireAdmin(), h.deactivateCustomer)
	}
}

// listCustomers godoc
// @Summary List active customers
// @Description Lists active customers with their current cylinder holdings, ordered by account number
// @Tags customers
// @Produce json
// @Success 200 {object} dto.ListCustomersResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers [get]
func (h *customerHandler) listCustomers(c *gin.Context) {
	summaries, err := h.customerService.ListActiveCustomers(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list customers")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCustomersResponse(summaries))
}

// createCustomer godoc
// @Summary Create a customer
// @Description Records a customer entered by hand
// @Tags customers
// @Accept json
// @Produce json
// @Param customer body dto.CreateCustomerRequest true "Customer details"
// @Success 201 {object} dto.CustomerResponse
// @Failure 400 {object} ErrorResponse "Invalid input or duplicate account number"
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers [post]
func (h *customerHandler) createCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, err, "Failed to create customer")
		return
	}

	logger.Info("Customer created", slog.String("account_number", customer.AccountNumber))
	c.JSON(http.StatusCreated, dto.ToCustomerResponse(customer))
}

// getCustomer godoc
// @Summary Get a customer
// @Description Retrieves a customer with its current cylinder holdings
// @Tags customers
// @Produce json
// @Param accountNumber path string true "Six digit account number"
// @Success 200 {object} dto.CustomerHoldingsResponse
// @Failure 400 {object} ErrorResponse "Malformed account number"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers/{accountNumber} [get]
func (h *customerHandler) getCustomer(c *gin.Context) {
	summary, err := h.customerService.GetCustomerSummary(c.Request.Context(), c.Param("accountNumber"))
	if err != nil {
		respondError(c, err, "Failed to retrieve customer")
		return
	}
	c.JSON(http.StatusOK, dto.CustomerHoldingsResponse{
		CustomerResponse: dto.ToCustomerResponse(&summary.Customer),
		TotalHoldings:    summary.TotalHoldings,
	})
}

// getCustomerDetails godoc
// @Summary Get the customer card
// @Description Retrieves a customer with holdings, last transaction date and the five most recent documents
// @Tags customers
// @Produce json
// @Param accountNumber path string true "Six digit account number"
// @Success 200 {object} dto.CustomerDetailsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers/{accountNumber}/details [get]
func (h *customerHandler) getCustomerDetails(c *gin.Context) {
	details, err := h.customerService.GetCustomerDetails(c.Request.Context(), c.Param("accountNumber"))
	if err != nil {
		respondError(c, err, "Failed to retrieve customer details")
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerDetailsResponse(details))
}

// listCustomerDocuments godoc
// @Summary List a customer's documents
// @Description Lists documents newest first, optionally limited to one month, with token pagination
// @Tags customers
// @Produce json
// @Param accountNumber path string true "Six digit account number"
// @Param month query string false "Month filter (YYYY-MM)"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListDocumentsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers/{accountNumber}/documents [get]
func (h *customerHandler) listCustomerDocuments(c *gin.Context) {
	var params dto.ListDocumentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	docs, next, err := h.documentService.ListCustomerDocuments(c.Request.Context(), c.Param("accountNumber"), params)
	if err != nil {
		respondError(c, err, "Failed to list documents")
		return
	}
	c.JSON(http.StatusOK, dto.ListDocumentsResponse{Documents: dto.ToDocumentResponses(docs), NextToken: next})
}

// deactivateCustomer godoc
// @Summary Deactivate a customer
// @Description Clears the customer's active flag; history is kept. Admin only.
// @Tags customers
// @Param accountNumber path string true "Six digit account number"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers/{accountNumber} [delete]
func (h *customerHandler) deactivateCustomer(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	accountNumber := c.Param("accountNumber")
	if err := h.customerService.DeactivateCustomer(c.Request.Context(), accountNumber, actor); err != nil {
		respondError(c, err, "Failed to deactivate customer")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Customer deactivated", slog.String("account_number", accountNumber))
	c.Status(http.StatusNoContent)
}
