package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/cylinder_holdings/internal/core/domain"
	portssvc "github.com/SscSPs/cylinder_holdings/internal/core/ports/services"
	"github.com/SscSPs/cylinder_holdings/internal/dto"
	"github.com/SscSPs/cylinder_holdings/internal/middleware"
)

// documentHandler handles HTTP requests related to invoices and return slips.
type documentHandler struct {
	documentService portssvc.DocumentSvcFacade
}

func newDocumentHandler(ds portssvc.DocumentSvcFacade) *documentHandler {
	return &documentHandler{documentService: ds}
}

// registerDocumentRoutes registers routes related to documents.
func registerDocumentRoutes(rg *gin.RouterGroup, ds portssvc.DocumentSvcFacade) {
	h := newDocumentHandler(ds)

	documents := rg.Group("/documents")
	{
		documents.POST("", h.createDocument)
		documents.GET("/check-number", h.checkNumber)
		documents.GET("/next-number", h.nextNumber)
		documents.GET("/:documentNumber", h.getDocument)
		documents.PUT("/:documentID", middleware.RequireAdmin(), h.updateDocument)
		documents.DELETE("/:documentID", middleware.RequireAdmin(), h.deleteDocument)
		documents.POST("/:documentID/void", h.voidDocument)
	}
}

// createDocument godoc
// @Summary Create a document
// @Description Records a Tax Invoice (IN) or Empty Return Slip (NR). Without a number the next one is assigned.
// @Tags documents
// @Accept json
// @Produce json
// @Param document body dto.CreateDocumentRequest true "Document with movements"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} ErrorResponse "Validation, duplicate number or invalid movement set"
// @Failure 404 {object} ErrorResponse "Customer not found"
// @Failure 409 {object} ErrorResponse "Numbering conflict"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /documents [post]
func (h *documentHandler) createDocument(c *gin.Context) {
	var req dto.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	doc, err := h.documentService.CreateDocument(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, err, "Failed to create document")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Document created",
		slog.String("document_number", doc.DocumentNumber), slog.String("customer_account", doc.CustomerAccount))
	c.JSON(http.StatusCreated, dto.ToDocumentResponse(doc))
}

// checkNumber godoc
// @Summary Check a document number
// @Description Normalizes a number for the document type and reports whether it is already taken
// @Tags documents
// @Produce json
// @Param documentType query string true "IN or NR"
// @Param documentNumber query string true "Full number or bare digits"
// @Success 200 {object} dto.CheckNumberResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /documents/check-number [get]
func (h *documentHandler) checkNumber(c *gin.Context) {
	var params dto.CheckNumberParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	docType, err := domain.ParseDocumentType(params.DocumentType)
	if err != nil {
		respondError(c, err, "Failed to check document number")
		return
	}

	number, exists, err := h.documentService.DocumentNumberExists(c.Request.Context(), docType, params.DocumentNumber)
	if err != nil {
		respondError(c, err, "Failed to check document number")
		return
	}
	c.JSON(http.StatusOK, dto.CheckNumberResponse{DocumentNumber: number, Exists: exists})
}

// nextNumber godoc
// @Summary Preview the next document number
// @Description Returns the number the next document of the type would receive. The number is not reserved.
// @Tags documents
// @Produce json
// @Param documentType query string true "IN or NR"
// @Success 200 {object} dto.CheckNumberResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /documents/next-number [get]
func (h *documentHandler) nextNumber(c *gin.Context) {
	docType, err := domain.ParseDocumentType(c.Query("documentType"))
	if err != nil {
		respondError(c, err, "Failed to compute next document number")
		return
	}
	number, err := h.documentService.NextDocumentNumber(c.Request.Context(), docType)
	if err != nil {
		respondError(c, err, "Failed to compute next document number")
		return
	}
	c.JSON(http.StatusOK, dto.CheckNumberResponse{DocumentNumber: number, Exists: false})
}

// getDocument godoc
// @Summary Get a document
// @Description Retrieves a document with its movements and received/returned totals
// @Tags documents
// @Produce json
// @Param documentNumber path string true "Document number, e.g. IN000123"
// @Success 200 {object} dto.DocumentResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /documents/{documentNumber} [get]
func (h *documentHandler) getDocument(c *gin.Context) {
	doc, err := h.documentService.GetDocumentByNumber(c.Request.Context(), c.Param("documentNumber"))
	if err != nil {
		respondError(c, err, "Failed to retrieve document")
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
}

// updateDocument godoc
// @Summary Update a document
// @Description Replaces the number, date and whole movement set of a document. Admin only.
// @Tags documents
// @Accept json
// @Produce json
// @Param documentID path int true "Document ID"
// @Param document body dto.UpdateDocumentRequest true "New document contents"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /documents/{documentID} [put]
func (h *documentHandler) updateDocument(c *gin.Context) {
	documentID, err := parseDocumentID(c.Param("documentID"))
	if err != nil {
		respondError(c, err, "Failed to update document")
		return
	}
	var req dto.UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	doc, err := h.documentService.UpdateDocument(c.Request.Context(), documentID, req, actor)
	if err != nil {
		respondError(c, err, "Failed to update document")
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
}

// deleteDocument godoc
// @Summary Delete a document
// @Description Removes a document and its movements. Admin only.
// @Tags documents
// @Produce json
// @Param documentID path int true "Document ID"
// @Success 200 {object} dto.DeleteDocumentResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /documents/{documentID} [delete]
func (h *documentHandler) deleteDocument(c *gin.Context) {
	documentID, err := parseDocumentID(c.Param("documentID"))
	if err != nil {
		respondError(c, err, "Failed to delete document")
		return
	}
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	summary, err := h.documentService.DeleteDocument(c.Request.Context(), documentID, actor)
	if err != nil {
		respondError(c, err, "Failed to delete document")
		return
	}
	c.JSON(http.StatusOK, dto.DeleteDocumentResponse{
		DocumentID:      summary.DocumentID,
		DocumentNumber:  summary.DocumentNumber,
		CustomerAccount: summary.CustomerAccount,
	})
}

// voidDocument godoc
// @Summary Void a document
// @Description Marks a document VOID with a reason. The document and its movements are kept.
// @Tags documents
// @Accept json
// @Produce json
// @Param documentID path int true "Document ID"
// @Param void body dto.VoidDocumentRequest true "Void reason"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} ErrorResponse "Missing reason or document cannot be voided"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /documents/{documentID}/void [post]
func (h *documentHandler) voidDocument(c *gin.Context) {
	documentID, err := parseDocumentID(c.Param("documentID"))
	if err != nil {
		respondError(c, err, "Failed to void document")
		return
	}
	var req dto.VoidDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	doc, err := h.documentService.VoidDocument(c.Request.Context(), documentID, req.Reason, actor)
	if err != nil {
		respondError(c, err, "Failed to void document")
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
}
