package handlers

import (
	"net/http"

	"brick_manager/internal/models"

	"github.com/gin-gonic/gin"
)

func (h *APIHandler) ListInvoices(c *gin.Context) {
	invoices, err := h.invoiceService.ListInvoices(c.Request.Context())
	if err != nil {
		invoiceResource.fail(c, err, "fetch invoices")
		return
	}
	c.JSON(http.StatusOK, invoices)
}

func (h *APIHandler) GetInvoice(c *gin.Context) {
	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		invoiceResource.fail(c, err, "fetch invoice")
		return
	}
	c.JSON(http.StatusOK, invoice)
}

func (h *APIHandler) GetInvoiceByOrder(c *gin.Context) {
	invoice, err := h.invoiceService.GetInvoiceByOrder(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		invoiceResource.fail(c, err, "fetch invoice")
		return
	}
	c.JSON(http.StatusOK, invoice)
}

func (h *APIHandler) CreateInvoice(c *gin.Context) {
	var input models.InvoiceInput
	if err := bindJSON(c, &input); err != nil {
		invoiceResource.badRequest(c, err)
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), input)
	if err != nil {
		invoiceResource.fail(c, err, "create invoice")
		return
	}
	c.JSON(http.StatusCreated, invoice)
}

func (h *APIHandler) UpdateInvoice(c *gin.Context) {
	var patch models.InvoicePatch
	if err := bindJSON(c, &patch); err != nil {
		invoiceResource.badRequest(c, err)
		return
	}

	invoice, err := h.invoiceService.UpdateInvoice(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		invoiceResource.fail(c, err, "update invoice")
		return
	}
	c.JSON(http.StatusOK, invoice)
}

func (h *APIHandler) DeleteInvoice(c *gin.Context) {
	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), c.Param("id")); err != nil {
		invoiceResource.fail(c, err, "delete invoice")
		return
	}
	c.Status(http.StatusNoContent)
}
