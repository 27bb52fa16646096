package handlers

import (
	"net/http"

	"brick_manager/internal/models"

	"github.com/gin-gonic/gin"
)

func (h *APIHandler) ListOrders(c *gin.Context) {
	orders, err := h.orderService.ListOrders(c.Request.Context())
	if err != nil {
		orderResource.fail(c, err, "fetch orders")
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *APIHandler) ListOrdersByStatus(c *gin.Context) {
	orders, err := h.orderService.ListOrdersByStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		orderResource.fail(c, err, "fetch orders by status")
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *APIHandler) GetOrder(c *gin.Context) {
	order, err := h.orderService.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		orderResource.fail(c, err, "fetch order")
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *APIHandler) CreateOrder(c *gin.Context) {
	var input models.OrderInput
	if err := bindJSON(c, &input); err != nil {
		orderResource.badRequest(c, err)
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), input)
	if err != nil {
		orderResource.fail(c, err, "create order")
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *APIHandler) UpdateOrder(c *gin.Context) {
	var patch models.OrderPatch
	if err := bindJSON(c, &patch); err != nil {
		orderResource.badRequest(c, err)
		return
	}

	order, err := h.orderService.UpdateOrder(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		orderResource.fail(c, err, "update order")
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *APIHandler) DeleteOrder(c *gin.Context) {
	if err := h.orderService.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		orderResource.fail(c, err, "delete order")
		return
	}
	c.Status(http.StatusNoContent)
}

// PreviewOrderInvoice returns the invoice the order would get right now.
func (h *APIHandler) PreviewOrderInvoice(c *gin.Context) {
	draft, err := h.invoiceService.PreviewInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		orderResource.fail(c, err, "preview invoice")
		return
	}
	c.JSON(http.StatusOK, draft)
}

func (h *APIHandler) GenerateOrderInvoice(c *gin.Context) {
	invoice, err := h.invoiceService.GenerateInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		orderResource.fail(c, err, "generate invoice")
		return
	}
	c.JSON(http.StatusCreated, invoice)
}
