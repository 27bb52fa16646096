package handlers

import (
	"net/http"

	"brick_manager/internal/models"

	"github.com/gin-gonic/gin"
)

func (h *APIHandler) ListTractors(c *gin.Context) {
	tractors, err := h.tractorService.ListTractors(c.Request.Context())
	if err != nil {
		tractorResource.fail(c, err, "fetch tractors")
		return
	}
	c.JSON(http.StatusOK, tractors)
}

func (h *APIHandler) ListAvailableTractors(c *gin.Context) {
	tractors, err := h.tractorService.ListAvailableTractors(c.Request.Context())
	if err != nil {
		tractorResource.fail(c, err, "fetch available tractors")
		return
	}
	c.JSON(http.StatusOK, tractors)
}

func (h *APIHandler) GetTractor(c *gin.Context) {
	tractor, err := h.tractorService.GetTractor(c.Request.Context(), c.Param("id"))
	if err != nil {
		tractorResource.fail(c, err, "fetch tractor")
		return
	}
	c.JSON(http.StatusOK, tractor)
}

func (h *APIHandler) CreateTractor(c *gin.Context) {
	var input models.TractorInput
	if err := bindJSON(c, &input); err != nil {
		tractorResource.badRequest(c, err)
		return
	}

	tractor, err := h.tractorService.CreateTractor(c.Request.Context(), input)
	if err != nil {
		tractorResource.fail(c, err, "create tractor")
		return
	}
	c.JSON(http.StatusCreated, tractor)
}

func (h *APIHandler) UpdateTractor(c *gin.Context) {
	var patch models.TractorPatch
	if err := bindJSON(c, &patch); err != nil {
		tractorResource.badRequest(c, err)
		return
	}

	tractor, err := h.tractorService.UpdateTractor(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		tractorResource.fail(c, err, "update tractor")
		return
	}
	c.JSON(http.StatusOK, tractor)
}

func (h *APIHandler) DeleteTractor(c *gin.Context) {
	if err := h.tractorService.DeleteTractor(c.Request.Context(), c.Param("id")); err != nil {
		tractorResource.fail(c, err, "delete tractor")
		return
	}
	c.Status(http.StatusNoContent)
}
