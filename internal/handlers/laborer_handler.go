package handlers

import (
	"net/http"

	"brick_manager/internal/models"

	"github.com/gin-gonic/gin"
)

func (h *APIHandler) ListLaborers(c *gin.Context) {
	laborers, err := h.laborerService.ListLaborers(c.Request.Context())
	if err != nil {
		laborerResource.fail(c, err, "fetch laborers")
		return
	}
	c.JSON(http.StatusOK, laborers)
}

func (h *APIHandler) ListActiveLaborers(c *gin.Context) {
	laborers, err := h.laborerService.ListActiveLaborers(c.Request.Context())
	if err != nil {
		laborerResource.fail(c, err, "fetch active laborers")
		return
	}
	c.JSON(http.StatusOK, laborers)
}

func (h *APIHandler) GetLaborer(c *gin.Context) {
	laborer, err := h.laborerService.GetLaborer(c.Request.Context(), c.Param("id"))
	if err != nil {
		laborerResource.fail(c, err, "fetch laborer")
		return
	}
	c.JSON(http.StatusOK, laborer)
}

func (h *APIHandler) CreateLaborer(c *gin.Context) {
	var input models.LaborerInput
	if err := bindJSON(c, &input); err != nil {
		laborerResource.badRequest(c, err)
		return
	}

	laborer, err := h.laborerService.CreateLaborer(c.Request.Context(), input)
	if err != nil {
		laborerResource.fail(c, err, "create laborer")
		return
	}
	c.JSON(http.StatusCreated, laborer)
}

func (h *APIHandler) UpdateLaborer(c *gin.Context) {
	var patch models.LaborerPatch
	if err := bindJSON(c, &patch); err != nil {
		laborerResource.badRequest(c, err)
		return
	}

	laborer, err := h.laborerService.UpdateLaborer(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		laborerResource.fail(c, err, "update laborer")
		return
	}
	c.JSON(http.StatusOK, laborer)
}

func (h *APIHandler) DeleteLaborer(c *gin.Context) {
	if err := h.laborerService.DeleteLaborer(c.Request.Context(), c.Param("id")); err != nil {
		laborerResource.fail(c, err, "delete laborer")
		return
	}
	c.Status(http.StatusNoContent)
}
