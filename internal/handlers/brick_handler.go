package handlers

import (
	"net/http"

	"brick_manager/internal/models"

	"github.com/gin-gonic/gin"
)

func (h *APIHandler) ListBricks(c *gin.Context) {
	bricks, err := h.brickService.ListBricks(c.Request.Context())
	if err != nil {
		brickResource.fail(c, err, "fetch bricks")
		return
	}
	c.JSON(http.StatusOK, bricks)
}

func (h *APIHandler) GetBrick(c *gin.Context) {
	brick, err := h.brickService.GetBrick(c.Request.Context(), c.Param("id"))
	if err != nil {
		brickResource.fail(c, err, "fetch brick")
		return
	}
	c.JSON(http.StatusOK, brick)
}

func (h *APIHandler) CreateBrick(c *gin.Context) {
	var input models.BrickInput
	if err := bindJSON(c, &input); err != nil {
		brickResource.badRequest(c, err)
		return
	}

	brick, err := h.brickService.CreateBrick(c.Request.Context(), input)
	if err != nil {
		brickResource.fail(c, err, "create brick")
		return
	}
	c.JSON(http.StatusCreated, brick)
}

func (h *APIHandler) UpdateBrick(c *gin.Context) {
	var patch models.BrickPatch
	if err := bindJSON(c, &patch); err != nil {
		brickResource.badRequest(c, err)
		return
	}

	brick, err := h.brickService.UpdateBrick(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		brickResource.fail(c, err, "update brick")
		return
	}
	c.JSON(http.StatusOK, brick)
}

func (h *APIHandler) DeleteBrick(c *gin.Context) {
	if err := h.brickService.DeleteBrick(c.Request.Context(), c.Param("id")); err != nil {
		brickResource.fail(c, err, "delete brick")
		return
	}
	c.Status(http.StatusNoContent)
}
