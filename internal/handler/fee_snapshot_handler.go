package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anyulbade/creator-fee-engine/internal/dto"
	"github.com/anyulbade/creator-fee-engine/internal/service"
)

type FeeSnapshotHandler struct {
	svc *service.SnapshotService
}

func NewFeeSnapshotHandler(svc *service.SnapshotService) *FeeSnapshotHandler {
	return &FeeSnapshotHandler{svc: svc}
}

func (h *FeeSnapshotHandler) Create(c *gin.Context) {
	var req dto.FeeSnapshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorListResponse{
			Error: "validation failed: " + err.Error(),
		})
		return
	}

	snap, err := h.svc.Record(c.Request.Context(), c.Param("payment_id"), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, snap)
}

func (h *FeeSnapshotHandler) Get(c *gin.Context) {
	snap, err := h.svc.Get(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, snap)
}
