package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anyulbade/creator-fee-engine/internal/dto"
	"github.com/anyulbade/creator-fee-engine/internal/service"
)

type QuoteHandler struct {
	svc *service.QuoteService
}

func NewQuoteHandler(svc *service.QuoteService) *QuoteHandler {
	return &QuoteHandler{svc: svc}
}

func (h *QuoteHandler) Create(c *gin.Context) {
	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorListResponse{
			Error: "validation failed: " + err.Error(),
		})
		return
	}

	resp, err := h.svc.Quote(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
