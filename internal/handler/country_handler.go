package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/anyulbade/creator-fee-engine/internal/dto"
	"github.com/anyulbade/creator-fee-engine/internal/pricing"
)

type CountryHandler struct {
	engine *pricing.Engine
}

func NewCountryHandler(engine *pricing.Engine) *CountryHandler {
	return &CountryHandler{engine: engine}
}

func (h *CountryHandler) Breakdown(c *gin.Context) {
	b, err := h.engine.FeeBreakdown(c.Param("country"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":       b,
		"profitable": b.Profitable(),
	})
}

func (h *CountryHandler) Minimum(c *gin.Context) {
	subscribers, err := strconv.Atoi(c.DefaultQuery("subscribers", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorListResponse{
			Error: "validation failed",
			Errors: []dto.ValidationError{
				{Field: "subscribers", Message: "must be a whole number"},
			},
		})
		return
	}

	m, err := h.engine.DynamicMinimum(c.Param("country"), subscribers)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, m)
}
