package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anyulbade/creator-fee-engine/internal/pricing"
)

type ConfigHandler struct {
	rates *pricing.RateTable
}

func NewConfigHandler(rates *pricing.RateTable) *ConfigHandler {
	return &ConfigHandler{rates: rates}
}

func (h *ConfigHandler) GetFees(c *gin.Context) {
	c.JSON(http.StatusOK, h.rates.View())
}
