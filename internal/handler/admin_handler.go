package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/anyulbade/creator-fee-engine/internal/dto"
	"github.com/anyulbade/creator-fee-engine/internal/service"
)

const maxReportSubscriberCounts = 20

type AdminHandler struct {
	profitability  *service.ProfitabilityService
	reconciliation *service.ReconciliationService
}

func NewAdminHandler(profitability *service.ProfitabilityService, reconciliation *service.ReconciliationService) *AdminHandler {
	return &AdminHandler{profitability: profitability, reconciliation: reconciliation}
}

func (h *AdminHandler) Profitability(c *gin.Context) {
	counts, ok := parseSubscriberCounts(c)
	if !ok {
		return
	}

	report, err := h.profitability.Report(c.Request.Context(), counts)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *AdminHandler) Reconciliation(c *gin.Context) {
	p := dto.ParsePagination(c)

	report, err := h.reconciliation.Reconcile(c.Request.Context(), p)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// parseSubscriberCounts reads ?subscribers=1,5,20. It writes the 400 itself
// and returns false when the list is malformed.
func parseSubscriberCounts(c *gin.Context) ([]int, bool) {
	raw := strings.TrimSpace(c.Query("subscribers"))
	if raw == "" {
		return nil, true
	}

	parts := strings.Split(raw, ",")
	var errs []dto.ValidationError
	if len(parts) > maxReportSubscriberCounts {
		errs = append(errs, dto.ValidationError{
			Field:   "subscribers",
			Message: "at most " + strconv.Itoa(maxReportSubscriberCounts) + " values",
		})
	}

	counts := make([]int, 0, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 {
			errs = append(errs, dto.ValidationError{
				Index:   i,
				Field:   "subscribers",
				Message: "must be a non-negative whole number",
			})
			continue
		}
		counts = append(counts, n)
	}

	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorListResponse{
			Error:  "validation failed",
			Errors: errs,
		})
		return nil, false
	}
	return counts, true
}
