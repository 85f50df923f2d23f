package dto

import (
	"github.com/anyulbade/creator-fee-engine/internal/pricing"
)

type QuoteResponse struct {
	pricing.FeeResult
	Country string                   `json:"country,omitempty"`
	Margin  pricing.MarginAssessment `json:"margin"`
}

type ValidationError struct {
	Index   int    `json:"index,omitempty"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ErrorListResponse struct {
	Error  string            `json:"error"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}
