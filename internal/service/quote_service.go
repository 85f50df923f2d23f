package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/anyulbade/creator-fee-engine/internal/dto"
	"github.com/anyulbade/creator-fee-engine/internal/pricing"
)

type QuoteService struct {
	engine *pricing.Engine
}

func NewQuoteService(engine *pricing.Engine) *QuoteService {
	return &QuoteService{engine: engine}
}

func (s *QuoteService) Quote(ctx context.Context, req *dto.QuoteRequest) (*dto.QuoteResponse, error) {
	if req.AmountCents == nil {
		return nil, &ValidationError{Field: "amount_cents", Message: "is required"}
	}
	purpose, err := pricing.ParsePurpose(req.Purpose)
	if err != nil {
		return nil, err
	}

	var (
		result  pricing.FeeResult
		country string
	)
	switch {
	case req.Country != "":
		if req.CrossBorder {
			return nil, &ValidationError{Field: "cross_border", Message: "only applies with currency; country determines cross-border status"}
		}
		country, err = s.engine.Rates().NormalizeCountry(req.Country)
		if err != nil {
			return nil, err
		}
		result, err = s.engine.Quote(*req.AmountCents, country, purpose)
	case req.Currency != "":
		result, err = s.engine.CalculateServiceFee(*req.AmountCents, req.Currency, purpose, req.CrossBorder)
	default:
		return nil, &ValidationError{Field: "country", Message: "country or currency is required"}
	}
	if err != nil {
		return nil, err
	}

	return &dto.QuoteResponse{
		FeeResult: result,
		Country:   country,
		Margin:    s.assess(result),
	}, nil
}

func (s *QuoteService) assess(result pricing.FeeResult) pricing.MarginAssessment {
	margin, err := s.engine.AssessMargin(result)
	if errors.Is(err, pricing.ErrUnknownCurrency) {
		log.Warn().
			Str("currency", result.Currency).
			Msg("no processor fee estimate for currency, using defaults")
	}
	return margin
}
