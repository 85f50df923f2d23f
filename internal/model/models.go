package model

import (
	"time"

	"github.com/anyulbade/creator-fee-engine/internal/pricing"
)

type Country struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Currency    string `json:"currency"`
	CrossBorder bool   `json:"cross_border"`
}

// FeeSnapshot is the fee split recorded for a payment at the time it was
// created, kept for audit and reconciliation.
type FeeSnapshot struct {
	ID                 string    `json:"id"`
	PaymentID          string    `json:"payment_id"`
	CountryCode        string    `json:"country_code"`
	Currency           string    `json:"currency"`
	Purpose            string    `json:"purpose"`
	FeeModel           string    `json:"fee_model"`
	FeeMode            string    `json:"fee_mode"`
	CrossBorder        bool      `json:"cross_border"`
	FeeRate            float64   `json:"fee_rate"`
	BaseCents          int64     `json:"base_cents"`
	GrossCents         int64     `json:"gross_cents"`
	NetCents           int64     `json:"net_cents"`
	FeeCents           int64     `json:"fee_cents"`
	SubscriberFeeCents int64     `json:"subscriber_fee_cents"`
	CreatorFeeCents    int64     `json:"creator_fee_cents"`
	CreatedAt          time.Time `json:"created_at"`
}

func NewFeeSnapshot(paymentID, countryCode string, r pricing.FeeResult) *FeeSnapshot {
	return &FeeSnapshot{
		PaymentID:          paymentID,
		CountryCode:        countryCode,
		Currency:           r.Currency,
		Purpose:            string(r.Purpose),
		FeeModel:           r.FeeModel,
		FeeMode:            r.FeeMode,
		CrossBorder:        r.CrossBorder,
		FeeRate:            r.FeeRate,
		BaseCents:          r.BaseCents,
		GrossCents:         r.GrossCents,
		NetCents:           r.NetCents,
		FeeCents:           r.FeeCents,
		SubscriberFeeCents: r.SubscriberFeeCents,
		CreatorFeeCents:    r.CreatorFeeCents,
	}
}

func (s *FeeSnapshot) FeeResult() pricing.FeeResult {
	return pricing.FeeResult{
		BaseCents:          s.BaseCents,
		GrossCents:         s.GrossCents,
		NetCents:           s.NetCents,
		FeeCents:           s.FeeCents,
		SubscriberFeeCents: s.SubscriberFeeCents,
		CreatorFeeCents:    s.CreatorFeeCents,
		Currency:           s.Currency,
		Purpose:            pricing.Purpose(s.Purpose),
		CrossBorder:        s.CrossBorder,
		FeeRate:            s.FeeRate,
		FeeModel:           s.FeeModel,
		FeeMode:            s.FeeMode,
	}
}

type CurrencyTotals struct {
	Currency   string `json:"currency"`
	Count      int    `json:"count"`
	BaseCents  int64  `json:"base_cents"`
	GrossCents int64  `json:"gross_cents"`
	FeeCents   int64  `json:"fee_cents"`
}
