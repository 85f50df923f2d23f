package dto

// QuoteRequest prices a payment either for a creator country, which fixes
// the currency and cross-border status, or for an explicit currency.
type QuoteRequest struct {
	AmountCents *int64 `json:"amount_cents" binding:"required,min=0"`
	Country     string `json:"country"`
	Currency    string `json:"currency" binding:"omitempty,len=3,alpha"`
	CrossBorder bool   `json:"cross_border"`
	Purpose     string `json:"purpose" binding:"omitempty,oneof=personal service"`
}

type FeeSnapshotRequest struct {
	AmountCents *int64 `json:"amount_cents" binding:"required,min=0"`
	Country     string `json:"country" binding:"required"`
	Purpose     string `json:"purpose" binding:"omitempty,oneof=personal service"`
}
