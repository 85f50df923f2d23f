package pricing

import "errors"

var (
	ErrInvalidAmount             = errors.New("invalid amount")
	ErrInvalidPurpose            = errors.New("invalid purpose")
	ErrInvalidSubscriberCount    = errors.New("invalid subscriber count")
	ErrUnknownCountry            = errors.New("unknown country")
	ErrUnknownCurrency           = errors.New("unknown currency")
	ErrUnprofitableConfiguration = errors.New("unprofitable configuration")
	ErrInvalidRateTable          = errors.New("invalid rate table")
)
