package domain

import "github.com/shopspring/decimal"

type FiatConversionState string

const (
	FiatConversionAvailable   FiatConversionState = "available"
	FiatConversionUnavailable FiatConversionState = "price_unavailable"
)

// FiatConversion is either an available fiat amount or the reason the market
// price could not be obtained. Amount is meaningful only when State is available.
type FiatConversion struct {
	State        FiatConversionState `json:"state"`
	Amount       decimal.Decimal     `json:"amount"`
	Currency     string              `json:"currency"`
	ClosePrice   decimal.Decimal     `json:"close_price"`
	ExchangeRate decimal.Decimal     `json:"exchange_rate"`
	Reason       string              `json:"reason,omitempty"`
}

func (f FiatConversion) Available() bool {
	return f.State == FiatConversionAvailable
}
