package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kline is an open/high/low/close summary of one candle interval.
type Kline struct {
	OpenTime time.Time
	Open     decimal.Decimal
	High     decimal.Decimal
	Low      decimal.Decimal
	Close    decimal.Decimal
}
