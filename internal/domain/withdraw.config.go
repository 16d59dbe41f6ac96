package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// WithdrawConfig is built once at startup and never mutated afterwards.
type WithdrawConfig struct {
	ContractAddress  string
	SidechainAddress string
	DataUnionSecret  string
	RecipientAddress string
	SendToMainnet    bool

	MinimumAmount decimal.Decimal
	FiatCurrency  string
	ExchangeRate  decimal.Decimal

	Market MarketConfig
	Payout PayoutConfig
	Chain  ChainConfig

	HTTPTimeout time.Duration
	JobTimeout  time.Duration
}

type MarketConfig struct {
	BaseURL  string
	Symbol   string
	Interval string
}

type PayoutMode string

const (
	PayoutModeLog  PayoutMode = "log"
	PayoutModeHTTP PayoutMode = "http"
)

type PayoutConfig struct {
	Mode   PayoutMode
	URL    string
	Secret string

	// Attempts bounds delivery tries in http mode.
	Attempts int
}

type ChainConfig struct {
	SidechainRPCURL string
	MainnetRPCURL   string
}
