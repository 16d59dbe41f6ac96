package services

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/joshuarp/dataunion-withdraw/internal/domain"
)

const (
	DefaultMarketSymbol  = "DATAUSDT"
	DefaultKlineInterval = "1m"
	DefaultFiatCurrency  = "COP"
)

// DefaultExchangeRate is the fixed number of fiat units per USD.
var DefaultExchangeRate = decimal.NewFromInt(3941)

type MarketKlineRepository interface {
	LatestKline(ctx context.Context, symbol, interval string) (domain.Kline, error)
}

type FiatConversionService struct {
	repository MarketKlineRepository
	symbol     string
	interval   string
	currency   string
	rate       decimal.Decimal
	logger     *slog.Logger
}

func NewFiatConversionService(repository MarketKlineRepository, cfg domain.WithdrawConfig, logger *slog.Logger) *FiatConversionService {
	s := &FiatConversionService{
		repository: repository,
		symbol:     cfg.Market.Symbol,
		interval:   cfg.Market.Interval,
		currency:   cfg.FiatCurrency,
		rate:       cfg.ExchangeRate,
		logger:     logger,
	}
	if s.symbol == "" {
		s.symbol = DefaultMarketSymbol
	}
	if s.interval == "" {
		s.interval = DefaultKlineInterval
	}
	if s.currency == "" {
		s.currency = DefaultFiatCurrency
	}
	if s.rate.IsZero() {
		s.rate = DefaultExchangeRate
	}
	return s
}

// Convert prices tokenAmount with the close of the latest candle and the fixed
// exchange rate, truncated to whole fiat units. A market failure is reported
// in the result, never as a fiat amount.
func (s *FiatConversionService) Convert(ctx context.Context, tokenAmount decimal.Decimal) domain.FiatConversion {
	kline, err := s.repository.LatestKline(ctx, s.symbol, s.interval)
	if err != nil {
		s.logger.Warn("market price unavailable", "symbol", s.symbol, "error", err)
		return domain.FiatConversion{
			State:        domain.FiatConversionUnavailable,
			Currency:     s.currency,
			ExchangeRate: s.rate,
			Reason:       err.Error(),
		}
	}

	return domain.FiatConversion{
		State:        domain.FiatConversionAvailable,
		Amount:       tokenAmount.Mul(kline.Close).Mul(s.rate).Truncate(0),
		Currency:     s.currency,
		ClosePrice:   kline.Close,
		ExchangeRate: s.rate,
	}
}
