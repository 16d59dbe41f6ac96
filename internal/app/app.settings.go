package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"github.com/joshuarp/dataunion-withdraw/internal/domain"
	"github.com/joshuarp/dataunion-withdraw/internal/domain/vo"
	"github.com/joshuarp/dataunion-withdraw/internal/services"
	"github.com/joshuarp/dataunion-withdraw/internal/shared/config"
)

const (
	defaultMinimumAmount   = 10000
	defaultPayoutAttempts  = 3
	defaultMarketBaseURL   = "https://api.binance.com"
	defaultSidechainRPCURL = "https://rpc.gnosischain.com"
	defaultHTTPTimeout     = 30 * time.Second
	defaultJobTimeout      = 5 * time.Minute
)

// provideWithdrawConfig reads every key once. Each yaml key falls back to the
// env name the job has always been deployed with.
func provideWithdrawConfig(cfg config.ConfigProvider) (domain.WithdrawConfig, error) {
	var errs []error

	requireAddress := func(yamlKey, envKey string) string {
		value := strings.TrimSpace(lookupString(cfg, yamlKey, envKey, ""))
		switch {
		case value == "":
			errs = append(errs, fmt.Errorf("app: %s (%s): %w", yamlKey, envKey, vo.ErrMissingConfig))
		case !common.IsHexAddress(value):
			errs = append(errs, fmt.Errorf("app: %s (%s): invalid address %q", yamlKey, envKey, value))
		}
		return value
	}

	settings := domain.WithdrawConfig{
		ContractAddress:  requireAddress("dataunion.contract_address", "DU_CONTRACT_ADDRESS"),
		SidechainAddress: requireAddress("dataunion.sidechain_address", "DU_SIDE_CHAIN_ADDRESS"),
		DataUnionSecret:  lookupString(cfg, "dataunion.secret", "DU_SECRET", ""),
		RecipientAddress: requireAddress("withdraw.recipient_address", "MAT_WALLET"),
		SendToMainnet:    lookupBool(cfg, "dataunion.send_to_mainnet", "DU_SEND_TO_MAINNET", false),
		FiatCurrency:     lookupString(cfg, "withdraw.fiat_currency", "WITHDRAW_FIAT_CURRENCY", services.DefaultFiatCurrency),
		Market: domain.MarketConfig{
			BaseURL:  lookupString(cfg, "market.base_url", "MARKET_BASE_URL", defaultMarketBaseURL),
			Symbol:   lookupString(cfg, "market.symbol", "MARKET_SYMBOL", services.DefaultMarketSymbol),
			Interval: lookupString(cfg, "market.interval", "MARKET_INTERVAL", services.DefaultKlineInterval),
		},
		Payout: domain.PayoutConfig{
			URL:      lookupString(cfg, "payout.url", "WITHDRAW_URL", ""),
			Secret:   lookupString(cfg, "payout.secret", "MAT_SECRET_KEY", ""),
			Attempts: lookupInt(cfg, "payout.attempts", "PAYOUT_ATTEMPTS", defaultPayoutAttempts),
		},
		Chain: domain.ChainConfig{
			SidechainRPCURL: lookupString(cfg, "chain.sidechain_rpc_url", "SIDECHAIN_RPC_URL", defaultSidechainRPCURL),
			MainnetRPCURL:   lookupString(cfg, "chain.mainnet_rpc_url", "MAINNET_RPC_URL", ""),
		},
		HTTPTimeout: lookupDuration(cfg, "http.timeout", "HTTP_TIMEOUT", defaultHTTPTimeout),
		JobTimeout:  lookupDuration(cfg, "job.timeout", "JOB_TIMEOUT", defaultJobTimeout),
	}

	minimum, err := lookupDecimal(cfg, "withdraw.minimum_amount", "WITHDRAW_MINIMUM_AMOUNT", decimal.NewFromInt(defaultMinimumAmount))
	if err != nil {
		errs = append(errs, err)
	} else if minimum.IsNegative() {
		errs = append(errs, fmt.Errorf("app: withdraw.minimum_amount must not be negative, got %s", minimum))
	}
	settings.MinimumAmount = minimum

	rate, err := lookupDecimal(cfg, "withdraw.exchange_rate", "WITHDRAW_EXCHANGE_RATE", services.DefaultExchangeRate)
	if err != nil {
		errs = append(errs, err)
	} else if !rate.IsPositive() {
		errs = append(errs, fmt.Errorf("app: withdraw.exchange_rate must be positive, got %s", rate))
	}
	settings.ExchangeRate = rate

	mode, err := parsePayoutMode(lookupString(cfg, "payout.mode", "PAYOUT_MODE", string(domain.PayoutModeLog)))
	if err != nil {
		errs = append(errs, err)
	}
	settings.Payout.Mode = mode
	if settings.Payout.Attempts < 1 {
		errs = append(errs, fmt.Errorf("app: payout.attempts must be at least 1, got %d", settings.Payout.Attempts))
	}
	if mode == domain.PayoutModeHTTP && settings.Payout.URL == "" {
		errs = append(errs, fmt.Errorf("app: payout.url (WITHDRAW_URL) is required in http mode: %w", vo.ErrMissingConfig))
	}

	if len(errs) > 0 {
		return domain.WithdrawConfig{}, errors.Join(errs...)
	}

	return settings, nil
}

func parsePayoutMode(value string) (domain.PayoutMode, error) {
	switch domain.PayoutMode(strings.ToLower(strings.TrimSpace(value))) {
	case "", domain.PayoutModeLog:
		return domain.PayoutModeLog, nil
	case domain.PayoutModeHTTP:
		return domain.PayoutModeHTTP, nil
	default:
		return "", fmt.Errorf("app: unknown payout.mode %q", value)
	}
}

// lookupString treats an empty yaml value as unset so the example config can
// list every key without hiding the legacy env names.
func lookupString(cfg config.ConfigProvider, yamlKey, envKey, fallback string) string {
	if cfg.IsSet(yamlKey) {
		if value := cfg.GetString(yamlKey); value != "" {
			return value
		}
	}
	if cfg.IsSet(envKey) {
		return cfg.GetString(envKey)
	}
	return fallback
}

func lookupInt(cfg config.ConfigProvider, yamlKey, envKey string, fallback int) int {
	if cfg.IsSet(yamlKey) {
		return cfg.GetInt(yamlKey)
	}
	if cfg.IsSet(envKey) {
		return cfg.GetInt(envKey)
	}
	return fallback
}

func lookupBool(cfg config.ConfigProvider, yamlKey, envKey string, fallback bool) bool {
	if cfg.IsSet(yamlKey) {
		return cfg.GetBool(yamlKey)
	}
	if cfg.IsSet(envKey) {
		return cfg.GetBool(envKey)
	}
	return fallback
}

func lookupDuration(cfg config.ConfigProvider, yamlKey, envKey string, fallback time.Duration) time.Duration {
	var value time.Duration
	switch {
	case cfg.IsSet(yamlKey):
		value = cfg.GetDuration(yamlKey)
	case cfg.IsSet(envKey):
		value = cfg.GetDuration(envKey)
	}
	if value <= 0 {
		return fallback
	}
	return value
}

func lookupDecimal(cfg config.ConfigProvider, yamlKey, envKey string, fallback decimal.Decimal) (decimal.Decimal, error) {
	raw := strings.TrimSpace(lookupString(cfg, yamlKey, envKey, ""))
	if raw == "" {
		return fallback, nil
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("app: %s (%s): invalid number %q: %w", yamlKey, envKey, raw, err)
	}
	return value, nil
}
