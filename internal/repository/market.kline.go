package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3/client"
	"github.com/shopspring/decimal"

	"github.com/joshuarp/dataunion-withdraw/internal/domain"
	"github.com/joshuarp/dataunion-withdraw/internal/domain/vo"
)

const klinesPath = "/api/v3/klines"

// MarketKlineRepository reads candles from a Binance-compatible REST API.
type MarketKlineRepository struct {
	client  *client.Client
	baseURL string
}

func NewMarketKlineRepository(httpClient *client.Client, cfg domain.WithdrawConfig) *MarketKlineRepository {
	return &MarketKlineRepository{
		client:  httpClient,
		baseURL: strings.TrimRight(cfg.Market.BaseURL, "/"),
	}
}

func (r *MarketKlineRepository) LatestKline(ctx context.Context, symbol, interval string) (domain.Kline, error) {
	resp, err := r.client.Get(r.baseURL+klinesPath, client.Config{
		Ctx: ctx,
		Param: map[string]string{
			"symbol":   symbol,
			"interval": interval,
			"limit":    "1",
		},
	})
	if err != nil {
		return domain.Kline{}, fmt.Errorf("repository: kline request failed: %w: %w", vo.ErrMarketUnavailable, err)
	}
	defer resp.Close()

	if status := resp.StatusCode(); status < 200 || status > 299 {
		return domain.Kline{}, fmt.Errorf("repository: kline request returned status %d: %w", status, vo.ErrMarketUnavailable)
	}

	kline, err := parseLatestKline(resp.Body())
	if err != nil {
		return domain.Kline{}, fmt.Errorf("repository: %w: %w", vo.ErrMarketUnavailable, err)
	}

	return kline, nil
}

// parseLatestKline decodes the first row of [openTime, "open", "high", "low", "close", ...].
func parseLatestKline(body []byte) (domain.Kline, error) {
	var rows [][]json.RawMessage
	if err := json.Unmarshal(body, &rows); err != nil {
		return domain.Kline{}, fmt.Errorf("invalid kline payload: %w", err)
	}
	if len(rows) == 0 {
		return domain.Kline{}, fmt.Errorf("empty kline payload")
	}

	row := rows[0]
	if len(row) < 5 {
		return domain.Kline{}, fmt.Errorf("kline row has %d fields, want at least 5", len(row))
	}

	var openTime int64
	if err := json.Unmarshal(row[0], &openTime); err != nil {
		return domain.Kline{}, fmt.Errorf("invalid kline open time: %w", err)
	}

	prices := make([]decimal.Decimal, 4)
	for i := range prices {
		if err := json.Unmarshal(row[i+1], &prices[i]); err != nil {
			return domain.Kline{}, fmt.Errorf("invalid kline price at index %d: %w", i+1, err)
		}
	}

	return domain.Kline{
		OpenTime: time.UnixMilli(openTime).UTC(),
		Open:     prices[0],
		High:     prices[1],
		Low:      prices[2],
		Close:    prices[3],
	}, nil
}
