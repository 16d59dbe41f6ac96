package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/joshuarp/dataunion-withdraw/internal/domain"
	"github.com/joshuarp/dataunion-withdraw/internal/domain/vo"
	domainmocks "github.com/joshuarp/dataunion-withdraw/internal/mock/domain"
	servicemocks "github.com/joshuarp/dataunion-withdraw/internal/mock/services"
)

const (
	memberAddress    = "0x2c7536E3605D9C16a7a3D7b1898e529396a65c23"
	recipientAddress = "0x00000000000000000000000000000000000000aa"
	contractAddress  = "0x00000000000000000000000000000000000000d1"
	twelveTokensHex  = "0xA688906BD8B00000"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func closeAt(price string) domain.Kline {
	return domain.Kline{Close: decimal.RequireFromString(price)}
}

type FiatConversionServiceSuite struct {
	suite.Suite

	repository *servicemocks.MarketKlineRepository
	service    *FiatConversionService
}

func (s *FiatConversionServiceSuite) SetupTest() {
	s.repository = servicemocks.NewMarketKlineRepository(s.T())
	s.service = NewFiatConversionService(s.repository, domain.WithdrawConfig{}, newTestLogger())
}

func (s *FiatConversionServiceSuite) TestConvert_TableDriven() {
	marketErr := errors.New("binance down")

	tests := []struct {
		name      string
		amount    string
		setupMock func()
		assertion func(domain.FiatConversion)
	}{
		{
			name:   "twelve tokens at five cents",
			amount: "12",
			setupMock: func() {
				s.repository.EXPECT().LatestKline(mock.Anything, DefaultMarketSymbol, DefaultKlineInterval).Return(closeAt("0.05"), nil)
			},
			assertion: func(result domain.FiatConversion) {
				assert.True(s.T(), result.Available())
				assert.Equal(s.T(), "2364", result.Amount.String())
				assert.Equal(s.T(), "COP", result.Currency)
				assert.Equal(s.T(), "0.05", result.ClosePrice.String())
				assert.Equal(s.T(), "3941", result.ExchangeRate.String())
			},
		},
		{
			name:   "zero balance",
			amount: "0",
			setupMock: func() {
				s.repository.EXPECT().LatestKline(mock.Anything, mock.Anything, mock.Anything).Return(closeAt("0.05"), nil)
			},
			assertion: func(result domain.FiatConversion) {
				assert.True(s.T(), result.Available())
				assert.True(s.T(), result.Amount.IsZero())
			},
		},
		{
			name:   "market failure is explicit",
			amount: "12",
			setupMock: func() {
				s.repository.EXPECT().LatestKline(mock.Anything, mock.Anything, mock.Anything).Return(domain.Kline{}, marketErr)
			},
			assertion: func(result domain.FiatConversion) {
				assert.False(s.T(), result.Available())
				assert.Equal(s.T(), domain.FiatConversionUnavailable, result.State)
				assert.Equal(s.T(), "binance down", result.Reason)
				assert.True(s.T(), result.Amount.IsZero())
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			tc.setupMock()
			tc.assertion(s.service.Convert(context.Background(), decimal.RequireFromString(tc.amount)))
		})
	}
}

func (s *FiatConversionServiceSuite) TestConvert_UsesConfiguredMarket() {
	service := NewFiatConversionService(s.repository, domain.WithdrawConfig{
		FiatCurrency: "USD",
		ExchangeRate: decimal.NewFromInt(1),
		Market:       domain.MarketConfig{Symbol: "DATAUSDC", Interval: "5m"},
	}, newTestLogger())
	s.repository.EXPECT().LatestKline(mock.Anything, "DATAUSDC", "5m").Return(closeAt("2.5"), nil)

	result := service.Convert(context.Background(), decimal.NewFromInt(3))

	assert.Equal(s.T(), "7", result.Amount.String())
	assert.Equal(s.T(), "USD", result.Currency)
}

func (s *FiatConversionServiceSuite) TestConvert_LinearInTokenAmount() {
	s.repository.EXPECT().LatestKline(mock.Anything, mock.Anything, mock.Anything).Return(closeAt("0.0731"), nil)
	one := decimal.NewFromInt(1)

	for _, amount := range []string{"0.0001", "1.5", "12", "37.1234", "1000"} {
		x := decimal.RequireFromString(amount)
		single := s.service.Convert(context.Background(), x).Amount
		double := s.service.Convert(context.Background(), x.Mul(decimal.NewFromInt(2))).Amount

		diff := double.Sub(single.Mul(decimal.NewFromInt(2))).Abs()
		assert.True(s.T(), diff.LessThanOrEqual(one), "amount=%s single=%s double=%s", amount, single, double)
	}
}

func TestFiatConversionServiceSuite(t *testing.T) {
	suite.Run(t, new(FiatConversionServiceSuite))
}

type MemberStatsServiceSuite struct {
	suite.Suite

	fiat      *servicemocks.FiatConverter
	dataUnion *domainmocks.DataUnion
	service   *MemberStatsService
}

func (s *MemberStatsServiceSuite) SetupTest() {
	s.fiat = servicemocks.NewFiatConverter(s.T())
	s.dataUnion = domainmocks.NewDataUnion(s.T())
	s.service = NewMemberStatsService(s.fiat, newTestLogger())
}

func (s *MemberStatsServiceSuite) TestFetch_TableDriven() {
	proxyErr := errors.New("member lookup reverted")
	conversion := domain.FiatConversion{State: domain.FiatConversionAvailable, Amount: decimal.NewFromInt(2364), Currency: "COP"}

	tests := []struct {
		name      string
		setupMock func()
		assertion func(vo.MemberStatsEnvelope)
	}{
		{
			name: "normalizes earnings and prices withdrawable amount",
			setupMock: func() {
				s.dataUnion.EXPECT().MemberStats(mock.Anything, memberAddress).Return(domain.RawMemberStats{
					Status:                 domain.MemberStatusActive,
					EarningsBeforeLastJoin: "0x0",
					TotalEarnings:          "0x1158e460913d00000",
					WithdrawableEarnings:   twelveTokensHex,
				}, nil)
				s.fiat.EXPECT().
					Convert(mock.Anything, mock.MatchedBy(func(amount decimal.Decimal) bool {
						return amount.Equal(decimal.NewFromInt(12))
					})).
					Return(conversion)
			},
			assertion: func(envelope vo.MemberStatsEnvelope) {
				require.True(s.T(), envelope.Found())
				assert.Equal(s.T(), 200, envelope.Status)
				assert.Equal(s.T(), "20", envelope.Stats.TotalEarnings.String())
				assert.Equal(s.T(), "12", envelope.Stats.WithdrawableEarnings.String())
				assert.Equal(s.T(), domain.MemberStatusActive, envelope.Stats.Status)
				assert.Equal(s.T(), conversion, envelope.Stats.Fiat)
			},
		},
		{
			name: "proxy failure becomes 404",
			setupMock: func() {
				s.dataUnion.EXPECT().MemberStats(mock.Anything, memberAddress).Return(domain.RawMemberStats{}, proxyErr)
				s.dataUnion.EXPECT().Address().Return(contractAddress).Maybe()
			},
			assertion: func(envelope vo.MemberStatsEnvelope) {
				assert.False(s.T(), envelope.Found())
				assert.Equal(s.T(), 404, envelope.Status)
				assert.Equal(s.T(), "member lookup reverted", envelope.Error)
				assert.Nil(s.T(), envelope.Stats)
			},
		},
		{
			name: "malformed hex becomes 404 without pricing",
			setupMock: func() {
				s.dataUnion.EXPECT().MemberStats(mock.Anything, memberAddress).Return(domain.RawMemberStats{
					EarningsBeforeLastJoin: "0x0",
					TotalEarnings:          "0xnothex",
					WithdrawableEarnings:   twelveTokensHex,
				}, nil)
			},
			assertion: func(envelope vo.MemberStatsEnvelope) {
				assert.Equal(s.T(), 404, envelope.Status)
				assert.Contains(s.T(), envelope.Error, "total earnings")
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			tc.setupMock()
			tc.assertion(s.service.Fetch(context.Background(), s.dataUnion, memberAddress))
		})
	}
}

func TestMemberStatsServiceSuite(t *testing.T) {
	suite.Run(t, new(MemberStatsServiceSuite))
}

type PayoutNotifierServiceSuite struct {
	suite.Suite

	sender *servicemocks.PayoutSender
	logs   *bytes.Buffer
}

func (s *PayoutNotifierServiceSuite) SetupTest() {
	s.sender = servicemocks.NewPayoutSender(s.T())
	s.logs = &bytes.Buffer{}
}

func (s *PayoutNotifierServiceSuite) newService(mode domain.PayoutMode) *PayoutNotifierService {
	return NewPayoutNotifierService(s.sender, domain.WithdrawConfig{
		Payout: domain.PayoutConfig{Mode: mode, URL: "https://payout.example/withdraw", Secret: "super-secret-key"},
	}, slog.New(slog.NewTextHandler(s.logs, nil)))
}

func (s *PayoutNotifierServiceSuite) receiptAndStats() (domain.WithdrawReceipt, domain.MemberStats) {
	return domain.WithdrawReceipt{From: memberAddress, TransactionHash: "0xfeed"},
		domain.MemberStats{Fiat: domain.FiatConversion{State: domain.FiatConversionAvailable, Amount: decimal.NewFromInt(2364), Currency: "COP"}}
}

func (s *PayoutNotifierServiceSuite) TestNotify_LogModeNeverSends() {
	receipt, stats := s.receiptAndStats()

	err := s.newService(domain.PayoutModeLog).Notify(context.Background(), receipt, stats)

	require.NoError(s.T(), err)
	assert.Contains(s.T(), s.logs.String(), "payout notification")
	assert.Contains(s.T(), s.logs.String(), "tx_hash=0xfeed")
	assert.NotContains(s.T(), s.logs.String(), "super-secret-key")
}

func (s *PayoutNotifierServiceSuite) TestNotify_HTTPMode_TableDriven() {
	tests := []struct {
		name      string
		sendErr   error
		assertion func(error)
	}{
		{
			name: "delivered",
			assertion: func(err error) {
				require.NoError(s.T(), err)
				assert.Contains(s.T(), s.logs.String(), "payout notification delivered")
			},
		},
		{
			name:    "rejected with response",
			sendErr: &vo.PayoutDeliveryError{StatusCode: 422, Body: "duplicate"},
			assertion: func(err error) {
				require.Error(s.T(), err)
				assert.Contains(s.T(), s.logs.String(), "response_status=422")
				assert.Contains(s.T(), s.logs.String(), "response_body=duplicate")
			},
		},
		{
			name:    "timeout without response",
			sendErr: &vo.PayoutDeliveryError{Err: context.DeadlineExceeded},
			assertion: func(err error) {
				require.ErrorIs(s.T(), err, context.DeadlineExceeded)
				assert.NotContains(s.T(), s.logs.String(), "response_status")
				assert.NotContains(s.T(), s.logs.String(), "response_body")
				assert.Contains(s.T(), s.logs.String(), "transport_error")
			},
		},
		{
			name:    "plain error",
			sendErr: errors.New("token signing failed"),
			assertion: func(err error) {
				require.Error(s.T(), err)
				assert.Contains(s.T(), s.logs.String(), "token signing failed")
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			receipt, stats := s.receiptAndStats()
			s.sender.EXPECT().Send(mock.Anything, domain.PayoutNotification{
				Amount:          "2364",
				Secret:          "super-secret-key",
				EthAddress:      memberAddress,
				EthAddressCamel: memberAddress,
				TransactionHash: "0xfeed",
			}).Return(tc.sendErr).Once()

			tc.assertion(s.newService(domain.PayoutModeHTTP).Notify(context.Background(), receipt, stats))
		})
	}
}

func TestPayoutNotifierServiceSuite(t *testing.T) {
	suite.Run(t, new(PayoutNotifierServiceSuite))
}
