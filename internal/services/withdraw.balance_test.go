package services

import (
	"context"
	"errors"
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
	privateKey = "0x4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
	signature  = "0xsigned"
)

type WithdrawBalanceServiceSuite struct {
	suite.Suite

	connector *servicemocks.WalletConnector
	wallet    *domainmocks.Wallet
	dataUnion *domainmocks.DataUnion
	klines    *servicemocks.MarketKlineRepository
	notifier  *servicemocks.PayoutNotifier
	cfg       domain.WithdrawConfig
}

func (s *WithdrawBalanceServiceSuite) SetupTest() {
	s.connector = servicemocks.NewWalletConnector(s.T())
	s.wallet = domainmocks.NewWallet(s.T())
	s.dataUnion = domainmocks.NewDataUnion(s.T())
	s.klines = servicemocks.NewMarketKlineRepository(s.T())
	s.notifier = servicemocks.NewPayoutNotifier(s.T())
	s.cfg = domain.WithdrawConfig{
		ContractAddress:  contractAddress,
		RecipientAddress: recipientAddress,
		MinimumAmount:    decimal.NewFromInt(10000),
	}
}

func (s *WithdrawBalanceServiceSuite) newService() *WithdrawBalanceService {
	logger := newTestLogger()
	fiat := NewFiatConversionService(s.klines, s.cfg, logger)
	stats := NewMemberStatsService(fiat, logger)
	return NewWithdrawBalanceService(s.connector, stats, s.notifier, s.cfg, logger)
}

func (s *WithdrawBalanceServiceSuite) expectResolved() {
	s.connector.EXPECT().Connect(mock.Anything, privateKey).Return(s.wallet, nil).Once()
	s.wallet.EXPECT().Address(mock.Anything).Return(memberAddress, nil).Once()
	s.wallet.EXPECT().DataUnion(mock.Anything, contractAddress).Return(s.dataUnion, nil).Once()
}

func (s *WithdrawBalanceServiceSuite) expectTwelveTokens() {
	s.dataUnion.EXPECT().MemberStats(mock.Anything, memberAddress).Return(domain.RawMemberStats{
		Status:                 domain.MemberStatusActive,
		EarningsBeforeLastJoin: "0x0",
		TotalEarnings:          twelveTokensHex,
		WithdrawableEarnings:   twelveTokensHex,
	}, nil).Once()
}

func (s *WithdrawBalanceServiceSuite) expectPrice(price string) {
	s.klines.EXPECT().LatestKline(mock.Anything, DefaultMarketSymbol, DefaultKlineInterval).Return(closeAt(price), nil).Once()
}

func (s *WithdrawBalanceServiceSuite) TestWithdraw_TableDriven() {
	connectErr := errors.New("bad key")
	resolveErr := errors.New("no such data union")
	signErr := errors.New("not a member")
	submitErr := errors.New("insufficient funds for gas")
	notifyErr := errors.New("payout down")
	receipt := domain.WithdrawReceipt{From: memberAddress, TransactionHash: "0xfeed", BlockNumber: 42, Status: 1}

	tests := []struct {
		name      string
		key       string
		minimum   string
		setupMock func()
		assertion func(vo.WithdrawOutcome, error)
	}{
		{
			name: "missing credential touches nothing",
			key:  "  ",
			assertion: func(outcome vo.WithdrawOutcome, err error) {
				require.NoError(s.T(), err)
				assert.Equal(s.T(), vo.NoCredential{}, outcome)
				assert.Zero(s.T(), outcome.StatusCode())
			},
		},
		{
			name: "authentication fault propagates",
			key:  privateKey,
			setupMock: func() {
				s.connector.EXPECT().Connect(mock.Anything, privateKey).Return(nil, connectErr).Once()
			},
			assertion: func(outcome vo.WithdrawOutcome, err error) {
				require.ErrorIs(s.T(), err, connectErr)
				assert.Nil(s.T(), outcome)
			},
		},
		{
			name: "resolution fault propagates",
			key:  privateKey,
			setupMock: func() {
				s.connector.EXPECT().Connect(mock.Anything, privateKey).Return(s.wallet, nil).Once()
				s.wallet.EXPECT().Address(mock.Anything).Return(memberAddress, nil).Once()
				s.wallet.EXPECT().DataUnion(mock.Anything, contractAddress).Return(nil, resolveErr).Once()
			},
			assertion: func(outcome vo.WithdrawOutcome, err error) {
				require.ErrorIs(s.T(), err, resolveErr)
				assert.ErrorContains(s.T(), err, contractAddress)
				assert.Nil(s.T(), outcome)
			},
		},
		{
			name: "missing stats stop before the threshold",
			key:  privateKey,
			setupMock: func() {
				s.expectResolved()
				s.dataUnion.EXPECT().MemberStats(mock.Anything, memberAddress).Return(domain.RawMemberStats{}, vo.ErrNotMember).Once()
				s.dataUnion.EXPECT().Address().Return(contractAddress).Maybe()
			},
			assertion: func(outcome vo.WithdrawOutcome, err error) {
				require.NoError(s.T(), err)
				result, ok := outcome.(vo.StatsUnavailable)
				require.True(s.T(), ok)
				assert.Equal(s.T(), 404, result.StatusCode())
				assert.Equal(s.T(), memberAddress, result.From)
				assert.Contains(s.T(), result.Error, "not a member")
			},
		},
		{
			name: "price outage stops before the threshold",
			key:  privateKey,
			setupMock: func() {
				s.expectResolved()
				s.expectTwelveTokens()
				s.klines.EXPECT().LatestKline(mock.Anything, mock.Anything, mock.Anything).Return(domain.Kline{}, vo.ErrMarketUnavailable).Once()
			},
			assertion: func(outcome vo.WithdrawOutcome, err error) {
				require.NoError(s.T(), err)
				result, ok := outcome.(vo.PriceUnavailable)
				require.True(s.T(), ok)
				assert.Equal(s.T(), 503, result.StatusCode())
				assert.Equal(s.T(), vo.ErrMarketUnavailable.Error(), result.Error)
			},
		},
		{
			name: "below minimum is rejected without signing",
			key:  privateKey,
			setupMock: func() {
				s.expectResolved()
				s.expectTwelveTokens()
				s.expectPrice("0.05")
			},
			assertion: func(outcome vo.WithdrawOutcome, err error) {
				require.NoError(s.T(), err)
				result, ok := outcome.(vo.Rejected)
				require.True(s.T(), ok)
				assert.Equal(s.T(), 409, result.StatusCode())
				assert.Equal(s.T(), "minimum amount to withdraw is 10000 COP", result.Error)
				assert.Equal(s.T(), "2364", result.Stats.Fiat.Amount.String())
			},
		},
		{
			name:    "fractional minimum is quoted exactly",
			key:     privateKey,
			minimum: "2500.5",
			setupMock: func() {
				s.expectResolved()
				s.expectTwelveTokens()
				s.expectPrice("0.05")
			},
			assertion: func(outcome vo.WithdrawOutcome, err error) {
				require.NoError(s.T(), err)
				result, ok := outcome.(vo.Rejected)
				require.True(s.T(), ok)
				assert.Equal(s.T(), "minimum amount to withdraw is 2500.5 COP", result.Error)
			},
		},
		{
			name:    "signing fault propagates",
			key:     privateKey,
			minimum: "0",
			setupMock: func() {
				s.expectResolved()
				s.expectTwelveTokens()
				s.expectPrice("0.05")
				s.dataUnion.EXPECT().SignWithdrawAllTo(mock.Anything, recipientAddress).Return("", signErr).Once()
			},
			assertion: func(outcome vo.WithdrawOutcome, err error) {
				require.ErrorIs(s.T(), err, signErr)
				assert.Nil(s.T(), outcome)
			},
		},
		{
			name:    "submission failure keeps diagnostics and skips payout",
			key:     privateKey,
			minimum: "0",
			setupMock: func() {
				s.expectResolved()
				s.expectTwelveTokens()
				s.expectPrice("0.05")
				s.dataUnion.EXPECT().SignWithdrawAllTo(mock.Anything, recipientAddress).Return(signature, nil).Once()
				s.dataUnion.EXPECT().
					WithdrawAllToSigned(mock.Anything, memberAddress, recipientAddress, signature, domain.WithdrawOptions{}).
					Return(domain.WithdrawReceipt{}, submitErr).Once()
			},
			assertion: func(outcome vo.WithdrawOutcome, err error) {
				require.NoError(s.T(), err)
				result, ok := outcome.(vo.SubmissionFailed)
				require.True(s.T(), ok)
				assert.Equal(s.T(), 500, result.StatusCode())
				assert.Equal(s.T(), "insufficient funds for gas", result.Exception)
				assert.Equal(s.T(), memberAddress, result.From)
				assert.Equal(s.T(), recipientAddress, result.RecipientAddress)
				assert.Equal(s.T(), "12", result.Stats.WithdrawableEarnings.String())
			},
		},
		{
			name:    "success notifies payout once",
			key:     privateKey,
			minimum: "0",
			setupMock: func() {
				s.expectResolved()
				s.expectTwelveTokens()
				s.expectPrice("0.05")
				s.dataUnion.EXPECT().SignWithdrawAllTo(mock.Anything, recipientAddress).Return(signature, nil).Once()
				s.dataUnion.EXPECT().
					WithdrawAllToSigned(mock.Anything, memberAddress, recipientAddress, signature, domain.WithdrawOptions{}).
					Return(receipt, nil).Once()
				s.notifier.EXPECT().
					Notify(mock.Anything, receipt, mock.MatchedBy(func(stats domain.MemberStats) bool {
						return stats.Fiat.Amount.Equal(decimal.NewFromInt(2364))
					})).
					Return(nil).Once()
			},
			assertion: func(outcome vo.WithdrawOutcome, err error) {
				require.NoError(s.T(), err)
				assert.Equal(s.T(), vo.NewSuccess(signature, memberAddress, receipt), outcome)
				assert.Equal(s.T(), 200, outcome.StatusCode())
			},
		},
		{
			name:    "receipt from another sender is not notified",
			key:     privateKey,
			minimum: "0",
			setupMock: func() {
				s.expectResolved()
				s.expectTwelveTokens()
				s.expectPrice("0.05")
				s.dataUnion.EXPECT().SignWithdrawAllTo(mock.Anything, recipientAddress).Return(signature, nil).Once()
				s.dataUnion.EXPECT().
					WithdrawAllToSigned(mock.Anything, memberAddress, recipientAddress, signature, domain.WithdrawOptions{}).
					Return(domain.WithdrawReceipt{From: recipientAddress, TransactionHash: "0xfeed"}, nil).Once()
			},
			assertion: func(outcome vo.WithdrawOutcome, err error) {
				require.NoError(s.T(), err)
				assert.Equal(s.T(), 200, outcome.StatusCode())
			},
		},
		{
			name:    "notification failure keeps success",
			key:     privateKey,
			minimum: "0",
			setupMock: func() {
				s.expectResolved()
				s.expectTwelveTokens()
				s.expectPrice("0.05")
				s.dataUnion.EXPECT().SignWithdrawAllTo(mock.Anything, recipientAddress).Return(signature, nil).Once()
				s.dataUnion.EXPECT().
					WithdrawAllToSigned(mock.Anything, memberAddress, recipientAddress, signature, domain.WithdrawOptions{}).
					Return(receipt, nil).Once()
				s.notifier.EXPECT().Notify(mock.Anything, receipt, mock.Anything).Return(notifyErr).Once()
			},
			assertion: func(outcome vo.WithdrawOutcome, err error) {
				require.NoError(s.T(), err)
				_, ok := outcome.(vo.Success)
				assert.True(s.T(), ok)
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			if tc.minimum != "" {
				s.cfg.MinimumAmount = decimal.RequireFromString(tc.minimum)
			}
			if tc.setupMock != nil {
				tc.setupMock()
			}

			outcome, err := s.newService().Withdraw(context.Background(), tc.key)
			tc.assertion(outcome, err)
		})
	}
}

func (s *WithdrawBalanceServiceSuite) TestWithdraw_TargetsMainnetWhenConfigured() {
	s.cfg.MinimumAmount = decimal.Zero
	s.cfg.SendToMainnet = true
	receipt := domain.WithdrawReceipt{From: memberAddress, TransactionHash: "0xfeed"}

	s.expectResolved()
	s.expectTwelveTokens()
	s.expectPrice("0.05")
	s.dataUnion.EXPECT().SignWithdrawAllTo(mock.Anything, recipientAddress).Return(signature, nil).Once()
	s.dataUnion.EXPECT().
		WithdrawAllToSigned(mock.Anything, memberAddress, recipientAddress, signature, domain.WithdrawOptions{SendToMainnet: true}).
		Return(receipt, nil).Once()
	s.notifier.EXPECT().Notify(mock.Anything, receipt, mock.Anything).Return(nil).Once()

	outcome, err := s.newService().Withdraw(context.Background(), privateKey)

	require.NoError(s.T(), err)
	assert.Equal(s.T(), 200, outcome.StatusCode())
}

func TestWithdrawBalanceServiceSuite(t *testing.T) {
	suite.Run(t, new(WithdrawBalanceServiceSuite))
}
