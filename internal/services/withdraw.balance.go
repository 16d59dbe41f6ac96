package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/joshuarp/dataunion-withdraw/internal/domain"
	"github.com/joshuarp/dataunion-withdraw/internal/domain/vo"
)

type WalletConnector interface {
	Connect(ctx context.Context, privateKey string) (domain.Wallet, error)
}

type MemberStatsFetcher interface {
	Fetch(ctx context.Context, dataUnion domain.DataUnion, member string) vo.MemberStatsEnvelope
}

type PayoutNotifier interface {
	Notify(ctx context.Context, receipt domain.WithdrawReceipt, stats domain.MemberStats) error
}

// WithdrawBalanceService moves a member's whole withdrawable balance to the
// configured recipient once it is worth at least the configured minimum.
type WithdrawBalanceService struct {
	connector WalletConnector
	stats     MemberStatsFetcher
	notifier  PayoutNotifier
	cfg       domain.WithdrawConfig
	logger    *slog.Logger
}

func NewWithdrawBalanceService(
	connector WalletConnector,
	stats MemberStatsFetcher,
	notifier PayoutNotifier,
	cfg domain.WithdrawConfig,
	logger *slog.Logger,
) *WithdrawBalanceService {
	return &WithdrawBalanceService{
		connector: connector,
		stats:     stats,
		notifier:  notifier,
		cfg:       cfg,
		logger:    logger,
	}
}

// Withdraw returns an error for authentication, data union resolution and
// signing faults. Every other terminal state is a vo.WithdrawOutcome.
func (s *WithdrawBalanceService) Withdraw(ctx context.Context, privateKey string) (vo.WithdrawOutcome, error) {
	if strings.TrimSpace(privateKey) == "" {
		s.logger.Warn("no member secret key supplied, nothing to withdraw")
		return vo.NoCredential{}, nil
	}

	wallet, err := s.connector.Connect(ctx, privateKey)
	if err != nil {
		return nil, fmt.Errorf("services: failed to authenticate member: %w", err)
	}

	from, err := wallet.Address(ctx)
	if err != nil {
		return nil, fmt.Errorf("services: failed to derive member address: %w", err)
	}

	dataUnion, err := wallet.DataUnion(ctx, s.cfg.ContractAddress)
	if err != nil {
		return nil, fmt.Errorf("services: failed to resolve data union %s: %w", s.cfg.ContractAddress, err)
	}

	envelope := s.stats.Fetch(ctx, dataUnion, from)
	if !envelope.Found() {
		return vo.NewStatsUnavailable(from, envelope.Error), nil
	}
	stats := *envelope.Stats

	if !stats.Fiat.Available() {
		return vo.NewPriceUnavailable(from, stats), nil
	}

	if stats.Fiat.Amount.LessThan(s.cfg.MinimumAmount) {
		s.logger.Info("withdrawable amount below minimum",
			"from", from,
			"amount", stats.Fiat.Amount.String(),
			"minimum", s.cfg.MinimumAmount.String(),
			"currency", stats.Fiat.Currency,
		)
		reason := fmt.Sprintf("minimum amount to withdraw is %s %s", s.cfg.MinimumAmount.String(), stats.Fiat.Currency)
		return vo.NewRejected(reason, stats), nil
	}

	signature, err := dataUnion.SignWithdrawAllTo(ctx, s.cfg.RecipientAddress)
	if err != nil {
		return nil, fmt.Errorf("services: failed to sign withdrawal: %w", err)
	}

	receipt, err := dataUnion.WithdrawAllToSigned(ctx, from, s.cfg.RecipientAddress, signature, domain.WithdrawOptions{
		SendToMainnet: s.cfg.SendToMainnet,
	})
	if err != nil {
		s.logger.Error("withdraw submission failed", "from", from, "recipient", s.cfg.RecipientAddress, "error", err)
		return vo.NewSubmissionFailed(err, stats, from, s.cfg.RecipientAddress), nil
	}

	if strings.EqualFold(receipt.From, from) && receipt.TransactionHash != "" {
		if err := s.notifier.Notify(ctx, receipt, stats); err != nil {
			s.logger.Warn("withdrawal confirmed but payout notification failed", "tx_hash", receipt.TransactionHash, "error", err)
		}
	} else {
		s.logger.Warn("receipt does not match member, payout not notified",
			"from", from,
			"receipt_from", receipt.From,
			"tx_hash", receipt.TransactionHash,
		)
	}

	s.logger.Info("withdrawal completed", "from", from, "tx_hash", receipt.TransactionHash)
	return vo.NewSuccess(signature, from, receipt), nil
}
