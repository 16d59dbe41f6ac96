package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/joshuarp/dataunion-withdraw/internal/domain"
	"github.com/joshuarp/dataunion-withdraw/internal/domain/vo"
	sharedlog "github.com/joshuarp/dataunion-withdraw/internal/shared/log"
)

type PayoutSender interface {
	Send(ctx context.Context, notification domain.PayoutNotification) error
}

// PayoutNotifierService reports a completed withdrawal to the payout service.
// In log mode the report is only written to the job log.
type PayoutNotifierService struct {
	sender PayoutSender
	cfg    domain.PayoutConfig
	logger *slog.Logger
}

func NewPayoutNotifierService(sender PayoutSender, cfg domain.WithdrawConfig, logger *slog.Logger) *PayoutNotifierService {
	return &PayoutNotifierService{sender: sender, cfg: cfg.Payout, logger: logger}
}

func (s *PayoutNotifierService) Notify(ctx context.Context, receipt domain.WithdrawReceipt, stats domain.MemberStats) error {
	notification := domain.PayoutNotification{
		Amount:          stats.Fiat.Amount.String(),
		Secret:          s.cfg.Secret,
		EthAddress:      receipt.From,
		EthAddressCamel: receipt.From,
		TransactionHash: receipt.TransactionHash,
	}

	attrs := []any{
		"amount", notification.Amount,
		"currency", stats.Fiat.Currency,
		"eth_address", notification.EthAddress,
		"tx_hash", notification.TransactionHash,
		"secret", sharedlog.Mask(notification.Secret),
	}

	if s.cfg.Mode != domain.PayoutModeHTTP {
		s.logger.Info("payout notification", attrs...)
		return nil
	}

	if err := s.sender.Send(ctx, notification); err != nil {
		s.logger.Error("payout notification failed", append(attrs, deliveryErrorAttrs(err)...)...)
		return err
	}

	s.logger.Info("payout notification delivered", attrs...)
	return nil
}

// deliveryErrorAttrs logs only the failure details that are actually present.
func deliveryErrorAttrs(err error) []any {
	attrs := []any{"error", err}

	var deliveryErr *vo.PayoutDeliveryError
	if !errors.As(err, &deliveryErr) {
		return attrs
	}
	if deliveryErr.StatusCode != 0 {
		attrs = append(attrs, "response_status", deliveryErr.StatusCode)
	}
	if deliveryErr.Body != "" {
		attrs = append(attrs, "response_body", deliveryErr.Body)
	}
	if deliveryErr.Err != nil {
		attrs = append(attrs, "transport_error", deliveryErr.Err.Error())
	}
	return attrs
}
