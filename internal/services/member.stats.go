package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/joshuarp/dataunion-withdraw/internal/domain"
	"github.com/joshuarp/dataunion-withdraw/internal/domain/vo"
	"github.com/joshuarp/dataunion-withdraw/internal/shared/fixedpoint"
)

type FiatConverter interface {
	Convert(ctx context.Context, tokenAmount decimal.Decimal) domain.FiatConversion
}

type MemberStatsService struct {
	fiat   FiatConverter
	logger *slog.Logger
}

func NewMemberStatsService(fiat FiatConverter, logger *slog.Logger) *MemberStatsService {
	return &MemberStatsService{fiat: fiat, logger: logger}
}

func (s *MemberStatsService) Fetch(ctx context.Context, dataUnion domain.DataUnion, member string) vo.MemberStatsEnvelope {
	raw, err := dataUnion.MemberStats(ctx, member)
	if err != nil {
		s.logger.Warn("member stats unavailable", "member", member, "data_union", dataUnion.Address(), "error", err)
		return vo.MemberStatsNotFound(err)
	}

	stats, err := normalizeMemberStats(raw)
	if err != nil {
		s.logger.Warn("member stats malformed", "member", member, "error", err)
		return vo.MemberStatsNotFound(err)
	}

	stats.Fiat = s.fiat.Convert(ctx, stats.WithdrawableEarnings)
	return vo.MemberStatsFound(stats)
}

func normalizeMemberStats(raw domain.RawMemberStats) (domain.MemberStats, error) {
	beforeLastJoin, err := fixedpoint.TokenAmount(raw.EarningsBeforeLastJoin)
	if err != nil {
		return domain.MemberStats{}, fmt.Errorf("earnings before last join: %w", err)
	}
	total, err := fixedpoint.TokenAmount(raw.TotalEarnings)
	if err != nil {
		return domain.MemberStats{}, fmt.Errorf("total earnings: %w", err)
	}
	withdrawable, err := fixedpoint.TokenAmount(raw.WithdrawableEarnings)
	if err != nil {
		return domain.MemberStats{}, fmt.Errorf("withdrawable earnings: %w", err)
	}

	return domain.MemberStats{
		Status:                 raw.Status,
		EarningsBeforeLastJoin: beforeLastJoin,
		TotalEarnings:          total,
		WithdrawableEarnings:   withdrawable,
	}, nil
}
