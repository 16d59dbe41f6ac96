package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/joshuarp/dataunion-withdraw/internal/shared/fixedpoint"
)

type MemberStatus string

const (
	MemberStatusNone     MemberStatus = "NONE"
	MemberStatusActive   MemberStatus = "ACTIVE"
	MemberStatusInactive MemberStatus = "INACTIVE"
)

// RawMemberStats holds earnings as 0x-prefixed hex counts of the token's smallest unit.
type RawMemberStats struct {
	Status                 MemberStatus
	EarningsBeforeLastJoin string
	TotalEarnings          string
	WithdrawableEarnings   string
}

// MemberStats holds earnings in whole tokens, rounded to four fractional digits.
type MemberStats struct {
	Status                 MemberStatus
	EarningsBeforeLastJoin decimal.Decimal
	TotalEarnings          decimal.Decimal
	WithdrawableEarnings   decimal.Decimal
	Fiat                   FiatConversion
}

func (s MemberStats) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Status                 MemberStatus   `json:"status"`
		EarningsBeforeLastJoin string         `json:"earnings_before_last_join"`
		TotalEarnings          string         `json:"total_earnings"`
		WithdrawableEarnings   string         `json:"withdrawable_earnings"`
		Fiat                   FiatConversion `json:"fiat"`
	}{
		Status:                 s.Status,
		EarningsBeforeLastJoin: fixedpoint.Format(s.EarningsBeforeLastJoin),
		TotalEarnings:          fixedpoint.Format(s.TotalEarnings),
		WithdrawableEarnings:   fixedpoint.Format(s.WithdrawableEarnings),
		Fiat:                   s.Fiat,
	})
}
