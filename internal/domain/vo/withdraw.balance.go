package vo

import (
	"net/http"

	"github.com/joshuarp/dataunion-withdraw/internal/domain"
)

// WithdrawOutcome is the result of one withdrawal run. The concrete types in
// this file are the only implementations.
type WithdrawOutcome interface {
	StatusCode() int
	withdrawOutcome()
}

// NoCredential means the job ran without a member key and did nothing.
type NoCredential struct{}

// StatsUnavailable means the data union could not report the member's earnings.
type StatsUnavailable struct {
	Status int    `json:"status"`
	Error  string `json:"error"`
	From   string `json:"from"`
}

// PriceUnavailable means no market price was available to check the threshold.
type PriceUnavailable struct {
	Status int                `json:"status"`
	Error  string             `json:"error"`
	Stats  domain.MemberStats `json:"memberStats"`
	From   string             `json:"from"`
}

// Rejected means the withdrawable amount is below the configured minimum.
type Rejected struct {
	Status int                `json:"status"`
	Error  string             `json:"error"`
	Stats  domain.MemberStats `json:"memberStats"`
}

// SubmissionFailed carries everything gathered before the chain refused the transaction.
type SubmissionFailed struct {
	Status           int                `json:"status"`
	Exception        string             `json:"exception"`
	Stats            domain.MemberStats `json:"memberStats"`
	From             string             `json:"from"`
	RecipientAddress string             `json:"recipientAddress"`
}

type Success struct {
	Status    int                    `json:"status"`
	Signature string                 `json:"signature"`
	From      string                 `json:"from"`
	Receipt   domain.WithdrawReceipt `json:"receipt"`
}

func NewStatsUnavailable(from, reason string) StatsUnavailable {
	return StatsUnavailable{Status: http.StatusNotFound, Error: reason, From: from}
}

func NewPriceUnavailable(from string, stats domain.MemberStats) PriceUnavailable {
	return PriceUnavailable{Status: http.StatusServiceUnavailable, Error: stats.Fiat.Reason, Stats: stats, From: from}
}

func NewRejected(reason string, stats domain.MemberStats) Rejected {
	return Rejected{Status: http.StatusConflict, Error: reason, Stats: stats}
}

func NewSubmissionFailed(err error, stats domain.MemberStats, from, recipient string) SubmissionFailed {
	return SubmissionFailed{
		Status:           http.StatusInternalServerError,
		Exception:        err.Error(),
		Stats:            stats,
		From:             from,
		RecipientAddress: recipient,
	}
}

func NewSuccess(signature, from string, receipt domain.WithdrawReceipt) Success {
	return Success{Status: http.StatusOK, Signature: signature, From: from, Receipt: receipt}
}

func (NoCredential) StatusCode() int       { return 0 }
func (o StatsUnavailable) StatusCode() int { return o.Status }
func (o PriceUnavailable) StatusCode() int { return o.Status }
func (o Rejected) StatusCode() int         { return o.Status }
func (o SubmissionFailed) StatusCode() int { return o.Status }
func (o Success) StatusCode() int          { return o.Status }

func (NoCredential) withdrawOutcome()     {}
func (StatsUnavailable) withdrawOutcome() {}
func (PriceUnavailable) withdrawOutcome() {}
func (Rejected) withdrawOutcome()         {}
func (SubmissionFailed) withdrawOutcome() {}
func (Success) withdrawOutcome()          {}
