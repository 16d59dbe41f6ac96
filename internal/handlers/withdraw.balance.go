package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/joshuarp/dataunion-withdraw/internal/domain/vo"
)

// Process exit codes reported by the job.
const (
	ExitOK      = 0
	ExitFault   = 1
	ExitOutcome = 2
)

type BalanceWithdrawService interface {
	Withdraw(ctx context.Context, privateKey string) (vo.WithdrawOutcome, error)
}

// WithdrawBalanceHandler runs one withdrawal and prints its outcome as JSON.
type WithdrawBalanceHandler struct {
	service BalanceWithdrawService
	out     io.Writer
	logger  *slog.Logger
}

func NewWithdrawBalanceHandler(service BalanceWithdrawService, out io.Writer, logger *slog.Logger) *WithdrawBalanceHandler {
	return &WithdrawBalanceHandler{service: service, out: out, logger: logger}
}

// Handle returns the exit code for the run. The error is non-nil only for
// faults, in which case nothing is printed.
func (h *WithdrawBalanceHandler) Handle(ctx context.Context, privateKey string) (int, error) {
	outcome, err := h.service.Withdraw(ctx, privateKey)
	if err != nil {
		switch {
		case errors.Is(err, vo.ErrDataUnionNotFound):
			h.logger.Error("data union contract is not deployed", "error", err)
		case errors.Is(err, vo.ErrNotMember):
			h.logger.Error("member cannot withdraw from this data union", "error", err)
		case errors.Is(err, context.DeadlineExceeded):
			h.logger.Error("withdrawal timed out", "error", err)
		default:
			h.logger.Error("withdrawal failed", "error", err)
		}
		return ExitFault, err
	}

	if err := h.render(outcome); err != nil {
		return ExitFault, fmt.Errorf("handlers: failed to render outcome: %w", err)
	}

	return exitCode(outcome), nil
}

func (h *WithdrawBalanceHandler) render(outcome vo.WithdrawOutcome) error {
	if _, ok := outcome.(vo.NoCredential); ok {
		_, err := io.WriteString(h.out, "null\n")
		return err
	}

	body, err := json.MarshalIndent(outcome, "", "  ")
	if err != nil {
		return err
	}
	_, err = h.out.Write(append(body, '\n'))
	return err
}

func exitCode(outcome vo.WithdrawOutcome) int {
	switch outcome.(type) {
	case vo.NoCredential, vo.Rejected, vo.Success:
		return ExitOK
	case vo.StatsUnavailable, vo.PriceUnavailable, vo.SubmissionFailed:
		return ExitOutcome
	default:
		return ExitFault
	}
}
