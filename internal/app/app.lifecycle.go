package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"go.uber.org/fx"

	"github.com/joshuarp/dataunion-withdraw/internal/domain"
	"github.com/joshuarp/dataunion-withdraw/internal/handlers"
	"github.com/joshuarp/dataunion-withdraw/internal/services"
	"github.com/joshuarp/dataunion-withdraw/internal/shared/config"
	sharedlog "github.com/joshuarp/dataunion-withdraw/internal/shared/log"
	"github.com/joshuarp/dataunion-withdraw/internal/shared/uid"
)

func registerLifecycle(
	lifecycle fx.Lifecycle,
	clients chainClientsIn,
	settings domain.WithdrawConfig,
	logger *slog.Logger,
) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			chainID, err := clients.Sidechain.ChainID(ctx)
			if err != nil {
				return fmt.Errorf("app: side chain %s is unreachable: %w", settings.Chain.SidechainRPCURL, err)
			}
			logger.Info("connected to side chain", "chain_id", chainID.String(), "data_union", settings.ContractAddress)

			if clients.Mainchain != nil {
				mainchainID, err := clients.Mainchain.ChainID(ctx)
				if err != nil {
					return fmt.Errorf("app: main chain %s is unreachable: %w", settings.Chain.MainnetRPCURL, err)
				}
				logger.Info("connected to main chain", "chain_id", mainchainID.String())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			clients.Sidechain.Close()
			if clients.Mainchain != nil {
				clients.Mainchain.Close()
			}
			logger.Debug("chain connections closed")
			return nil
		},
	})
}

type withdrawJobIn struct {
	fx.In

	Handler   *handlers.WithdrawBalanceHandler
	Settings  domain.WithdrawConfig
	MemberKey string `name:"member_secret_key"`
	RunID     string `name:"run_id"`
	Logger    *slog.Logger
}

type withdrawJob struct {
	handler   *handlers.WithdrawBalanceHandler
	memberKey string
	runID     string
	settings  domain.WithdrawConfig
	logger    *slog.Logger
}

func newWithdrawJob(in withdrawJobIn) *withdrawJob {
	return &withdrawJob{
		handler:   in.Handler,
		memberKey: in.MemberKey,
		runID:     in.RunID,
		settings:  in.Settings,
		logger:    in.Logger,
	}
}

func (j *withdrawJob) Run(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, j.settings.JobTimeout)
	defer cancel()
	ctx = uid.WithRunID(ctx, j.runID)

	j.logger.Info("withdrawal job started",
		"data_union", j.settings.ContractAddress,
		"recipient", j.settings.RecipientAddress,
		"send_to_mainnet", j.settings.SendToMainnet,
		"payout_mode", string(j.settings.Payout.Mode),
		"data_union_secret", sharedlog.Mask(j.settings.DataUnionSecret),
	)

	code, err := j.handler.Handle(ctx, j.memberKey)
	j.logger.Info("withdrawal job finished", "exit_code", code)
	return code, err
}

// Run builds the application, executes one withdrawal and tears everything
// down again. The returned code is the process exit code.
func Run(ctx context.Context, opts Options, out io.Writer) (int, error) {
	cfg, err := provideConfig(opts)
	if err != nil {
		return handlers.ExitFault, err
	}

	if strings.TrimSpace(provideMemberSecretKey(cfg)) == "" {
		return runWithoutCredential(ctx, cfg, out)
	}

	var job *withdrawJob
	fxApp := New(cfg, out, fx.Populate(&job))
	if err := fxApp.Err(); err != nil {
		return handlers.ExitFault, err
	}

	startCtx, cancelStart := context.WithTimeout(ctx, fxApp.StartTimeout())
	defer cancelStart()
	if err := fxApp.Start(startCtx); err != nil {
		return handlers.ExitFault, err
	}

	code, runErr := job.Run(ctx)

	stopCtx, cancelStop := context.WithTimeout(context.Background(), fxApp.StopTimeout())
	defer cancelStop()
	if err := fxApp.Stop(stopCtx); err != nil {
		job.logger.Warn("shutdown did not complete cleanly", "error", err)
	}

	return code, runErr
}

// runWithoutCredential answers a run with no member key. Nothing is validated
// or dialled, so a half-configured host still reports a clean no-op.
func runWithoutCredential(ctx context.Context, cfg config.ConfigProvider, out io.Writer) (int, error) {
	logger := sharedlog.NewJSONLogger(lookupString(cfg, "logging.level", "LOG_LEVEL", "info"))
	service := services.NewWithdrawBalanceService(nil, nil, nil, domain.WithdrawConfig{}, logger)
	return handlers.NewWithdrawBalanceHandler(service, out, logger).Handle(ctx, "")
}
