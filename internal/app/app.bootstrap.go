package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3/client"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/joshuarp/dataunion-withdraw/internal/domain"
	"github.com/joshuarp/dataunion-withdraw/internal/middlewares"
	"github.com/joshuarp/dataunion-withdraw/internal/shared/config"
	sharedjwt "github.com/joshuarp/dataunion-withdraw/internal/shared/jwt"
	sharedlog "github.com/joshuarp/dataunion-withdraw/internal/shared/log"
	"github.com/joshuarp/dataunion-withdraw/internal/shared/uid"
)

const (
	payoutTokenIssuer = "dataunion-withdraw"
	payoutTokenTTL    = 5 * time.Minute
)

// Options carries what the command line decided before configuration is read.
type Options struct {
	ConfigPath string
	EnvPath    string

	// Overrides are applied on top of the loaded configuration, keyed by yaml key.
	Overrides map[string]any
}

type runIDIn struct {
	fx.In
	RunID string `name:"run_id"`
}

// New wires the withdrawal graph around an already loaded configuration.
func New(cfg config.ConfigProvider, out io.Writer, extra ...fx.Option) *fx.App {
	fxOpts := []fx.Option{
		fx.Provide(func() config.ConfigProvider { return cfg }),
		fx.Provide(func() io.Writer { return out }),
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			fxLogger := &fxevent.SlogLogger{Logger: logger}
			fxLogger.UseLogLevel(slog.LevelDebug)
			return fxLogger
		}),
		CoreModule(),
		ChainModule(),
		WithdrawModule(),
		fx.Invoke(registerLifecycle),
	}
	fxOpts = append(fxOpts, extra...)
	return fx.New(fxOpts...)
}

func CoreModule() fx.Option {
	return fx.Module("core",
		fx.Provide(
			fx.Annotate(
				provideRunID,
				fx.ResultTags(`name:"run_id"`),
			),
			provideLogger,
			provideWithdrawConfig,
			fx.Annotate(
				provideMemberSecretKey,
				fx.ResultTags(`name:"member_secret_key"`),
			),
			provideHTTPClient,
			providePayoutSigner,
		),
	)
}

func provideConfig(opts Options) (config.ConfigProvider, error) {
	loadOrder := []config.Options{
		{YAMLPath: "config.yaml", EnvPath: ".env"},
		{YAMLPath: "config.yaml.example", EnvPath: ".env.example", AllowProcessEnv: true},
	}
	if opts.ConfigPath != "" || opts.EnvPath != "" {
		loadOrder = []config.Options{{YAMLPath: opts.ConfigPath, EnvPath: opts.EnvPath}}
	}

	var (
		provider config.ConfigProvider
		lastErr  error
	)
	for _, candidate := range loadOrder {
		loaded, err := config.Init(candidate)
		if err == nil {
			provider = loaded
			break
		}
		lastErr = err
	}
	if provider == nil {
		return nil, lastErr
	}

	for key, value := range opts.Overrides {
		provider.Set(key, value)
	}

	return provider, nil
}

func provideRunID(cfg config.ConfigProvider) (string, error) {
	strategy, err := uid.ParseStrategy(lookupString(cfg, "run_id.strategy", "RUN_ID_STRATEGY", ""))
	if err != nil {
		return "", fmt.Errorf("app: %w", err)
	}

	generator, err := uid.New(uid.Options{
		Strategy: strategy,
		NodeID:   int64(lookupInt(cfg, "run_id.node_id", "RUN_ID_NODE_ID", 0)),
	})
	if err != nil {
		return "", fmt.Errorf("app: failed to init run id generator: %w", err)
	}

	return generator.Generate(context.Background())
}

func provideLogger(cfg config.ConfigProvider, in runIDIn) *slog.Logger {
	level := lookupString(cfg, "logging.level", "LOG_LEVEL", "info")
	return sharedlog.NewJSONLogger(level).With("run_id", in.RunID)
}

func provideMemberSecretKey(cfg config.ConfigProvider) string {
	return lookupString(cfg, "member.secret_key", "MEMBER_SECRET_KEY", "")
}

func provideHTTPClient(settings domain.WithdrawConfig, logger *slog.Logger) *client.Client {
	return client.New().
		SetTimeout(settings.HTTPTimeout).
		SetUserAgent(payoutTokenIssuer).
		AddRequestHook(middlewares.NewHTTPClientRequestIDHook()).
		AddResponseHook(middlewares.NewHTTPClientLogHook(logger))
}

// providePayoutSigner yields a nil Signer when no payout secret is configured,
// in which case notifications are sent without a bearer token.
func providePayoutSigner(settings domain.WithdrawConfig) (sharedjwt.Signer, error) {
	if settings.Payout.Secret == "" {
		return nil, nil
	}

	signer, err := sharedjwt.New(sharedjwt.Options{
		Strategy:  sharedjwt.StrategyHMAC,
		Secret:    []byte(settings.Payout.Secret),
		Algorithm: "HS256",
		Issuer:    payoutTokenIssuer,
		TTL:       payoutTokenTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("app: failed to init payout token signer: %w", err)
	}

	return signer, nil
}
