package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/fx"

	"github.com/joshuarp/dataunion-withdraw/internal/domain"
	"github.com/joshuarp/dataunion-withdraw/internal/repository"
	"github.com/joshuarp/dataunion-withdraw/internal/services"
)

type chainClientsIn struct {
	fx.In

	Sidechain *ethclient.Client `name:"sidechain"`
	Mainchain *ethclient.Client `name:"mainchain" optional:"true"`
}

func ChainModule() fx.Option {
	return fx.Module("chain",
		fx.Provide(
			fx.Annotate(
				provideSidechainClient,
				fx.ResultTags(`name:"sidechain"`),
			),
			fx.Annotate(
				provideMainchainClient,
				fx.ResultTags(`name:"mainchain"`),
			),
			fx.Annotate(
				provideEthereumConnector,
				fx.As(new(services.WalletConnector)),
			),
		),
	)
}

func provideSidechainClient(settings domain.WithdrawConfig) (*ethclient.Client, error) {
	return dialChain(settings, "sidechain", settings.Chain.SidechainRPCURL)
}

// provideMainchainClient returns nil when no main-chain endpoint is configured.
func provideMainchainClient(settings domain.WithdrawConfig) (*ethclient.Client, error) {
	if settings.Chain.MainnetRPCURL == "" {
		return nil, nil
	}
	return dialChain(settings, "mainchain", settings.Chain.MainnetRPCURL)
}

func dialChain(settings domain.WithdrawConfig, name, url string) (*ethclient.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), settings.HTTPTimeout)
	defer cancel()

	rpcClient, err := ethclient.DialContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("chain(%s): failed to dial %s: %w", name, url, err)
	}
	return rpcClient, nil
}

func provideEthereumConnector(in chainClientsIn, settings domain.WithdrawConfig, logger *slog.Logger) (*repository.EthereumConnector, error) {
	var mainchain repository.ChainBackend
	if in.Mainchain != nil {
		mainchain = in.Mainchain
	}
	return repository.NewEthereumConnector(in.Sidechain, mainchain, settings, logger)
}
