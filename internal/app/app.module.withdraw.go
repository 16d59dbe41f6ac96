package app

import (
	"go.uber.org/fx"

	"github.com/joshuarp/dataunion-withdraw/internal/handlers"
	"github.com/joshuarp/dataunion-withdraw/internal/repository"
	"github.com/joshuarp/dataunion-withdraw/internal/services"
)

func WithdrawModule() fx.Option {
	return fx.Module("withdraw",
		fx.Provide(
			fx.Annotate(
				repository.NewMarketKlineRepository,
				fx.As(new(services.MarketKlineRepository)),
			),
			fx.Annotate(
				repository.NewHTTPPayoutSender,
				fx.As(new(services.PayoutSender)),
			),
			fx.Annotate(
				services.NewFiatConversionService,
				fx.As(new(services.FiatConverter)),
			),
			fx.Annotate(
				services.NewMemberStatsService,
				fx.As(new(services.MemberStatsFetcher)),
			),
			fx.Annotate(
				services.NewPayoutNotifierService,
				fx.As(new(services.PayoutNotifier)),
			),
			fx.Annotate(
				services.NewWithdrawBalanceService,
				fx.As(new(handlers.BalanceWithdrawService)),
			),
			handlers.NewWithdrawBalanceHandler,
			newWithdrawJob,
		),
	)
}
