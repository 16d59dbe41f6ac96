package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/joshuarp/dataunion-withdraw/internal/app"
	"github.com/joshuarp/dataunion-withdraw/internal/handlers"
)

var version = "dev"

var (
	configFlag = &cli.StringFlag{
		Name:    "config",
		Usage:   "path to the yaml config file",
		EnvVars: []string{"WITHDRAW_CONFIG"},
	}
	envFlag = &cli.StringFlag{
		Name:  "env",
		Usage: "path to a .env file, read when no yaml file is given",
	}
	logLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Usage: "debug, info, warn or error",
	}
	sendToMainnetFlag = &cli.BoolFlag{
		Name:  "send-to-mainnet",
		Usage: "bridge the withdrawn tokens to the main chain",
	}
)

func main() {
	cliApp := &cli.App{
		Name:    "withdraw-job",
		Usage:   "withdraw a data union member's earnings once they are worth the configured minimum",
		Version: version,
		Flags:   []cli.Flag{configFlag, envFlag, logLevelFlag, sendToMainnetFlag},
		Action:  withdrawAction,
	}

	if err := cliApp.Run(os.Args); err != nil {
		cli.HandleExitCoder(cli.Exit(err.Error(), handlers.ExitFault))
	}
}

func withdrawAction(ctx *cli.Context) error {
	opts := app.Options{
		ConfigPath: ctx.String(configFlag.Name),
		EnvPath:    ctx.String(envFlag.Name),
		Overrides:  map[string]any{},
	}
	if ctx.IsSet(logLevelFlag.Name) {
		opts.Overrides["logging.level"] = ctx.String(logLevelFlag.Name)
	}
	if ctx.IsSet(sendToMainnetFlag.Name) {
		opts.Overrides["dataunion.send_to_mainnet"] = ctx.Bool(sendToMainnetFlag.Name)
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code, err := app.Run(runCtx, opts, ctx.App.Writer)
	if err != nil {
		return cli.Exit(err.Error(), code)
	}
	if code != handlers.ExitOK {
		return cli.Exit("", code)
	}
	return nil
}
