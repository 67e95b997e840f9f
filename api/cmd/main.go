package main

import (
	"os"

	"Forkful/api"
	"Forkful/api/config"
	"Forkful/api/logging"

	"github.com/urfave/cli/v2"
)

func main() {
	cfg := config.Load()

	app := &cli.App{
		Name:  "forkful",
		Usage: "restaurant reviews API",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					return api.Run(ctx.Context, cfg)
				},
			},
			{
				Name:  "seed",
				Usage: "drop all tables and load development data",
				Action: func(ctx *cli.Context) error {
					if cfg.Production() {
						return cli.Exit("refusing to seed a production database", 1)
					}
					return api.Seed(ctx.Context, cfg)
				},
			},
		},
		DefaultCommand: "serve",
	}
	if err := app.Run(os.Args); err != nil {
		logging.L().Fatal().Err(err).Msg("forkful exited")
	}
}
