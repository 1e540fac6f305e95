package api

import (
	"github.com/transitflow/transitflow/pkg/config"
	"github.com/transitflow/transitflow/pkg/dataset"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the core web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Usage: "listen target for the web server, overrides TRANSITFLOW_LISTEN",
					},
				},
				Action: func(c *cli.Context) error {
					cfg := config.Load()

					ds, err := dataset.Load()
					if err != nil {
						return err
					}

					listen := c.String("listen")
					if listen == "" {
						listen = cfg.Listen
					}

					return NewServer(cfg, ds).Listen(listen)
				},
			},
		},
	}
}
