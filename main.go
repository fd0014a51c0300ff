package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"nbtabs/internal/generate"
	"nbtabs/internal/history"
)

func main() {
	app := &cli.App{
		Name:  "nbtabs",
		Usage: "convert Jupyter notebooks into a tabbed HTML report",
		Commands: []*cli.Command{
			{
				Name:  "generate",
				Usage: "convert notebooks and assemble the report",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Value:   "config.yaml",
						Usage:   "path to the report config file",
					},
					&cli.BoolFlag{
						Name:  "execute",
						Usage: "execute notebook cells before converting (overrides config)",
					},
					&cli.BoolFlag{
						Name:    "quiet",
						Aliases: []string{"q"},
						Usage:   "only log errors",
					},
				},
				Action: generate.Action,
			},
			{
				Name:  "history",
				Usage: "list recent report runs",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Value: 10,
						Usage: "maximum number of runs to show",
					},
				},
				Action: history.Action,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
