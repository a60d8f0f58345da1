package cli

import (
	"context"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"olexsmir.xyz/timesince/internal/config"
)

type Cli struct {
	version string
	cfg     *config.Config
	out     io.Writer
}

func New(version string) *Cli {
	return &Cli{version: version, out: os.Stdout}
}

func (c *Cli) Run(ctx context.Context, args []string) error {
	deltaFlags := func() []cli.Flag {
		return []cli.Flag{
			&cli.StringFlag{
				Name:  "now",
				Usage: "the other point in time, defaults to the current time",
			},
			&cli.IntFlag{
				Name:    "depth",
				Aliases: []string{"d"},
				Usage:   "how many adjacent units to show",
			},
		}
	}

	cmd := &cli.Command{
		Name:                  "timesince",
		Usage:                 "human readable time between two points in time",
		Version:               c.version,
		EnableShellCompletion: true,
		Writer:                c.out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to config file",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			loadedCfg, err := config.Load(cmd.String("config"))
			if err != nil {
				return ctx, err
			}
			c.cfg = loadedCfg
			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:   "since",
				Usage:  "time elapsed since the given time",
				Action: c.sinceAction,
				Flags:  deltaFlags(),
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "time"},
				},
			},
			{
				Name:   "until",
				Usage:  "time remaining until the given time",
				Action: c.untilAction,
				Flags:  deltaFlags(),
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "time"},
				},
			},
			{
				Name:   "log",
				Usage:  "show commits of a repo with their age",
				Action: c.logAction,
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "name"},
				},
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Usage: "number of commits to show",
						Value: 20,
					},
					&cli.StringFlag{
						Name:  "ref",
						Usage: "revision to start from, defaults to HEAD",
					},
				},
			},
			{
				Name:   "serve",
				Usage:  "starts the server",
				Action: c.serveAction,
			},
		},
	}
	return cmd.Run(ctx, args)
}
