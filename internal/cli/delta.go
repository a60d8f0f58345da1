package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"
	"olexsmir.xyz/timesince/internal/humanize"
)

func (c *Cli) sinceAction(ctx context.Context, cmd *cli.Command) error {
	return c.delta(cmd)
}

func (c *Cli) untilAction(ctx context.Context, cmd *cli.Command) error {
	return c.delta(cmd, humanize.Reversed())
}

func (c *Cli) delta(cmd *cli.Command, extra ...humanize.Option) error {
	raw := cmd.StringArg("time")
	if raw == "" {
		return errors.New("no time provided")
	}

	loc, err := c.cfg.Humanize.Location()
	if err != nil {
		return err
	}

	dv, err := humanize.Parse(raw, loc)
	if err != nil {
		return err
	}

	opts, err := c.cfg.Humanize.Options()
	if err != nil {
		return err
	}
	opts = append(opts, extra...)

	d := dv.Time()
	if rawNow := cmd.String("now"); rawNow != "" {
		nv, err := humanize.Parse(rawNow, loc)
		if err != nil {
			return fmt.Errorf("--now: %w", err)
		}
		var now time.Time
		d, now = humanize.Instants(dv, nv)
		opts = append(opts, humanize.Now(now))
	}

	if cmd.IsSet("depth") {
		opts = append(opts, humanize.Depth(int(cmd.Int("depth"))))
	}

	out, err := humanize.Delta(d, opts...)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.out, out)
	return nil
}
