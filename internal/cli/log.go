package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v3"
	"olexsmir.xyz/timesince/internal/git"
	"olexsmir.xyz/timesince/internal/humanize"
)

func (c *Cli) logAction(ctx context.Context, cmd *cli.Command) error {
	name := cmd.StringArg("name")
	if name == "" {
		return fmt.Errorf("no name provided")
	}

	if err := c.cfg.ValidateRepoDir(); err != nil {
		return err
	}

	repo, err := c.openRepo(name, cmd.String("ref"))
	if err != nil {
		return err
	}

	commits, err := repo.Commits(int(cmd.Int("limit")))
	if err != nil {
		return err
	}

	opts, err := c.cfg.Humanize.Options()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	for _, commit := range commits {
		age, err := humanize.Since(commit.When, opts...)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%s ago\t%s\n", commit.ShortHash(), age, commit.Summary())
	}
	return tw.Flush()
}

func (c *Cli) openRepo(name, ref string) (*git.Repo, error) {
	path, err := git.Locate(c.cfg.Repo.Dir, name)
	if err != nil {
		return nil, err
	}

	repo, err := git.Open(path, ref)
	if err != nil {
		return nil, fmt.Errorf("failed to open repo: %w", err)
	}

	return repo, nil
}
