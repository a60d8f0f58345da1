package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"olexsmir.xyz/timesince/internal/humanize"
)

func (c Config) validate() error {
	var errs []error

	if err := checkPort(c.Server.Port); err != nil {
		errs = append(errs, fmt.Errorf("server.port %w", err))
	}

	if strings.Contains(c.Meta.Host, "://") {
		errs = append(errs, errors.New("meta.host shouldn't include protocol"))
	}

	if c.Humanize.Depth < 1 {
		errs = append(errs, fmt.Errorf("humanize.depth must be greater than 0, got %d", c.Humanize.Depth))
	}

	if _, err := c.Humanize.Location(); err != nil {
		errs = append(errs, fmt.Errorf("humanize.timezone: %w", err))
	}

	for name, tc := range c.Humanize.Templates {
		if _, err := humanize.ParseUnit(name); err != nil {
			errs = append(errs, fmt.Errorf("humanize.templates: %w", err))
			continue
		}
		if err := checkFormat(tc.One); err != nil {
			errs = append(errs, fmt.Errorf("humanize.templates.%s.one %w", name, err))
		}
		if err := checkFormat(tc.Other); err != nil {
			errs = append(errs, fmt.Errorf("humanize.templates.%s.other %w", name, err))
		}
	}

	if _, err := time.ParseDuration(c.Cache.RepoList); err != nil {
		errs = append(errs, fmt.Errorf("cache.repo_list: invalid duration format: %w", err))
	}

	if _, err := time.ParseDuration(c.Cache.Log); err != nil {
		errs = append(errs, fmt.Errorf("cache.log: invalid duration format: %w", err))
	}

	return errors.Join(errs...)
}

// ValidateRepoDir is checked only by commands that read repositories.
func (c Config) ValidateRepoDir() error {
	if !isDirExists(c.Repo.Dir) {
		return fmt.Errorf("repo.dir seems to be an invalid path")
	}
	return nil
}

func checkPort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("must be between 1 and 65535, got %d", port)
	}
	return nil
}

func checkFormat(f string) error {
	rest := strings.ReplaceAll(f, "%%", "")
	if strings.Count(rest, "%d") != 1 || strings.Count(rest, "%") != 1 {
		return fmt.Errorf("must contain exactly one %%d verb, got %q", f)
	}
	return nil
}
