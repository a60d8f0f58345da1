package git

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const configSection = "timesince"

func (g *Repo) IsPrivate() (bool, error) {
	v, err := g.readOption("private")
	if err != nil {
		return false, err
	}
	return v == "true", nil
}

// SetPrivate marks the repo as hidden from the web listing.
func (g *Repo) SetPrivate(private bool) error {
	return g.setOption("private", fmt.Sprint(private))
}

const defaultDescription = "Unnamed repository; edit this file 'description' to name the repository"

func (g *Repo) Description() (string, error) {
	path := g.descriptionPath()
	if _, err := os.Stat(path); err != nil {
		return "", nil
	}

	d, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read description file: %w", err)
	}

	desc := strings.TrimSpace(string(d))
	if strings.Contains(desc, defaultDescription) {
		return "", nil
	}
	return desc, nil
}

func (g *Repo) SetDescription(desc string) error {
	return os.WriteFile(g.descriptionPath(), []byte(desc), 0o644)
}

// descriptionPath handles both bare repos and ones with a worktree.
func (g *Repo) descriptionPath() string {
	dotgit := filepath.Join(g.path, ".git")
	if i, err := os.Stat(dotgit); err == nil && i.IsDir() {
		return filepath.Join(dotgit, "description")
	}
	return filepath.Join(g.path, "description")
}

func (g *Repo) readOption(key string) (string, error) {
	c, err := g.r.Config()
	if err != nil {
		return "", fmt.Errorf("failed to read config: %w", err)
	}
	return c.Raw.Section(configSection).Options.Get(key), nil
}

func (g *Repo) setOption(key, value string) error {
	c, err := g.r.Config()
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	c.Raw.Section(configSection).SetOption(key, value)
	return g.r.SetConfig(c)
}
