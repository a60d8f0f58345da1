package git

import (
	"fmt"
	"os"
	"strings"

	securejoin "github.com/cyphar/filepath-securejoin"
	"github.com/go-git/go-git/v5"
)

// ResolveName appends the .git suffix if it's missing.
func ResolveName(name string) string {
	return strings.TrimSuffix(name, ".git") + ".git"
}

// ResolvePath joins repoName onto baseDir without letting it escape baseDir.
func ResolvePath(baseDir, repoName string) (string, error) {
	path, err := securejoin.SecureJoin(baseDir, repoName)
	if err != nil {
		return "", fmt.Errorf("failed to secure join paths: %w", err)
	}
	return path, nil
}

// Locate finds the repository called name in baseDir. Worktree repositories
// are listed under their directory name, so name is tried as given before
// falling back to the .git suffixed one. If neither opens, the suffixed path
// is returned and opening it reports the error.
func Locate(baseDir, name string) (string, error) {
	if name != "" && name != "." && !strings.HasSuffix(name, ".git") {
		path, err := ResolvePath(baseDir, name)
		if err != nil {
			return "", err
		}
		if _, err := git.PlainOpen(path); err == nil {
			return path, nil
		}
	}
	return ResolvePath(baseDir, ResolveName(name))
}

// List opens every directory in baseDir that is a public repository.
func List(baseDir string) ([]*Repo, error) {
	dirs, err := os.ReadDir(baseDir)
	if err != nil {
		return nil, err
	}

	var repos []*Repo
	for _, dir := range dirs {
		if !dir.IsDir() {
			continue
		}

		path, err := ResolvePath(baseDir, dir.Name())
		if err != nil {
			return nil, err
		}

		repo, err := OpenPublic(path, "")
		if err != nil {
			// not a git repo, an empty one or a private one
			continue
		}
		repos = append(repos, repo)
	}
	return repos, nil
}
