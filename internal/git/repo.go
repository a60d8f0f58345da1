package git

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

var ErrPrivate = errors.New("repository is private")

type Repo struct {
	path string
	r    *git.Repository
	h    plumbing.Hash
}

// Commit is the part of a commit that gets humanized.
type Commit struct {
	Hash    string
	Author  string
	Email   string
	Message string
	When    time.Time
}

func newCommit(c *object.Commit) *Commit {
	return &Commit{
		Hash:    c.Hash.String(),
		Author:  c.Author.Name,
		Email:   c.Author.Email,
		Message: c.Message,
		When:    c.Committer.When,
	}
}

// ShortHash returns the first 8 characters of the hash.
func (c *Commit) ShortHash() string {
	if len(c.Hash) < 8 {
		return c.Hash
	}
	return c.Hash[:8]
}

// Summary returns the first line of the commit message.
func (c *Commit) Summary() string {
	before, _, _ := strings.Cut(c.Message, "\n")
	return strings.TrimSuffix(before, "\r")
}

// Open opens a git repository at path. If ref is empty, HEAD is used.
func Open(path string, ref string) (*Repo, error) {
	var err error
	g := Repo{}
	g.path = path
	g.r, err = git.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	if ref == "" {
		head, err := g.r.Head()
		if err != nil {
			return nil, fmt.Errorf("getting head of %s: %w", path, err)
		}
		g.h = head.Hash()
	} else {
		hash, err := g.r.ResolveRevision(plumbing.Revision(ref))
		if err != nil {
			return nil, fmt.Errorf("resolving rev %s for %s: %w", ref, path, err)
		}
		g.h = *hash
	}
	return &g, nil
}

// OpenPublic is like [Open] but refuses repos marked as private.
func OpenPublic(path string, ref string) (*Repo, error) {
	r, err := Open(path, ref)
	if err != nil {
		return nil, err
	}

	private, err := r.IsPrivate()
	if err != nil {
		return nil, err
	}
	if private {
		return nil, fmt.Errorf("%s: %w", r.Name(), ErrPrivate)
	}
	return r, nil
}

func (g *Repo) Name() string {
	return strings.TrimSuffix(filepath.Base(g.path), ".git")
}

// Commits returns up to limit commits reachable from the opened ref, newest
// first. limit <= 0 means all of them.
func (g *Repo) Commits(limit int) ([]*Commit, error) {
	ci, err := g.r.Log(&git.LogOptions{
		From:  g.h,
		Order: git.LogOrderCommitterTime,
	})
	if err != nil {
		return nil, fmt.Errorf("commits from ref: %w", err)
	}

	commits := []*Commit{}
	err = ci.ForEach(func(c *object.Commit) error {
		if limit > 0 && len(commits) >= limit {
			return storer.ErrStop
		}
		commits = append(commits, newCommit(c))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("iterating commits: %w", err)
	}
	return commits, nil
}

func (g *Repo) LastCommit() (*Commit, error) {
	c, err := g.r.CommitObject(g.h)
	if err != nil {
		return nil, fmt.Errorf("last commit: %w", err)
	}
	return newCommit(c), nil
}
