package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"olexsmir.xyz/x/is"
)

var epoch = time.Date(2024, time.January, 31, 12, 0, 0, 0, time.UTC)

// initRepo creates a repo with one empty commit per entry of when.
func initRepo(t *testing.T, path string, when ...time.Time) {
	t.Helper()
	r, err := git.PlainInit(path, false)
	is.Err(t, err, nil)

	wt, err := r.Worktree()
	is.Err(t, err, nil)

	for i, w := range when {
		sig := &object.Signature{Name: "Tester", Email: "tester@example.com", When: w}
		_, err := wt.Commit("commit "+string(rune('a'+i))+"\n\nbody", &git.CommitOptions{
			Author:            sig,
			Committer:         sig,
			AllowEmptyCommits: true,
		})
		is.Err(t, err, nil)
	}
}

func TestRepo_Commits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.git")
	initRepo(t, path, epoch, epoch.AddDate(0, 1, 0), epoch.AddDate(0, 1, 3))

	r, err := Open(path, "")
	is.Err(t, err, nil)
	is.Equal(t, r.Name(), "demo")

	commits, err := r.Commits(0)
	is.Err(t, err, nil)
	is.Equal(t, len(commits), 3)
	is.Equal(t, commits[0].Summary(), "commit c")
	is.Equal(t, commits[0].When.Equal(epoch.AddDate(0, 1, 3)), true)
	is.Equal(t, commits[2].When.Equal(epoch), true)
	is.Equal(t, len(commits[0].ShortHash()), 8)

	limited, err := r.Commits(2)
	is.Err(t, err, nil)
	is.Equal(t, len(limited), 2)

	last, err := r.LastCommit()
	is.Err(t, err, nil)
	is.Equal(t, last.Hash, commits[0].Hash)
	is.Equal(t, last.Author, "Tester")
}

func TestOpen(t *testing.T) {
	t.Run("not a repo", func(t *testing.T) {
		_, err := Open(t.TempDir(), "")
		is.Err(t, err, "opening")
	})

	t.Run("empty repo", func(t *testing.T) {
		path := t.TempDir()
		initRepo(t, path)
		_, err := Open(path, "")
		is.Err(t, err, "getting head")
	})

	t.Run("unknown ref", func(t *testing.T) {
		path := t.TempDir()
		initRepo(t, path, epoch)
		_, err := Open(path, "nope")
		is.Err(t, err, "resolving rev")
	})
}

func TestOpenPublic(t *testing.T) {
	path := t.TempDir()
	initRepo(t, path, epoch)

	r, err := OpenPublic(path, "")
	is.Err(t, err, nil)
	is.Err(t, r.SetPrivate(true), nil)

	_, err = OpenPublic(path, "")
	is.Err(t, err, ErrPrivate)
}

func TestRepo_Description(t *testing.T) {
	path := t.TempDir()
	initRepo(t, path, epoch)
	r, err := Open(path, "")
	is.Err(t, err, nil)

	desc, err := r.Description()
	is.Err(t, err, nil)
	is.Equal(t, desc, "")

	is.Err(t, r.SetDescription("calendar things\n"), nil)
	desc, err = r.Description()
	is.Err(t, err, nil)
	is.Equal(t, desc, "calendar things")
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	initRepo(t, filepath.Join(dir, "one.git"), epoch)
	initRepo(t, filepath.Join(dir, "two.git"), epoch)
	initRepo(t, filepath.Join(dir, "empty.git"))
	is.Err(t, os.Mkdir(filepath.Join(dir, "plain"), 0o755), nil)
	is.Err(t, os.WriteFile(filepath.Join(dir, "file"), nil, 0o644), nil)

	hidden := filepath.Join(dir, "hidden.git")
	initRepo(t, hidden, epoch)
	r, err := Open(hidden, "")
	is.Err(t, err, nil)
	is.Err(t, r.SetPrivate(true), nil)

	repos, err := List(dir)
	is.Err(t, err, nil)
	is.Equal(t, len(repos), 2)
	is.Equal(t, repos[0].Name(), "one")
	is.Equal(t, repos[1].Name(), "two")
}

func TestResolvePath(t *testing.T) {
	is.Equal(t, ResolveName("demo"), "demo.git")
	is.Equal(t, ResolveName("demo.git"), "demo.git")

	path, err := ResolvePath("/srv/git", "../../etc/passwd")
	is.Err(t, err, nil)
	is.Equal(t, path, "/srv/git/etc/passwd")
}

func TestLocate(t *testing.T) {
	dir := t.TempDir()
	initRepo(t, filepath.Join(dir, "work"), epoch)
	initRepo(t, filepath.Join(dir, "bare.git"), epoch)
	is.Err(t, os.Mkdir(filepath.Join(dir, "both"), 0o755), nil)
	initRepo(t, filepath.Join(dir, "both.git"), epoch)

	tests := []struct {
		name string
		want string
	}{
		{"work", "work"},
		{"bare", "bare.git"},
		{"bare.git", "bare.git"},
		{"both", "both.git"},
		{"missing", "missing.git"},
	}
	for _, tt := range tests {
		path, err := Locate(dir, tt.name)
		is.Err(t, err, nil)
		is.Equal(t, path, filepath.Join(dir, tt.want))
	}
}
