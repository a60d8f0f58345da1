package handlers

import (
	"errors"
	"net/http"
	"sort"
	"strconv"
	"time"

	"olexsmir.xyz/timesince/internal/git"
	"olexsmir.xyz/timesince/internal/humanize"
)

const defaultLogLimit = 50

type Meta struct {
	Title       string
	Description string
	Host        string
}

type PageData[T any] struct {
	Meta     Meta
	RepoName string // empty for non-repo pages
	P        T
}

type repoList struct {
	Name       string
	Desc       string
	LastCommit time.Time
}

type repoListView struct {
	Name       string
	Desc       string
	LastCommit time.Time
	Age        string
}

func (h *handlers) indexHandler(w http.ResponseWriter, r *http.Request) {
	repos, err := h.listPublicRepos()
	if err != nil {
		h.write500(w, err)
		return
	}

	views := make([]repoListView, 0, len(repos))
	for _, repo := range repos {
		views = append(views, repoListView{
			Name:       repo.Name,
			Desc:       repo.Desc,
			LastCommit: repo.LastCommit,
			Age:        h.humanize(repo.LastCommit),
		})
	}
	h.templ(w, "index", h.pageData("", views))
}

// logEntry is a commit with the time that passed since its predecessor in
// the log. Gap is empty for the oldest listed commit.
type logEntry struct {
	*git.Commit
	Gap string
}

type logView struct {
	Commit *git.Commit
	Gap    string
	Age    string
}

type RepoLog struct {
	Desc    string
	Ref     string
	Commits []logView
}

func (h *handlers) logHandler(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	ref := r.URL.Query().Get("ref")

	limit := defaultLogLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			h.writeBadRequest(w, errors.New("limit must be a positive number"))
			return
		}
		limit = n
	}

	repo, err := h.openPublicRepo(name, ref)
	if err != nil {
		h.write404(w, err)
		return
	}

	entries, err := h.repoLog(repo, ref, limit)
	if err != nil {
		h.write500(w, err)
		return
	}

	desc, err := repo.Description()
	if err != nil {
		h.write500(w, err)
		return
	}

	views := make([]logView, 0, len(entries))
	for _, e := range entries {
		views = append(views, logView{
			Commit: e.Commit,
			Gap:    e.Gap,
			Age:    h.humanize(e.When),
		})
	}
	h.templ(w, "repo_log", h.pageData(repo.Name(), RepoLog{
		Desc:    desc,
		Ref:     ref,
		Commits: views,
	}))
}

func (h *handlers) repoLog(repo *git.Repo, ref string, limit int) ([]*logEntry, error) {
	cacheKey := repo.Name() + ":" + ref + ":" + strconv.Itoa(limit)
	if v, found := h.logCache.Get(cacheKey); found {
		return v, nil
	}

	commits, err := repo.Commits(limit)
	if err != nil {
		return nil, err
	}

	entries := make([]*logEntry, len(commits))
	for i, c := range commits {
		entries[i] = &logEntry{Commit: c}
		if i+1 < len(commits) {
			entries[i].Gap = h.humanize(commits[i+1].When, humanize.Now(c.When))
		}
	}

	h.logCache.Set(cacheKey, entries)
	return entries, nil
}

func (h *handlers) listPublicRepos() ([]repoList, error) {
	if v, found := h.repoListCache.Get("repo_list"); found {
		return v, nil
	}

	repos, err := git.List(h.c.Repo.Dir)
	if err != nil {
		return nil, err
	}

	var out []repoList
	var errs []error
	for _, repo := range repos {
		desc, err := repo.Description()
		if err != nil {
			errs = append(errs, err)
			continue
		}

		lastCommit, err := repo.LastCommit()
		if err != nil {
			errs = append(errs, err)
			continue
		}

		out = append(out, repoList{
			Name:       repo.Name(),
			Desc:       desc,
			LastCommit: lastCommit.When,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[j].LastCommit.Before(out[i].LastCommit)
	})

	if err := errors.Join(errs...); err != nil {
		return out, err
	}
	h.repoListCache.Set("repo_list", out)
	return out, nil
}

func (h *handlers) openPublicRepo(name, ref string) (*git.Repo, error) {
	path, err := git.Locate(h.c.Repo.Dir, name)
	if err != nil {
		return nil, err
	}
	return git.OpenPublic(path, ref)
}

func (h *handlers) pageData(repoName string, p any) PageData[any] {
	return PageData[any]{
		P:        p,
		RepoName: repoName,
		Meta: Meta{
			Title:       h.c.Meta.Title,
			Description: h.c.Meta.Description,
			Host:        h.c.Meta.Host,
		},
	}
}
