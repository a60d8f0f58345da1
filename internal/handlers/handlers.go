package handlers

import (
	"context"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"
	"slices"
	"time"

	"olexsmir.xyz/timesince/internal/cache"
	"olexsmir.xyz/timesince/internal/config"
	"olexsmir.xyz/timesince/internal/humanize"
	"olexsmir.xyz/timesince/web"
)

type handlers struct {
	c    *config.Config
	t    *template.Template
	loc  *time.Location
	opts []humanize.Option

	repoListCache cache.Cacher[[]repoList]
	logCache      cache.Cacher[[]*logEntry]
}

// InitRoutes builds the http handler. Caches are swept until ctx is done.
func InitRoutes(ctx context.Context, cfg *config.Config) (http.Handler, error) {
	opts, err := cfg.Humanize.Options()
	if err != nil {
		return nil, err
	}

	loc, err := cfg.Humanize.Location()
	if err != nil {
		return nil, err
	}

	tmpls, err := web.Templates(templateFuncs)
	if err != nil {
		return nil, err
	}

	h := handlers{
		cfg, tmpls, loc, opts,
		cache.NewInMemory[[]repoList](ctx, cfg.Cache.RepoListTTL()),
		cache.NewInMemory[[]*logEntry](ctx, cfg.Cache.LogTTL()),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.indexHandler)
	mux.HandleFunc("GET /since", h.sinceHandler)
	mux.HandleFunc("GET /until", h.untilHandler)
	mux.HandleFunc("GET /-/static/{file}", h.serveStaticHandler)
	mux.HandleFunc("GET /{name}/log", h.logHandler)
	mux.HandleFunc("GET /{name}/feed", h.repoFeedHandler)

	handler := h.recoverMiddleware(mux)
	return h.loggingMiddleware(handler), nil
}

func (h *handlers) serveStaticHandler(w http.ResponseWriter, r *http.Request) {
	f := filepath.Clean(r.PathValue("file"))
	http.ServeFileFS(w, r, web.StaticFS, f)
}

// humanize renders the time between d and now with the configured
// options, keeping every unit on a single line.
func (h *handlers) humanize(d time.Time, extra ...humanize.Option) string {
	opts := slices.Concat([]humanize.Option{humanize.Wrap(humanize.NoBreak)}, h.opts, extra)
	s, err := humanize.Delta(d, opts...)
	if err != nil {
		slog.Error("humanize", "err", err)
		return ""
	}
	return s
}

var templateFuncs = template.FuncMap{
	"humanizeTime": func(t time.Time) string { return t.Format("2006-01-02 15:04:05 MST") },
}
