package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"time"

	"olexsmir.xyz/timesince/internal/humanize"
)

var errMissingParam = errors.New("missing d parameter")

func (h *handlers) sinceHandler(w http.ResponseWriter, r *http.Request) {
	h.delta(w, r)
}

func (h *handlers) untilHandler(w http.ResponseWriter, r *http.Request) {
	h.delta(w, r, humanize.Reversed())
}

// delta answers ?d=<time>[&now=<time>][&depth=<n>] with a plain text phrase.
func (h *handlers) delta(w http.ResponseWriter, r *http.Request, extra ...humanize.Option) {
	q := r.URL.Query()
	if q.Get("d") == "" {
		h.writeBadRequest(w, errMissingParam)
		return
	}

	dv, err := humanize.Parse(q.Get("d"), h.loc)
	if err != nil {
		h.writeBadRequest(w, err)
		return
	}

	d := dv.Time()
	opts := slices.Concat(h.opts, extra)
	if raw := q.Get("now"); raw != "" {
		nv, err := humanize.Parse(raw, h.loc)
		if err != nil {
			h.writeBadRequest(w, err)
			return
		}
		var now time.Time
		d, now = humanize.Instants(dv, nv)
		opts = append(opts, humanize.Now(now))
	}

	if raw := q.Get("depth"); raw != "" {
		depth, err := strconv.Atoi(raw)
		if err != nil {
			h.writeBadRequest(w, fmt.Errorf("invalid depth %q", raw))
			return
		}
		opts = append(opts, humanize.Depth(depth))
	}

	out, err := humanize.Delta(d, opts...)
	if err != nil {
		h.writeBadRequest(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(out))
}
