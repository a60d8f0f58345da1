package handlers

import (
	"net/http"
	"net/url"

	"github.com/gorilla/feeds"
)

const feedLimit = 20

func (h *handlers) repoFeedHandler(w http.ResponseWriter, r *http.Request) {
	repo, err := h.openPublicRepo(r.PathValue("name"), "")
	if err != nil {
		h.write404(w, err)
		return
	}

	desc, err := repo.Description()
	if err != nil {
		h.write500(w, err)
		return
	}

	host := h.c.Meta.Host
	if host == "" {
		host = r.Host
	}

	repoName := repo.Name()
	feedLink, err := url.JoinPath("http://", host, repoName, "log")
	if err != nil {
		h.write500(w, err)
		return
	}

	entries, err := h.repoLog(repo, "", feedLimit)
	if err != nil {
		h.write500(w, err)
		return
	}

	feed := &feeds.Feed{
		Title:       repoName,
		Link:        &feeds.Link{Href: feedLink},
		Description: desc,
	}
	if len(entries) > 0 {
		feed.Updated = entries[0].When
	}

	for _, e := range entries {
		item := &feeds.Item{
			Id:      e.Hash,
			Title:   e.Summary(),
			Link:    &feeds.Link{Href: feedLink + "?ref=" + e.Hash},
			Author:  &feeds.Author{Name: e.Author, Email: e.Email},
			Created: e.When,
			Content: e.Message,
		}
		if e.Gap != "" {
			item.Description = e.Gap + " after previous commit"
		}
		feed.Items = append(feed.Items, item)
	}

	rss, err := feed.ToRss()
	if err != nil {
		h.write500(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml")
	w.Write([]byte(rss))
}
