// Package controllers contains the HTTP handlers. Controllers stay thin:
// decode the request, call a service, render a page or redirect with a flash.
package controllers

import (
	"net/http"
	"strconv"

	"github.com/shashiranjanraj/stocktracker/pkg/logger"
	"github.com/shashiranjanraj/stocktracker/pkg/session"
	"github.com/shashiranjanraj/stocktracker/pkg/view"
)

type base struct {
	views *view.Engine
}

// render draws a page, folding any queued flash messages into the data.
func (c base) render(w http.ResponseWriter, r *http.Request, status int, page string, data view.Data) {
	if data == nil {
		data = view.Data{}
	}
	data["Flashes"] = []session.FlashMessage{}

	if sess := session.FromCtx(r); sess != nil {
		data["Flashes"] = sess.PullFlashes()
		if err := sess.Save(w); err != nil {
			logger.WithCtx(r.Context()).Warn("session save failed", "error", err)
		}
	}

	c.views.Render(w, status, page, data)
}

// flashAndRedirect queues a flash message and issues a 303 so the browser
// re-requests the target with GET.
func flashAndRedirect(w http.ResponseWriter, r *http.Request, level, message, location string) {
	if sess := session.FromCtx(r); sess != nil {
		sess.Flash(level, message)
		if err := sess.Save(w); err != nil {
			logger.WithCtx(r.Context()).Warn("session save failed", "error", err)
		}
	}
	http.Redirect(w, r, location, http.StatusSeeOther)
}

// queryInt reads an integer query parameter, falling back on absence or junk.
func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
