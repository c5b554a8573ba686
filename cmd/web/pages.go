package main

import (
	"errors"
	"net/http"

	"github.com/yusuf-wknd/devanshi-culture-shop/internal/i18n"
	"github.com/yusuf-wknd/devanshi-culture-shop/internal/service"
)

// pageHandler serves every storefront page under a locale prefix. The path is
// the routing key: the page service decides which page it names.
func (app *application) pageHandler(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	query := r.URL.Query().Get("q")
	sortKey := r.URL.Query().Get("sort")

	body, err := app.pageService.Serve(r.Context(), path, query, sortKey)
	if err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			app.notFoundPage(w, r)
			return
		}

		app.logger.Errorw("failed to serve page", "path", path, "error", err)
		http.Error(w, "the server encountered a problem", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(body)
}

// rootRedirectHandler sends bare domain hits to the visitor's locale.
func (app *application) rootRedirectHandler(w http.ResponseWriter, r *http.Request) {
	locale := i18n.Negotiate(r.Header.Get("Accept-Language"))

	http.Redirect(w, r, "/"+string(locale), http.StatusTemporaryRedirect)
}

// localeFallbackHandler catches paths without a locale prefix and redirects
// them into the negotiated locale, preserving the rest of the path.
func (app *application) localeFallbackHandler(w http.ResponseWriter, r *http.Request) {
	if _, _, ok := i18n.SplitPath(r.URL.Path); ok {
		app.notFoundPage(w, r)
		return
	}

	locale := i18n.Negotiate(r.Header.Get("Accept-Language"))
	target := "/" + string(locale) + r.URL.Path
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}

	http.Redirect(w, r, target, http.StatusTemporaryRedirect)
}

func (app *application) notFoundPage(w http.ResponseWriter, r *http.Request) {
	body, err := app.pageService.NotFound(r.Context(), r.URL.Path)
	if err != nil {
		app.logger.Errorw("failed to render 404 page", "path", r.URL.Path, "error", err)
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	w.Write(body)
}
