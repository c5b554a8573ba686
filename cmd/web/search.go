package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/yusuf-wknd/devanshi-culture-shop/internal/i18n"
	"github.com/yusuf-wknd/devanshi-culture-shop/internal/service"
)

var errInvalidLimit = errors.New("limit must be a positive integer")

// searchProductsHandler godoc
//
//	@Summary		Search products
//	@Description	Case-insensitive substring search over localized product names and descriptions
//	@Tags			catalog
//	@Produce		json
//	@Param			q		query		string	true	"Search term, minimum 2 characters"
//	@Param			lang	query		string	false	"Locale, en or nl"
//	@Param			limit	query		int		false	"Maximum number of results"
//	@Success		200		{object}	service.SearchResult
//	@Failure		500		{object}	map[string]string
//	@Router			/search [get]
func (app *application) searchProductsHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	locale := i18n.DefaultLocale
	if lang := r.URL.Query().Get("lang"); i18n.IsSupported(lang) {
		locale = i18n.Locale(lang)
	} else if lang == "" {
		locale = i18n.Negotiate(r.Header.Get("Accept-Language"))
	}

	limit := service.DefaultSearchLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			app.badRequestResponse(w, r, errInvalidLimit)
			return
		}
		limit = parsed
	}

	result, err := app.searchService.Search(r.Context(), query, locale, limit)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, result); err != nil {
		app.internalServerError(w, r, err)
	}
}
