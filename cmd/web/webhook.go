package main

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/yusuf-wknd/devanshi-culture-shop/internal/revalidate"
	"github.com/yusuf-wknd/devanshi-culture-shop/internal/service"
)

// maxWebhookBody bounds one content change notification.
const maxWebhookBody = 1 << 20

// revalidateWebhookHandler godoc
//
//	@Summary		Handle content change notification
//	@Description	Verifies the delivery signature, purges every affected page path and records an audit entry
//	@Tags			revalidation
//	@Accept			json
//	@Produce		json
//	@Param			sanity-webhook-signature	header		string	true	"HMAC-SHA256 signature of the raw body"
//	@Success		200							{object}	service.RevalidationResult
//	@Success		207							{object}	service.RevalidationResult
//	@Failure		400							{object}	map[string]string
//	@Failure		401							{object}	map[string]string
//	@Failure		500							{object}	map[string]string
//	@Router			/revalidate [post]
func (app *application) revalidateWebhookHandler(w http.ResponseWriter, r *http.Request) {
	// the signature covers the raw bytes, so the body must not go through
	// the JSON decoder before verification
	body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	signature := r.Header.Get(revalidate.SignatureHeader)

	result, err := app.revalidationService.HandleNotification(r.Context(), body, signature)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSecretNotConfigured):
			app.internalServerError(w, r, err)
		case errors.Is(err, service.ErrInvalidSignature):
			app.unauthorizedResponse(w, r, err)
		case errors.Is(err, service.ErrInvalidPayload):
			app.badRequestResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	status := http.StatusOK
	if result.PartialFailure() {
		status = http.StatusMultiStatus
	}

	if err := app.jsonRespone(w, status, result); err != nil {
		app.internalServerError(w, r, err)
	}
}

// revalidateStatusHandler godoc
//
//	@Summary		Revalidation endpoint liveness
//	@Tags			revalidation
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Router			/revalidate [get]
func (app *application) revalidateStatusHandler(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"message":   "revalidation endpoint is active",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	if err := app.jsonRespone(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listRevalidationsHandler godoc
//
//	@Summary		List recent revalidations
//	@Description	Returns the most recent revalidation audit entries, newest first
//	@Tags			revalidation
//	@Produce		json
//	@Param			document_id	query		string	false	"Restrict to one document's history"
//	@Param			limit		query		int		false	"Maximum number of entries, default 20"
//	@Success		200		{object}	map[string]interface{}
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/revalidations [get]
func (app *application) listRevalidationsHandler(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			app.badRequestResponse(w, r, errInvalidLimit)
			return
		}
		limit = parsed
	}
	if limit > 100 {
		limit = 100
	}

	audits, err := app.revalidationService.Audits(r.Context(), r.URL.Query().Get("document_id"), limit)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	response := map[string]interface{}{
		"revalidations": audits,
		"count":         len(audits),
	}

	if err := app.jsonRespone(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}
