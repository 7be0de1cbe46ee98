package main

import (
	"net/http"

	"github.com/go-chi/chi"
)

// adminStatsHandler godoc
//
//	@Summary		Admin dashboard stats
//	@Description	Estimated user/menu/payment counts plus total revenue
//	@Tags			stats
//	@Produce		json
//	@Success		200	{object}	domain.AdminStats
//	@Failure		403	{object}	map[string]string
//	@Failure		500	{object}	map[string]string
//	@Router			/admin-stats [get]
//	@Security		ApiKeyAuth
func (app *application) adminStatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := app.statsService.AdminStats(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, stats); err != nil {
		app.internalServerError(w, r, err)
	}
}

// orderStatsHandler godoc
//
//	@Summary		Per-category order stats
//	@Description	Quantity and revenue per menu category over all order payments, at current menu prices
//	@Tags			stats
//	@Produce		json
//	@Success		200	{array}		domain.CategoryOrderStats
//	@Failure		403	{object}	map[string]string
//	@Failure		500	{object}	map[string]string
//	@Router			/order-stats [get]
//	@Security		ApiKeyAuth
func (app *application) orderStatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := app.statsService.OrderStats(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, stats); err != nil {
		app.internalServerError(w, r, err)
	}
}

// userStatsHandler godoc
//
//	@Summary		Per-user payment stats
//	@Description	Callers may only read their own stats; an email with no payments yields zeros
//	@Tags			stats
//	@Produce		json
//	@Param			email	path		string	true	"User email"
//	@Success		200		{object}	domain.UserStats
//	@Failure		401		{object}	map[string]string
//	@Failure		403		{object}	map[string]string
//	@Router			/user-stats/{email} [get]
//	@Security		ApiKeyAuth
func (app *application) userStatsHandler(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if !app.checkSelfAccess(w, r, email) {
		return
	}

	stats, err := app.statsService.UserStats(r.Context(), email)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, stats); err != nil {
		app.internalServerError(w, r, err)
	}
}
