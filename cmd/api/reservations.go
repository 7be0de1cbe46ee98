package main

import (
	"net/http"

	"github.com/Mozammal-Hossain-MH/MHS-Food-Paradise-Server/internal/domain"
	"github.com/go-chi/chi"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReservationRequest struct {
	Name   string `json:"name" validate:"required"`
	Phone  string `json:"phone" validate:"required"`
	Date   string `json:"date" validate:"required"`
	Slot   string `json:"slot" validate:"required"`
	Guests int    `json:"guests" validate:"required,min=1"`
}

// createReservationHandler godoc
//
//	@Summary		Book a table
//	@Tags			reservations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ReservationRequest	true	"Reservation"
//	@Success		201		{object}	domain.ReservationEntry
//	@Failure		400		{object}	map[string]string
//	@Failure		401		{object}	map[string]string
//	@Router			/reservations [post]
//	@Security		ApiKeyAuth
func (app *application) createReservationHandler(w http.ResponseWriter, r *http.Request) {
	var req ReservationRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	entry := &domain.ReservationEntry{
		Email:  getAuthenticatedEmail(r),
		Name:   req.Name,
		Phone:  req.Phone,
		Date:   req.Date,
		Slot:   req.Slot,
		Guests: req.Guests,
	}

	if err := app.reservationRepo.Create(r.Context(), entry); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusCreated, entry); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getReservationsHandler godoc
//
//	@Summary		List the reservations of a user
//	@Description	Callers may only read their own reservations
//	@Tags			reservations
//	@Produce		json
//	@Param			email	query		string	true	"Owner email"
//	@Success		200		{array}		domain.ReservationEntry
//	@Failure		401		{object}	map[string]string
//	@Failure		403		{object}	map[string]string
//	@Router			/reservations [get]
//	@Security		ApiKeyAuth
func (app *application) getReservationsHandler(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if !app.checkSelfAccess(w, r, email) {
		return
	}

	entries, err := app.reservationRepo.GetByEmail(r.Context(), email)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, entries); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteReservationHandler godoc
//
//	@Summary		Cancel a reservation
//	@Tags			reservations
//	@Produce		json
//	@Param			id	path		string	true	"Reservation ID"
//	@Success		200	{object}	map[string]string
//	@Failure		400	{object}	map[string]string
//	@Failure		404	{object}	map[string]string
//	@Router			/reservations/{id} [delete]
//	@Security		ApiKeyAuth
func (app *application) deleteReservationHandler(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	if err := app.reservationRepo.Delete(r.Context(), id); err != nil {
		app.notFoundError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, map[string]string{"status": "deleted"}); err != nil {
		app.internalServerError(w, r, err)
	}
}
