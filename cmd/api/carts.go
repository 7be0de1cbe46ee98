package main

import (
	"net/http"

	"github.com/Mozammal-Hossain-MH/MHS-Food-Paradise-Server/internal/domain"
	"github.com/go-chi/chi"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CartEntryRequest struct {
	MenuID string  `json:"menuId" validate:"required"`
	Name   string  `json:"name" validate:"required"`
	Image  string  `json:"image"`
	Price  float64 `json:"price" validate:"required,gt=0"`
}

// createCartHandler godoc
//
//	@Summary		Add a menu item to the caller's cart
//	@Description	The entry snapshots the item's name and price at add time
//	@Tags			carts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CartEntryRequest	true	"Cart entry"
//	@Success		201		{object}	domain.CartEntry
//	@Failure		400		{object}	map[string]string
//	@Failure		401		{object}	map[string]string
//	@Router			/carts [post]
//	@Security		ApiKeyAuth
func (app *application) createCartHandler(w http.ResponseWriter, r *http.Request) {
	var req CartEntryRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	entry := &domain.CartEntry{
		Email:  getAuthenticatedEmail(r),
		MenuID: req.MenuID,
		Name:   req.Name,
		Image:  req.Image,
		Price:  req.Price,
	}

	if err := app.cartRepo.Create(r.Context(), entry); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusCreated, entry); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getCartsHandler godoc
//
//	@Summary		List the cart entries of a user
//	@Description	Callers may only read their own cart
//	@Tags			carts
//	@Produce		json
//	@Param			email	query		string	true	"Owner email"
//	@Success		200		{array}		domain.CartEntry
//	@Failure		401		{object}	map[string]string
//	@Failure		403		{object}	map[string]string
//	@Router			/carts [get]
//	@Security		ApiKeyAuth
func (app *application) getCartsHandler(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if !app.checkSelfAccess(w, r, email) {
		return
	}

	entries, err := app.cartRepo.GetByEmail(r.Context(), email)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, entries); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteCartHandler godoc
//
//	@Summary		Remove a cart entry
//	@Tags			carts
//	@Produce		json
//	@Param			id	path		string	true	"Cart entry ID"
//	@Success		200	{object}	map[string]string
//	@Failure		400	{object}	map[string]string
//	@Failure		404	{object}	map[string]string
//	@Router			/carts/{id} [delete]
//	@Security		ApiKeyAuth
func (app *application) deleteCartHandler(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	if err := app.cartRepo.Delete(r.Context(), id); err != nil {
		app.notFoundError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, map[string]string{"status": "deleted"}); err != nil {
		app.internalServerError(w, r, err)
	}
}
