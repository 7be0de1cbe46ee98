package main

import (
	"net/http"

	"github.com/Mozammal-Hossain-MH/MHS-Food-Paradise-Server/internal/domain"
	"github.com/go-chi/chi"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// createUserHandler godoc
//
//	@Summary		Sign up a user
//	@Description	Registers a user; signing up an existing email is a no-op that returns a null insertedId
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateUserRequest	true	"Signup request"
//	@Success		200		{object}	domain.SignupResult
//	@Success		201		{object}	domain.SignupResult
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/users [post]
func (app *application) createUserHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	user := &domain.User{
		Name:  req.Name,
		Email: req.Email,
	}

	result, err := app.userRepo.Create(r.Context(), user)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	status := http.StatusCreated
	if result.InsertedID == nil {
		status = http.StatusOK
	}

	if err := app.jsonRespone(w, status, result); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getUsersHandler godoc
//
//	@Summary		List users
//	@Tags			users
//	@Produce		json
//	@Success		200	{array}		domain.User
//	@Failure		403	{object}	map[string]string
//	@Failure		500	{object}	map[string]string
//	@Router			/users [get]
//	@Security		ApiKeyAuth
func (app *application) getUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := app.userRepo.GetAll(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, users); err != nil {
		app.internalServerError(w, r, err)
	}
}

// promoteUserHandler godoc
//
//	@Summary		Promote a user to admin
//	@Tags			users
//	@Produce		json
//	@Param			id	path		string	true	"User ID"
//	@Success		200	{object}	map[string]string
//	@Failure		400	{object}	map[string]string
//	@Failure		404	{object}	map[string]string
//	@Router			/users/admin/{id} [patch]
//	@Security		ApiKeyAuth
func (app *application) promoteUserHandler(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	if err := app.userRepo.PromoteToAdmin(r.Context(), id); err != nil {
		app.notFoundError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, map[string]string{"status": "promoted"}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteUserHandler godoc
//
//	@Summary		Delete a user
//	@Tags			users
//	@Produce		json
//	@Param			id	path		string	true	"User ID"
//	@Success		200	{object}	map[string]string
//	@Failure		400	{object}	map[string]string
//	@Failure		404	{object}	map[string]string
//	@Router			/users/{id} [delete]
//	@Security		ApiKeyAuth
func (app *application) deleteUserHandler(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	if err := app.userRepo.Delete(r.Context(), id); err != nil {
		app.notFoundError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, map[string]string{"status": "deleted"}); err != nil {
		app.internalServerError(w, r, err)
	}
}
