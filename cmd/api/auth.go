package main

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi"
)

type userCtxKey string

const emailCtx userCtxKey = "authEmail"

type CreateTokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// createTokenHandler godoc
//
//	@Summary		Issue access token
//	@Description	Issues a signed, 1-hour bearer token for the given identity
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateTokenRequest	true	"Identity claims"
//	@Success		201		{object}	map[string]string
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/auth/token [post]
func (app *application) createTokenHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateTokenRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	token, err := app.authenticator.IssueToken(req.Email)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusCreated, map[string]string{"token": token}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// AuthTokenMiddleware verifies the bearer credential and stores the
// authenticated email in the request context. No storage lookup happens
// here; the claims alone identify the caller.
func (app *application) AuthTokenMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			app.unauthorizedErrorResponse(w, r, errors.New("authorization header is missing"))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			app.unauthorizedErrorResponse(w, r, errors.New("authorization header is malformed"))
			return
		}

		claims, err := app.authenticator.VerifyToken(parts[1])
		if err != nil {
			app.unauthorizedErrorResponse(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), emailCtx, claims.Email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// adminRequiredMiddleware re-fetches the stored role on every call, so
// a demoted admin loses access on the very next request.
func (app *application) adminRequiredMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email := getAuthenticatedEmail(r)

		user, err := app.userRepo.GetByEmail(r.Context(), email)
		if err != nil {
			app.internalServerError(w, r, err)
			return
		}

		if !user.IsAdmin() {
			app.forbiddenResponse(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func getAuthenticatedEmail(r *http.Request) string {
	email, _ := r.Context().Value(emailCtx).(string)
	return email
}

// checkSelfAccess enforces that the route-supplied email belongs to the
// caller. A validly authenticated caller asking about someone else gets
// forbidden, not unauthorized.
func (app *application) checkSelfAccess(w http.ResponseWriter, r *http.Request, email string) bool {
	if email == "" || email != getAuthenticatedEmail(r) {
		app.forbiddenResponse(w, r)
		return false
	}

	return true
}

// checkAdminHandler godoc
//
//	@Summary		Check admin role
//	@Description	Reports whether the given user holds the admin role; callers may only ask about themselves
//	@Tags			users
//	@Produce		json
//	@Param			email	path		string	true	"User email"
//	@Success		200		{object}	map[string]bool
//	@Failure		401		{object}	map[string]string
//	@Failure		403		{object}	map[string]string
//	@Router			/users/admin/{email} [get]
//	@Security		ApiKeyAuth
func (app *application) checkAdminHandler(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if !app.checkSelfAccess(w, r, email) {
		return
	}

	user, err := app.userRepo.GetByEmail(r.Context(), email)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, map[string]bool{"admin": user.IsAdmin()}); err != nil {
		app.internalServerError(w, r, err)
	}
}
