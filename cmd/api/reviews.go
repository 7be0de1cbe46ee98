package main

import (
	"net/http"

	"github.com/Mozammal-Hossain-MH/MHS-Food-Paradise-Server/internal/domain"
)

type ReviewRequest struct {
	Name    string  `json:"name" validate:"required"`
	Rating  float64 `json:"rating" validate:"required,min=0,max=5"`
	Details string  `json:"details"`
}

// getReviewsHandler godoc
//
//	@Summary		List reviews
//	@Tags			reviews
//	@Produce		json
//	@Success		200	{array}		domain.Review
//	@Failure		500	{object}	map[string]string
//	@Router			/reviews [get]
func (app *application) getReviewsHandler(w http.ResponseWriter, r *http.Request) {
	reviews, err := app.reviewRepo.GetAll(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, reviews); err != nil {
		app.internalServerError(w, r, err)
	}
}

// upsertReviewHandler godoc
//
//	@Summary		Create or replace the caller's review
//	@Description	One review per reviewer; posting again fully replaces the previous one
//	@Tags			reviews
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ReviewRequest	true	"Review"
//	@Success		200		{object}	map[string]string
//	@Failure		400		{object}	map[string]string
//	@Failure		401		{object}	map[string]string
//	@Router			/reviews [post]
//	@Security		ApiKeyAuth
func (app *application) upsertReviewHandler(w http.ResponseWriter, r *http.Request) {
	var req ReviewRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	review := &domain.Review{
		Name:    req.Name,
		Email:   getAuthenticatedEmail(r),
		Rating:  req.Rating,
		Details: req.Details,
	}

	if err := app.reviewRepo.Upsert(r.Context(), review); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, map[string]string{"status": "saved"}); err != nil {
		app.internalServerError(w, r, err)
	}
}
