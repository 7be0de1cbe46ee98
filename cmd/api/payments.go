package main

import (
	"net/http"

	"github.com/Mozammal-Hossain-MH/MHS-Food-Paradise-Server/internal/domain"
	"github.com/go-chi/chi"
)

type PaymentIntentRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

// createPaymentIntentHandler godoc
//
//	@Summary		Create a payment intent
//	@Description	Forwards the amount in minor units to the payment processor and relays the client secret
//	@Tags			payments
//	@Accept			json
//	@Produce		json
//	@Param			request	body		PaymentIntentRequest	true	"Intent request"
//	@Success		200		{object}	map[string]string
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/create-payment-intent [post]
//	@Security		ApiKeyAuth
func (app *application) createPaymentIntentHandler(w http.ResponseWriter, r *http.Request) {
	var req PaymentIntentRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	clientSecret, err := app.processor.CreateIntent(r.Context(), req.Amount, "usd")
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, map[string]string{"clientSecret": clientSecret}); err != nil {
		app.internalServerError(w, r, err)
	}
}

type CreatePaymentRequest struct {
	Amount         float64  `json:"amount" validate:"required"`
	Category       string   `json:"category"`
	TransactionID  string   `json:"transactionId"`
	CartIDs        []string `json:"cartIds"`
	ReservationIDs []string `json:"reservationIds"`
	MenuIDs        []string `json:"menuIds"`
}

// createPaymentHandler godoc
//
//	@Summary		Record a payment and retire its source entries
//	@Description	Inserts the payment, then removes the paid-for cart or reservation entries in one best-effort pass; both outcomes are returned
//	@Tags			payments
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreatePaymentRequest	true	"Payment"
//	@Success		201		{object}	domain.SettlementResult
//	@Failure		400		{object}	map[string]string
//	@Failure		401		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/payments [post]
//	@Security		ApiKeyAuth
func (app *application) createPaymentHandler(w http.ResponseWriter, r *http.Request) {
	var req CreatePaymentRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	payment := &domain.Payment{
		Email:          getAuthenticatedEmail(r),
		Amount:         req.Amount,
		Category:       req.Category,
		TransactionID:  req.TransactionID,
		CartIDs:        req.CartIDs,
		ReservationIDs: req.ReservationIDs,
		MenuIDs:        req.MenuIDs,
	}

	result, err := app.settlementService.Settle(r.Context(), payment)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusCreated, result); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getPaymentsHandler godoc
//
//	@Summary		List the payments of a user
//	@Description	Callers may only read their own payment history
//	@Tags			payments
//	@Produce		json
//	@Param			email	path		string	true	"Payer email"
//	@Success		200		{array}		domain.Payment
//	@Failure		401		{object}	map[string]string
//	@Failure		403		{object}	map[string]string
//	@Router			/payments/{email} [get]
//	@Security		ApiKeyAuth
func (app *application) getPaymentsHandler(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if !app.checkSelfAccess(w, r, email) {
		return
	}

	payments, err := app.paymentRepo.GetByEmail(r.Context(), email)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, payments); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getPaymentAuditHandler godoc
//
//	@Summary		List settlement audit records for a payment
//	@Tags			payments
//	@Produce		json
//	@Param			id	path		string	true	"Payment ID"
//	@Success		200	{array}		domain.SettlementAudit
//	@Failure		403	{object}	map[string]string
//	@Failure		500	{object}	map[string]string
//	@Router			/payments/{id}/audit [get]
//	@Security		ApiKeyAuth
func (app *application) getPaymentAuditHandler(w http.ResponseWriter, r *http.Request) {
	paymentID := chi.URLParam(r, "id")
	if paymentID == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	audits, err := app.settlementService.GetPaymentAudit(r.Context(), paymentID, 20)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, audits); err != nil {
		app.internalServerError(w, r, err)
	}
}
