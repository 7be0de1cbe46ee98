package main

import (
	"errors"
	"net/http"

	"github.com/Mozammal-Hossain-MH/MHS-Food-Paradise-Server/internal/domain"
	"github.com/go-chi/chi"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrInvalidID = errors.New("invalid ID format")
)

type MenuItemRequest struct {
	Name     string  `json:"name" validate:"required"`
	Recipe   string  `json:"recipe"`
	Image    string  `json:"image"`
	Category string  `json:"category" validate:"required"`
	Price    float64 `json:"price" validate:"required,gt=0"`
}

// getMenuHandler godoc
//
//	@Summary		List the menu
//	@Tags			menu
//	@Produce		json
//	@Success		200	{array}		domain.MenuItem
//	@Failure		500	{object}	map[string]string
//	@Router			/menu [get]
func (app *application) getMenuHandler(w http.ResponseWriter, r *http.Request) {
	items, err := app.menuRepo.GetAll(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, items); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getMenuItemHandler godoc
//
//	@Summary		Get a menu item
//	@Description	Looks the identifier up as a native ObjectID first, then as a legacy string identifier
//	@Tags			menu
//	@Produce		json
//	@Param			id	path		string	true	"Menu item ID"
//	@Success		200	{object}	domain.MenuItem
//	@Failure		404	{object}	map[string]string
//	@Router			/menu/{id} [get]
func (app *application) getMenuItemHandler(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	if idStr == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	item, err := app.menuRepo.GetByID(r.Context(), domain.ParseItemID(idStr))
	if err != nil {
		app.notFoundError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, item); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createMenuItemHandler godoc
//
//	@Summary		Create a menu item
//	@Tags			menu
//	@Accept			json
//	@Produce		json
//	@Param			request	body		MenuItemRequest	true	"Menu item"
//	@Success		201		{object}	domain.MenuItem
//	@Failure		400		{object}	map[string]string
//	@Failure		403		{object}	map[string]string
//	@Router			/menu [post]
//	@Security		ApiKeyAuth
func (app *application) createMenuItemHandler(w http.ResponseWriter, r *http.Request) {
	var req MenuItemRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	item := &domain.MenuItem{
		Name:     req.Name,
		Recipe:   req.Recipe,
		Image:    req.Image,
		Category: req.Category,
		Price:    req.Price,
	}

	if err := app.menuRepo.Create(r.Context(), item); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusCreated, item); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateMenuItemHandler godoc
//
//	@Summary		Update a menu item
//	@Description	Updates by native ObjectID, falling back to the legacy string identifier
//	@Tags			menu
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"Menu item ID"
//	@Param			request	body		MenuItemRequest	true	"Menu item"
//	@Success		200		{object}	map[string]string
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Router			/menu/{id} [patch]
//	@Security		ApiKeyAuth
func (app *application) updateMenuItemHandler(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	if idStr == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	var req MenuItemRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	item := &domain.MenuItem{
		Name:     req.Name,
		Recipe:   req.Recipe,
		Image:    req.Image,
		Category: req.Category,
		Price:    req.Price,
	}

	if err := app.menuRepo.Update(r.Context(), domain.ParseItemID(idStr), item); err != nil {
		app.notFoundError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, map[string]string{"status": "updated"}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteMenuItemHandler godoc
//
//	@Summary		Delete a menu item
//	@Tags			menu
//	@Produce		json
//	@Param			id	path		string	true	"Menu item ID"
//	@Success		200	{object}	map[string]string
//	@Failure		404	{object}	map[string]string
//	@Router			/menu/{id} [delete]
//	@Security		ApiKeyAuth
func (app *application) deleteMenuItemHandler(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	if idStr == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	if err := app.menuRepo.Delete(r.Context(), domain.ParseItemID(idStr)); err != nil {
		app.notFoundError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, map[string]string{"status": "deleted"}); err != nil {
		app.internalServerError(w, r, err)
	}
}

type ImportMenuRequest struct {
	SpreadsheetID string `json:"spreadsheet_id" validate:"required"`
}

// importMenuHandler godoc
//
//	@Summary		Import menu items from a spreadsheet
//	@Tags			menu
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ImportMenuRequest	true	"Import request"
//	@Success		201		{object}	map[string]string
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/menu/import [post]
//	@Security		ApiKeyAuth
func (app *application) importMenuHandler(w http.ResponseWriter, r *http.Request) {
	var req ImportMenuRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	taskID, err := app.importService.CreateImportTask(r.Context(), req.SpreadsheetID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	response := map[string]string{
		"task_id": taskID.Hex(),
		"status":  "queued",
	}

	if err := app.jsonRespone(w, http.StatusCreated, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getImportTaskHandler godoc
//
//	@Summary		Get menu import task status
//	@Tags			menu
//	@Produce		json
//	@Param			task_id	path		string	true	"Task ID"
//	@Success		200		{object}	domain.ImportTask
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Router			/menu/import/{task_id} [get]
//	@Security		ApiKeyAuth
func (app *application) getImportTaskHandler(w http.ResponseWriter, r *http.Request) {
	taskID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "task_id"))
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	task, err := app.importService.GetTaskStatus(r.Context(), taskID)
	if err != nil {
		app.notFoundError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, task); err != nil {
		app.internalServerError(w, r, err)
	}
}
