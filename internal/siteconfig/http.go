// Copyright (c) 2026 Durafone. All rights reserved.

/*
HTTP delivery for the site-configuration document.

# Architecture

Reading is public (the storefront renders it on every page load); every
mutation is gated behind the admin role.
*/
package siteconfig

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/durafone/storefront/internal/platform/middleware"
	requestutil "github.com/durafone/storefront/internal/platform/request"
	"github.com/durafone/storefront/internal/platform/respond"
	"github.com/durafone/storefront/internal/platform/sec"
	"github.com/durafone/storefront/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements site-configuration HTTP endpoints.
type Handler struct {
	configService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{configService: service}
}

// Routes returns a [chi.Router] configured with site-configuration routes.
//
// # Endpoints
//   - GET   /               : Current document (public).
//   - PUT   /               : Replace the whole document (admin).
//   - PATCH /field          : Edit one scalar leaf by dot path (admin).
//   - PATCH /{list}/{index} : Edit one field of one list element (admin).
//   - POST  /reset          : Restore the factory default (admin).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public endpoints
	router.Get("/", handler.get)

	// Admin endpoints
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Use(middleware.RequireRole(sec.RoleAdmin))

		r.Put("/", handler.replace)
		r.Patch("/field", handler.updateField)
		r.Patch("/{list}/{index}", handler.updateListItem)
		r.Post("/reset", handler.reset)
	})

	return router
}

// # Request Payloads

type updateFieldRequest struct {
	Path  string `json:"path"`
	Value any    `json:"value"`
}

type updateListItemRequest struct {
	Field string `json:"field"`
	Value any    `json:"value"`
}

/*
Get returns the current site-configuration document.

GET /api/v1/site-config

Description: Returns the stored document, or the factory default when
nothing has been saved yet. Never 404s.

Response:
  - 200: {config}: The full document
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	document, err := handler.configService.Get(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, document)
}

/*
Replace overwrites the whole site-configuration document.

PUT /api/v1/site-config

Description: The admin dashboard edits a local copy and saves it whole.
Concurrent saves resolve as last writer wins.

Request:
  - Body: the full document

Response:
  - 200: {config}: The saved document
  - 400: ErrInvalidJSON: Malformed body
  - 403: ErrForbidden: Caller is not an admin
*/
func (handler *Handler) replace(writer http.ResponseWriter, request *http.Request) {
	var document Document

	if err := requestutil.DecodeJSON(request, &document); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if err := handler.configService.Replace(request.Context(), document); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, document)
}

/*
UpdateField edits one scalar leaf of the document by dot path.

PATCH /api/v1/site-config/field

Description: Applies a single validated edit such as
{"path": "company.name", "value": "Durafone Pro"} and persists the result.
Paths that do not resolve to an existing scalar leave the document untouched.

Request:
  - Body: updateFieldRequest (Path, Value)

Response:
  - 200: {config}: The updated document
  - 422: ErrInvalidPath: Path does not resolve to an existing scalar
*/
func (handler *Handler) updateField(writer http.ResponseWriter, request *http.Request) {
	var input updateFieldRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required("path", input.Path)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	document, err := handler.configService.UpdateField(request.Context(), input.Path, input.Value)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, document)
}

/*
UpdateListItem edits one field of one element of an editable list.

PATCH /api/v1/site-config/{list}/{index}

Description: Targets the features or featuredProducts lists. The index must
be in bounds and the field must already exist on the element.

Request:
  - Path: list (features | featuredProducts), index (zero-based)
  - Body: updateListItemRequest (Field, Value)

Response:
  - 200: {config}: The updated document
  - 422: ErrUnknownList | ErrIndexOutOfRange | ErrInvalidPath
*/
func (handler *Handler) updateListItem(writer http.ResponseWriter, request *http.Request) {
	list := requestutil.Param(request, "list")

	index, err := strconv.Atoi(requestutil.Param(request, "index"))
	if err != nil {
		respond.Error(writer, request, ErrIndexOutOfRange)
		return
	}

	var input updateListItemRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required("field", input.Field)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	document, err := handler.configService.UpdateListItem(request.Context(), list, index, input.Field, input.Value)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, document)
}

/*
Reset restores the factory default document.

POST /api/v1/site-config/reset

Response:
  - 200: {config}: The factory default document
*/
func (handler *Handler) reset(writer http.ResponseWriter, request *http.Request) {
	document, err := handler.configService.Reset(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, document)
}
