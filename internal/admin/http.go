// Copyright (c) 2026 Durafone. All rights reserved.

/*
HTTP delivery for the admin dashboard.

Every route in this package is gated behind the admin role; the storefront's
own menu hiding is cosmetic and is never trusted.
*/
package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/durafone/storefront/internal/platform/constants"
	"github.com/durafone/storefront/internal/platform/middleware"
	"github.com/durafone/storefront/internal/platform/respond"
	"github.com/durafone/storefront/internal/platform/sec"
	"github.com/durafone/storefront/pkg/pagination"
)

// # Definitions & Constructors

// Handler implements the admin dashboard HTTP endpoints.
type Handler struct {
	adminService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{adminService: service}
}

// Routes returns a [chi.Router] configured with admin routes.
//
// # Endpoints
//   - GET /stats : Dashboard counters (admin).
//   - GET /users : Paginated account listing (admin).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Use(middleware.RequireAuth)
	router.Use(middleware.RequireRole(sec.RoleAdmin))

	router.Get("/stats", handler.stats)
	router.Get("/users", handler.listUsers)

	return router
}

/*
Stats returns the dashboard counters.

GET /api/v1/admin/stats

Description: Each counter carries its own ok flag. A source that failed
reports ok=false and a reason instead of a misleading zero, so the
dashboard renders "unavailable" rather than an empty store.

Response:
  - 200: {users: {value, ok, reason?}, products: {value, ok, reason?}}
  - 403: ErrForbidden: Caller is not an admin
*/
func (handler *Handler) stats(writer http.ResponseWriter, request *http.Request) {
	stats, err := handler.adminService.Stats(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		"users":    statPayload(stats.Users),
		"products": statPayload(stats.Products),
	})
}

/*
ListUsers returns a page of registered accounts, newest first.

GET /api/v1/admin/users?page=1&limit=20

Response:
  - 200: Paginated {users} with meta
  - 403: ErrForbidden: Caller is not an admin
*/
func (handler *Handler) listUsers(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	page, err := handler.adminService.ListUsers(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, map[string]any{
		constants.FieldUsers: page.Users,
	}, page.Meta)
}

// statPayload flattens a StatResult for the wire, translating a fetch
// failure into a client-safe reason.
func statPayload(result StatResult) map[string]any {
	payload := map[string]any{
		"value": result.Value,
		"ok":    result.OK,
	}

	if !result.OK {
		payload["reason"] = "source unavailable"
	}

	return payload
}
