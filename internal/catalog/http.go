// Copyright (c) 2026 Durafone. All rights reserved.

/*
Catalog HTTP delivery.

# Routing Strategy

All catalog endpoints are public: visitors browse, search, and compare
without an account. The handler translates query parameters into a catalog
[Query] and responds with the standard JSON envelope.
*/
package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/durafone/storefront/internal/platform/request"
	"github.com/durafone/storefront/internal/platform/respond"
	"github.com/durafone/storefront/pkg/query"
)

// Handler implements the HTTP layer for catalog browsing and comparison.
type Handler struct {
	service *Service
}

// NewHandler constructs a new catalog [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the catalog's endpoints.
//
// # Endpoints
//   - GET /            : Filtered, sorted product listing.
//   - GET /categories  : Distinct category values for the filter dropdown.
//   - GET /compare     : Products still eligible for a comparison selection.
//   - GET /{identifier}: Single product by numeric ID or slug.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listProducts)
	router.Get("/categories", handler.listCategories)
	router.Get("/compare", handler.compareCandidates)
	router.Get("/{identifier}", handler.getProduct)

	return router
}

/*
GET /api/v1/products.

Description: Returns the catalog filtered by free-text search and category,
in the requested order. With no parameters it returns the full catalog in
name order.

Request:
  - q: string (case-insensitive substring match on product name)
  - category: string (exact match; omit for all categories)
  - sort: string (name | price_asc | price_desc)

Response:
  - 200: []Product
*/
func (handler *Handler) listProducts(writer http.ResponseWriter, request *http.Request) {
	params := request.URL.Query()

	products := handler.service.List(Query{
		Text:     params.Get("q"),
		Category: params.Get("category"),
		Order:    ParseSortOrder(params.Get("sort")),
	})

	respond.OK(writer, products)
}

/*
GET /api/v1/products/categories.

Response:
  - 200: []string: Distinct categories in catalog order
*/
func (handler *Handler) listCategories(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.Categories())
}

/*
GET /api/v1/products/compare.

Description: Returns the products not yet present in the caller's comparison
selection. The selection itself lives client-side; the caller sends the IDs
it already holds.

Request:
  - selected: string (comma-separated product IDs, e.g. "1,3")

Response:
  - 200: []Product: Remaining candidates in catalog order
*/
func (handler *Handler) compareCandidates(writer http.ResponseWriter, request *http.Request) {
	selected := query.IntSlice(query.StringSlice(request.URL.Query().Get(FieldSelected)))
	respond.OK(writer, handler.service.CompareCandidates(selected))
}

/*
GET /api/v1/products/{identifier}.

Response:
  - 200: Product
  - 404: ErrNotFound: Unknown ID or slug
*/
func (handler *Handler) getProduct(writer http.ResponseWriter, request *http.Request) {
	product, err := handler.service.Get(requestutil.Param(request, "identifier"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, product)
}
