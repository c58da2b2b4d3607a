// Copyright (c) 2026 Durafone. All rights reserved.

/*
HTTP delivery for the authentication lifecycle.

# Architecture

The handler is a thin mediation layer between the web and the domain service:
  - Protocol: RESTful JSON, standard response envelope.
  - Verification: Strict input validation before any service call.
  - Contract: POST /login returns the bearer token the client persists;
    GET /me revalidates it on silent session restore.
*/
package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/durafone/storefront/internal/platform/middleware"
	requestutil "github.com/durafone/storefront/internal/platform/request"
	"github.com/durafone/storefront/internal/platform/respond"
	"github.com/durafone/storefront/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements authentication-related HTTP endpoints.
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// Routes returns a [chi.Router] configured with authentication routes.
//
// # Endpoints
//   - POST /register : Creates a new customer account.
//   - POST /login    : Authenticates and returns a bearer token.
//   - GET  /me       : Resolves the bearer token to the current user.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public endpoints
	router.Post("/register", handler.register)
	router.Post("/login", handler.login)

	// Protected endpoints
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/me", handler.me)
	})

	return router
}

// # Request Payloads

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	CPF      string `json:"cpf"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

/*
Register handles the creation of a new customer account.

POST /api/v1/auth/register

Description: Validates input (including the CPF check digits), checks for
identity conflicts, and persists a new customer. Does NOT sign the customer
in — the client follows up with an explicit login.

Request:
  - Body: registerRequest (Name, Email, CPF, Phone, Password)

Response:
  - 201: {message}: Account created
  - 400: ErrInvalidJSON: Bad input or validation failure
  - 409: ErrConflict: Email or CPF already registered
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).
		Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		Required(FieldCPF, input.CPF).
		CPF(FieldCPF, input.CPF).
		Required(FieldPhone, input.Phone).
		Phone(FieldPhone, input.Phone).
		Required(FieldPassword, input.Password).
		MinLen(FieldPassword, input.Password, MinPasswordLength)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	_, err := handler.authService.Register(request.Context(), RegisterInput{
		Name:     input.Name,
		Email:    input.Email,
		CPF:      input.CPF,
		Phone:    input.Phone,
		Password: input.Password,
	})

	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, map[string]string{
		FieldMessage: "Account created successfully",
	})
}

/*
Login authenticates a customer and issues a bearer token.

POST /api/v1/auth/login

Description: Verifies credentials and returns the signed token plus the
resolved user profile. The client persists the token and attaches it to
subsequent requests.

Request:
  - Body: loginRequest (Email, Password)

Response:
  - 200: {token, user}
  - 401: ErrUnauthorized: Invalid credentials
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldEmail, input.Email)
	validator.Required(FieldPassword, input.Password)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.authService.Login(request.Context(), LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		FieldToken: session.Token,
		FieldUser:  session.User,
	})
}

/*
Me resolves the authenticated bearer token to the current user.

GET /api/v1/auth/me

Description: The silent-restore validation endpoint. A valid token returns
the full profile; anything else is a 401, which the client treats as
"discard the stored credential".

Response:
  - 200: {user}
  - 401: ErrUnauthorized: Missing, invalid, or stale token
*/
func (handler *Handler) me(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.authService.Me(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		FieldUser: user,
	})
}
