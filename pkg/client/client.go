// Copyright (c) 2026 Durafone. All rights reserved.

/*
Package client is the official Go SDK for the Durafone storefront API.

It mirrors what the web storefront does over HTTP: browse the catalog,
authenticate, and keep a session alive across process restarts. The
[SessionManager] owns the credential lifecycle; [Client] is the stateless
transport underneath it.

Architecture:

  - Client: one method per API operation, no stored state beyond config.
  - SessionManager: credential persistence, silent restore, login/logout.
  - CredentialStore: pluggable durable storage for the bearer token.
*/
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultTimeout bounds every API call unless the caller's context is stricter.
const DefaultTimeout = 15 * time.Second

// # Wire Types

// User is the account profile as returned by the API.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CPF       string    `json:"cpf"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Product is a catalog entry as returned by the API.
type Product struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Brand       string   `json:"brand"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	OldPrice    *float64 `json:"old_price,omitempty"`
	Discount    *int     `json:"discount,omitempty"`
	Rating      float64  `json:"rating"`
	Features    []string `json:"features"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
}

// RegisterInput is the payload for account creation.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	CPF      string `json:"cpf"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// APIError is a structured rejection from the server.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("api error (status %d)", e.StatusCode)
}

// IsUnauthorized reports whether the server rejected the credential.
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// # Client

// Client is the stateless HTTP transport for the storefront API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option customizes a [Client].
type Option func(*Client)

// WithHTTPClient substitutes the underlying [http.Client].
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// New creates a Client for the API at baseURL (e.g. "https://api.durafone.com.br").
func New(baseURL string, options ...Option) *Client {
	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}

	for _, option := range options {
		option(client)
	}

	return client
}

// # Catalog Operations

// ProductQuery narrows and orders a product listing.
type ProductQuery struct {
	// Text is matched case-insensitively as a substring of the product name.
	Text string
	// Category keeps only one category; empty means all.
	Category string
	// Sort is one of "name", "price_asc", "price_desc".
	Sort string
}

// Products lists catalog products, optionally filtered and sorted.
func (c *Client) Products(ctx context.Context, query ProductQuery) ([]Product, error) {
	values := url.Values{}
	if query.Text != "" {
		values.Set("q", query.Text)
	}
	if query.Category != "" {
		values.Set("category", query.Category)
	}
	if query.Sort != "" {
		values.Set("sort", query.Sort)
	}

	path := "/api/v1/products"
	if encoded := values.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var products []Product
	if err := c.do(ctx, http.MethodGet, path, "", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Product fetches a single product by numeric ID or slug.
func (c *Client) Product(ctx context.Context, identifier string) (*Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodGet, "/api/v1/products/"+url.PathEscape(identifier), "", nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Categories lists the distinct product categories in catalog order.
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.do(ctx, http.MethodGet, "/api/v1/products/categories", "", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CompareCandidates returns the products not yet present in the given
// comparison selection, in catalog order.
func (c *Client) CompareCandidates(ctx context.Context, selected []int) ([]Product, error) {
	ids := make([]string, len(selected))
	for i, id := range selected {
		ids[i] = strconv.Itoa(id)
	}

	path := "/api/v1/products/compare?selected=" + url.QueryEscape(strings.Join(ids, ","))

	var products []Product
	if err := c.do(ctx, http.MethodGet, path, "", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// # Auth Operations

// loginResult matches the {token, user} payload of POST /auth/login.
type loginResult struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// Login exchanges credentials for a bearer token and the resolved profile.
func (c *Client) Login(ctx context.Context, email, password string) (string, *User, error) {
	body := map[string]string{"email": email, "password": password}

	var result loginResult
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", "", body, &result); err != nil {
		return "", nil, err
	}

	return result.Token, result.User, nil
}

// Register creates a new customer account. It does not sign the account in.
func (c *Client) Register(ctx context.Context, input RegisterInput) error {
	return c.do(ctx, http.MethodPost, "/api/v1/auth/register", "", input, nil)
}

// meResult matches the {user} payload of GET /auth/me.
type meResult struct {
	User *User `json:"user"`
}

// Me resolves a bearer token to the current account profile.
func (c *Client) Me(ctx context.Context, token string) (*User, error) {
	var result meResult
	if err := c.do(ctx, http.MethodGet, "/api/v1/auth/me", token, nil, &result); err != nil {
		return nil, err
	}
	return result.User, nil
}

// # Transport

// successEnvelope matches the server's standard {data} wrapper.
type successEnvelope struct {
	Data json.RawMessage `json:"data"`
}

// errorEnvelope matches the server's standard error wrapper.
type errorEnvelope struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// do performs one API round trip: encode body, attach the bearer token,
// unwrap the response envelope into out, and turn rejections into [*APIError].
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("client: encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("client: build request: %w", err)
	}

	request.Header.Set("Accept", "application/json")
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("client: %s %s: %w", method, path, err)
	}
	defer func() { _ = response.Body.Close() }()

	if response.StatusCode >= 400 {
		return decodeAPIError(response)
	}

	if out == nil || response.StatusCode == http.StatusNoContent {
		return nil
	}

	var envelope successEnvelope
	if err := json.NewDecoder(response.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("client: decode response: %w", err)
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("client: decode payload: %w", err)
	}

	return nil
}

// decodeAPIError builds an [*APIError], falling back to a generic message
// when the body is not the standard envelope.
func decodeAPIError(response *http.Response) error {
	apiError := &APIError{
		StatusCode: response.StatusCode,
		Message:    "request failed",
	}

	var envelope errorEnvelope
	if err := json.NewDecoder(response.Body).Decode(&envelope); err == nil && envelope.Error != "" {
		apiError.Message = envelope.Error
		apiError.Code = envelope.Code
	}

	return apiError
}
