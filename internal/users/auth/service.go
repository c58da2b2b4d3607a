// Copyright (c) 2026 Durafone. All rights reserved.

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/durafone/storefront/internal/platform/apperr"
	"github.com/durafone/storefront/internal/platform/sec"
	"github.com/durafone/storefront/pkg/uuid"
)

// # Contracts & Types

// TokenProvider defines the contract for minting bearer credentials.
//
// The concrete implementation is [sec.TokenService]; tests substitute a stub.
type TokenProvider interface {
	GenerateAccessToken(userID, email, role string, timeToLive time.Duration) (string, error)
}

// Service implements the authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, registration,
// or login logic must be reviewed carefully.
type Service struct {
	userRepository UserRepository
	tokenProvider  TokenProvider
}

// NewService constructs an auth [Service] with its dependencies.
func NewService(userRepo UserRepository, tokenProv TokenProvider) *Service {
	return &Service{
		userRepository: userRepo,
		tokenProvider:  tokenProv,
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new customer.
type RegisterInput struct {
	Name     string
	Email    string
	CPF      string
	Phone    string
	Password string
}

// Register validates uniqueness, hashes the password, and persists a new
// customer account.
//
// Registration never signs the customer in: the client is expected to follow
// up with an explicit login.
func (service *Service) Register(ctx context.Context, input RegisterInput) (*User, error) {

	// Uniqueness checks return client-safe Conflict errors.
	if _, err := service.userRepository.FindByEmail(ctx, input.Email); err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}

	if _, err := service.userRepository.FindByCPF(ctx, input.CPF); err == nil {
		return nil, apperr.Conflict("CPF is already registered")
	}

	// Never store plain-text passwords. Default cost balances security and
	// CPU use during registration spikes.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	user := &User{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        input.Email,
		CPF:          input.CPF,
		Phone:        input.Phone,
		PasswordHash: hashedPassword,
		Role:         sec.RoleCustomer,
	}

	if err := service.userRepository.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("auth_service_register_failed: %w", err)
	}

	return user, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email    string
	Password string
}

// LoginSession is the result of a successful login: the bearer credential
// the client persists, and the resolved identity it renders.
type LoginSession struct {
	Token string
	User  *User
}

// Login verifies the credentials and issues a signed bearer token.
//
// On any failure nothing is issued and nothing is persisted; a generic
// Unauthorized error prevents account enumeration.
func (service *Service) Login(ctx context.Context, input LoginInput) (*LoginSession, error) {
	user, err := service.userRepository.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid email or password")
	}

	// Constant-time comparison inside bcrypt prevents timing attacks.
	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid email or password")
	}

	token, err := service.tokenProvider.GenerateAccessToken(user.ID, user.Email, string(user.Role), AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	return &LoginSession{
		Token: token,
		User:  user,
	}, nil
}

// # Session Resolution

// Me resolves the authenticated user's full profile from storage.
//
// This is the validation point for silent session restore: a stale or
// revoked account surfaces here as an error, which the client treats as
// "credential no longer valid".
func (service *Service) Me(ctx context.Context, userID string) (*User, error) {
	user, err := service.userRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, apperr.Unauthorized("Session is no longer valid")
	}

	return user, nil
}
