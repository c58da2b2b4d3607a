// Copyright (c) 2026 Durafone. All rights reserved.

package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/durafone/storefront/internal/platform/apperr"
	"github.com/durafone/storefront/internal/platform/sec"
	"github.com/durafone/storefront/internal/users/auth"
)

// fakeUserRepository is an in-memory UserRepository double.
type fakeUserRepository struct {
	users []*auth.User
}

func (f *fakeUserRepository) FindByID(ctx context.Context, id string) (*auth.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (f *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*auth.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, apperr.NotFound("User with this email")
}

func (f *fakeUserRepository) FindByCPF(ctx context.Context, cpf string) (*auth.User, error) {
	for _, user := range f.users {
		if user.CPF == cpf {
			return user, nil
		}
	}
	return nil, apperr.NotFound("User with this CPF")
}

func (f *fakeUserRepository) Create(ctx context.Context, user *auth.User) error {
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepository) List(ctx context.Context, limit, offset int) ([]*auth.User, int, error) {
	return f.users, len(f.users), nil
}

func (f *fakeUserRepository) Count(ctx context.Context) (int, error) {
	return len(f.users), nil
}

// stubTokenProvider mints predictable tokens.
type stubTokenProvider struct {
	calls int
}

func (s *stubTokenProvider) GenerateAccessToken(userID, email, role string, timeToLive time.Duration) (string, error) {
	s.calls++
	return "token-for-" + userID, nil
}

func validRegisterInput() auth.RegisterInput {
	return auth.RegisterInput{
		Name:     "Maria Souza",
		Email:    "maria@example.com",
		CPF:      "52998224725",
		Phone:    "11987654321",
		Password: "s3cret",
	}
}

/*
TestService_Register verifies the enrollment flow: hashed password,
customer role, and no token minted.
*/
func TestService_Register(t *testing.T) {
	repository := &fakeUserRepository{}
	tokens := &stubTokenProvider{}
	service := auth.NewService(repository, tokens)

	user, err := service.Register(context.Background(), validRegisterInput())

	require.NoError(t, err)
	require.NotNil(t, user)

	// 1. Identity fields are stored; the password never is.
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, sec.RoleCustomer, user.Role)
	assert.NotEqual(t, "s3cret", user.PasswordHash)
	assert.True(t, sec.CheckPasswordHash("s3cret", user.PasswordHash))

	// 2. Registration does not sign in.
	assert.Zero(t, tokens.calls)
}

/*
TestService_Register_Conflicts verifies duplicate email and CPF rejection.
*/
func TestService_Register_Conflicts(t *testing.T) {
	repository := &fakeUserRepository{}
	service := auth.NewService(repository, &stubTokenProvider{})

	_, err := service.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)

	// 1. Same email.
	duplicate := validRegisterInput()
	duplicate.CPF = "11144477735"
	_, err = service.Register(context.Background(), duplicate)
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperr.As(err).Code)

	// 2. Same CPF, new email.
	duplicate = validRegisterInput()
	duplicate.Email = "other@example.com"
	_, err = service.Register(context.Background(), duplicate)
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperr.As(err).Code)

	// Only the first registration persisted.
	total, _ := repository.Count(context.Background())
	assert.Equal(t, 1, total)
}

/*
TestService_Login verifies the credential exchange and its failure modes.
*/
func TestService_Login(t *testing.T) {
	repository := &fakeUserRepository{}
	tokens := &stubTokenProvider{}
	service := auth.NewService(repository, tokens)

	registered, err := service.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)

	// 1. Success: token plus resolved profile.
	session, err := service.Login(context.Background(), auth.LoginInput{
		Email:    "maria@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)
	assert.Equal(t, "token-for-"+registered.ID, session.Token)
	assert.Equal(t, registered.ID, session.User.ID)

	// 2. Wrong password and unknown email fail identically, so responses
	// cannot be used to enumerate accounts.
	_, wrongPassword := service.Login(context.Background(), auth.LoginInput{
		Email:    "maria@example.com",
		Password: "wrong",
	})
	_, unknownEmail := service.Login(context.Background(), auth.LoginInput{
		Email:    "nobody@example.com",
		Password: "s3cret",
	})

	require.Error(t, wrongPassword)
	require.Error(t, unknownEmail)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
	assert.Equal(t, "UNAUTHORIZED", apperr.As(wrongPassword).Code)
}

/*
TestService_Me verifies session resolution and the stale-account case.
*/
func TestService_Me(t *testing.T) {
	repository := &fakeUserRepository{}
	service := auth.NewService(repository, &stubTokenProvider{})

	registered, err := service.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)

	// 1. Known account resolves.
	user, err := service.Me(context.Background(), registered.ID)
	require.NoError(t, err)
	assert.Equal(t, registered.Email, user.Email)

	// 2. Deleted account surfaces as Unauthorized, not NotFound: the
	// caller holds a token for an identity that no longer exists.
	_, err = service.Me(context.Background(), "gone")
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
}
