package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/ilydev-openproject/salesaice/internal/auth/jwt"
	"github.com/ilydev-openproject/salesaice/internal/dependency/mocks"
	"github.com/ilydev-openproject/salesaice/internal/dto"
	gerr "github.com/ilydev-openproject/salesaice/internal/errors"
	"github.com/ilydev-openproject/salesaice/internal/ratelimit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	jwtSecret      = "hehe"
	masterPassword = "FJKqDyBvr9pAQMB3f8Uj4s"

	username = "budi"
	password = "testPassword"
)

func newTestServer(t *testing.T, l *ratelimit.MultiKeyLimiter) (*Server, *mocks.Repository, *mocks.Reps) {
	repo := mocks.NewRepository(t)
	reps := mocks.NewReps(t)
	repo.On("Reps").Return(reps).Maybe()

	s, err := New(&Config{
		JWTSecret:      jwtSecret,
		MasterPassword: masterPassword,
		JWTTTL:         "60m",
		BcryptCost:     bcrypt.MinCost,
	}, repo, l)
	require.NoError(t, err)
	return s, repo, reps
}

func TestNew(t *testing.T) {
	_, err := New(&Config{MasterPassword: masterPassword}, nil, nil)
	assert.Error(t, err)

	_, err = New(&Config{JWTSecret: jwtSecret}, nil, nil)
	assert.Error(t, err)

	_, err = New(&Config{JWTSecret: jwtSecret, MasterPassword: masterPassword, JWTTTL: "soon", BcryptCost: bcrypt.MinCost}, nil, nil)
	assert.Error(t, err)

	s, err := New(&Config{JWTSecret: jwtSecret, MasterPassword: masterPassword, BcryptCost: bcrypt.MinCost}, nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, 12*time.Hour, s.jwtTTL)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	s, _, reps := newTestServer(t, nil)

	pwHash, err := s.HashPassword(password)
	require.NoError(t, err)

	reps.On("PasswordHashByUsername", mock.Anything, username).Return(pwHash, nil)
	reps.On("PasswordHashByUsername", mock.Anything, "ghost").
		Return("", fmt.Errorf("can't get rep password hash: %w", sql.ErrNoRows))

	resp, err := s.Login(ctx, "10.0.0.1", &dto.LoginRequest{Username: " Budi ", Password: password})
	require.NoError(t, err)

	sub, err := jwt.VerifyToken(s.JwtAuth, resp.AuthToken)
	require.NoError(t, err)
	assert.Equal(t, username, sub)

	_, err = s.Login(ctx, "10.0.0.1", &dto.LoginRequest{Username: username, Password: "wrongPassword"})
	assert.ErrorIs(t, err, gerr.NotAuthenticated)

	_, err = s.Login(ctx, "10.0.0.1", &dto.LoginRequest{Username: "ghost", Password: password})
	assert.ErrorIs(t, err, gerr.NotAuthenticated)

	_, err = s.Login(ctx, "10.0.0.1", &dto.LoginRequest{Username: username})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestLoginRateLimited(t *testing.T) {
	ctx := context.Background()
	l := ratelimit.NewCustomMultiKeyLimiter(ratelimit.Config{LoginPerIP: 100, LoginPerUsername: 2, ImportPerIP: 1})
	s, _, reps := newTestServer(t, l)

	reps.On("PasswordHashByUsername", mock.Anything, username).Return("not-a-hash", nil).Twice()

	for i := 0; i < 2; i++ {
		_, err := s.Login(ctx, "10.0.0.1", &dto.LoginRequest{Username: username, Password: password})
		assert.ErrorIs(t, err, gerr.NotAuthenticated)
	}
	_, err := s.Login(ctx, "10.0.0.2", &dto.LoginRequest{Username: username, Password: password})
	assert.ErrorIs(t, err, gerr.TooManyRequests)
}

func TestCreateRep(t *testing.T) {
	ctx := context.Background()
	s, repo, reps := newTestServer(t, nil)

	reps.On("AddRep", mock.Anything, username, mock.MatchedBy(func(h string) bool {
		return bcrypt.CompareHashAndPassword([]byte(h), []byte(password)) == nil
	})).Return(nil).Once()

	resp, err := s.CreateRep(ctx, &dto.CreateRepRequest{
		Username:       "BUDI",
		Password:       password,
		MasterPassword: masterPassword,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AuthToken)

	_, err = s.CreateRep(ctx, &dto.CreateRepRequest{
		Username:       username,
		Password:       password,
		MasterPassword: "wrong-master",
	})
	assert.ErrorIs(t, err, gerr.NotAuthenticated)

	dup := errors.New("duplicate entry")
	reps.On("AddRep", mock.Anything, "siti", mock.Anything).Return(dup).Once()
	repo.On("IsErrUniqueViolation", dup).Return(true).Once()
	_, err = s.CreateRep(ctx, &dto.CreateRepRequest{
		Username:       "siti",
		Password:       password,
		MasterPassword: masterPassword,
	})
	assert.ErrorIs(t, err, gerr.RepAlreadyExists)
}

func TestDeleteRep(t *testing.T) {
	ctx := context.Background()
	s, _, reps := newTestServer(t, nil)

	reps.On("DeleteRep", mock.Anything, username).Return(nil).Once()
	reps.On("DeleteRep", mock.Anything, "ghost").Return(fmt.Errorf("rep ghost: %w", sql.ErrNoRows)).Once()

	assert.NoError(t, s.DeleteRep(ctx, &dto.DeleteRepRequest{Username: username, MasterPassword: masterPassword}))
	assert.ErrorIs(t, s.DeleteRep(ctx, &dto.DeleteRepRequest{Username: "ghost", MasterPassword: masterPassword}), gerr.RepNotFound)
	assert.ErrorIs(t, s.DeleteRep(ctx, &dto.DeleteRepRequest{Username: username, MasterPassword: "nope"}), gerr.NotAuthenticated)
}

func TestWithAuth(t *testing.T) {
	s, _, _ := newTestServer(t, nil)

	handler := jwtauth.Verifier(s.JwtAuth)(s.WithAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sub, _ := jwt.SubjectFromContext(r.Context())
		_, _ = w.Write([]byte(sub))
	})))

	req := httptest.NewRequest(http.MethodGet, "/api/stores", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	tok, err := jwt.NewToken(s.JwtAuth, time.Hour, username)
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodGet, "/api/stores", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, username, rr.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/api/stores", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
