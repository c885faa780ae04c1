package httpapi

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/ilydev-openproject/salesaice/internal/apisrv/auth"
	"github.com/ilydev-openproject/salesaice/internal/apisrv/sales"
	"github.com/ilydev-openproject/salesaice/internal/auth/jwt"
	"github.com/ilydev-openproject/salesaice/internal/dependency/mocks"
	"github.com/ilydev-openproject/salesaice/internal/dto"
	"github.com/ilydev-openproject/salesaice/internal/entity"
	"github.com/ilydev-openproject/salesaice/internal/metrics"
	"github.com/ilydev-openproject/salesaice/internal/ratelimit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type apiEnv struct {
	h      http.Handler
	token  string
	stores *mocks.Stores
	reps   *mocks.Reps
}

func newAPIEnv(t *testing.T) *apiEnv {
	t.Helper()
	repo := mocks.NewRepository(t)
	stores := mocks.NewStores(t)
	reps := mocks.NewReps(t)
	repo.On("Stores").Return(stores).Maybe()
	repo.On("Reps").Return(reps).Maybe()

	ss, err := sales.New(&sales.Config{}, repo, nil, nil, nil)
	require.NoError(t, err)
	as, err := auth.New(&auth.Config{
		JWTSecret:      "secret",
		MasterPassword: "masterPassword1",
		BcryptCost:     bcrypt.MinCost,
	}, repo, nil)
	require.NoError(t, err)

	token, err := jwt.NewToken(as.JwtAuth, time.Hour, "budi")
	require.NoError(t, err)

	s := New(&Config{AllowedOrigins: []string{"https://sales.example.com"}})
	return &apiEnv{
		h:      s.setupHTTPAPI(ss, as, metrics.New(), ratelimit.NewMultiKeyLimiter()),
		token:  token,
		stores: stores,
		reps:   reps,
	}
}

func (e *apiEnv) do(method, path, body string, authed bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+e.token)
	}
	rec := httptest.NewRecorder()
	e.h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var er errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &er))
	return er
}

func TestHealthz(t *testing.T) {
	e := newAPIEnv(t)
	rec := e.do(http.MethodGet, "/healthz", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "serving")
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	e := newAPIEnv(t)
	rec := e.do(http.MethodGet, "/api/stores", "", false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/stores", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec = httptest.NewRecorder()
	e.h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListStores(t *testing.T) {
	e := newAPIEnv(t)
	e.stores.On("ListStores", mock.Anything).Return([]entity.Store{
		{Id: 1, StoreInsert: entity.StoreInsert{Name: "Toko Maju"}},
		{Id: 2, StoreInsert: entity.StoreInsert{Name: "Warung Bu Sri"}},
	}, nil)

	rec := e.do(http.MethodGet, "/api/stores", "", true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got []dto.Store
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Toko Maju", got[0].Name)
}

func TestGetStoreErrors(t *testing.T) {
	e := newAPIEnv(t)
	e.stores.On("GetStoreById", mock.Anything, 7).
		Return(nil, fmt.Errorf("can't get store by id: %w", sql.ErrNoRows))

	rec := e.do(http.MethodGet, "/api/stores/7", "", true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NotFound", decodeError(t, rec).Code)

	rec = e.do(http.MethodGet, "/api/stores/abc", "", true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "InvalidArgument", decodeError(t, rec).Code)
}

func TestInvalidJSONBody(t *testing.T) {
	e := newAPIEnv(t)
	rec := e.do(http.MethodPost, "/api/stores", "{", true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginUnknownRep(t *testing.T) {
	e := newAPIEnv(t)
	e.reps.On("PasswordHashByUsername", mock.Anything, "ghost").
		Return("", fmt.Errorf("can't get rep password hash: %w", sql.ErrNoRows))

	rec := e.do(http.MethodPost, "/api/auth/login", `{"username":"ghost","password":"whatever1"}`, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Unauthenticated", decodeError(t, rec).Code)
}

func TestMetricsEndpoint(t *testing.T) {
	e := newAPIEnv(t)
	e.do(http.MethodGet, "/healthz", "", false)

	rec := e.do(http.MethodGet, "/metrics", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "salesaice_http_requests_total")
}

func TestCORS(t *testing.T) {
	e := newAPIEnv(t)
	for origin, allowed := range map[string]bool{
		"http://localhost:5173":     true,
		"https://sales.example.com": true,
		"https://evil.example.com":  false,
	} {
		req := httptest.NewRequest(http.MethodOptions, "/api/stores", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		rec := httptest.NewRecorder()
		e.h.ServeHTTP(rec, req)

		if allowed {
			assert.Equal(t, origin, rec.Header().Get("Access-Control-Allow-Origin"), origin)
		} else {
			assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"), origin)
		}
	}
}
