package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/launchdeck/launchdeck/internal/application/trending"
	"github.com/launchdeck/launchdeck/internal/domain"
	jwtinfra "github.com/launchdeck/launchdeck/internal/infrastructure/jwt"
	"github.com/launchdeck/launchdeck/internal/transport/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockTrendingSvc struct{ mock.Mock }

func (m *mockTrendingSvc) Build(ctx context.Context, target time.Time) (trending.BuildResult, error) {
	args := m.Called(ctx, target)
	return args.Get(0).(trending.BuildResult), args.Error(1)
}

func (m *mockTrendingSvc) Get(ctx context.Context, target time.Time) (*domain.RankingSnapshot, error) {
	args := m.Called(ctx, target)
	if s, _ := args.Get(0).(*domain.RankingSnapshot); s != nil {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockUserGetter struct{ mock.Mock }

func (m *mockUserGetter) Get(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if u, _ := args.Get(0).(*domain.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

// --- helpers ---

var frozenNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func newTrendingHandler(svc *mockTrendingSvc, users *mockUserGetter) *TrendingHandler {
	h := NewTrendingHandler(svc, users)
	h.now = func() time.Time { return frozenNow }
	return h
}

// claimsReq builds a request carrying JWT claims in context, the way the auth
// middleware leaves them.
func claimsReq(method, target, userID, role string, body []byte) *http.Request {
	var r *http.Request
	if body != nil {
		r = httptest.NewRequest(method, target, bytes.NewReader(body))
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	claims := &jwtinfra.Claims{UserID: userID, Role: role}
	return r.WithContext(context.WithValue(r.Context(), middleware.ClaimsKey, claims))
}

// withChiDate injects a chi URL param "date" into the request context.
func withChiDate(r *http.Request, date string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("date", date)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// --- Generate tests ---

func TestGenerate_NoClaims_Unauthenticated(t *testing.T) {
	svc := &mockTrendingSvc{}
	users := &mockUserGetter{}
	h := newTrendingHandler(svc, users)

	r := httptest.NewRequest(http.MethodPost, "/v1/trending/generate", nil)
	rr := httptest.NewRecorder()
	h.Generate(rr, r)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "unauthenticated")
	svc.AssertNotCalled(t, "Build", mock.Anything, mock.Anything)
}

func TestGenerate_NonAdminRecord_PermissionDenied(t *testing.T) {
	svc := &mockTrendingSvc{}
	users := &mockUserGetter{}
	users.On("Get", mock.Anything, "u1").Return(&domain.User{UserID: "u1", Role: domain.RoleUser}, nil)
	h := newTrendingHandler(svc, users)

	// The token may carry an admin role; the user record decides.
	r := claimsReq(http.MethodPost, "/v1/trending/generate", "u1", domain.RoleAdmin, nil)
	rr := httptest.NewRecorder()
	h.Generate(rr, r)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Contains(t, rr.Body.String(), "permission-denied")
	svc.AssertNotCalled(t, "Build", mock.Anything, mock.Anything)
}

func TestGenerate_UserRecordLoadFails_PermissionDenied(t *testing.T) {
	svc := &mockTrendingSvc{}
	users := &mockUserGetter{}
	users.On("Get", mock.Anything, "u1").Return(nil, domain.ErrNotFound)
	h := newTrendingHandler(svc, users)

	r := claimsReq(http.MethodPost, "/v1/trending/generate", "u1", domain.RoleAdmin, nil)
	rr := httptest.NewRecorder()
	h.Generate(rr, r)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	svc.AssertNotCalled(t, "Build", mock.Anything, mock.Anything)
}

func TestGenerate_Admin_WithDate(t *testing.T) {
	svc := &mockTrendingSvc{}
	users := &mockUserGetter{}
	users.On("Get", mock.Anything, "a1").Return(&domain.User{UserID: "a1", Role: domain.RoleAdmin}, nil)
	want := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	svc.On("Build", mock.Anything, want).Return(trending.BuildResult{SnapshotID: "2024-06-01", Count: 2}, nil)
	h := newTrendingHandler(svc, users)

	body, _ := json.Marshal(map[string]string{"date": "2024-06-01"})
	r := claimsReq(http.MethodPost, "/v1/trending/generate", "a1", domain.RoleAdmin, body)
	rr := httptest.NewRecorder()
	h.Generate(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp trending.BuildResult
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "2024-06-01", resp.SnapshotID)
	assert.Equal(t, 2, resp.Count)
	svc.AssertExpectations(t)
}

func TestGenerate_Admin_NoBody_UsesToday(t *testing.T) {
	svc := &mockTrendingSvc{}
	users := &mockUserGetter{}
	users.On("Get", mock.Anything, "a1").Return(&domain.User{UserID: "a1", Role: domain.RoleAdmin}, nil)
	svc.On("Build", mock.Anything, frozenNow).Return(trending.BuildResult{SnapshotID: "2024-06-15"}, nil)
	h := newTrendingHandler(svc, users)

	r := claimsReq(http.MethodPost, "/v1/trending/generate", "a1", domain.RoleAdmin, nil)
	rr := httptest.NewRecorder()
	h.Generate(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	svc.AssertExpectations(t)
}

func TestGenerate_Admin_MalformedDate_FallsBackToToday(t *testing.T) {
	svc := &mockTrendingSvc{}
	users := &mockUserGetter{}
	users.On("Get", mock.Anything, "a1").Return(&domain.User{UserID: "a1", Role: domain.RoleAdmin}, nil)
	svc.On("Build", mock.Anything, frozenNow).Return(trending.BuildResult{SnapshotID: "2024-06-15"}, nil)
	h := newTrendingHandler(svc, users)

	body, _ := json.Marshal(map[string]string{"date": "June 1st"})
	r := claimsReq(http.MethodPost, "/v1/trending/generate", "a1", domain.RoleAdmin, body)
	rr := httptest.NewRecorder()
	h.Generate(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	svc.AssertExpectations(t)
}

// --- Get tests ---

func TestTrendingGet_WithDateParam(t *testing.T) {
	svc := &mockTrendingSvc{}
	users := &mockUserGetter{}
	want := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	snap := &domain.RankingSnapshot{DateID: "2024-06-01", Period: "daily"}
	svc.On("Get", mock.Anything, want).Return(snap, nil)
	h := newTrendingHandler(svc, users)

	r := withChiDate(httptest.NewRequest(http.MethodGet, "/v1/trending/2024-06-01", nil), "2024-06-01")
	rr := httptest.NewRecorder()
	h.Get(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp domain.RankingSnapshot
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "2024-06-01", resp.DateID)
	svc.AssertExpectations(t)
}

func TestTrendingGet_NoDateParam_UsesToday(t *testing.T) {
	svc := &mockTrendingSvc{}
	users := &mockUserGetter{}
	svc.On("Get", mock.Anything, frozenNow).Return(&domain.RankingSnapshot{DateID: "2024-06-15"}, nil)
	h := newTrendingHandler(svc, users)

	r := httptest.NewRequest(http.MethodGet, "/v1/trending", nil)
	rr := httptest.NewRecorder()
	h.Get(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	svc.AssertExpectations(t)
}

func TestTrendingGet_MalformedDate_BadRequest(t *testing.T) {
	svc := &mockTrendingSvc{}
	users := &mockUserGetter{}
	h := newTrendingHandler(svc, users)

	r := withChiDate(httptest.NewRequest(http.MethodGet, "/v1/trending/notadate", nil), "notadate")
	rr := httptest.NewRecorder()
	h.Get(rr, r)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	svc.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestTrendingGet_NotFound(t *testing.T) {
	svc := &mockTrendingSvc{}
	users := &mockUserGetter{}
	want := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	svc.On("Get", mock.Anything, want).Return(nil, domain.ErrNotFound)
	h := newTrendingHandler(svc, users)

	r := withChiDate(httptest.NewRequest(http.MethodGet, "/v1/trending/2024-06-01", nil), "2024-06-01")
	rr := httptest.NewRecorder()
	h.Get(rr, r)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
