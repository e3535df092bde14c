package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/launchdeck/launchdeck/internal/application/trending"
	"github.com/launchdeck/launchdeck/internal/domain"
	"github.com/launchdeck/launchdeck/internal/pkg/dates"
	"github.com/launchdeck/launchdeck/internal/transport/http/middleware"
)

type userGetter interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
}

// TrendingHandler exposes the daily ranking: an admin-only on-demand rebuild
// and a public-to-authenticated read path.
type TrendingHandler struct {
	svc   trending.Service
	users userGetter
	now   func() time.Time
}

func NewTrendingHandler(svc trending.Service, users userGetter) *TrendingHandler {
	return &TrendingHandler{svc: svc, users: users, now: time.Now}
}

// Generate rebuilds the snapshot for the requested date (today when absent or
// malformed — the lenient fallback is deliberate). The admin check reads the
// caller's user record rather than trusting the token's role claim, so a
// revoked admin is locked out as soon as their record changes.
func (h *TrendingHandler) Generate(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}
	u, err := h.users.Get(r.Context(), claims.UserID)
	if err != nil || u.Role != domain.RoleAdmin {
		writeError(w, http.StatusForbidden, "permission-denied")
		return
	}

	target := h.now().UTC()
	var req struct {
		Date string `json:"date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err == nil && req.Date != "" {
		if d, err := dates.ParseDay(req.Date); err == nil {
			target = d
		}
	}

	res, err := h.svc.Build(r.Context(), target)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Get returns the stored snapshot for the date in the URL, or today's when
// the route carries no date.
func (h *TrendingHandler) Get(w http.ResponseWriter, r *http.Request) {
	target := h.now().UTC()
	if raw := chi.URLParam(r, "date"); raw != "" {
		d, err := dates.ParseDay(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		target = d
	}
	snap, err := h.svc.Get(r.Context(), target)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}
