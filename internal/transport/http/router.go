package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/launchdeck/launchdeck/internal/application/auth"
	"github.com/launchdeck/launchdeck/internal/application/notification"
	"github.com/launchdeck/launchdeck/internal/application/notifier"
	productapp "github.com/launchdeck/launchdeck/internal/application/product"
	"github.com/launchdeck/launchdeck/internal/application/trending"
	"github.com/launchdeck/launchdeck/internal/config"
	"github.com/launchdeck/launchdeck/internal/domain"
	"github.com/launchdeck/launchdeck/internal/transport/http/handler"
	appmiddleware "github.com/launchdeck/launchdeck/internal/transport/http/middleware"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", appmiddleware.HookTokenHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	var authMw func(http.Handler) http.Handler
	if deps.JWTProvider != nil {
		authMw = appmiddleware.Auth(deps.JWTProvider)
	} else {
		authMw = func(next http.Handler) http.Handler { return next }
	}

	var hookMw func(http.Handler) http.Handler
	if cfg.HookToken != "" {
		hookMw = appmiddleware.HookToken(cfg.HookToken)
	} else {
		hookMw = func(next http.Handler) http.Handler { return next }
	}

	// 5 requests/second, burst of 10 — applied to the public login endpoint.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	notifierSvc := notifier.NewService(deps.ProductRepo, deps.NotificationRepo, deps.Push)
	trendingSvc := trending.NewService(deps.ProductRepo, deps.RankingRepo)
	notifSvc := notification.NewService(deps.NotificationRepo)
	// Pass an untyped nil when no provider is configured; a nil *Provider in
	// a non-nil interface would slip past the signer check in Login.
	var authSvc auth.Service
	if deps.JWTProvider != nil {
		authSvc = auth.NewService(deps.UserRepo, deps.JWTProvider)
	} else {
		authSvc = auth.NewService(deps.UserRepo, nil)
	}
	productSvc := productapp.NewService(deps.ProductRepo, deps.S3Store)

	healthH := handler.NewHealthHandler()
	hookH := handler.NewHookHandler(notifierSvc)
	trendingH := handler.NewTrendingHandler(trendingSvc, deps.UserRepo)
	notifH := handler.NewNotificationHandler(notifSvc)
	sessionH := handler.NewSessionHandler(authSvc)
	productH := handler.NewProductHandler(productSvc)

	r.Route("/v1", func(r chi.Router) {
		// ── Public routes (no auth) ──────────────────────────────────────────
		r.Get("/health-check/{action}", healthH.Ping)
		r.With(sensitiveRL.Limit).Post("/sessions/login", sessionH.Login)

		// ── Event hooks (trigger-delivery infrastructure) ────────────────────
		r.Group(func(r chi.Router) {
			r.Use(hookMw)
			r.Post("/hooks/comments", hookH.CommentCreated)
			r.Post("/hooks/upvotes", hookH.UpvoteCreated)
		})

		// ── Authenticated routes ─────────────────────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(authMw)

			r.Get("/products/{id}", productH.Get)
			r.Get("/notifications", notifH.ListUnread)
			r.Put("/notifications/{id}", notifH.MarkAsRead)
			r.Get("/trending", trendingH.Get)
			r.Get("/trending/{date}", trendingH.Get)
			// Admin check happens inside the handler, against the caller's
			// stored user record.
			r.Post("/trending/generate", trendingH.Generate)

			// Admin-only routes
			r.Group(func(r chi.Router) {
				r.Use(appmiddleware.RequireRole(domain.RoleAdmin))

				r.Put("/products/{id}/logo", productH.UploadLogo)
			})
		})
	})

	return r
}
