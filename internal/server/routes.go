package server

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/guimashan/platfrom-sub000/internal/cache"
	"github.com/guimashan/platfrom-sub000/internal/catalog"
	"github.com/guimashan/platfrom-sub000/internal/config"
	"github.com/guimashan/platfrom-sub000/internal/db"
	"github.com/guimashan/platfrom-sub000/internal/handlers"
	"github.com/guimashan/platfrom-sub000/internal/keyword"
	"github.com/guimashan/platfrom-sub000/internal/line"
	"github.com/guimashan/platfrom-sub000/internal/metrics"
	"github.com/guimashan/platfrom-sub000/internal/middleware"
	"github.com/guimashan/platfrom-sub000/internal/pipeline"
)

// RegisterRoutes wires the webhook, admin console, and operational routes.
func (s *Server) RegisterRoutes(ctx context.Context, database *db.DB, bot *config.YAMLConfig, cat *catalog.Catalog) error {
	registry := keyword.NewRegistry(bot.LIFFApps)
	resolutionCache := cache.New(database, s.Cfg.CacheTTL, nil)
	client := line.NewClient(s.Cfg)
	pipe := pipeline.NewService(database, cat, registry)

	metrics.Init(database)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(database)

	// Initialize handlers
	webhookHandler := handlers.NewWebhookHandler(s.Cfg, bot, resolutionCache, cat, registry, client)
	adminHandler := handlers.NewAdminHandler(database, pipe, resolutionCache, registry, s.Cfg)
	userHandler := handlers.NewUserHandler(database)
	probeHandler := handlers.NewProbeHandler(database)

	// LINE platform webhook. Public by design: the HMAC signature check in
	// the handler is the authentication.
	s.App.Post("/webhook", webhookHandler.Handle)

	// Operational endpoints
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Auth routes - only registered when OIDC is configured
	if s.Cfg.OIDCIssuer != "" {
		authHandler, err := handlers.NewAuthHandler(ctx, s.Cfg, database)
		if err != nil {
			return err
		}
		s.App.Get("/auth/login", authHandler.Login)
		s.App.Get("/auth/callback", authHandler.Callback)
		s.App.Get("/auth/logout", authHandler.Logout)
	} else {
		log.Println("OIDC authentication is disabled. Set OIDC_ISSUER to enable the admin console.")
	}

	// Login page (always available)
	s.App.Get("/login", func(c fiber.Ctx) error {
		return c.Render("login", fiber.Map{
			"Title":       "Login",
			"OIDCEnabled": s.Cfg.OIDCIssuer != "",
		})
	})

	// Admin console - authenticated users can view, editors can mutate
	admin := s.App.Group("/admin", authMiddleware.RequireAuth)
	admin.Get("/", adminHandler.Dashboard)
	admin.Get("/keywords", adminHandler.ListKeywords)
	admin.Post("/keywords", authMiddleware.RequireEditor, adminHandler.CreateKeyword)
	admin.Put("/keywords/:id", authMiddleware.RequireEditor, adminHandler.UpdateKeyword)
	admin.Delete("/keywords/:id", authMiddleware.RequireEditor, adminHandler.DeleteKeyword)

	// Consistency pipeline (admins only)
	admin.Post("/keywords/migrate", authMiddleware.RequireAdmin, adminHandler.Migrate)
	admin.Post("/keywords/rebuild", authMiddleware.RequireAdmin, adminHandler.Rebuild)
	admin.Get("/keywords/export", authMiddleware.RequireAdmin, adminHandler.Export)

	// User management (admins only)
	admin.Get("/users", authMiddleware.RequireAdmin, userHandler.ListUsers)
	admin.Post("/users/:id/role", authMiddleware.RequireAdmin, userHandler.UpdateUserRole)

	return nil
}
