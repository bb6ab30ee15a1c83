package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/m1z23r/drift/pkg/drift"
	"github.com/m1z23r/drift/pkg/middleware"
	"go.uber.org/zap"

	"github.com/oxiliosofficial/drafthause-admin/internal/config"
	"github.com/oxiliosofficial/drafthause-admin/internal/handlers"
	authmw "github.com/oxiliosofficial/drafthause-admin/internal/middleware"
	"github.com/oxiliosofficial/drafthause-admin/internal/seed"
	"github.com/oxiliosofficial/drafthause-admin/internal/services"
	"github.com/oxiliosofficial/drafthause-admin/internal/settings"
	"github.com/oxiliosofficial/drafthause-admin/internal/sse"
	"github.com/oxiliosofficial/drafthause-admin/internal/store"
	"github.com/oxiliosofficial/drafthause-admin/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	bridge, err := settings.Open(cfg.SettingsDBPath)
	if err != nil {
		zl.Fatal("failed to open settings store", zap.Error(err))
	}
	defer bridge.Close()

	st := store.New(seed.NewSnapshot(), bridge)

	jwtService := services.NewJWTService(cfg.JWTSecret, cfg.JWTAccessExpiry, cfg.JWTRefreshExpiry)
	authService := services.NewAuthService(st, jwtService, cfg.AdminEmail, cfg.AdminPassword)
	emailService := services.NewEmailService(cfg.SMTP)
	sim := services.NewSimulator(cfg.SimBaseLatency, cfg.SimJitter)

	hub := sse.NewHub()
	go hub.Run()
	unsubscribe := st.Subscribe(func(ch store.Change, _ store.Snapshot) {
		hub.BroadcastChange(ch)
	})
	defer unsubscribe()

	authHandler := handlers.NewAuthHandler(authService)
	clientHandler := handlers.NewClientHandler(st, sim, emailService, cfg.BaseURL+"/portal")
	designerHandler := handlers.NewDesignerHandler(st, sim)
	projectHandler := handlers.NewProjectHandler(st, sim)
	versionHandler := handlers.NewVersionHandler(st, sim)
	commentHandler := handlers.NewCommentHandler(st, sim)
	approvalHandler := handlers.NewApprovalHandler(st, sim, emailService, cfg.AdminEmail, zl)
	notificationHandler := handlers.NewNotificationHandler(st)
	activityHandler := handlers.NewActivityHandler(st)
	exportHandler := handlers.NewExportHandler(st, sim)
	reportHandler := handlers.NewReportHandler(sim)
	productHandler := handlers.NewProductHandler(st, sim)
	aiIdeaHandler := handlers.NewAIIdeaHandler(st, sim)
	settingsHandler := handlers.NewSettingsHandler(st, zl)
	dashboardHandler := handlers.NewDashboardHandler(st)
	portalHandler := handlers.NewPortalHandler(st, sim, authService)
	sseHandler := handlers.NewSSEHandler(hub)

	app := drift.New()

	if cfg.IsProduction() {
		app.SetMode(drift.ReleaseMode)
	} else {
		app.SetMode(drift.DebugMode)
	}

	app.Use(middleware.Recovery())
	app.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:       86400,
	}))
	app.Use(middleware.BodyParser())
	app.Use(authmw.RequestLogger(zl))

	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	admin := api.Group("")
	admin.Use(authmw.Auth(jwtService))
	admin.Use(authmw.RequireRole(services.RoleAdmin))

	admin.Get("/dashboard/stats", dashboardHandler.Stats)
	admin.Get("/activity", activityHandler.List)

	admin.Get("/clients", clientHandler.List)
	admin.Post("/clients", clientHandler.Create)
	admin.Get("/clients/:clientId", clientHandler.Get)
	admin.Patch("/clients/:clientId", clientHandler.Update)
	admin.Delete("/clients/:clientId", clientHandler.Delete)
	admin.Post("/clients/:clientId/invite", clientHandler.Invite)

	admin.Get("/designers", designerHandler.List)
	admin.Post("/designers", designerHandler.Create)
	admin.Get("/designers/:designerId", designerHandler.Get)
	admin.Patch("/designers/:designerId", designerHandler.Update)
	admin.Delete("/designers/:designerId", designerHandler.Delete)

	admin.Get("/projects", projectHandler.List)
	admin.Post("/projects", projectHandler.Create)
	admin.Get("/projects/:projectId", projectHandler.Get)
	admin.Patch("/projects/:projectId", projectHandler.Update)
	admin.Delete("/projects/:projectId", projectHandler.Delete)

	admin.Get("/projects/:projectId/versions", versionHandler.ListByProject)
	admin.Post("/projects/:projectId/versions", versionHandler.Create)
	admin.Get("/versions/:versionId", versionHandler.Get)
	admin.Patch("/versions/:versionId", versionHandler.Update)
	admin.Delete("/versions/:versionId", versionHandler.Delete)

	admin.Get("/projects/:projectId/comments", commentHandler.ListByProject)
	admin.Post("/projects/:projectId/comments", commentHandler.Create)
	admin.Patch("/comments/:commentId", commentHandler.Update)
	admin.Delete("/comments/:commentId", commentHandler.Delete)

	admin.Get("/approvals", approvalHandler.List)
	admin.Post("/approvals", approvalHandler.Request)
	admin.Get("/approvals/:approvalId", approvalHandler.Get)
	admin.Post("/approvals/:approvalId/decision", approvalHandler.Decide)

	admin.Get("/notifications", notificationHandler.List)
	admin.Post("/notifications/:notificationId/read", notificationHandler.MarkRead)
	admin.Post("/notifications/read-all", notificationHandler.MarkAllRead)

	admin.Get("/projects/:projectId/activity", activityHandler.ListByProject)
	admin.Get("/projects/:projectId/exports", exportHandler.ListByProject)
	admin.Post("/projects/:projectId/exports", exportHandler.Generate)
	admin.Delete("/exports/:exportId", exportHandler.Delete)
	admin.Post("/reports", reportHandler.Generate)

	admin.Get("/products", productHandler.List)
	admin.Post("/products", productHandler.Create)
	admin.Get("/products/:productId", productHandler.Get)
	admin.Patch("/products/:productId", productHandler.Update)
	admin.Delete("/products/:productId", productHandler.Delete)
	admin.Post("/products/scrape", productHandler.Scrape)
	admin.Get("/categories", productHandler.ListCategories)
	admin.Post("/categories", productHandler.CreateCategory)

	admin.Get("/ai-ideas", aiIdeaHandler.List)
	admin.Post("/ai-ideas", aiIdeaHandler.Generate)
	admin.Post("/ai-ideas/:setId/save", aiIdeaHandler.SaveItem)

	admin.Get("/settings", settingsHandler.Get)
	admin.Patch("/settings", settingsHandler.Update)

	portal := api.Group("/portal")
	portal.Post("/login", portalHandler.Login)

	portalAuthed := api.Group("/portal")
	portalAuthed.Use(authmw.Auth(jwtService))
	portalAuthed.Use(authmw.RequireRole(services.RoleClient))
	portalAuthed.Get("/me", portalHandler.Me)
	portalAuthed.Get("/projects", portalHandler.ListProjects)
	portalAuthed.Get("/projects/:projectId", portalHandler.GetProject)
	portalAuthed.Get("/projects/:projectId/versions", portalHandler.ListVersions)
	portalAuthed.Get("/projects/:projectId/comments", portalHandler.ListComments)
	portalAuthed.Post("/projects/:projectId/comments", portalHandler.CreateComment)
	portalAuthed.Post("/projects/:projectId/versions/:versionId/decision", portalHandler.DecideVersion)

	events := api.Group("")
	events.Use(authmw.Auth(jwtService))
	events.Get("/events", sseHandler.Connect)

	api.Get("/health", func(c *drift.Context) {
		_ = c.JSON(200, map[string]string{"status": "ok"})
	})

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		zl.Info("server starting", zap.String("addr", addr))
		if err := app.Run(addr); err != nil {
			zl.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zl.Info("shutting down server")
}
