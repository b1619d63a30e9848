package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/melodicname/api/internal/http/health"
	"github.com/melodicname/api/internal/http/v1/routes"
	"github.com/melodicname/api/internal/platform/auth"
	"github.com/melodicname/api/internal/platform/config"
	"github.com/melodicname/api/internal/platform/firebase"
	applog "github.com/melodicname/api/internal/platform/logging"
	appmiddleware "github.com/melodicname/api/internal/platform/middleware"
	"github.com/melodicname/api/internal/platform/respond"
	"github.com/melodicname/api/internal/service/photo"
	profilesvc "github.com/melodicname/api/internal/service/profile"
	songsvc "github.com/melodicname/api/internal/service/songrequest"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

func main() {
	defer func() {
		if err := applog.Sync(); err != nil {
			applog.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := applog.Err(); err != nil {
		applog.LogError(context.Background(), "logger init error", err)
	}

	cfg := config.Load()

	ctx := context.Background()
	clients, err := firebase.InitializeClients(ctx, firebase.Config{
		ProjectID:                    cfg.ProjectID,
		StorageBucket:                cfg.StorageBucket,
		GoogleApplicationCredentials: cfg.GoogleApplicationCredentials,
	})
	if err != nil {
		applog.LogFatal(ctx, "firebase initialization failed", err)
	}
	defer func() {
		if err := clients.Close(); err != nil {
			applog.LogError(ctx, "firebase client close error", err)
		}
	}()

	verifier := auth.NewFirebaseVerifier(clients.Auth)
	profileService := profilesvc.NewFirestoreStore(clients.Firestore, cfg.FreeSongsOnSignup)
	songService := songsvc.NewFirestoreStore(clients.Firestore)
	photoStore := photo.NewGCSStore(clients.Storage, cfg.StorageBucket)

	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	// Base middleware stack
	router.Use(
		appmiddleware.Security("/api-docs"),
		appmiddleware.Vary(),
		appmiddleware.CORS(cfg.AllowedOrigins...),
		appmiddleware.RequestID(),
		// RealIP extracts client IP from X-Real-IP or X-Forwarded-For headers.
		// SECURITY: Only use behind a trusted reverse proxy (e.g., Cloud Run, nginx).
		chimiddleware.RealIP,
		// RequestSize bounds submissions; a photo plus form fields fits well
		// under this limit.
		chimiddleware.RequestSize(8<<20), // 8 MB limit
		applog.RequestLogger(),
		applog.AccessLogger(),
		respond.Recoverer(),
	)

	router.Get("/healthz", health.Handler)

	v1 := chi.NewRouter()
	v1.NotFound(respond.NotFoundHandler())
	v1.MethodNotAllowed(respond.MethodNotAllowedHandler())
	router.Mount("/v1", v1)

	humaCfg := huma.DefaultConfig("MelodicName API", Version)
	humaCfg.DocsPath = "/api-docs"
	humaCfg.Servers = []*huma.Server{{URL: "/v1"}}
	api := humachi.New(v1, humaCfg)

	// Add CBOR content type to OpenAPI requests and responses
	api.OpenAPI().OnAddOperation = append(api.OpenAPI().OnAddOperation,
		func(_ *huma.OpenAPI, op *huma.Operation) {
			if op.RequestBody != nil && op.RequestBody.Content != nil {
				if jsonContent, ok := op.RequestBody.Content["application/json"]; ok {
					op.RequestBody.Content["application/cbor"] = jsonContent
				}
			}
			for _, resp := range op.Responses {
				if resp.Content == nil {
					continue
				}
				if jsonContent, ok := resp.Content["application/json"]; ok {
					resp.Content["application/cbor"] = jsonContent
				}
			}
		},
	)

	// Register routes
	routes.Register(api, verifier, profileService, songService, photoStore)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		// No WriteTimeout: the change feed holds SSE responses open
		// indefinitely. Handlers bound their own work via request context.
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 64 << 10, // 64 KB
	}

	listenErr := make(chan error, 1)
	go func() {
		applog.LogInfo(context.Background(), "server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			listenErr <- err
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		applog.LogError(context.Background(), "listen failed", err, zap.String("addr", srv.Addr))
		os.Exit(1)
	case <-stop:
		applog.LogInfo(context.Background(), "shutdown signal received")
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		applog.LogError(shutdownCtx, "server shutdown error", err)
	}
	applog.LogInfo(context.Background(), "server exited")
}
