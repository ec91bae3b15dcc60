// Package app wires configuration, storage, services and transport into a
// running HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sima-app/sima-backend/internal/adapter/postgres"
	auditrepo "github.com/sima-app/sima-backend/internal/adapter/postgres/audit"
	personarepo "github.com/sima-app/sima-backend/internal/adapter/postgres/persona"
	registrorepo "github.com/sima-app/sima-backend/internal/adapter/postgres/registro"
	userrepo "github.com/sima-app/sima-backend/internal/adapter/postgres/user"
	"github.com/sima-app/sima-backend/internal/auth"
	"github.com/sima-app/sima-backend/internal/config"
	auditsvc "github.com/sima-app/sima-backend/internal/service/audit"
	authsvc "github.com/sima-app/sima-backend/internal/service/auth"
	exportsvc "github.com/sima-app/sima-backend/internal/service/export"
	personasvc "github.com/sima-app/sima-backend/internal/service/persona"
	registrosvc "github.com/sima-app/sima-backend/internal/service/registro"
	usersvc "github.com/sima-app/sima-backend/internal/service/user"
	"github.com/sima-app/sima-backend/internal/transport/middleware"
	"github.com/sima-app/sima-backend/internal/transport/rest"
	"github.com/sima-app/sima-backend/internal/upload"
)

// Run is the application entry point: load configuration, connect storage,
// assemble the service graph and serve HTTP until the process is signalled.
func Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("env", cfg.Env),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer pool.Close()

	// Repositories.
	users := userrepo.New(pool)
	personas := personarepo.New(pool)
	registros := registrorepo.New(pool)
	audits := auditrepo.New(pool)

	// Shared infrastructure.
	txm := postgres.NewTxManager(pool)
	tokens := auth.NewTokenManager(cfg.Auth)
	hasher := auth.NewHasher(cfg.Auth.BcryptCost)
	photos, err := upload.NewStore(cfg.Uploads)
	if err != nil {
		return fmt.Errorf("init upload store: %w", err)
	}

	// Services.
	auditService := auditsvc.NewService(logger, audits)
	authService := authsvc.NewService(logger, users, tokens, hasher)
	userService := usersvc.NewService(logger, users, hasher, auditService)
	personaService := personasvc.NewService(logger, personas, registros, auditService)
	registroService := registrosvc.NewService(logger, registros, personas, auditService, txm)
	exportService := exportsvc.NewService(logger, personas, registros, cfg.Export)

	// Transport.
	exposeInternal := !cfg.IsProduction()
	pageSize := cfg.Pagination.DefaultPageSize
	handlers := rest.Handlers{
		Auth:      rest.NewAuthHandler(authService, logger, exposeInternal),
		Personas:  rest.NewPersonaHandler(personaService, exportService, photos, logger, exposeInternal, pageSize),
		Registros: rest.NewRegistroHandler(registroService, exportService, logger, exposeInternal, pageSize),
		Usuarios:  rest.NewUserHandler(userService, authService, logger, exposeInternal, pageSize),
		Audit:     rest.NewAuditHandler(auditService, logger, exposeInternal),
		Health:    rest.NewHealthHandler(pool, BuildVersion()),
	}

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	router := rest.NewRouter(handlers, rest.RouterDeps{
		AuthMW:    middleware.Auth(tokens),
		Limiter:   limiter,
		RateLimit: cfg.RateLimit,
		UploadDir: cfg.Uploads.Directory,
	})

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit("api", cfg.RateLimit.APIPerMinute),
	)(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
