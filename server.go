package main

import (
	"Alkhabir/config/database"
	"Alkhabir/config/environment"
	"Alkhabir/config/logger"
	"Alkhabir/middleware"
	v1 "Alkhabir/routes/v1"
	"Alkhabir/services"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 15 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := environment.Load()
		if err != nil {
			return err
		}
		log, err := logger.Init(cfg.Debug)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer log.Sync()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return serve(ctx, cfg, log)
	},
}

// newDispatcher wires the shared Groq client into a dispatcher.
func newDispatcher(cfg *environment.Config, log *zap.Logger) (*services.OpenAIService, *services.DispatchService, error) {
	profiles := services.NewProfileTable(cfg.TextModel, cfg.VisionModel)
	if err := profiles.Check(); err != nil {
		return nil, nil, err
	}
	groq := services.NewOpenAIService(cfg)
	return groq, services.NewDispatchService(groq, profiles, cfg.Debug, log), nil
}

// newHTTPServer keeps request contexts independent of the signal context so
// in-flight completions drain during Shutdown.
func newHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func serve(ctx context.Context, cfg *environment.Config, log *zap.Logger) error {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	groq, dispatcher, err := newDispatcher(cfg, log)
	if err != nil {
		return err
	}

	deps := v1.Dependencies{
		Log:            log,
		AllowedOrigins: cfg.AllowedOrigins,
		RateLimiter:    middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		Dispatcher:     dispatcher,
		Transcriber:    services.NewTranscriptionService(groq, groq.WhisperModel, log),
		Users:          services.NewUserService(cfg.AdminEmails),
	}

	//firebase init
	if cfg.FirebaseEnabled() {
		fb, err := database.InitFirebase(ctx, cfg)
		if err != nil {
			return err
		}
		defer fb.Close()

		deps.Cases = services.NewCaseService(services.NewFirestoreCaseRepository(fb.Firestore), dispatcher, log)
		deps.Verifier = fb.Auth
	} else {
		log.Warn("Firebase credentials missing, case history and user routes disabled")
	}

	if cfg.AdminEnabled() {
		deps.Admins = services.NewAdminService(cfg.AdminUsername, cfg.AdminPasswordHash, cfg.AdminJWTSecret)
	}

	srv := newHTTPServer(":"+cfg.Port, v1.NewRouter(deps))

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server running", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
