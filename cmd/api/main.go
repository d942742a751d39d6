package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ajans99-backend/config"
	v1 "ajans99-backend/internal/delivery/http/v1"
	"ajans99-backend/internal/repository/postgres"
	"ajans99-backend/internal/usecase"
	"ajans99-backend/pkg/database"
	"ajans99-backend/pkg/logger"
	"ajans99-backend/pkg/mailer"

	"github.com/go-playground/validator/v10"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting ajans99 backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	teamRepo := postgres.NewTeamRepository(dbPool)

	// 5. Setup Mail Sender
	// Resolved once at startup: a real client with a key, the simulated
	// sender without one. Shared read-only by all request handlers.
	var sender mailer.Sender
	if cfg.MailConfigured() {
		sender = mailer.NewClient(cfg.ResendAPIKey)
	} else {
		logger.Log.Warn("RESEND_API_KEY not configured - meeting emails will be simulated")
		sender = mailer.NewSimulatedSender(logger.Log)
	}

	// 6. Setup UseCases
	validate := validator.New()
	meetingUC := usecase.NewMeetingUsecase(sender, validate, cfg.MeetingEmailFrom, cfg.MeetingEmailTo)
	accountUC := usecase.NewAccountUsecase(userRepo, teamRepo)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		MeetingUC: meetingUC,
		AccountUC: accountUC,
		Config:    cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
