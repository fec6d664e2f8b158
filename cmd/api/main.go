package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"go-jobboard-backend/config"
	v1 "go-jobboard-backend/internal/delivery/http/v1"
	"go-jobboard-backend/internal/repository/postgres"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/database"
	"go-jobboard-backend/pkg/email"
	"go-jobboard-backend/pkg/hasher"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/notify"
	"go-jobboard-backend/pkg/redis"
	"go-jobboard-backend/pkg/token"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting job board backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (confirmation tokens)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable - email confirmation disabled", "error", err)
	}
	defer redis.Close()
	tokenStore := redis.NewTokenStore(redis.Client(), "confirm:",
		time.Duration(cfg.ConfirmTokenTTLHours)*time.Hour)

	// 5. Setup Repositories + Unit of Work
	txManager := postgres.NewTxManager(dbPool)
	userRepo := postgres.NewUserRepository(dbPool)
	companyRepo := postgres.NewCompanyRepository(dbPool)
	resumeRepo := postgres.NewResumeRepository(dbPool)
	expRepo := postgres.NewWorkExperienceRepository(dbPool)
	vacancyRepo := postgres.NewVacancyRepository(dbPool)

	// 6. Setup Email + Notifier
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - notifications will fail")
	}
	notifier := notify.NewService(emailService, cfg.NotifyWorkers, cfg.NotifyQueueSize)
	defer notifier.Close()

	// 7. Setup Auth plumbing
	passwordHasher := hasher.NewBcryptHasher(cfg.BcryptCost)
	tokens := token.NewManager(cfg.JWTSecret, time.Duration(cfg.JWTTTLMinutes)*time.Minute)

	// 8. Setup UseCases
	validate := validator.New()
	authUC := usecase.NewAuthUsecase(userRepo, passwordHasher, tokens, validate)
	userUC := usecase.NewUserUsecase(userRepo, passwordHasher, tokenStore)
	applicantUC := usecase.NewApplicantUsecase(txManager, passwordHasher, tokenStore, notifier, validate, cfg.FrontendURL)
	companyUC := usecase.NewCompanyUsecase(txManager, companyRepo, passwordHasher, tokenStore, notifier, validate, cfg.FrontendURL)
	resumeUC := usecase.NewResumeUsecase(txManager, resumeRepo, validate)
	expUC := usecase.NewWorkExperienceUsecase(expRepo, validate)
	vacancyUC := usecase.NewVacancyUsecase(txManager, vacancyRepo, validate)
	responseUC := usecase.NewResponseUsecase(txManager, notifier, validate)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:      authUC,
		UserUC:      userUC,
		ApplicantUC: applicantUC,
		CompanyUC:   companyUC,
		ResumeUC:    resumeUC,
		ExpUC:       expUC,
		VacancyUC:   vacancyUC,
		ResponseUC:  responseUC,
		Tokens:      tokens,
		Config:      cfg,
	})

	// 10. Start Server
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
